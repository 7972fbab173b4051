package export

import (
	"strings"

	"ancre-export-svc/internal/domain/deck"
)

// 主题缺省值。主题解析永不失败，缺什么补什么。
const (
	defaultHeadingColor = "1a1a2e"
	defaultBodyColor    = "333333"
	defaultFont         = "Arial"
)

// fontAllowList 容器可安全嵌入的字体族（小写比较）
var fontAllowList = map[string]string{
	"arial":           "Arial",
	"helvetica":       "Helvetica",
	"calibri":         "Calibri",
	"georgia":         "Georgia",
	"times new roman": "Times New Roman",
	"courier new":     "Courier New",
	"verdana":         "Verdana",
	"tahoma":          "Tahoma",
	"trebuchet ms":    "Trebuchet MS",
}

// TextStyle 某一语义角色下的具体样式值
type TextStyle struct {
	// Color 裸十六进制 RRGGBB
	Color string
	Font  string
}

// CleanHex 剥离 # 前缀并去除空白，二进制容器要求裸十六进制
func CleanHex(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "#")
}

// firstNonEmpty 按序求值的回退链，首个非空命中。
// 主题 -> 节点类型 -> 硬编码常量的优先级都经由它表达，保持可审计。
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// SafeFont 将请求的字体族映射到允许列表内的值，未命中回退到系统安全字体
func SafeFont(name string) string {
	if canonical, ok := fontAllowList[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return defaultFont
}

// HeadingStyle 解析标题角色的具体颜色与字体
func HeadingStyle(t *deck.Theme) TextStyle {
	if t == nil {
		return TextStyle{Color: defaultHeadingColor, Font: defaultFont}
	}
	return TextStyle{
		Color: CleanHex(firstNonEmpty(t.Colors.Heading, defaultHeadingColor)),
		Font:  SafeFont(t.Fonts.Heading),
	}
}

// BodyStyle 解析正文角色的具体颜色与字体
func BodyStyle(t *deck.Theme) TextStyle {
	if t == nil {
		return TextStyle{Color: defaultBodyColor, Font: defaultFont}
	}
	return TextStyle{
		Color: CleanHex(firstNonEmpty(t.Colors.Text, defaultBodyColor)),
		Font:  SafeFont(t.Fonts.Body),
	}
}
