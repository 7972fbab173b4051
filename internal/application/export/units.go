package export

import (
	"math"
	"strconv"
	"strings"

	"ancre-export-svc/internal/domain/deck"
)

// px -> pt 的固定换算比例
const pxToPt = 0.75

// 节点类型默认字号（磅）。标题按层级递减，最小 14pt，正文 16pt。
const (
	sizeHeading1   = 36
	sizeHeading2   = 28
	sizeHeading3   = 22
	sizeHeading4   = 18
	sizeHeadingMin = 14
	sizeBody       = 16
)

// ToPoints 将 "Npx"、"Npt" 或裸数字形式的度量转为整数磅值。
// 上游内容不完全可信，函数必须全函数（total）：
// 无法识别的输入返回 ok=false，由调用方套用节点类型默认值。
func ToPoints(d deck.Dimension) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(string(d)))
	if s == "" {
		return 0, false
	}

	switch {
	case strings.HasSuffix(s, "px"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(n * pxToPt)), true
	case strings.HasSuffix(s, "pt"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "pt")), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(n)), true
	default:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(n)), true
	}
}

// headingSize 标题层级默认字号
func headingSize(level int) int {
	switch level {
	case 0, 1:
		return sizeHeading1
	case 2:
		return sizeHeading2
	case 3:
		return sizeHeading3
	case 4:
		return sizeHeading4
	default:
		return sizeHeadingMin
	}
}
