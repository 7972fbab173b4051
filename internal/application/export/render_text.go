package export

import (
	"strings"

	"ancre-export-svc/internal/domain/deck"
)

// renderText 把文本盒渲染为一个多 run 文本块。
// run 级显式样式优先于节点类型/主题默认值；
// 解析后没有任何 run 时什么都不添加，不产生空文本对象。
func (r *Renderer) renderText(sw SlideWriter, box deck.ResolvedBox, theme *deck.Theme, c deck.TextContent) {
	runs := r.resolveRuns(box, theme, c)
	if len(runs) == 0 {
		return
	}
	sw.AddText(boxRect(box), []Paragraph{{Runs: runs}})
}

// resolveRuns 逐 run 解析有效字体、字号、颜色、字重与装饰
func (r *Renderer) resolveRuns(box deck.ResolvedBox, theme *deck.Theme, c deck.TextContent) []Run {
	heading := c.Kind == "heading"

	var style TextStyle
	if heading {
		style = HeadingStyle(theme)
	} else {
		style = BodyStyle(theme)
	}

	src := c.Runs
	if len(src) == 0 && strings.TrimSpace(c.Text) != "" {
		// 无 run 列表的简单文本载荷退化为单 run
		src = []deck.TextRun{{Text: c.Text}}
	}

	runs := make([]Run, 0, len(src))
	for _, in := range src {
		if in.Text == "" {
			continue
		}
		runs = append(runs, Run{
			Text:      in.Text,
			Bold:      resolveBold(in.Bold, heading),
			Italic:    in.Italic,
			Underline: in.Underline,
			SizePt:    r.resolveSize(in.Size, box, heading, c.Level),
			ColorHex:  CleanHex(firstNonEmpty(in.Color, style.Color)),
			Font:      resolveFont(in.Font, style.Font),
		})
	}
	return runs
}

// resolveBold run 显式字重优先，标题默认加粗
func resolveBold(explicit *bool, heading bool) bool {
	if explicit != nil {
		return *explicit
	}
	return heading
}

// resolveFont run 显式字体仍需过允许列表
func resolveFont(requested, themed string) string {
	if strings.TrimSpace(requested) != "" {
		return SafeFont(requested)
	}
	return themed
}

// resolveSize 字号回退链：run 显式值 -> 盒子级 font_size_pt -> 节点类型默认
func (r *Renderer) resolveSize(d deck.Dimension, box deck.ResolvedBox, heading bool, level int) int {
	if pt, ok := ToPoints(d); ok && pt > 0 {
		return pt
	}
	if box.FontSizePt != nil && *box.FontSizePt > 0 {
		return int(*box.FontSizePt)
	}
	if heading {
		return headingSize(level)
	}
	return sizeBody
}
