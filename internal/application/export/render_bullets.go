package export

import (
	"strings"

	"ancre-export-svc/internal/domain/deck"
)

// 条目标题行紧跟正文，正文行之后留出分组间隔
const (
	bulletTitleSpacingPt = 2
	bulletBodySpacingPt  = 8
)

// renderBullets 把列表组拍平为一个多段落文本块：
// 标题行不带项目符号且加粗，正文行带项目符号，条目顺序保持不变。
func (r *Renderer) renderBullets(sw SlideWriter, box deck.ResolvedBox, theme *deck.Theme, c deck.BulletContent) {
	heading := HeadingStyle(theme)
	body := BodyStyle(theme)

	size := sizeBody
	if box.FontSizePt != nil && *box.FontSizePt > 0 {
		size = int(*box.FontSizePt)
	}

	var paras []Paragraph
	for _, item := range c.Items {
		if title := strings.TrimSpace(item.Title); title != "" {
			paras = append(paras, Paragraph{
				Runs: []Run{{
					Text:     title,
					Bold:     true,
					SizePt:   size,
					ColorHex: heading.Color,
					Font:     heading.Font,
				}},
				SpaceAfterPt: bulletTitleSpacingPt,
			})
		}
		if bodyLine := strings.TrimSpace(item.Body); bodyLine != "" {
			paras = append(paras, Paragraph{
				Runs: []Run{{
					Text:     bodyLine,
					SizePt:   size,
					ColorHex: body.Color,
					Font:     body.Font,
				}},
				Bullet:       true,
				SpaceAfterPt: bulletBodySpacingPt,
			})
		}
	}

	if len(paras) == 0 {
		return
	}
	sw.AddText(boxRect(box), paras)
}
