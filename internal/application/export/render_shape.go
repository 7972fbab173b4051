package export

import (
	"strings"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/metrics"
)

// renderShape 内容声明了填充色时绘制无边框实心矩形，否则不产出任何东西
func (r *Renderer) renderShape(sw SlideWriter, box deck.ResolvedBox, c deck.ShapeContent) {
	fill := CleanHex(c.Fill)
	if strings.TrimSpace(fill) == "" {
		return
	}
	sw.AddShape(boxRect(box), fill, "")
}

// renderTypePlaceholder chart/svg 在本版本按既定降级策略渲染为带类型标签的占位矩形
func (r *Renderer) renderTypePlaceholder(sw SlideWriter, box deck.ResolvedBox, kind deck.NodeType) {
	metrics.PlaceholdersRendered.WithLabelValues(string(kind)).Inc()
	drawPlaceholder(sw, boxRect(box), typeLabel(kind))
}
