package export

import (
	"context"
	"strings"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/logger"
	"ancre-export-svc/pkg/metrics"
)

// Renderer 将单个盒子映射为容器绘制原语。
// 渲染层的失败策略是降级继续：占位或跳过单个盒子，绝不中断整次导出。
type Renderer struct {
	assets AssetFetcher
}

// NewRenderer 创建渲染器
func NewRenderer(assets AssetFetcher) *Renderer {
	return &Renderer{assets: assets}
}

// RenderBox 解码盒子内容并按封闭联合类型穷尽分发到对应渲染器
func (r *Renderer) RenderBox(ctx context.Context, sw SlideWriter, box deck.ResolvedBox, theme *deck.Theme, req *deck.ExportRequest) {
	content, err := deck.DecodeContent(box.NodeType, box.Content)
	if err != nil {
		logger.Warn(ctx, "box content undecodable, skipped",
			"node_type", string(box.NodeType),
		)
		metrics.BoxesSkipped.WithLabelValues(string(box.NodeType)).Inc()
		return
	}

	switch c := content.(type) {
	case deck.TextContent:
		r.renderText(sw, box, theme, c)
	case deck.BulletContent:
		r.renderBullets(sw, box, theme, c)
	case deck.ImageContent:
		r.renderImage(ctx, sw, box, req, c)
	case deck.ShapeContent:
		r.renderShape(sw, box, c)
	case deck.PlaceholderContent:
		r.renderTypePlaceholder(sw, box, c.Kind)
	case deck.UnknownContent:
		logger.Warn(ctx, "unrecognized node_type, box skipped",
			"node_type", string(c.NodeType),
		)
		metrics.BoxesSkipped.WithLabelValues(string(c.NodeType)).Inc()
	}
}

// boxRect 盒子矩形（上游已转为英寸，不做裁剪校验）
func boxRect(box deck.ResolvedBox) Rect {
	return Rect{X: box.X, Y: box.Y, W: box.W, H: box.H}
}

// typeLabel 占位矩形上的类型标签，如 chart -> "Chart"
func typeLabel(t deck.NodeType) string {
	s := string(t)
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
