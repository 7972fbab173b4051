package export

import (
	"context"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/metrics"
	"ancre-export-svc/pkg/tracer"
)

// Converter 把导出请求的幻灯片列表转换为已填充的 deck。
// 处理顺序固定且单线程：幻灯片按 position 升序，盒内按列表顺序
// （即 z 序，后画的盖前画的），保证相同输入产出稳定。
type Converter struct {
	renderer *Renderer
}

// NewConverter 创建转换器
func NewConverter(renderer *Renderer) *Converter {
	return &Converter{renderer: renderer}
}

// Convert 遍历请求内的幻灯片并逐盒分发渲染。
// 渲染层失败均已在渲染器内降级，转换本身不产生错误。
func (c *Converter) Convert(ctx context.Context, req *deck.ExportRequest, b DeckBuilder) {
	ctx, span := tracer.Start(ctx, "export.Convert")
	defer span.End()

	slides := req.SortedSlides()
	metrics.ExportSlides.Observe(float64(len(slides)))

	for _, slide := range slides {
		sw := b.AddSlide(CleanHex(slide.BgColor))
		for _, box := range slide.Boxes {
			c.renderer.RenderBox(ctx, sw, box, req.Theme, req)
		}
	}
}
