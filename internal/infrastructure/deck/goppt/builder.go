// Package goppt 基于 GoPPT 库实现应用层的 DeckBuilder / SlideWriter port，
// 负责英寸到 EMU 的坐标换算与二进制容器的组装。
package goppt

import (
	"bytes"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"ancre-export-svc/internal/application/export"
	"ancre-export-svc/internal/domain/deck"
)

const (
	emuPerInch = 914400

	// 请求未给出页面尺寸时的画布（16:9，英寸）
	defaultPageWidth  = 10.0
	defaultPageHeight = 5.625

	bulletChar = "•"

	// borderWidthEMU 占位边框线宽，1pt
	borderWidthEMU = 12700
)

// Builder 将 port 调用翻译为 GoPPT 操作，持有整个演示文稿的构建状态
type Builder struct {
	p    *ppt.Presentation
	page deck.PageSize

	// GoPPT 新建文稿自带一张活动幻灯片，首次 AddSlide 复用它
	activeUsed bool
}

// NewFactory 返回 DeckBuilder 工厂
func NewFactory() export.DeckFactory {
	return func(page deck.PageSize, props export.DocumentProperties) export.DeckBuilder {
		if page.Width <= 0 || page.Height <= 0 {
			page.Width = defaultPageWidth
			page.Height = defaultPageHeight
		}
		p := ppt.New()
		p.GetLayout().SetCustomLayout(emu(page.Width), emu(page.Height))
		p.GetDocumentProperties().Title = props.Title
		p.GetDocumentProperties().Creator = props.Author
		return &Builder{p: p, page: page}
	}
}

// AddSlide 追加一张幻灯片，bgHex 非空时先铺满一个背景色矩形
func (b *Builder) AddSlide(bgHex string) export.SlideWriter {
	var slide *ppt.Slide
	if !b.activeUsed {
		slide = b.p.GetActiveSlide()
		b.activeUsed = true
	} else {
		slide = b.p.CreateSlide()
	}

	if bgHex != "" {
		bg := slide.CreateRichTextShape()
		bg.SetOffsetX(0).SetOffsetY(0)
		bg.SetWidth(emu(b.page.Width)).SetHeight(emu(b.page.Height))
		bg.SetFill(solidFill(argb(bgHex)))
	}

	return &slideWriter{slide: slide}
}

// Serialize 将整个 deck 写出为 PowerPoint 2007 二进制
func (b *Builder) Serialize() ([]byte, error) {
	w, err := ppt.NewWriter(b.p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// slideWriter 对单张幻灯片施加副作用
type slideWriter struct {
	slide *ppt.Slide
}

// AddText 放置一个多段落富文本形状
func (s *slideWriter) AddText(r export.Rect, paras []export.Paragraph) {
	shape := s.slide.CreateRichTextShape()
	place(shape, r)

	for i, para := range paras {
		pp := shape.GetActiveParagraph()
		if i > 0 {
			pp = shape.CreateParagraph()
		}
		applyAlign(pp, para.Align)
		if para.Bullet {
			pp.SetBullet(ppt.NewBullet().SetCharBullet(bulletChar))
		}
		if para.SpaceAfterPt > 0 {
			// 容器的段后间距以 1/100 磅计
			pp.SetSpaceAfter(para.SpaceAfterPt * 100)
		}

		for _, run := range para.Runs {
			tr := shape.CreateTextRun(run.Text)
			font := tr.GetFont().SetSize(run.SizePt).SetBold(run.Bold).SetItalic(run.Italic)
			if run.Underline {
				font.SetUnderline(ppt.UnderlineSingle)
			}
			if run.Font != "" {
				font.SetName(run.Font)
			}
			if run.ColorHex != "" {
				font.SetColor(ppt.NewColor(argb(run.ColorHex)))
			}
		}
	}
}

// AddImage 插入图片。容器不回报解码失败，
// 这里提前拒绝空数据与非图片媒体类型，避免产出损坏的包。
func (s *slideWriter) AddImage(r export.Rect, data []byte, mime string) error {
	if len(data) == 0 {
		return fmt.Errorf("empty image data")
	}
	if mime != "" && !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("unsupported image media type %q", mime)
	}
	shape := s.slide.CreateDrawingShape()
	shape.SetOffsetX(emu(r.X)).SetOffsetY(emu(r.Y))
	shape.SetWidth(emu(r.W)).SetHeight(emu(r.H))
	shape.SetImageData(data, mime)
	return nil
}

// AddShape 绘制无文字的实心填充矩形，borderHex 非空时附加 1pt 实线描边
func (s *slideWriter) AddShape(r export.Rect, fillHex, borderHex string) {
	shape := s.slide.CreateRichTextShape()
	place(shape, r)
	shape.SetFill(solidFill(argb(fillHex)))
	if borderHex != "" {
		shape.SetBorder(ppt.NewBorder().SetSolidFill(ppt.NewColor(argb(borderHex))).SetWidth(borderWidthEMU))
	}
}

func place(shape *ppt.RichTextShape, r export.Rect) {
	shape.SetOffsetX(emu(r.X)).SetOffsetY(emu(r.Y))
	shape.SetWidth(emu(r.W)).SetHeight(emu(r.H))
}

func applyAlign(p *ppt.Paragraph, a export.Align) {
	switch a {
	case export.AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case export.AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

func solidFill(argbHex string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argbHex))
}

// argb 将裸 RRGGBB 补全为容器期望的不透明 AARRGGBB
func argb(hex string) string {
	return "FF" + strings.ToUpper(hex)
}

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}
