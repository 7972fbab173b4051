package export

// 占位矩形配色与版式
const (
	placeholderBorderHex = "CBD5E1"
	placeholderFillHex   = "F1F5F9"
	placeholderLabelHex  = "64748B"
	placeholderLabelPt   = 14
	// labelBandIn 居中标签条的高度（英寸）
	labelBandIn = 0.3
)

// drawPlaceholder 在盒子矩形处绘制中性占位：浅灰底、细描边，标签居中
func drawPlaceholder(sw SlideWriter, r Rect, label string) {
	sw.AddShape(r, placeholderFillHex, placeholderBorderHex)

	band := Rect{
		X: r.X,
		Y: r.Y + r.H/2 - labelBandIn/2,
		W: r.W,
		H: labelBandIn,
	}
	sw.AddText(band, []Paragraph{{
		Align: AlignCenter,
		Runs: []Run{{
			Text:     label,
			SizePt:   placeholderLabelPt,
			ColorHex: placeholderLabelHex,
			Font:     defaultFont,
		}},
	}})
}
