package export

import (
	"ancre-export-svc/internal/domain/deck"
)

// Rect 盒子矩形（英寸）
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Align 段落水平对齐
type Align int

// 对齐方式
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Run 已解析完的样式文本 run，所有值均为最终值
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	SizePt    int
	// ColorHex 裸十六进制 RRGGBB，不带 # 前缀
	ColorHex string
	Font     string
}

// Paragraph 单个段落及其版式
type Paragraph struct {
	Runs   []Run
	Align  Align
	Bullet bool
	// SpaceAfterPt 段后间距（磅），0 表示无
	SpaceAfterPt int
}

// SlideWriter 定义渲染器对单张容器幻灯片的最小依赖（port）。
// 渲染器只通过它产生副作用，互相之间没有共享可变状态。
type SlideWriter interface {
	// AddText 在矩形处放置一个多 run 多段落文本块
	AddText(r Rect, paras []Paragraph)
	// AddImage 在矩形处插入图片，容器拒绝（解码/格式）时返回错误
	AddImage(r Rect, data []byte, mime string) error
	// AddShape 在矩形处绘制实心填充矩形，borderHex 非空时描 1pt 实线边框
	AddShape(r Rect, fillHex, borderHex string)
}

// DeckBuilder 定义应用层对二进制演示文稿构建库的最小依赖（port）。
// 由基础设施层提供具体实现（GoPPT）。
type DeckBuilder interface {
	// AddSlide 追加一张幻灯片；bgHex 非空时铺满背景色（裸十六进制）
	AddSlide(bgHex string) SlideWriter
	// Serialize 将整个 deck 序列化为二进制缓冲
	Serialize() ([]byte, error)
}

// DocumentProperties 写入容器文档属性的元信息
type DocumentProperties struct {
	Title  string
	Author string
}

// DeckFactory 按页面尺寸创建空 deck
type DeckFactory func(page deck.PageSize, props DocumentProperties) DeckBuilder
