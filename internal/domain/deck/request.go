// Package deck 定义导出请求的解析完成态（resolved）文档模型。
// 所有坐标单位为英寸，所有富文本已在上游拍平到单个盒子的 content 中，
// 本包不做任何布局计算。
package deck

import (
	"encoding/json"
	"sort"
)

// NodeType 盒子的绘制类型
type NodeType string

// 支持的盒子类型
const (
	NodeText    NodeType = "text"
	NodeBullets NodeType = "bullet_list"
	NodeImage   NodeType = "image"
	NodeShape   NodeType = "shape"
	NodeChart   NodeType = "chart"
	NodeSVG     NodeType = "svg"
)

// ExportRequest 导出请求，唯一的输入契约（带版本）
type ExportRequest struct {
	SchemaVersion  int             `json:"schema_version"`
	PresentationID string          `json:"presentation_id"`
	TenantID       string          `json:"tenant_id"`
	ExportID       string          `json:"export_id"`
	Theme          *Theme          `json:"theme,omitempty"`
	PageSize       PageSize        `json:"page_size"`
	Slides         []ResolvedSlide `json:"slides"`
	Assets         []Asset         `json:"assets,omitempty"`
}

// Theme 主题令牌集，所有字段可缺省
type Theme struct {
	Colors       ThemeColors `json:"colors"`
	Fonts        ThemeFonts  `json:"fonts"`
	BorderRadius float64     `json:"border_radius,omitempty"`
}

// ThemeColors 主题颜色令牌
type ThemeColors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Heading    string `json:"heading,omitempty"`
	Muted      string `json:"muted,omitempty"`
}

// ThemeFonts 主题字体令牌
type ThemeFonts struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

// PageSize 页面尺寸（英寸），容器尺寸的唯一事实来源
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// ResolvedSlide 单张幻灯片，position 为权威排序键
type ResolvedSlide struct {
	ID         string        `json:"id"`
	Position   int           `json:"position"`
	LayoutType string        `json:"layout_type,omitempty"`
	BgColor    string        `json:"bg_color,omitempty"`
	Boxes      []ResolvedBox `json:"boxes"`
}

// ResolvedBox 单个已定位的可绘制单元。
// content 的具体形状由 node_type 决定，见 content.go。
type ResolvedBox struct {
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	W          float64         `json:"w"`
	H          float64         `json:"h"`
	NodeType   NodeType        `json:"node_type"`
	Content    json.RawMessage `json:"content,omitempty"`
	FontSizePt *float64        `json:"font_size_pt,omitempty"`
	Truncated  bool            `json:"truncated,omitempty"`
}

// Asset 生成资产查找表条目，按 asset_id 解析，与幻灯片嵌套无关
type Asset struct {
	AssetID      string  `json:"asset_id"`
	PresignedURL string  `json:"presigned_url"`
	Mime         string  `json:"mime,omitempty"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
}

// AssetByID 在资产表中查找条目
func (r *ExportRequest) AssetByID(id string) (Asset, bool) {
	if id == "" {
		return Asset{}, false
	}
	for _, a := range r.Assets {
		if a.AssetID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// SortedSlides 返回按 position 升序排列的幻灯片副本。
// 稳定排序：position 相同的幻灯片保持请求内的先后顺序。
func (r *ExportRequest) SortedSlides() []ResolvedSlide {
	slides := make([]ResolvedSlide, len(r.Slides))
	copy(slides, r.Slides)
	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].Position < slides[j].Position
	})
	return slides
}
