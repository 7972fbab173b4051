package deck

import (
	"encoding/json"
	"strings"
)

// Dimension 接受字符串（"24px"、"24pt"）或裸数字（24）两种 JSON 形态的度量值。
// 上游内容不完全可信，因此解析永不失败，无法识别的形态原样保留为文本。
type Dimension string

// UnmarshalJSON 实现宽容解析
func (d *Dimension) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = Dimension(s)
		return nil
	}
	*d = Dimension(strings.TrimSpace(string(b)))
	return nil
}

// Content 是按 node_type 封闭的内容载荷和类型集合。
// 未识别的形态落入 UnknownContent，转换器据此跳过而不是中断。
type Content interface {
	contentNode()
}

// TextContent 文本盒内容：一组已拍平的样式文本 run
type TextContent struct {
	Kind  string    `json:"type,omitempty"`
	Level int       `json:"level,omitempty"`
	Runs  []TextRun `json:"runs,omitempty"`
	Text  string    `json:"text,omitempty"`
}

// TextRun 单个样式 run，显式字段优先于节点/主题默认值
type TextRun struct {
	Text      string    `json:"text"`
	Bold      *bool     `json:"bold,omitempty"`
	Italic    bool      `json:"italic,omitempty"`
	Underline bool      `json:"underline,omitempty"`
	Color     string    `json:"color,omitempty"`
	Font      string    `json:"font,omitempty"`
	Size      Dimension `json:"size,omitempty"`
}

// BulletContent 列表组内容：有序条目，各含可选标题行与正文行
type BulletContent struct {
	Items []BulletItem `json:"items,omitempty"`
}

// BulletItem 单个列表条目
type BulletItem struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// ImageContent 图片盒内容，来源按 asset_id -> url -> presigned_url 优先级解析
type ImageContent struct {
	AssetID      string `json:"asset_id,omitempty"`
	URL          string `json:"url,omitempty"`
	PresignedURL string `json:"presigned_url,omitempty"`
	Alt          string `json:"alt,omitempty"`
}

// ShapeContent 形状盒内容
type ShapeContent struct {
	Fill string `json:"fill,omitempty"`
}

// PlaceholderContent chart/svg 等本版本降级渲染的内容
type PlaceholderContent struct {
	Kind NodeType
	Raw  json.RawMessage
}

// UnknownContent 未识别 node_type 的兜底变体（向前兼容）
type UnknownContent struct {
	NodeType NodeType
	Raw      json.RawMessage
}

func (TextContent) contentNode()        {}
func (BulletContent) contentNode()      {}
func (ImageContent) contentNode()       {}
func (ShapeContent) contentNode()       {}
func (PlaceholderContent) contentNode() {}
func (UnknownContent) contentNode()     {}

// DecodeContent 按 node_type 将 content 解码为封闭联合类型。
// text 盒的载荷可内嵌 type=bullet_list，此时归并到列表组。
// 只有载荷 JSON 本身损坏才返回错误。
func DecodeContent(nodeType NodeType, raw json.RawMessage) (Content, error) {
	switch nodeType {
	case NodeText:
		var head struct {
			Type string `json:"type"`
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &head); err != nil {
				return nil, err
			}
		}
		if head.Type == string(NodeBullets) {
			return decodeBullets(raw)
		}
		var c TextContent
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, err
			}
		}
		return c, nil

	case NodeBullets:
		return decodeBullets(raw)

	case NodeImage:
		var c ImageContent
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, err
			}
		}
		return c, nil

	case NodeShape:
		var c ShapeContent
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, err
			}
		}
		return c, nil

	case NodeChart, NodeSVG:
		return PlaceholderContent{Kind: nodeType, Raw: raw}, nil

	default:
		return UnknownContent{NodeType: nodeType, Raw: raw}, nil
	}
}

func decodeBullets(raw json.RawMessage) (Content, error) {
	var c BulletContent
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
