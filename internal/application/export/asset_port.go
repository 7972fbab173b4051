package export

import "context"

// AssetFetcher 定义图片渲染器对资产下载的最小依赖（port）。
// 实现只负责按 URL 取字节，不做任何布局或格式决策。
type AssetFetcher interface {
	// Fetch 下载资产，返回字节与响应的媒体类型
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
