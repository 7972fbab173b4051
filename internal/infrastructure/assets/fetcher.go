// Package assets 负责从预签名 URL 下载图片资产，带进程内 TTL 缓存
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"ancre-export-svc/internal/config"
	"ancre-export-svc/pkg/logger"
)

// cached 缓存条目，字节与媒体类型一起缓存
type cached struct {
	data []byte
	mime string
}

// Fetcher 实现 export.AssetFetcher。
// 同一 URL 在 TTL 内重复出现（多盒复用同一图片）时只下载一次，
// 并发未命中经 singleflight 合并为单次回源。
type Fetcher struct {
	client   *http.Client
	cache    *cache.Cache
	group    singleflight.Group
	maxBytes int64
}

// NewFetcher 创建资产下载器
func NewFetcher(cfg *config.AssetsConfig) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		cache:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		maxBytes: cfg.MaxBytes,
	}
}

// Fetch 下载 URL 指向的资产，返回字节与响应的 Content-Type
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if hit, ok := f.cache.Get(url); ok {
		c := hit.(cached)
		return c.data, c.mime, nil
	}

	// 使用 singleflight 合并并发请求
	result, err, _ := f.group.Do(url, func() (interface{}, error) {
		// 再次检查缓存（可能已被其他请求填充）
		if hit, ok := f.cache.Get(url); ok {
			return hit.(cached), nil
		}
		return f.download(ctx, url)
	})
	if err != nil {
		return nil, "", err
	}
	c := result.(cached)
	return c.data, c.mime, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (cached, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cached{}, fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return cached{}, fmt.Errorf("asset fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cached{}, fmt.Errorf("asset fetch returned status %d", resp.StatusCode)
	}

	// 多读一个字节以区分"恰好达到上限"与"超限"
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return cached{}, fmt.Errorf("failed to read asset body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return cached{}, fmt.Errorf("asset exceeds size limit of %d bytes", f.maxBytes)
	}

	c := cached{data: data, mime: resp.Header.Get("Content-Type")}
	f.cache.SetDefault(url, c)

	logger.Debug(ctx, "asset fetched", "bytes", len(c.data), "mime", c.mime)
	return c, nil
}
