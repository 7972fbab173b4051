package export

import (
	"context"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/logger"
	"ancre-export-svc/pkg/metrics"
)

// renderImage 渲染图片盒。
// 来源解析优先级：assets 表中按 asset_id 查找 -> content.url -> content.presigned_url。
// 来源缺失、下载失败或容器插入失败都降级为中性占位矩形，绝不让整次导出失败。
func (r *Renderer) renderImage(ctx context.Context, sw SlideWriter, box deck.ResolvedBox, req *deck.ExportRequest, c deck.ImageContent) {
	url, mime, natW, natH := resolveImageSource(req, c)
	if url == "" {
		r.imagePlaceholder(sw, box)
		return
	}

	data, fetchedMime, err := r.assets.Fetch(ctx, url)
	if err != nil {
		logger.Warn(ctx, "image fetch failed, placeholder substituted",
			"asset_id", c.AssetID,
		)
		r.imagePlaceholder(sw, box)
		return
	}
	if mime == "" {
		mime = fetchedMime
	}

	if err := sw.AddImage(coverRect(boxRect(box), natW, natH), data, mime); err != nil {
		logger.Warn(ctx, "image insert rejected by container, placeholder substituted",
			"asset_id", c.AssetID,
		)
		r.imagePlaceholder(sw, box)
	}
}

// resolveImageSource 返回可用的下载地址及资产表中记录的媒体类型与原始尺寸
func resolveImageSource(req *deck.ExportRequest, c deck.ImageContent) (url, mime string, w, h float64) {
	if asset, ok := req.AssetByID(c.AssetID); ok && asset.PresignedURL != "" {
		return asset.PresignedURL, asset.Mime, asset.Width, asset.Height
	}
	if c.URL != "" {
		return c.URL, "", 0, 0
	}
	if c.PresignedURL != "" {
		return c.PresignedURL, "", 0, 0
	}
	return "", "", 0, 0
}

// coverRect 按 cover 语义将原始宽高缩放到盖满盒子矩形并居中。
// 原始尺寸未知时按盒子矩形精确填充。
func coverRect(r Rect, natW, natH float64) Rect {
	if natW <= 0 || natH <= 0 {
		return r
	}
	scale := r.W / natW
	if s := r.H / natH; s > scale {
		scale = s
	}
	w := natW * scale
	h := natH * scale
	return Rect{
		X: r.X - (w-r.W)/2,
		Y: r.Y - (h-r.H)/2,
		W: w,
		H: h,
	}
}

func (r *Renderer) imagePlaceholder(sw SlideWriter, box deck.ResolvedBox) {
	metrics.PlaceholdersRendered.WithLabelValues("image").Inc()
	drawPlaceholder(sw, boxRect(box), "Image")
}
