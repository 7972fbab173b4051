package export

import (
	"context"
	"time"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/logger"
	"ancre-export-svc/pkg/metrics"
	"ancre-export-svc/pkg/tracer"
)

// Result 导出结果，对应响应体字段
type Result struct {
	S3Key      string
	FileSize   int64
	DurationMS int64
}

// Service 导出服务，编排 构建 -> 转换 -> 发布 的完整流水线
type Service struct {
	newDeck   DeckFactory
	converter *Converter
	publisher *Publisher
	author    string
}

// NewService 创建导出服务
func NewService(newDeck DeckFactory, converter *Converter, publisher *Publisher, author string) *Service {
	return &Service{
		newDeck:   newDeck,
		converter: converter,
		publisher: publisher,
		author:    author,
	}
}

// Export 执行一次完整导出：构建 deck、逐页渲染、序列化并上传。
// 渲染阶段逐盒降级，序列化与上传阶段整体失败。
func (s *Service) Export(ctx context.Context, req *deck.ExportRequest) (*Result, error) {
	ctx = logger.WithContext(ctx, logger.TenantIDKey, req.TenantID)
	ctx = logger.WithContext(ctx, logger.PresentationIDKey, req.PresentationID)
	ctx = logger.WithContext(ctx, logger.ExportIDKey, req.ExportID)

	ctx, span := tracer.Start(ctx, "export.Export")
	defer span.End()

	log := logger.FromContext(ctx)
	start := time.Now()

	log.Info("export started", "slides", len(req.Slides))

	b := s.newDeck(req.PageSize, DocumentProperties{
		Title:  req.PresentationID,
		Author: s.author,
	})

	s.converter.Convert(ctx, req, b)

	pub, err := s.publisher.Publish(ctx, req, b)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(req.TenantID, "error").Inc()
		log.Error("export failed", "error", err)
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.ExportsTotal.WithLabelValues(req.TenantID, "success").Inc()
	metrics.ExportDuration.WithLabelValues(req.TenantID).Observe(elapsed.Seconds())

	log.Info("export completed",
		"s3_key", pub.Key,
		"file_size", pub.Size,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{
		S3Key:      pub.Key,
		FileSize:   pub.Size,
		DurationMS: elapsed.Milliseconds(),
	}, nil
}
