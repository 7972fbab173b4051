package export

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/errors"
	"ancre-export-svc/pkg/metrics"
	"ancre-export-svc/pkg/tracer"
)

// PPTXContentType 二进制容器的规范 MIME 类型
const PPTXContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// PublishResult 发布结果
type PublishResult struct {
	Key  string
	Size int64
}

// Publisher 序列化 deck 并上传到对象存储。
// 与渲染层不同，这里的失败一律向上传播：制品持久性是硬性要求。
type Publisher struct {
	store ArtifactStore
	now   func() time.Time
}

// NewPublisher 创建发布器
func NewPublisher(store ArtifactStore) *Publisher {
	return &Publisher{store: store, now: time.Now}
}

// Publish 序列化并上传制品，返回内容寻址键与字节数。
// 序列化完成后才开始上传，上传结束前不返回。
func (p *Publisher) Publish(ctx context.Context, req *deck.ExportRequest, b DeckBuilder) (*PublishResult, error) {
	ctx, span := tracer.Start(ctx, "export.Publish")
	defer span.End()

	data, err := b.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSerializeFailed, "failed to serialize deck")
	}

	key := ArtifactKey(req.TenantID, req.PresentationID, req.ExportID, p.now().UTC())
	disposition := fmt.Sprintf("attachment; filename=%q", path.Base(key))

	if err := p.store.Put(ctx, key, data, PPTXContentType, disposition); err != nil {
		return nil, errors.Wrap(err, errors.CodeUploadFailed, "failed to upload artifact")
	}
	metrics.ArtifactBytes.Observe(float64(len(data)))

	return &PublishResult{Key: key, Size: int64(len(data))}, nil
}

// ArtifactKey 构造内容寻址的存储键：
// exports/{tenant}/{presentation}/{export}_{时间戳}.pptx。
// 时间戳为 UTC ISO 格式，冒号与点替换为连字符，
// 同一 export_id 重复导出得到新键，已发布制品不可变。
func ArtifactKey(tenantID, presentationID, exportID string, ts time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").
		Replace(ts.Format("2006-01-02T15:04:05.000Z"))
	return fmt.Sprintf("exports/%s/%s/%s_%s.pptx", tenantID, presentationID, exportID, stamp)
}
