package export

import "context"

// ArtifactStore 定义应用层对持久化对象存储的最小依赖（port）。
// 由基础设施层提供具体实现（S3 兼容存储）。
type ArtifactStore interface {
	// Put 上传制品。上传失败必须向上传播，制品持久性是硬性要求。
	Put(ctx context.Context, key string, body []byte, contentType, contentDisposition string) error
	// HealthCheck 检查存储可达性（就绪探针用）
	HealthCheck(ctx context.Context) error
}
