package s3

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"ancre-export-svc/pkg/errors"
	"ancre-export-svc/pkg/metrics"
	"ancre-export-svc/pkg/tracer"
)

// Uploader 实现 export.ArtifactStore，向单一桶写入导出制品
type Uploader struct {
	client *s3.Client
	bucket string
}

// NewUploader 创建制品上传器
func NewUploader(client *s3.Client, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket}
}

// Put 以给定键写入对象。键由调用方保证唯一，已写入对象不再覆盖。
func (u *Uploader) Put(ctx context.Context, key string, body []byte, contentType, contentDisposition string) error {
	ctx, span := tracer.Start(ctx, "storage.Put")
	defer span.End()

	start := time.Now()
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(u.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(body),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(contentDisposition),
		ContentLength:      int64(len(body)),
	})
	metrics.UploadDuration.WithLabelValues(u.bucket).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(u.bucket, "error").Inc()
		return errors.Wrap(err, errors.CodeStorageError, "s3 put object failed")
	}
	metrics.UploadsTotal.WithLabelValues(u.bucket, "success").Inc()
	return nil
}

// HealthCheck 探测桶可达性，供就绪探针使用
func (u *Uploader) HealthCheck(ctx context.Context) error {
	_, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.bucket),
	})
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "s3 head bucket failed")
	}
	return nil
}
