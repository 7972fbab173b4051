// Package dto 定义 HTTP 层的请求与响应结构
package dto

// ExportResponse 导出成功响应
type ExportResponse struct {
	S3Key      string `json:"s3_key"`
	FileSize   int64  `json:"file_size"`
	DurationMS int64  `json:"duration_ms"`
}

// ErrorResponse 错误响应，所有非 200 出口统一使用
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
