// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit 请求体大小限制中间件。
// 超限在后续 JSON 绑定时以 *http.MaxBytesError 暴露，由处理器统一映射。
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
