package handler

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ancre-export-svc/internal/application/export"
	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/internal/interfaces/http/dto"
	"ancre-export-svc/pkg/errors"
	"ancre-export-svc/pkg/logger"
)

// ExportService 导出服务接口
type ExportService interface {
	Export(ctx context.Context, req *deck.ExportRequest) (*export.Result, error)
}

// ExportHandler 导出请求处理器
type ExportHandler struct {
	svc           ExportService
	schemaVersion int
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc ExportService, schemaVersion int) *ExportHandler {
	return &ExportHandler{
		svc:           svc,
		schemaVersion: schemaVersion,
	}
}

// Export 处理一次导出请求。
// 校验顺序固定：请求体 -> schema_version -> 幻灯片非空，任一失败立即返回，不触碰存储。
func (h *ExportHandler) Export(c *gin.Context) {
	var req deck.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse("Request body too large."))
			return
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body."))
		return
	}

	if req.SchemaVersion != h.schemaVersion {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf(
			"Unsupported schema_version: %d. Expected %d.", req.SchemaVersion, h.schemaVersion,
		)))
		return
	}

	if len(req.Slides) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No slides provided."))
		return
	}

	result, err := h.svc.Export(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{
		S3Key:      result.S3Key,
		FileSize:   result.FileSize,
		DurationMS: result.DurationMS,
	})
}

func (h *ExportHandler) respondError(c *gin.Context, err error) {
	logger.Error(c.Request.Context(), "export request failed", err,
		"path", c.Request.URL.Path,
	)

	// 非 AppError 的意外失败统一兜底，不向客户端透出内部细节
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		c.JSON(appErr.HTTPStatus, dto.NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errors.ErrInternalError.Message))
}
