package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ancre-export-svc/internal/application/export"
	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeExportService records calls and serves a canned result.
type fakeExportService struct {
	calls  int
	result *export.Result
	err    error
}

func (f *fakeExportService) Export(ctx context.Context, req *deck.ExportRequest) (*export.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func postExport(t *testing.T, h *ExportHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/export", h.Export)

	req := httptest.NewRequest(http.MethodPost, "/export", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error body %q: %v", rr.Body.String(), err)
	}
	return resp.Error
}

func validRequestBody(version int) string {
	return fmt.Sprintf(`{
		"schema_version": %d,
		"presentation_id": "p1",
		"tenant_id": "t1",
		"export_id": "e1",
		"slides": [{"id": "s1", "position": 1, "boxes": []}]
	}`, version)
}

func TestExport_Success(t *testing.T) {
	svc := &fakeExportService{result: &export.Result{
		S3Key:      "exports/t1/p1/e1_2026-01-01T00-00-00-000Z.pptx",
		FileSize:   2048,
		DurationMS: 37,
	}}
	h := NewExportHandler(svc, 2)

	rr := postExport(t, h, validRequestBody(2))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		S3Key      string `json:"s3_key"`
		FileSize   int64  `json:"file_size"`
		DurationMS int64  `json:"duration_ms"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.S3Key != svc.result.S3Key || resp.FileSize != 2048 || resp.DurationMS != 37 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestExport_UnsupportedSchemaVersion(t *testing.T) {
	svc := &fakeExportService{}
	h := NewExportHandler(svc, 2)

	rr := postExport(t, h, validRequestBody(1))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	want := "Unsupported schema_version: 1. Expected 2."
	if got := errorBody(t, rr); got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if svc.calls != 0 {
		t.Errorf("service must not be called on schema mismatch, got %d calls", svc.calls)
	}
}

func TestExport_MissingSchemaVersionRejected(t *testing.T) {
	h := NewExportHandler(&fakeExportService{}, 2)

	rr := postExport(t, h, `{"slides":[{"id":"s1","position":1}]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	want := "Unsupported schema_version: 0. Expected 2."
	if got := errorBody(t, rr); got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestExport_NoSlides(t *testing.T) {
	svc := &fakeExportService{}
	h := NewExportHandler(svc, 2)

	rr := postExport(t, h, `{"schema_version":2,"slides":[]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := errorBody(t, rr); got != "No slides provided." {
		t.Errorf("error = %q", got)
	}
	if svc.calls != 0 {
		t.Error("service must not be called for empty slides")
	}
}

func TestExport_MalformedJSON(t *testing.T) {
	h := NewExportHandler(&fakeExportService{}, 2)

	rr := postExport(t, h, `{"schema_version": 2,`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := errorBody(t, rr); got != "Invalid request body." {
		t.Errorf("error = %q", got)
	}
}

func TestExport_ServiceFailureMapsAppError(t *testing.T) {
	svc := &fakeExportService{
		err: errors.New(errors.CodeUploadFailed, "failed to upload artifact"),
	}
	h := NewExportHandler(svc, 2)

	rr := postExport(t, h, validRequestBody(2))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if got := errorBody(t, rr); got != "failed to upload artifact" {
		t.Errorf("error = %q", got)
	}
}

func TestExport_OpaqueFailureGetsGenericMessage(t *testing.T) {
	svc := &fakeExportService{err: fmt.Errorf("raw infrastructure noise")}
	h := NewExportHandler(svc, 2)

	rr := postExport(t, h, validRequestBody(2))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	got := errorBody(t, rr)
	if strings.Contains(got, "noise") {
		t.Errorf("internal details leaked: %q", got)
	}
	if got != "Internal export error" {
		t.Errorf("error message = %q, want Internal export error", got)
	}
}
