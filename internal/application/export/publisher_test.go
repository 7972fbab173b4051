package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"ancre-export-svc/internal/domain/deck"
	"ancre-export-svc/pkg/errors"
)

func TestArtifactKey_Format(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	key := ArtifactKey("t1", "p1", "e1", ts)

	want := "exports/t1/p1/e1_2026-03-14T09-26-53-589Z.pptx"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}

func TestArtifactKey_NoColonsOrDots(t *testing.T) {
	key := ArtifactKey("tenant", "pres", "exp", time.Now().UTC())
	base := key[strings.LastIndex(key, "/")+1:]
	if strings.ContainsAny(strings.TrimSuffix(base, ".pptx"), ":.") {
		t.Fatalf("key basename %q contains characters unsafe for object keys", base)
	}
	if !regexp.MustCompile(`^exports/tenant/pres/exp_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.pptx$`).MatchString(key) {
		t.Fatalf("key %q does not match expected layout", key)
	}
}

func TestPublish_RepeatedExportsGetDistinctKeys(t *testing.T) {
	store := &fakeStore{}
	p := NewPublisher(store)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	times := []time.Time{base, base.Add(17 * time.Millisecond)}
	i := 0
	p.now = func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	req := &deck.ExportRequest{TenantID: "t", PresentationID: "p", ExportID: "e"}
	b := &fakeBuilder{payload: []byte("deck-bytes")}

	first, err := p.Publish(context.Background(), req, b)
	if err != nil {
		t.Fatalf("first publish: %v", err)
	}
	second, err := p.Publish(context.Background(), req, b)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if first.Key == second.Key {
		t.Fatalf("re-export of the same export_id produced the same key %q", first.Key)
	}
}

func TestPublish_UploadsSerializedBytes(t *testing.T) {
	store := &fakeStore{}
	p := NewPublisher(store)
	p.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	req := &deck.ExportRequest{TenantID: "acme", PresentationID: "deck-9", ExportID: "job-1"}
	b := &fakeBuilder{payload: []byte("binary-presentation")}

	result, err := p.Publish(context.Background(), req, b)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(store.puts) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(store.puts))
	}
	put := store.puts[0]
	if string(put.body) != "binary-presentation" {
		t.Errorf("uploaded body = %q", put.body)
	}
	if put.contentType != PPTXContentType {
		t.Errorf("content type = %q", put.contentType)
	}
	if !strings.HasPrefix(put.disposition, `attachment; filename="`) {
		t.Errorf("disposition = %q", put.disposition)
	}
	if result.Size != int64(len("binary-presentation")) {
		t.Errorf("result size = %d", result.Size)
	}
	if result.Key != put.key {
		t.Errorf("result key %q != uploaded key %q", result.Key, put.key)
	}
}

func TestPublish_SerializeFailureWrapped(t *testing.T) {
	p := NewPublisher(&fakeStore{})
	b := &fakeBuilder{serializeErr: fmt.Errorf("zip write failed")}

	_, err := p.Publish(context.Background(), &deck.ExportRequest{}, b)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := errors.AsAppError(err)
	if appErr == nil || appErr.Code != errors.CodeSerializeFailed {
		t.Fatalf("expected serialize failure code, got %v", err)
	}
}

func TestPublish_UploadFailureWrapped(t *testing.T) {
	store := &fakeStore{putErr: fmt.Errorf("connection reset")}
	p := NewPublisher(store)
	b := &fakeBuilder{payload: []byte("x")}

	_, err := p.Publish(context.Background(), &deck.ExportRequest{}, b)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := errors.AsAppError(err)
	if appErr == nil || appErr.Code != errors.CodeUploadFailed {
		t.Fatalf("expected upload failure code, got %v", err)
	}
}
