package export

import (
	"context"
	"fmt"
	"testing"

	"ancre-export-svc/internal/domain/deck"
)

func newTestService(store ArtifactStore) (*Service, *fakeBuilder) {
	b := &fakeBuilder{payload: []byte("pptx-bytes")}
	factory := func(page deck.PageSize, props DocumentProperties) DeckBuilder {
		return b
	}
	fetcher := &fakeFetcher{data: []byte("img"), mime: "image/png"}
	svc := NewService(factory, NewConverter(NewRenderer(fetcher)), NewPublisher(store), "Ancre")
	return svc, b
}

func TestExport_EndToEnd(t *testing.T) {
	store := &fakeStore{}
	svc, b := newTestService(store)

	req := &deck.ExportRequest{
		SchemaVersion:  2,
		TenantID:       "acme",
		PresentationID: "deck-1",
		ExportID:       "exp-1",
		Slides: []deck.ResolvedSlide{
			{Position: 2, Boxes: []deck.ResolvedBox{textBox(`{"text":"second"}`)}},
			{Position: 1, Boxes: []deck.ResolvedBox{textBox(`{"text":"first"}`)}},
		},
	}

	result, err := svc.Export(context.Background(), req)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(b.slides) != 2 {
		t.Fatalf("expected 2 slides rendered, got %d", len(b.slides))
	}
	if got := b.slides[0].texts[0].paras[0].Runs[0].Text; got != "first" {
		t.Errorf("first rendered slide text = %q, want position order", got)
	}
	if len(store.puts) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(store.puts))
	}
	if result.FileSize != int64(len("pptx-bytes")) {
		t.Errorf("file size = %d", result.FileSize)
	}
	if result.S3Key != store.puts[0].key {
		t.Errorf("result key %q != stored key %q", result.S3Key, store.puts[0].key)
	}
	if result.DurationMS < 0 {
		t.Errorf("duration = %d", result.DurationMS)
	}
}

func TestExport_DegradedBoxesDoNotFailRequest(t *testing.T) {
	store := &fakeStore{}
	svc, b := newTestService(store)

	req := &deck.ExportRequest{
		TenantID:       "acme",
		PresentationID: "deck-1",
		ExportID:       "exp-2",
		Slides: []deck.ResolvedSlide{{
			Position: 1,
			Boxes: []deck.ResolvedBox{
				{X: 0, Y: 0, W: 1, H: 1, NodeType: deck.NodeImage, Content: rawJSON(`{"asset_id":"gone"}`)},
				textBox(`{"text":"survives"}`),
			},
		}},
	}

	result, err := svc.Export(context.Background(), req)
	if err != nil {
		t.Fatalf("degraded boxes must not fail the export: %v", err)
	}
	if result.S3Key == "" {
		t.Fatal("expected artifact key")
	}
	if len(b.slides[0].images) != 0 {
		t.Error("unresolvable image must not be inserted")
	}
}

func TestExport_UploadFailureFailsRequest(t *testing.T) {
	store := &fakeStore{putErr: fmt.Errorf("bucket gone")}
	svc, _ := newTestService(store)

	req := &deck.ExportRequest{
		TenantID: "acme",
		Slides:   []deck.ResolvedSlide{{Position: 1}},
	}
	if _, err := svc.Export(context.Background(), req); err == nil {
		t.Fatal("upload failure must fail the whole request")
	}
}
