package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ancre-export-svc/internal/config"
)

func newTestFetcher(maxBytes int64) *Fetcher {
	return NewFetcher(&config.AssetsConfig{
		FetchTimeout: 5 * time.Second,
		CacheTTL:     time.Minute,
		MaxBytes:     maxBytes,
	})
}

func TestFetch_ReturnsBytesAndMime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-payload"))
	}))
	defer srv.Close()

	data, mime, err := newTestFetcher(1 << 20).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(data) != "png-payload" {
		t.Errorf("data = %q", data)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q", mime)
	}
}

func TestFetch_SecondHitServedFromCache(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte("once"))
	}))
	defer srv.Close()

	f := newTestFetcher(1 << 20)
	if _, _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Errorf("origin hits = %d, want 1", got)
	}
}

func TestFetch_ConcurrentMissesCollapseToOneDownload(t *testing.T) {
	var hits int64
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		<-release
		w.Write([]byte("shared"))
	}))
	defer srv.Close()

	f := newTestFetcher(1 << 20)
	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.Fetch(context.Background(), srv.URL)
		}(i)
	}
	// 等几个并发未命中都挂在同一航班上再放行源站
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Errorf("origin hits = %d, want 1", got)
	}
}

func TestFetch_OversizedAssetRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	if _, _, err := newTestFetcher(32).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestFetch_ExactLimitAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 32))
	}))
	defer srv.Close()

	data, _, err := newTestFetcher(32).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("asset at exactly the limit must pass: %v", err)
	}
	if len(data) != 32 {
		t.Errorf("len = %d", len(data))
	}
}

func TestFetch_Non200Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, _, err := newTestFetcher(1 << 20).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
