package export

import (
	"context"
	"fmt"
)

// fakeBuilder records slides and serialized output for assertions.
type fakeBuilder struct {
	slides       []*fakeSlide
	serializeErr error
	payload      []byte
}

func (b *fakeBuilder) AddSlide(bgHex string) SlideWriter {
	s := &fakeSlide{bg: bgHex}
	b.slides = append(b.slides, s)
	return s
}

func (b *fakeBuilder) Serialize() ([]byte, error) {
	if b.serializeErr != nil {
		return nil, b.serializeErr
	}
	if b.payload != nil {
		return b.payload, nil
	}
	return []byte("pptx"), nil
}

type textOp struct {
	rect  Rect
	paras []Paragraph
}

type imageOp struct {
	rect Rect
	data []byte
	mime string
}

type shapeOp struct {
	rect   Rect
	fill   string
	border string
}

// opKind entries keep the relative draw order across primitive types.
type fakeSlide struct {
	bg       string
	texts    []textOp
	images   []imageOp
	shapes   []shapeOp
	order    []string
	imageErr error
}

func (s *fakeSlide) AddText(r Rect, paras []Paragraph) {
	s.texts = append(s.texts, textOp{rect: r, paras: paras})
	s.order = append(s.order, "text")
}

func (s *fakeSlide) AddImage(r Rect, data []byte, mime string) error {
	if s.imageErr != nil {
		return s.imageErr
	}
	s.images = append(s.images, imageOp{rect: r, data: data, mime: mime})
	s.order = append(s.order, "image")
	return nil
}

func (s *fakeSlide) AddShape(r Rect, fill, border string) {
	s.shapes = append(s.shapes, shapeOp{rect: r, fill: fill, border: border})
	s.order = append(s.order, "shape")
}

// fakeFetcher serves canned bytes or fails every fetch.
type fakeFetcher struct {
	data    []byte
	mime    string
	err     error
	fetched []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	f.fetched = append(f.fetched, url)
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, f.mime, nil
}

// fakeStore records uploads.
type fakeStore struct {
	puts    []fakePut
	putErr  error
	healthy bool
}

type fakePut struct {
	key         string
	body        []byte
	contentType string
	disposition string
}

func (s *fakeStore) Put(ctx context.Context, key string, body []byte, contentType, contentDisposition string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.puts = append(s.puts, fakePut{
		key:         key,
		body:        body,
		contentType: contentType,
		disposition: contentDisposition,
	})
	return nil
}

func (s *fakeStore) HealthCheck(ctx context.Context) error {
	if !s.healthy {
		return fmt.Errorf("store unavailable")
	}
	return nil
}

func rawJSON(s string) []byte {
	return []byte(s)
}

var (
	_ DeckBuilder   = (*fakeBuilder)(nil)
	_ SlideWriter   = (*fakeSlide)(nil)
	_ AssetFetcher  = (*fakeFetcher)(nil)
	_ ArtifactStore = (*fakeStore)(nil)
)
