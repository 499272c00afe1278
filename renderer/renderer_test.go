package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/scene"
)

func TestRenderProducesFrameOfRequestedSize(t *testing.T) {
	opts := Options{
		FrameW:          40,
		FrameH:          30,
		SamplesPerPixel: 2,
		Workers:         2,
		Seed:            1,
		LookFrom:        [3]float32{0, 0, 1},
		LookAt:          [3]float32{0, 0, -1},
		VFov:            90,
	}
	r, err := New(opts, log.New("renderer_test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sc := scene.Default(log.New("renderer_test"))
	img, err := r.Render(sc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("expected a 40x30 frame; got %dx%d", b.Dx(), b.Dy())
	}

	stats := r.Stats()
	if len(stats.Rows) == 0 {
		t.Fatalf("expected per-job row stats to be recorded")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("encoded frame is not a valid PNG: %v", err)
	}
}

func TestRenderIsDeterministicForAFixedSeed(t *testing.T) {
	opts := Options{
		FrameW:          20,
		FrameH:          15,
		SamplesPerPixel: 4,
		Seed:            7,
		LookFrom:        [3]float32{0, 0, 1},
		LookAt:          [3]float32{0, 0, -1},
		VFov:            90,
	}

	render := func(workers uint32) []byte {
		o := opts
		o.Workers = workers
		r, err := New(o, log.New("renderer_test"))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		sc := scene.Default(log.New("renderer_test"))
		img, err := r.Render(sc)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		return img.Pix
	}

	a := render(1)
	b := render(4)

	if len(a) != len(b) {
		t.Fatalf("pixel buffers differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs between a 1-worker and 4-worker render with the same seed: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(Options{FrameW: 0, FrameH: 10, SamplesPerPixel: 1}, log.New("renderer_test")); err != ErrInvalidFrameSize {
		t.Fatalf("expected ErrInvalidFrameSize; got %v", err)
	}
	if _, err := New(Options{FrameW: 10, FrameH: 10, SamplesPerPixel: 0}, log.New("renderer_test")); err != ErrInvalidSampleCount {
		t.Fatalf("expected ErrInvalidSampleCount; got %v", err)
	}
}

func TestRenderRejectsNilScene(t *testing.T) {
	r, err := New(Options{FrameW: 10, FrameH: 10, SamplesPerPixel: 1}, log.New("renderer_test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Render(nil); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
}
