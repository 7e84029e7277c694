package easel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewMemoryClipValidates(t *testing.T) {
	if _, err := NewMemoryClip(nil, 30); err == nil {
		t.Fatal("empty frame list accepted")
	}
	frames := []*Pixels[uint8]{
		NewPixels[uint8](4, 4, PixelFormatRGBA),
		NewPixels[uint8](8, 4, PixelFormatRGBA),
	}
	if _, err := NewMemoryClip(frames, 30); err == nil {
		t.Fatal("mixed frame sizes accepted")
	}
}

func TestNewMemoryClipDefaults(t *testing.T) {
	c, err := NewMemoryClip([]*Pixels[uint8]{NewPixels[uint8](4, 4, PixelFormatRGBA)}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.FrameRate(); got != 30 {
		t.Fatalf("FrameRate = %v, want default 30", got)
	}
}

func TestMemoryClipFrameAtClamps(t *testing.T) {
	frames := make([]*Pixels[uint8], 3)
	for i := range frames {
		frames[i] = NewPixels[uint8](2, 2, PixelFormatRGBA)
		frames[i].Set(0, 0, 0, uint8(i))
	}
	c, err := NewMemoryClip(frames, 30)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		index int
		want  uint8
	}{
		{-5, 0},
		{0, 0},
		{2, 2},
		{10, 2},
	}
	for _, tt := range tests {
		if got := c.FrameAt(tt.index).At(0, 0, 0); got != tt.want {
			t.Errorf("FrameAt(%d) marker = %d, want %d", tt.index, got, tt.want)
		}
	}
}

// writeSequence writes numbered solid-color pngs; frame index goes in
// the red channel.
func writeSequence(t *testing.T, dir string, n, w, h int) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for p := 0; p < w*h; p++ {
			img.SetRGBA(p%w, p/w, color.RGBA{R: uint8(i), A: 255})
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func TestImageSequenceSourceOpen(t *testing.T) {
	root := t.TempDir()
	writeSequence(t, filepath.Join(root, "walk"), 4, 6, 4)

	src := &ImageSequenceSource{Root: root, FrameRate: 12}
	clip, err := src.Open("walk")
	if err != nil {
		t.Fatal(err)
	}
	defer clip.Close()

	if clip.NumFrames() != 4 {
		t.Fatalf("NumFrames = %d, want 4", clip.NumFrames())
	}
	if clip.Width() != 6 || clip.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 6x4", clip.Width(), clip.Height())
	}
	if clip.FrameRate() != 12 {
		t.Fatalf("FrameRate = %v, want 12", clip.FrameRate())
	}
	for i := 0; i < 4; i++ {
		if got := clip.FrameAt(i).At(0, 0, 0); got != uint8(i) {
			t.Errorf("frame %d marker = %d", i, got)
		}
	}
}

func TestImageSequenceSourceMissing(t *testing.T) {
	src := &ImageSequenceSource{Root: t.TempDir()}
	if _, err := src.Open("nope"); !errors.Is(err, ErrClipNotFound) {
		t.Fatalf("Open error = %v, want ErrClipNotFound", err)
	}

	// an existing directory with no image files is also not a clip
	root := t.TempDir()
	dir := filepath.Join(root, "empty")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	src = &ImageSequenceSource{Root: root}
	if _, err := src.Open("empty"); !errors.Is(err, ErrClipNotFound) {
		t.Fatalf("Open error = %v, want ErrClipNotFound", err)
	}
}

func TestImageSequenceSourceDownscale(t *testing.T) {
	root := t.TempDir()
	writeSequence(t, filepath.Join(root, "big"), 1, 32, 16)

	src := &ImageSequenceSource{Root: root, MaxWidth: 8}
	clip, err := src.Open("big")
	if err != nil {
		t.Fatal(err)
	}
	defer clip.Close()
	if clip.Width() != 8 || clip.Height() != 4 {
		t.Fatalf("downscaled to %dx%d, want 8x4", clip.Width(), clip.Height())
	}
}

func TestImageSequenceSourceLazy(t *testing.T) {
	root := t.TempDir()
	writeSequence(t, filepath.Join(root, "walk"), 5, 4, 4)

	src := &ImageSequenceSource{Root: root, Lazy: true, CacheFrames: 2}
	clip, err := src.Open("walk")
	if err != nil {
		t.Fatal(err)
	}
	defer clip.Close()

	if clip.NumFrames() != 5 {
		t.Fatalf("NumFrames = %d, want 5", clip.NumFrames())
	}
	// frames decode on demand, repeat reads hit the cache
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < 5; i++ {
			px := clip.FrameAt(i)
			if px == nil {
				t.Fatalf("pass %d: frame %d missing", pass, i)
			}
			if got := px.At(0, 0, 0); got != uint8(i) {
				t.Errorf("pass %d: frame %d marker = %d", pass, i, got)
			}
		}
	}
}

func TestPlayerOverImageSequence(t *testing.T) {
	root := t.TempDir()
	writeSequence(t, filepath.Join(root, "walk"), 3, 4, 4)

	p := NewPlayer(&ImageSequenceSource{Root: root, FrameRate: 10})
	if err := p.Load("walk"); err != nil {
		t.Fatal(err)
	}
	p.Play()
	p.Update(0.15)
	if got := p.CurrentFrame(); got != 1 {
		t.Fatalf("frame = %d, want 1", got)
	}
	if got := p.GetPixels().At(0, 0, 0); got != 1 {
		t.Fatalf("decoded marker = %d, want 1", got)
	}
}
