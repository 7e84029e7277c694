package easel

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/easelgl/easel/cache"
)

// ClipSource opens named clips for a Player. Implementations decode
// whatever container they understand; the Player only consumes the
// Clip interface.
type ClipSource interface {
	// Open decodes the named clip. It returns ErrClipNotFound (possibly
	// wrapped) when the name does not resolve to a clip.
	Open(name string) (Clip, error)
}

// Clip is an opened, seekable frame sequence.
type Clip interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int

	// PixelFormat returns the decoded frame format.
	PixelFormat() PixelFormat

	// NumFrames returns the frame count, always at least 1.
	NumFrames() int

	// FrameRate returns the playback rate in frames per second.
	FrameRate() float64

	// FrameAt decodes the zero-based frame. Out-of-range indices are
	// clamped.
	FrameAt(index int) *Pixels[uint8]

	// Close releases decoder resources.
	Close() error
}

// MemoryClip is a Clip backed by pre-decoded frames, used for
// generated content and in tests.
type MemoryClip struct {
	frames    []*Pixels[uint8]
	width     int
	height    int
	frameRate float64
	format    PixelFormat
}

// NewMemoryClip creates a clip from decoded frames. frames must be
// non-empty and uniformly sized.
func NewMemoryClip(frames []*Pixels[uint8], frameRate float64) (*MemoryClip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("memory clip: no frames")
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	first := frames[0]
	for i, f := range frames {
		if f.Width() != first.Width() || f.Height() != first.Height() {
			return nil, fmt.Errorf("memory clip: frame %d is %dx%d, want %dx%d",
				i, f.Width(), f.Height(), first.Width(), first.Height())
		}
	}
	return &MemoryClip{
		frames:    frames,
		width:     first.Width(),
		height:    first.Height(),
		frameRate: frameRate,
		format:    first.Format(),
	}, nil
}

func (c *MemoryClip) Width() int               { return c.width }
func (c *MemoryClip) Height() int              { return c.height }
func (c *MemoryClip) PixelFormat() PixelFormat { return c.format }
func (c *MemoryClip) NumFrames() int           { return len(c.frames) }
func (c *MemoryClip) FrameRate() float64       { return c.frameRate }
func (c *MemoryClip) Close() error             { return nil }

func (c *MemoryClip) FrameAt(index int) *Pixels[uint8] {
	if index < 0 {
		index = 0
	}
	if index >= len(c.frames) {
		index = len(c.frames) - 1
	}
	return c.frames[index]
}

// ImageSequenceSource opens clips stored as directories of numbered
// png or jpeg frames. The directory name is the clip name; frames play
// in lexical order.
type ImageSequenceSource struct {
	// Root is prepended to clip names. Empty means names are used as
	// paths directly.
	Root string

	// FrameRate applies to every opened clip. Zero means 30.
	FrameRate float64

	// MaxWidth, when positive, downscales frames wider than this,
	// preserving aspect ratio.
	MaxWidth int

	// Lazy defers frame decoding until playback reaches a frame.
	// Decoded frames are kept in an LRU cache of CacheFrames entries,
	// bounding memory on long sequences.
	Lazy bool

	// CacheFrames is the decoded-frame cache size per shard in lazy
	// mode. Zero selects a default.
	CacheFrames int
}

var _ ClipSource = (*ImageSequenceSource)(nil)

// Open reads and decodes every frame in the named directory.
func (s *ImageSequenceSource) Open(name string) (Clip, error) {
	dir := name
	if s.Root != "" {
		dir = filepath.Join(s.Root, name)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrClipNotFound, name, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s: no image frames", ErrClipNotFound, name)
	}
	sort.Strings(files)

	if s.Lazy {
		first, err := s.decodeFrame(files[0])
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", name, err)
		}
		return &lazySequenceClip{
			source:    s,
			files:     files,
			width:     first.Width(),
			height:    first.Height(),
			frameRate: s.frameRate(),
			frames:    cache.NewSharded[int, *Pixels[uint8]](s.CacheFrames, cache.IntHasher),
			first:     first,
		}, nil
	}

	frames := make([]*Pixels[uint8], 0, len(files))
	for _, path := range files {
		px, err := s.decodeFrame(path)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", name, err)
		}
		frames = append(frames, px)
	}
	return NewMemoryClip(frames, s.FrameRate)
}

func (s *ImageSequenceSource) decodeFrame(path string) (*Pixels[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filepath.Base(path), err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if s.MaxWidth > 0 && w > s.MaxWidth {
		h = h * s.MaxWidth / w
		w = s.MaxWidth
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)
		img = scaled
		b = scaled.Bounds()
	}

	px := NewPixels[uint8](w, h, PixelFormatRGBA)
	data := px.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			data[i] = uint8(r >> 8)
			data[i+1] = uint8(g >> 8)
			data[i+2] = uint8(bl >> 8)
			data[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return px, nil
}

func (s *ImageSequenceSource) frameRate() float64 {
	if s.FrameRate <= 0 {
		return 30
	}
	return s.FrameRate
}

// lazySequenceClip decodes frames on demand, keeping recent ones in an
// LRU cache. Decode failures mid-clip repeat the last good frame.
type lazySequenceClip struct {
	source    *ImageSequenceSource
	files     []string
	width     int
	height    int
	frameRate float64
	frames    *cache.Sharded[int, *Pixels[uint8]]
	first     *Pixels[uint8]
}

func (c *lazySequenceClip) Width() int               { return c.width }
func (c *lazySequenceClip) Height() int              { return c.height }
func (c *lazySequenceClip) PixelFormat() PixelFormat { return PixelFormatRGBA }
func (c *lazySequenceClip) NumFrames() int           { return len(c.files) }
func (c *lazySequenceClip) FrameRate() float64       { return c.frameRate }

func (c *lazySequenceClip) FrameAt(index int) *Pixels[uint8] {
	if index < 0 {
		index = 0
	}
	if index >= len(c.files) {
		index = len(c.files) - 1
	}
	if index == 0 {
		return c.first
	}
	return c.frames.GetOrCreate(index, func() *Pixels[uint8] {
		px, err := c.source.decodeFrame(c.files[index])
		if err != nil {
			Logger().Error("easel: clip frame decode failed",
				"file", c.files[index], "err", err)
			return c.first
		}
		return px
	})
}

func (c *lazySequenceClip) Close() error {
	c.frames.Clear()
	return nil
}
