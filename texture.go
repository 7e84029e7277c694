package easel

import "github.com/gogpu/gputypes"

// Texture is a handle to texture data. The CPU-side pixmap is always
// available; GPU residency is managed by the active backend through the
// render package's device integration.
type Texture struct {
	width  int
	height int
	format gputypes.TextureFormat
	pixmap *Pixmap
}

// NewTexture creates an allocated texture with the given dimensions and
// RGBA8 format.
func NewTexture(width, height int) *Texture {
	t := &Texture{}
	t.Allocate(width, height, gputypes.TextureFormatRGBA8Unorm)
	return t
}

// Allocate sizes the texture, discarding previous contents.
func (t *Texture) Allocate(width, height int, format gputypes.TextureFormat) {
	t.width = width
	t.height = height
	t.format = format
	t.pixmap = NewPixmap(width, height)
}

// IsAllocated reports whether the texture holds storage.
func (t *Texture) IsAllocated() bool {
	return t.pixmap != nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() float64 { return float64(t.width) }

// Height returns the texture height in pixels.
func (t *Texture) Height() float64 { return float64(t.height) }

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// LoadPixmap replaces the texture contents with the pixmap.
func (t *Texture) LoadPixmap(pm *Pixmap) {
	t.width = pm.Width()
	t.height = pm.Height()
	t.format = gputypes.TextureFormatRGBA8Unorm
	t.pixmap = pm
}

// Pixmap returns the CPU-side pixel data, or nil if unallocated.
func (t *Texture) Pixmap() *Pixmap { return t.pixmap }

// Draw renders the texture through r. Implements [Drawable].
func (t *Texture) Draw(r Renderer, x, y, w, h float64) {
	if t == nil || t.pixmap == nil {
		return
	}
	if glr, ok := r.(GLRenderer); ok {
		glr.DrawTexture(t, x, y, 0, w, h, 0, 0, t.Width(), t.Height())
		return
	}
	r.DrawPixmap(t.pixmap, x, y, 0, w, h, 0, 0, t.Width(), t.Height())
}

// HasTexture is the capability contract for texture-bearing objects.
type HasTexture interface {
	// GetTexture returns the object's texture, or nil if the object
	// cannot provide one (an optional-capability sentinel, not an
	// error).
	GetTexture() *Texture

	// SetUseTexture enables or disables internal texture use.
	SetUseTexture(use bool)

	// IsUsingTexture reports whether an internal texture is in use.
	IsUsingTexture() bool
}

// HasTexturePlanes extends HasTexture for planar formats carrying one
// texture per plane.
type HasTexturePlanes interface {
	HasTexture

	// GetTexturePlanes returns the per-plane textures.
	GetTexturePlanes() []*Texture
}
