package easel

import "github.com/gogpu/gputypes"

// Fbo is an offscreen draw target with one or more color attachments.
// The root package keeps attachments as pixmaps with texture handles;
// backends with device memory mirror them there.
type Fbo struct {
	width  int
	height int
	format gputypes.TextureFormat

	attachments []*Texture
}

// NewFbo creates an unallocated framebuffer handle.
func NewFbo() *Fbo {
	return &Fbo{}
}

// Allocate sizes the framebuffer and creates numAttachments color
// attachments. Previous attachments are discarded.
func (f *Fbo) Allocate(width, height int, format gputypes.TextureFormat, numAttachments int) {
	if numAttachments < 1 {
		numAttachments = 1
	}
	f.width = width
	f.height = height
	f.format = format
	f.attachments = make([]*Texture, numAttachments)
	for i := range f.attachments {
		t := NewTexture(width, height)
		t.Allocate(width, height, format)
		f.attachments[i] = t
	}
}

// IsAllocated reports whether Allocate has been called.
func (f *Fbo) IsAllocated() bool { return len(f.attachments) > 0 }

// Width returns the framebuffer width in pixels.
func (f *Fbo) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Fbo) Height() int { return f.height }

// Format returns the attachment texture format.
func (f *Fbo) Format() gputypes.TextureFormat { return f.format }

// NumAttachments returns the color attachment count.
func (f *Fbo) NumAttachments() int { return len(f.attachments) }

// Attachment returns the texture backing the given color attachment,
// or nil when out of range.
func (f *Fbo) Attachment(point int) *Texture {
	if point < 0 || point >= len(f.attachments) {
		return nil
	}
	return f.attachments[point]
}

// Texture returns the first color attachment.
func (f *Fbo) Texture() *Texture { return f.Attachment(0) }
