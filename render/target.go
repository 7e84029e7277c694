package render

import (
	"github.com/gogpu/gputypes"

	"github.com/easelgl/easel"
)

// Target defines where a GPU-capable backend presents its output.
// CPU-only targets return nil from device accessors; device-only
// targets return nil pixels.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the target pixel format.
	Format() gputypes.TextureFormat

	// Pixels returns direct RGBA pixel access, or nil for device-only
	// targets.
	Pixels() []byte

	// Device returns the handle of the device owning the target, or
	// nil for CPU targets.
	Device() DeviceHandle
}

// PixmapTarget is a CPU-backed target wrapping an easel Pixmap. It is
// the default target for headless rendering.
type PixmapTarget struct {
	pm *easel.Pixmap
}

var _ Target = (*PixmapTarget)(nil)

// NewPixmapTarget creates a CPU-backed target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{pm: easel.NewPixmap(width, height)}
}

// NewPixmapTargetFrom wraps an existing pixmap without copying.
func NewPixmapTargetFrom(pm *easel.Pixmap) *PixmapTarget {
	return &PixmapTarget{pm: pm}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.pm.Width() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.pm.Height() }

// Format returns RGBA8.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns the pixmap's backing data.
func (t *PixmapTarget) Pixels() []byte { return t.pm.Data() }

// Device returns nil; the target is CPU-only.
func (t *PixmapTarget) Device() DeviceHandle { return nil }

// Pixmap returns the wrapped pixmap.
func (t *PixmapTarget) Pixmap() *easel.Pixmap { return t.pm }

// SurfaceTarget presents into a surface owned by a host device. The
// host passes its DeviceHandle; a GL backend resolves the surface
// through it at submit time.
type SurfaceTarget struct {
	handle DeviceHandle
	width  int
	height int
	format gputypes.TextureFormat
}

var _ Target = (*SurfaceTarget)(nil)

// NewSurfaceTarget creates a device surface target.
func NewSurfaceTarget(handle DeviceHandle, width, height int) *SurfaceTarget {
	format := gputypes.TextureFormatBGRA8Unorm
	if handle != nil {
		format = handle.SurfaceFormat()
	}
	return &SurfaceTarget{handle: handle, width: width, height: height, format: format}
}

// Width returns the surface width in pixels.
func (t *SurfaceTarget) Width() int { return t.width }

// Height returns the surface height in pixels.
func (t *SurfaceTarget) Height() int { return t.height }

// Format returns the host's surface format.
func (t *SurfaceTarget) Format() gputypes.TextureFormat { return t.format }

// Pixels returns nil; the target is device-only.
func (t *SurfaceTarget) Pixels() []byte { return nil }

// Device returns the owning device handle.
func (t *SurfaceTarget) Device() DeviceHandle { return t.handle }
