// Package render is the integration layer between easel and GPU
// frameworks. easel receives a GPU device from the host application,
// it does not create its own: a host implementing DeviceHandle hands
// its device to a GL-style backend, which then shares textures and
// render targets with the rest of the application.
package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
// It is an alias for gpucontext.DeviceProvider, giving the interface
// an easel-specific name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device behind it. Use it
// to instantiate GPU-capable code paths in headless tests.
type NullDeviceHandle struct{}

var _ DeviceHandle = NullDeviceHandle{}

// Device returns nil.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns zero-value adapter metadata.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns the default surface format.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// TextureUsage specifies how a device texture can be used. Flags
// combine with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows use as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows use as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows sampling in a shader.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows storage binding.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows use as a render attachment.
	TextureUsageRenderAttachment
)

// TextureDescriptor describes a device texture to create.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	Width  uint32
	Height uint32

	// MipLevelCount is 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is 1 for no multisampling.
	SampleCount uint32

	Format gputypes.TextureFormat
	Usage  TextureUsage
}

// DefaultTextureDescriptor returns a descriptor for a sampleable RGBA
// texture of the given size.
func DefaultTextureDescriptor(width, height int) TextureDescriptor {
	return TextureDescriptor{
		Width:         uint32(width),
		Height:        uint32(height),
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         TextureUsageTextureBinding | TextureUsageCopyDst,
	}
}

// DeviceTexture is a GPU-resident texture created from a descriptor.
type DeviceTexture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Destroy releases the GPU resources.
	Destroy()
}
