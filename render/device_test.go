package render

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/easelgl/easel"
)

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}
	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Fatal("null handle exposed a device")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("SurfaceFormat = %v", got)
	}
}

func TestDefaultTextureDescriptor(t *testing.T) {
	d := DefaultTextureDescriptor(640, 480)
	if d.Width != 640 || d.Height != 480 {
		t.Fatalf("size = %dx%d", d.Width, d.Height)
	}
	if d.MipLevelCount != 1 || d.SampleCount != 1 {
		t.Fatalf("mip/sample = %d/%d, want 1/1", d.MipLevelCount, d.SampleCount)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Fatalf("format = %v", d.Format)
	}
	if d.Usage&TextureUsageTextureBinding == 0 || d.Usage&TextureUsageCopyDst == 0 {
		t.Fatalf("usage = %v, want sampleable copy destination", d.Usage)
	}
	if d.Usage&TextureUsageRenderAttachment != 0 {
		t.Fatal("default descriptor should not be a render attachment")
	}
}

func TestPixmapTarget(t *testing.T) {
	tgt := NewPixmapTarget(8, 4)
	if tgt.Width() != 8 || tgt.Height() != 4 {
		t.Fatalf("size = %dx%d", tgt.Width(), tgt.Height())
	}
	if tgt.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Fatalf("format = %v", tgt.Format())
	}
	if got := len(tgt.Pixels()); got != 8*4*4 {
		t.Fatalf("pixel bytes = %d, want %d", got, 8*4*4)
	}
	if tgt.Device() != nil {
		t.Fatal("pixmap target claims a device")
	}

	pm := easel.NewPixmap(2, 2)
	pm.SetPixel(0, 0, easel.ColorRed)
	wrapped := NewPixmapTargetFrom(pm)
	if wrapped.Pixmap() != pm {
		t.Fatal("wrapped pixmap not returned")
	}
	if wrapped.Pixels()[0] != 255 {
		t.Fatal("wrapped pixels not shared")
	}
}

func TestSurfaceTarget(t *testing.T) {
	tgt := NewSurfaceTarget(NullDeviceHandle{}, 800, 600)
	if tgt.Width() != 800 || tgt.Height() != 600 {
		t.Fatalf("size = %dx%d", tgt.Width(), tgt.Height())
	}
	if tgt.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("format = %v", tgt.Format())
	}
	if tgt.Pixels() != nil {
		t.Fatal("surface target exposed CPU pixels")
	}
	if tgt.Device() == nil {
		t.Fatal("surface target lost its device handle")
	}

	// a nil handle still yields a usable default format
	nilTgt := NewSurfaceTarget(nil, 1, 1)
	if nilTgt.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("nil-handle format = %v", nilTgt.Format())
	}

	var _ Target = tgt
	var _ Target = NewPixmapTarget(1, 1)
}
