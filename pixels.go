package easel

// PixelChannel constrains the per-channel sample types a pixel buffer
// can carry: 8-bit, 16-bit, or float samples.
type PixelChannel interface {
	~uint8 | ~uint16 | ~float32
}

// Pixels is a typed pixel buffer. The zero value is unallocated;
// Allocate or one of the constructors must be called before use.
type Pixels[T PixelChannel] struct {
	width    int
	height   int
	channels int
	format   PixelFormat
	data     []T
}

// NewPixels creates an allocated pixel buffer with the given dimensions
// and format.
func NewPixels[T PixelChannel](width, height int, format PixelFormat) *Pixels[T] {
	p := &Pixels[T]{}
	p.Allocate(width, height, format)
	return p
}

// Allocate sizes the buffer for the given dimensions and format,
// discarding any previous contents.
func (p *Pixels[T]) Allocate(width, height int, format PixelFormat) {
	p.width = width
	p.height = height
	p.format = format
	p.channels = format.channels()
	p.data = make([]T, width*height*p.channels)
}

// IsAllocated reports whether the buffer holds pixel storage.
func (p *Pixels[T]) IsAllocated() bool {
	return len(p.data) > 0
}

// Width returns the buffer width in pixels.
func (p *Pixels[T]) Width() int { return p.width }

// Height returns the buffer height in pixels.
func (p *Pixels[T]) Height() int { return p.height }

// NumChannels returns the number of samples per pixel.
func (p *Pixels[T]) NumChannels() int { return p.channels }

// Format returns the buffer's pixel format.
func (p *Pixels[T]) Format() PixelFormat { return p.format }

// Data returns the raw sample slice.
func (p *Pixels[T]) Data() []T { return p.data }

// At returns the sample for channel ch of the pixel at (x, y).
// Out-of-range coordinates return the zero sample.
func (p *Pixels[T]) At(x, y, ch int) T {
	var zero T
	if x < 0 || x >= p.width || y < 0 || y >= p.height || ch < 0 || ch >= p.channels {
		return zero
	}
	return p.data[(y*p.width+x)*p.channels+ch]
}

// Set assigns the sample for channel ch of the pixel at (x, y).
// Out-of-range coordinates are ignored.
func (p *Pixels[T]) Set(x, y, ch int, v T) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || ch < 0 || ch >= p.channels {
		return
	}
	p.data[(y*p.width+x)*p.channels+ch] = v
}

// ToPixmap converts the buffer to an 8-bit RGBA pixmap, expanding gray
// and RGB layouts and scaling 16-bit and float samples.
func (p *Pixels[T]) ToPixmap() *Pixmap {
	pm := NewPixmap(p.width, p.height)
	if !p.IsAllocated() {
		return pm
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			var c Color
			switch p.channels {
			case 1:
				v := sampleToFloat(p.At(x, y, 0))
				c = Color{R: v, G: v, B: v, A: 1}
			case 3:
				c = Color{
					R: sampleToFloat(p.At(x, y, 0)),
					G: sampleToFloat(p.At(x, y, 1)),
					B: sampleToFloat(p.At(x, y, 2)),
					A: 1,
				}
			default:
				c = Color{
					R: sampleToFloat(p.At(x, y, 0)),
					G: sampleToFloat(p.At(x, y, 1)),
					B: sampleToFloat(p.At(x, y, 2)),
					A: sampleToFloat(p.At(x, y, 3)),
				}
			}
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}

// sampleToFloat normalizes a channel sample to [0, 1].
func sampleToFloat[T PixelChannel](v T) float64 {
	switch s := any(v).(type) {
	case uint8:
		return float64(s) / 255
	case uint16:
		return float64(s) / 65535
	case float32:
		return clamp01(float64(s))
	}
	return 0
}

// channels returns the samples per pixel for packed formats. Planar
// formats report their luma plane layout.
func (f PixelFormat) channels() int {
	switch f {
	case PixelFormatGray, PixelFormatI420, PixelFormatNV12:
		return 1
	case PixelFormatRGB:
		return 3
	case PixelFormatRGBA, PixelFormatBGRA:
		return 4
	default:
		return 4
	}
}

// PixelSource is the capability contract for objects exposing a typed
// pixel buffer. The renderer consumes three concrete instantiations
// (byte, float, and 16-bit) as distinct draw entry points rather than
// one generic call.
type PixelSource[T PixelChannel] interface {
	GetPixels() *Pixels[T]
}

// Image is the capability composition for a drawable, texture-bearing
// pixel source of one channel depth.
type Image[T PixelChannel] interface {
	Drawable
	HasTexture
	PixelSource[T]
}
