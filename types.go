package easel

// MatrixMode selects which matrix stack transform calls operate on.
type MatrixMode int

const (
	// MatrixModelView targets the model-view matrix stack.
	MatrixModelView MatrixMode = iota

	// MatrixProjection targets the projection matrix stack.
	MatrixProjection

	// MatrixTexture targets the texture matrix stack.
	MatrixTexture
)

const numMatrixModes = 3

// Orientation is the logical rotation applied between authored content
// space and the physical output surface.
type Orientation int

const (
	// OrientationDefault renders content without rotation.
	OrientationDefault Orientation = iota

	// Orientation180 renders content rotated by 180 degrees.
	Orientation180

	// Orientation90Left renders content rotated 90 degrees
	// counter-clockwise.
	Orientation90Left

	// Orientation90Right renders content rotated 90 degrees clockwise.
	Orientation90Right
)

// Handedness is the coordinate handedness of a renderer. It is a
// renderer-wide setting, not part of the stacked state.
type Handedness int

const (
	// LeftHanded: positive z points into the screen, positive rotation
	// is clockwise about the axis of rotation.
	LeftHanded Handedness = iota

	// RightHanded: negative z points into the screen, positive rotation
	// is counter-clockwise about the axis of rotation.
	RightHanded
)

// RectMode controls whether rectangle coordinates address the corner or
// the center of the rectangle.
type RectMode int

const (
	// RectCorner interprets (x, y) as the rectangle's top-left corner.
	RectCorner RectMode = iota

	// RectCenter interprets (x, y) as the rectangle's center.
	RectCenter
)

// FillMode controls whether shapes are drawn filled or as outlines.
type FillMode int

const (
	// Outline draws shape outlines only.
	Outline FillMode = iota

	// Filled draws shapes filled with the current color.
	Filled
)

// BlendMode selects how drawn fragments combine with the target.
type BlendMode int

const (
	// BlendDisabled writes fragments without blending.
	BlendDisabled BlendMode = iota

	// BlendAlpha blends using source alpha. The default.
	BlendAlpha

	// BlendAdd adds source to destination.
	BlendAdd

	// BlendSubtract subtracts source from destination.
	BlendSubtract

	// BlendMultiply multiplies source with destination.
	BlendMultiply

	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
)

// WindingMode selects the polygon fill rule used when tessellating
// self-intersecting outlines.
type WindingMode int

const (
	// WindingOdd fills regions crossed an odd number of times.
	WindingOdd WindingMode = iota

	// WindingNonzero fills regions with a non-zero winding number.
	WindingNonzero

	// WindingPositive fills regions with a positive winding number.
	WindingPositive

	// WindingNegative fills regions with a negative winding number.
	WindingNegative

	// WindingAbsGeqTwo fills regions with |winding| >= 2.
	WindingAbsGeqTwo
)

// RenderMode controls how meshes are rasterized.
type RenderMode int

const (
	// RenderPoints draws only mesh vertices.
	RenderPoints RenderMode = iota

	// RenderWireframe draws mesh edges.
	RenderWireframe

	// RenderFill draws filled mesh faces.
	RenderFill
)

// BitmapTextMode controls how bitmap text is positioned when drawn.
type BitmapTextMode int

const (
	// BitmapTextScreen positions text in screen space, ignoring the
	// model-view transform.
	BitmapTextScreen BitmapTextMode = iota

	// BitmapTextModel positions text in model space, following the
	// current transform.
	BitmapTextModel

	// BitmapTextModelBillboard positions text in model space but keeps
	// glyphs facing the viewer.
	BitmapTextModelBillboard
)

// PixelFormat describes the channel layout of a pixel buffer.
type PixelFormat int

const (
	// PixelFormatUnknown is the zero value, reported before a source is
	// initialized.
	PixelFormatUnknown PixelFormat = iota

	// PixelFormatGray is single-channel luminance.
	PixelFormatGray

	// PixelFormatRGB is packed 3-channel red/green/blue.
	PixelFormatRGB

	// PixelFormatRGBA is packed 4-channel red/green/blue/alpha.
	PixelFormatRGBA

	// PixelFormatBGRA is packed 4-channel blue/green/red/alpha.
	PixelFormatBGRA

	// PixelFormatI420 is planar YUV 4:2:0.
	PixelFormatI420

	// PixelFormatNV12 is semi-planar YUV 4:2:0.
	PixelFormatNV12
)

// String returns the pixel format name.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatGray:
		return "Gray"
	case PixelFormatRGB:
		return "RGB"
	case PixelFormatRGBA:
		return "RGBA"
	case PixelFormatBGRA:
		return "BGRA"
	case PixelFormatI420:
		return "I420"
	case PixelFormatNV12:
		return "NV12"
	default:
		return "Unknown"
	}
}

// LoopMode controls playhead behavior at clip boundaries.
type LoopMode int

const (
	// LoopNone halts advancement at the boundary and marks the movie
	// done.
	LoopNone LoopMode = iota

	// LoopNormal wraps the playhead from end to start (or start to end
	// when playing backward).
	LoopNormal

	// LoopPalindrome reverses the effective playback direction at each
	// boundary, keeping the user-set speed magnitude.
	LoopPalindrome
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopNormal:
		return "Normal"
	case LoopPalindrome:
		return "Palindrome"
	default:
		return "None"
	}
}
