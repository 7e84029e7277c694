package easel

// Style is a snapshot of the renderer's drawing appearance settings.
// Styles are saved and restored as a unit by PushStyle/PopStyle.
type Style struct {
	// Color is the global drawing color.
	Color Color

	// Background is the color used to clear the target.
	Background Color

	// Fill selects filled or outline drawing.
	Fill FillMode

	// RectMode selects corner or center rectangle addressing.
	RectMode RectMode

	// LineWidth is the width used when drawing lines and outlines.
	LineWidth float64

	// Smoothing enables line smoothing on backends that support it.
	Smoothing bool

	// CircleResolution is the number of segments used for circles and
	// ellipses.
	CircleResolution int

	// CurveResolution is the number of segments used when flattening
	// curves.
	CurveResolution int

	// Winding is the polygon fill rule.
	Winding WindingMode

	// Blend is the fragment blend mode.
	Blend BlendMode

	// BitmapText is the bitmap text positioning mode.
	BitmapText BitmapTextMode
}

// DefaultStyle returns the style in effect after SetupGraphicDefaults.
func DefaultStyle() Style {
	return Style{
		Color:            White,
		Background:       Gray(200),
		Fill:             Filled,
		RectMode:         RectCorner,
		LineWidth:        1,
		Smoothing:        false,
		CircleResolution: 20,
		CurveResolution:  20,
		Winding:          WindingOdd,
		Blend:            BlendAlpha,
		BitmapText:       BitmapTextScreen,
	}
}
