package easel

// Rectangle is an axis-aligned rectangle with float coordinates.
// Width and height may be negative for rectangles specified from the
// opposite corner; Standardized normalizes them.
type Rectangle struct {
	X, Y, W, H float64
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Standardized returns the rectangle with non-negative width and height,
// adjusting the origin as needed.
func (r Rectangle) Standardized() Rectangle {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether the point is inside the rectangle.
func (r Rectangle) Contains(x, y float64) bool {
	r = r.Standardized()
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rectangle) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}
