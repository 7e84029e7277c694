package easel

// Drawable is the capability contract for objects that have a size and
// can render themselves at a position and size through an explicit
// renderer handle.
type Drawable interface {
	// Width returns the native width.
	Width() float64

	// Height returns the native height.
	Height() float64

	// Draw renders the object through r at the given position and size.
	Draw(r Renderer, x, y, w, h float64)
}

// DrawAt renders d at its native size, determined by Width and Height.
func DrawAt(r Renderer, d Drawable, x, y float64) {
	d.Draw(r, x, y, d.Width(), d.Height())
}

// DrawInRect renders d at the position and size of rect.
func DrawInRect(r Renderer, d Drawable, rect Rectangle) {
	d.Draw(r, rect.X, rect.Y, rect.W, rect.H)
}

// Updatable is the capability contract for objects that advance
// internal state once per frame.
type Updatable interface {
	Update()
}

// HasAnchor is implemented by drawables whose draw origin can be
// shifted. Types that ignore anchors simply do not implement it;
// anchor configuration on such types is absorbed, not an error.
type HasAnchor interface {
	SetAnchorPercent(xPct, yPct float64)
	SetAnchorPoint(x, y float64)
	ResetAnchor()

	// Offset resolves the anchor to a pixel offset for content of the
	// given drawn size.
	Offset(w, h float64) Vec2
}

// Anchor is an embeddable draw-origin configuration satisfying
// [HasAnchor]. The zero value anchors at the top-left corner.
type Anchor struct {
	x, y    float64
	percent bool
}

// SetAnchorPercent sets the anchor as a fraction of the drawn size.
// (0.5, 0.5) anchors at the center.
func (a *Anchor) SetAnchorPercent(xPct, yPct float64) {
	a.x, a.y = xPct, yPct
	a.percent = true
}

// SetAnchorPoint sets the anchor in pixels.
func (a *Anchor) SetAnchorPoint(x, y float64) {
	a.x, a.y = x, y
	a.percent = false
}

// ResetAnchor restores the anchor to (0, 0).
func (a *Anchor) ResetAnchor() {
	a.x, a.y, a.percent = 0, 0, false
}

// Offset resolves the anchor to a pixel offset for content of the given
// drawn size. The offset is subtracted from the draw position.
func (a *Anchor) Offset(w, h float64) Vec2 {
	if a.percent {
		return Vec2{X: a.x * w, Y: a.y * h}
	}
	return Vec2{X: a.x, Y: a.y}
}
