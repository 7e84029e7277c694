package easel

// Path is a multi-outline shape built with move/line/curve commands.
// Curves are flattened at the path's curve resolution as they are
// added. The renderer exposes a shared Path via [Renderer.Path] so
// immediate-mode shape drawing does not allocate per call.
type Path struct {
	outlines []*Polyline
	cur      *Polyline

	curveResolution int
	winding         WindingMode
	filled          bool
	color           Color
	hasColor        bool
}

// NewPath creates an empty filled path with the default curve
// resolution.
func NewPath() *Path {
	return &Path{
		curveResolution: DefaultStyle().CurveResolution,
		filled:          true,
	}
}

// MoveTo starts a new outline at (x, y, z).
func (p *Path) MoveTo(x, y, z float64) {
	p.cur = NewPolyline()
	p.cur.LineTo(x, y, z)
	p.outlines = append(p.outlines, p.cur)
}

// LineTo appends a straight segment to the current outline. If no
// outline is open, one is started at the given point.
func (p *Path) LineTo(x, y, z float64) {
	if p.cur == nil {
		p.MoveTo(x, y, z)
		return
	}
	p.cur.LineTo(x, y, z)
}

// BezierTo appends a cubic bezier segment, flattened at the path's
// curve resolution.
func (p *Path) BezierTo(cp1, cp2, to Vec3) {
	if p.cur == nil || p.cur.Size() == 0 {
		p.MoveTo(to.X, to.Y, to.Z)
		return
	}
	from := p.cur.points[p.cur.Size()-1]
	n := p.curveResolution
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		v := from.Mul(u * u * u).
			Add(cp1.Mul(3 * u * u * t)).
			Add(cp2.Mul(3 * u * t * t)).
			Add(to.Mul(t * t * t))
		p.cur.AddVertex(v)
	}
}

// Close closes the current outline.
func (p *Path) Close() {
	if p.cur != nil {
		p.cur.Close()
	}
}

// Outlines returns the path's outlines.
func (p *Path) Outlines() []*Polyline { return p.outlines }

// Clear removes all outlines and restores fill and color defaults.
func (p *Path) Clear() {
	p.outlines = p.outlines[:0]
	p.cur = nil
	p.filled = true
	p.hasColor = false
}

// SetFilled selects filled or outline drawing for this path.
func (p *Path) SetFilled(filled bool) { p.filled = filled }

// IsFilled reports whether the path draws filled.
func (p *Path) IsFilled() bool { return p.filled }

// SetColor overrides the renderer's current color for this path.
func (p *Path) SetColor(c Color) {
	p.color = c
	p.hasColor = true
}

// PathColor returns the color set with SetColor and whether one is set.
func (p *Path) PathColor() (Color, bool) { return p.color, p.hasColor }

// SetWindingMode sets the fill rule used when the path self-intersects.
func (p *Path) SetWindingMode(mode WindingMode) { p.winding = mode }

// SetCurveResolution sets the number of segments used to flatten
// subsequently added curves.
func (p *Path) SetCurveResolution(res int) { p.curveResolution = res }
