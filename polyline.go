package easel

// Polyline is an ordered sequence of 3D points, optionally closed.
type Polyline struct {
	points []Vec3
	closed bool
}

// NewPolyline creates an empty polyline.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// AddVertex appends a point.
func (p *Polyline) AddVertex(v Vec3) {
	p.points = append(p.points, v)
}

// LineTo appends a point at (x, y, z).
func (p *Polyline) LineTo(x, y, z float64) {
	p.AddVertex(Vec3{X: x, Y: y, Z: z})
}

// Close marks the polyline as closed; drawing connects the last point
// back to the first.
func (p *Polyline) Close() {
	p.closed = true
}

// IsClosed reports whether the polyline is closed.
func (p *Polyline) IsClosed() bool { return p.closed }

// Size returns the number of points.
func (p *Polyline) Size() int { return len(p.points) }

// Points returns the underlying point slice.
func (p *Polyline) Points() []Vec3 { return p.points }

// Clear removes all points and reopens the polyline.
func (p *Polyline) Clear() {
	p.points = p.points[:0]
	p.closed = false
}
