package easel

import "math"

// Camera derives view and projection matrices from a node transform,
// field of view, and clip planes. Bind a camera to a renderer to draw
// through it; Unbind restores the previous matrices in LIFO order.
type Camera struct {
	Node

	// Fov is the vertical field of view in degrees. Zero selects the
	// default of 60.
	Fov float64

	// Near and Far are the clip plane distances. Zero selects defaults
	// derived from the viewport size (see DefaultClipPlanes).
	Near, Far float64

	// Ortho selects an orthographic projection instead of perspective.
	Ortho bool

	// LensOffset shifts the projection in normalized device units, for
	// off-axis projection setups.
	LensOffset Vec2
}

// NewCamera creates a perspective camera with default lens settings.
func NewCamera() *Camera {
	c := &Camera{}
	c.Scale = Vec3{X: 1, Y: 1, Z: 1}
	return c
}

// fov returns the effective field of view in degrees.
func (c *Camera) fov() float64 {
	if c.Fov <= 0 {
		return 60
	}
	return c.Fov
}

// DefaultClipPlanes returns the near and far distances used when the
// caller leaves Near or Far at the 0 sentinel: the eye distance implied
// by the viewport height and field of view, divided and multiplied by
// ten. Explicit values are passed through.
func (c *Camera) DefaultClipPlanes(viewport Rectangle) (near, far float64) {
	dist := eyeDistance(viewport.H, c.fov())
	near, far = c.Near, c.Far
	if near == 0 {
		near = dist / 10
	}
	if far == 0 {
		far = dist * 10
	}
	return near, far
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() Mat4 {
	return c.GlobalTransform().Invert()
}

// ProjectionMatrix returns the projection matrix for the given
// viewport.
func (c *Camera) ProjectionMatrix(viewport Rectangle) Mat4 {
	viewport = viewport.Standardized()
	w, h := viewport.W, viewport.H
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	near, far := c.DefaultClipPlanes(viewport)

	var proj Mat4
	if c.Ortho {
		proj = Mat4Ortho(-w/2, w/2, -h/2, h/2, near, far)
	} else {
		proj = Mat4Perspective(radians(c.fov()), w/h, near, far)
	}
	if c.LensOffset != (Vec2{}) {
		proj = Mat4Translate(c.LensOffset.X, c.LensOffset.Y, 0).Mul(proj)
	}
	return proj
}

// eyeDistance returns the distance at which a plane of the given height
// exactly fills the given vertical field of view (degrees).
func eyeDistance(height, fovDeg float64) float64 {
	if height <= 0 {
		height = 1
	}
	return (height / 2) / math.Tan(radians(fovDeg)/2)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// degrees converts radians to degrees.
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
