package easel

import (
	"math"
	"testing"
)

func TestNodeHierarchyTransforms(t *testing.T) {
	parent := NewNode()
	parent.Position = V3(10, 0, 0)
	child := NewNode()
	child.Position = V3(0, 5, 0)
	child.SetParent(parent)

	if got := child.GlobalPosition(); !vec3Near(got, V3(10, 5, 0), 1e-9) {
		t.Fatalf("GlobalPosition = %+v, want (10,5,0)", got)
	}

	child.SetParent(nil)
	if got := child.GlobalPosition(); !vec3Near(got, V3(0, 5, 0), 1e-9) {
		t.Fatalf("detached GlobalPosition = %+v", got)
	}
	if len(parent.Children()) != 0 {
		t.Fatal("child still attached to parent")
	}
}

func TestNodeZeroScaleTreatedAsIdentity(t *testing.T) {
	n := &Node{Position: V3(1, 2, 3)}
	got := n.LocalTransform().TransformPoint(V3(1, 0, 0))
	if !vec3Near(got, V3(2, 2, 3), 1e-9) {
		t.Fatalf("zero-scale node transformed (1,0,0) to %+v", got)
	}
}

func TestCameraViewMatrixInvertsTransform(t *testing.T) {
	c := NewCamera()
	c.Position = V3(10, 20, 30)
	c.Rotation = V3(0, 45, 0)

	eye := c.GlobalPosition()
	if got := c.ViewMatrix().TransformPoint(eye); !vec3Near(got, V3(0, 0, 0), 1e-9) {
		t.Fatalf("camera position mapped to %+v, want origin", got)
	}
}

func TestCameraDefaultClipPlanes(t *testing.T) {
	c := NewCamera()
	vp := Rectangle{W: 800, H: 600}
	dist := (600.0 / 2) / math.Tan(radians(60)/2)

	near, far := c.DefaultClipPlanes(vp)
	if math.Abs(near-dist/10) > 1e-9 {
		t.Errorf("near = %v, want %v", near, dist/10)
	}
	if math.Abs(far-dist*10) > 1e-9 {
		t.Errorf("far = %v, want %v", far, dist*10)
	}

	// explicit planes pass through untouched
	c.Near, c.Far = 2, 500
	near, far = c.DefaultClipPlanes(vp)
	if near != 2 || far != 500 {
		t.Errorf("explicit planes = %v, %v", near, far)
	}
}

func TestCameraProjectionCenterStaysCentered(t *testing.T) {
	c := NewCamera()
	vp := Rectangle{W: 640, H: 480}
	proj := c.ProjectionMatrix(vp)
	v := proj.TransformVec4(V4(0, 0, -100, 1))
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("axis point deflected: %+v", v)
	}

	c.LensOffset = Vec2{X: 0.5}
	proj = c.ProjectionMatrix(vp)
	v = proj.TransformVec4(V4(0, 0, -100, 1))
	if math.Abs(v.X/v.W-0.5) > 1e-9 {
		t.Fatalf("lens offset not applied: ndc x = %v", v.X/v.W)
	}
}

func TestCameraOrthoProjection(t *testing.T) {
	c := NewCamera()
	c.Ortho = true
	c.Near, c.Far = 1, 100
	vp := Rectangle{W: 200, H: 100}
	proj := c.ProjectionMatrix(vp)

	// viewport edges map to ndc edges
	right := proj.TransformPoint(V3(100, 0, -2))
	if math.Abs(right.X-1) > 1e-9 {
		t.Fatalf("right edge ndc x = %v, want 1", right.X)
	}
	top := proj.TransformPoint(V3(0, 50, -2))
	if math.Abs(top.Y-1) > 1e-9 {
		t.Fatalf("top edge ndc y = %v, want 1", top.Y)
	}
}
