package easel

import (
	"math"
	"testing"
)

func mat4Near(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func vec3Near(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Mat4Translate(10, -5, 2)
	got := m.TransformPoint(V3(1, 2, 3))
	if !vec3Near(got, V3(11, -3, 5), 1e-9) {
		t.Fatalf("got %+v", got)
	}
}

func TestMat4RotateZQuarterTurn(t *testing.T) {
	m := Mat4RotateZ(math.Pi / 2)
	got := m.TransformPoint(V3(1, 0, 0))
	if !vec3Near(got, V3(0, 1, 0), 1e-9) {
		t.Fatalf("rotated x axis to %+v, want +y", got)
	}
}

func TestMat4RotateAxisMatchesPrincipal(t *testing.T) {
	angle := 0.7
	tests := []struct {
		name string
		axis Vec3
		want Mat4
	}{
		{"x", V3(1, 0, 0), Mat4RotateX(angle)},
		{"y", V3(0, 1, 0), Mat4RotateY(angle)},
		{"z", V3(0, 0, 1), Mat4RotateZ(angle)},
	}
	for _, tt := range tests {
		got := Mat4RotateAxis(tt.axis, angle)
		if !mat4Near(got, tt.want, 1e-9) {
			t.Errorf("axis %s: rotation mismatch", tt.name)
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translate(3, 4, 5).Mul(Mat4RotateY(1.1))
	if !mat4Near(m.Mul(Mat4Identity()), m, 1e-12) {
		t.Error("m * I != m")
	}
	if !mat4Near(Mat4Identity().Mul(m), m, 1e-12) {
		t.Error("I * m != m")
	}
}

func TestMat4MulOrder(t *testing.T) {
	// translate-then-scale and scale-then-translate differ
	ts := Mat4Translate(10, 0, 0).Mul(Mat4Scale(2, 2, 2))
	got := ts.TransformPoint(V3(1, 0, 0))
	if !vec3Near(got, V3(12, 0, 0), 1e-9) {
		t.Errorf("T*S applied to (1,0,0) = %+v, want (12,0,0)", got)
	}
	st := Mat4Scale(2, 2, 2).Mul(Mat4Translate(10, 0, 0))
	got = st.TransformPoint(V3(1, 0, 0))
	if !vec3Near(got, V3(22, 0, 0), 1e-9) {
		t.Errorf("S*T applied to (1,0,0) = %+v, want (22,0,0)", got)
	}
}

func TestMat4InvertRoundTrip(t *testing.T) {
	m := Mat4Translate(1, 2, 3).
		Mul(Mat4RotateX(0.4)).
		Mul(Mat4RotateZ(-1.2)).
		Mul(Mat4Scale(2, 3, 4))
	if !mat4Near(m.Mul(m.Invert()), Mat4Identity(), 1e-9) {
		t.Error("m * m^-1 != I")
	}
	if !mat4Near(m.Invert().Mul(m), Mat4Identity(), 1e-9) {
		t.Error("m^-1 * m != I")
	}
}

func TestMat4OrthoCorners(t *testing.T) {
	// pixel ortho used for screen-space drawing: y axis points down
	m := Mat4Ortho(0, 800, 600, 0, -1, 1)
	tests := []struct {
		p    Vec3
		want Vec3
	}{
		{V3(0, 0, 0), V3(-1, 1, 0)},
		{V3(800, 600, 0), V3(1, -1, 0)},
		{V3(400, 300, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		got := m.TransformPoint(tt.p)
		if !vec3Near(got, tt.want, 1e-9) {
			t.Errorf("ortho(%+v) = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

func TestMat4PerspectiveCenterRay(t *testing.T) {
	m := Mat4Perspective(math.Pi/3, 4.0/3, 1, 100)
	// points on the view axis stay centered
	v := m.TransformVec4(V4(0, 0, -10, 1))
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("center ray deflected: %+v", v)
	}
	if math.Abs(v.W-10) > 1e-9 {
		t.Fatalf("clip w = %v, want 10", v.W)
	}
	// near and far planes map to the ndc depth range ends
	near := m.TransformVec4(V4(0, 0, -1, 1))
	far := m.TransformVec4(V4(0, 0, -100, 1))
	if math.Abs(near.Z/near.W+1) > 1e-9 {
		t.Errorf("near plane ndc z = %v, want -1", near.Z/near.W)
	}
	if math.Abs(far.Z/far.W-1) > 1e-6 {
		t.Errorf("far plane ndc z = %v, want 1", far.Z/far.W)
	}
}

func TestMat4LookAtEyeMapsToOrigin(t *testing.T) {
	eye := V3(5, 3, 10)
	m := Mat4LookAt(eye, V3(5, 3, 0), V3(0, 1, 0))
	if !vec3Near(m.TransformPoint(eye), V3(0, 0, 0), 1e-9) {
		t.Fatal("eye did not map to the origin")
	}
	// a point straight ahead lands on the -z axis
	got := m.TransformPoint(V3(5, 3, 0))
	if !vec3Near(got, V3(0, 0, -10), 1e-9) {
		t.Fatalf("look target mapped to %+v, want (0,0,-10)", got)
	}
}
