package easel

import "math"

// Mat4 is a 4x4 transformation matrix stored in row-major order:
// element (row r, column c) is at index r*4+c. Points are treated as
// column vectors and transformed as p' = M * p, so composed transforms
// apply right-to-left: the most recently multiplied matrix affects
// geometry first.
type Mat4 [16]float64

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translate returns a translation matrix.
func Mat4Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Mat4Scale returns a scaling matrix.
func Mat4Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateX returns a rotation about the x axis by angle radians.
func Mat4RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateY returns a rotation about the y axis by angle radians.
func Mat4RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateZ returns a rotation about the z axis by angle radians.
func Mat4RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateAxis returns a rotation of angle radians about an arbitrary
// axis. The axis does not need to be normalized. A zero axis yields the
// identity matrix.
func Mat4RotateAxis(axis Vec3, angle float64) Mat4 {
	n := axis.Normalize()
	if n == (Vec3{}) {
		return Mat4Identity()
	}
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := n.X, n.Y, n.Z
	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// TransformVec4 applies the matrix to a homogeneous vector.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies the matrix to a point, performing perspective
// division on the result.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.TransformVec4(Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}).Vec3()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Mat4) Invert() Mat4 {
	a := m
	inv := Mat4Identity()

	// Gauss-Jordan elimination with partial pivoting.
	for col := 0; col < 4; col++ {
		pivot := col
		max := math.Abs(a[col*4+col])
		for r := col + 1; r < 4; r++ {
			if v := math.Abs(a[r*4+col]); v > max {
				max = v
				pivot = r
			}
		}
		if max < 1e-12 {
			return Mat4Identity()
		}
		if pivot != col {
			for c := 0; c < 4; c++ {
				a[pivot*4+c], a[col*4+c] = a[col*4+c], a[pivot*4+c]
				inv[pivot*4+c], inv[col*4+c] = inv[col*4+c], inv[pivot*4+c]
			}
		}
		d := 1 / a[col*4+col]
		for c := 0; c < 4; c++ {
			a[col*4+c] *= d
			inv[col*4+c] *= d
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r*4+col]
			if f == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				a[r*4+c] -= f * a[col*4+c]
				inv[r*4+c] -= f * inv[col*4+c]
			}
		}
	}
	return inv
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Mat4Identity()
}

// Mat4Perspective returns a perspective projection matrix for the given
// vertical field of view (radians), aspect ratio, and clip planes.
// Maps the view frustum to clip space with z in [-1, 1].
func Mat4Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	d := near - far
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / d, 2 * far * near / d,
		0, 0, -1, 0,
	}
}

// Mat4Ortho returns an orthographic projection matrix mapping the given
// axis-aligned box to clip space.
func Mat4Ortho(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// Mat4LookAt returns a view matrix positioning the eye at eye, looking
// at center, with the given up direction.
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)
	view := Mat4{
		s.X, s.Y, s.Z, 0,
		u.X, u.Y, u.Z, 0,
		-f.X, -f.Y, -f.Z, 0,
		0, 0, 0, 1,
	}
	return view.Mul(Mat4Translate(-eye.X, -eye.Y, -eye.Z))
}
