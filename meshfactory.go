package easel

import "math"

// PlaneMesh builds a subdivided plane in the xy plane, centered on the
// origin, with normals facing +z.
func PlaneMesh(width, height float64, columns, rows int) *Mesh {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	m := NewMesh()
	m.Mode = Triangles
	for iy := 0; iy <= rows; iy++ {
		for ix := 0; ix <= columns; ix++ {
			u := float64(ix) / float64(columns)
			v := float64(iy) / float64(rows)
			m.AddVertex(V3((u-0.5)*width, (v-0.5)*height, 0))
			m.AddNormal(V3(0, 0, 1))
			m.AddTexCoord(V2(u, v))
		}
	}
	stride := uint32(columns + 1)
	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < columns; ix++ {
			a := uint32(iy)*stride + uint32(ix)
			b := a + 1
			c := a + stride
			d := c + 1
			m.AddTriangle(a, b, c)
			m.AddTriangle(b, d, c)
		}
	}
	return m
}

// SphereMesh builds a UV sphere centered on the origin. res is the
// segment count used for both latitude and longitude.
func SphereMesh(radius float64, res int) *Mesh {
	if res < 4 {
		res = 4
	}
	m := NewMesh()
	m.Mode = Triangles
	for lat := 0; lat <= res; lat++ {
		theta := math.Pi * float64(lat) / float64(res)
		sinT, cosT := math.Sincos(theta)
		for lon := 0; lon <= res; lon++ {
			phi := 2 * math.Pi * float64(lon) / float64(res)
			sinP, cosP := math.Sincos(phi)
			n := V3(sinT*cosP, cosT, sinT*sinP)
			m.AddVertex(n.Mul(radius))
			m.AddNormal(n)
			m.AddTexCoord(V2(float64(lon)/float64(res), float64(lat)/float64(res)))
		}
	}
	stride := uint32(res + 1)
	for lat := 0; lat < res; lat++ {
		for lon := 0; lon < res; lon++ {
			a := uint32(lat)*stride + uint32(lon)
			b := a + 1
			c := a + stride
			d := c + 1
			m.AddTriangle(a, c, b)
			m.AddTriangle(b, c, d)
		}
	}
	return m
}

// icosahedron vertex positions, unit length.
var icoVerts = func() []Vec3 {
	t := (1 + math.Sqrt(5)) / 2
	raw := []Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range raw {
		raw[i] = raw[i].Normalize()
	}
	return raw
}()

var icoFaces = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// IcoSphereMesh builds a sphere by subdividing an icosahedron. Each
// iteration splits every triangle in four and re-projects onto the
// sphere.
func IcoSphereMesh(radius float64, iterations int) *Mesh {
	if iterations < 0 {
		iterations = 0
	}
	if iterations > 5 {
		iterations = 5
	}
	tris := make([][3]Vec3, 0, len(icoFaces)<<(2*iterations))
	for _, f := range icoFaces {
		tris = append(tris, [3]Vec3{icoVerts[f[0]], icoVerts[f[1]], icoVerts[f[2]]})
	}
	for it := 0; it < iterations; it++ {
		next := make([][3]Vec3, 0, len(tris)*4)
		for _, t := range tris {
			ab := t[0].Add(t[1]).Normalize()
			bc := t[1].Add(t[2]).Normalize()
			ca := t[2].Add(t[0]).Normalize()
			next = append(next,
				[3]Vec3{t[0], ab, ca},
				[3]Vec3{t[1], bc, ab},
				[3]Vec3{t[2], ca, bc},
				[3]Vec3{ab, bc, ca},
			)
		}
		tris = next
	}
	m := NewMesh()
	m.Mode = Triangles
	for _, t := range tris {
		for _, v := range t {
			m.AddVertex(v.Mul(radius))
			m.AddNormal(v)
		}
	}
	return m
}

// BoxMesh builds an axis-aligned box centered on the origin, each face
// subdivided res times per side.
func BoxMesh(width, height, depth float64, res int) *Mesh {
	if res < 1 {
		res = 1
	}
	m := NewMesh()
	m.Mode = Triangles

	// face appends a subdivided quad face. origin is the face corner,
	// du and dv span it, n is the outward normal.
	face := func(origin, du, dv, n Vec3) {
		base := uint32(m.NumVertices())
		for iv := 0; iv <= res; iv++ {
			for iu := 0; iu <= res; iu++ {
				fu := float64(iu) / float64(res)
				fv := float64(iv) / float64(res)
				p := origin.Add(du.Mul(fu)).Add(dv.Mul(fv))
				m.AddVertex(p)
				m.AddNormal(n)
				m.AddTexCoord(V2(fu, fv))
			}
		}
		stride := uint32(res + 1)
		for iv := 0; iv < res; iv++ {
			for iu := 0; iu < res; iu++ {
				a := base + uint32(iv)*stride + uint32(iu)
				b := a + 1
				c := a + stride
				d := c + 1
				m.AddTriangle(a, b, c)
				m.AddTriangle(b, d, c)
			}
		}
	}

	hw, hh, hd := width/2, height/2, depth/2
	face(V3(-hw, -hh, hd), V3(width, 0, 0), V3(0, height, 0), V3(0, 0, 1))    // front
	face(V3(hw, -hh, -hd), V3(-width, 0, 0), V3(0, height, 0), V3(0, 0, -1)) // back
	face(V3(hw, -hh, hd), V3(0, 0, -depth), V3(0, height, 0), V3(1, 0, 0))   // right
	face(V3(-hw, -hh, -hd), V3(0, 0, depth), V3(0, height, 0), V3(-1, 0, 0)) // left
	face(V3(-hw, hh, hd), V3(width, 0, 0), V3(0, 0, -depth), V3(0, 1, 0))    // top
	face(V3(-hw, -hh, -hd), V3(width, 0, 0), V3(0, 0, depth), V3(0, -1, 0))  // bottom
	return m
}

// CylinderMesh builds a cylinder centered on the origin with its axis
// along y. capped controls whether end caps are generated.
func CylinderMesh(radius, height float64, radiusSegments, heightSegments int, capped bool) *Mesh {
	if radiusSegments < 3 {
		radiusSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	m := NewMesh()
	m.Mode = Triangles
	half := height / 2

	for iy := 0; iy <= heightSegments; iy++ {
		y := -half + height*float64(iy)/float64(heightSegments)
		for ir := 0; ir <= radiusSegments; ir++ {
			a := 2 * math.Pi * float64(ir) / float64(radiusSegments)
			sin, cos := math.Sincos(a)
			m.AddVertex(V3(radius*cos, y, radius*sin))
			m.AddNormal(V3(cos, 0, sin))
			m.AddTexCoord(V2(float64(ir)/float64(radiusSegments), float64(iy)/float64(heightSegments)))
		}
	}
	stride := uint32(radiusSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ir := 0; ir < radiusSegments; ir++ {
			a := uint32(iy)*stride + uint32(ir)
			b := a + 1
			c := a + stride
			d := c + 1
			m.AddTriangle(a, c, b)
			m.AddTriangle(b, c, d)
		}
	}

	if capped {
		addCap(m, radius, half, radiusSegments, 1)
		addCap(m, radius, -half, radiusSegments, -1)
	}
	return m
}

// addCap appends a fan-shaped disc at the given y with a +-y normal.
func addCap(m *Mesh, radius, y float64, segments int, ny float64) {
	center := uint32(m.NumVertices())
	m.AddVertex(V3(0, y, 0))
	m.AddNormal(V3(0, ny, 0))
	m.AddTexCoord(V2(0.5, 0.5))
	for ir := 0; ir <= segments; ir++ {
		a := 2 * math.Pi * float64(ir) / float64(segments)
		sin, cos := math.Sincos(a)
		m.AddVertex(V3(radius*cos, y, radius*sin))
		m.AddNormal(V3(0, ny, 0))
		m.AddTexCoord(V2(cos/2+0.5, sin/2+0.5))
	}
	for ir := 0; ir < segments; ir++ {
		a := center + 1 + uint32(ir)
		b := a + 1
		if ny > 0 {
			m.AddTriangle(center, a, b)
		} else {
			m.AddTriangle(center, b, a)
		}
	}
}

// ConeMesh builds a capped cone centered on the origin, apex up along
// y.
func ConeMesh(radius, height float64, radiusSegments, heightSegments int) *Mesh {
	if radiusSegments < 3 {
		radiusSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	m := NewMesh()
	m.Mode = Triangles
	half := height / 2

	// side normal leans outward by the cone slope
	slope := radius / height
	for iy := 0; iy <= heightSegments; iy++ {
		f := float64(iy) / float64(heightSegments)
		y := -half + height*f
		r := radius * (1 - f)
		for ir := 0; ir <= radiusSegments; ir++ {
			a := 2 * math.Pi * float64(ir) / float64(radiusSegments)
			sin, cos := math.Sincos(a)
			m.AddVertex(V3(r*cos, y, r*sin))
			m.AddNormal(V3(cos, slope, sin).Normalize())
			m.AddTexCoord(V2(float64(ir)/float64(radiusSegments), f))
		}
	}
	stride := uint32(radiusSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ir := 0; ir < radiusSegments; ir++ {
			a := uint32(iy)*stride + uint32(ir)
			b := a + 1
			c := a + stride
			d := c + 1
			m.AddTriangle(a, c, b)
			m.AddTriangle(b, c, d)
		}
	}
	addCap(m, radius, -half, radiusSegments, -1)
	return m
}
