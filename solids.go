package easel

import "math"

// Solids3D draws procedural 3d primitives through its owning renderer.
// Resolution settings are renderer-global: they persist across draws
// and are not part of the stacked style. Meshes are rebuilt only when
// the requested size or resolution changes.
type Solids3D struct {
	r Renderer

	sphereRes   int
	icoIter     int
	cylinderRes [2]int // radial, height segments
	coneRes     [2]int
	boxRes      int
	planeRes    [2]int

	// cached unit meshes, keyed by the resolution they were built at
	sphere    *Mesh
	sphereKey int
	ico       *Mesh
	icoKey    int
	box       *Mesh
	boxKey    int
	cyl       *Mesh
	cylKey    [2]int
	cone      *Mesh
	coneKey   [2]int
	plane     *Mesh
	planeKey  [2]int
}

func newSolids3D(r Renderer) *Solids3D {
	return &Solids3D{
		r:           r,
		sphereRes:   20,
		icoIter:     2,
		cylinderRes: [2]int{12, 6},
		coneRes:     [2]int{12, 6},
		boxRes:      1,
		planeRes:    [2]int{6, 4},
	}
}

// SetSphereResolution sets the latitude/longitude segment count for
// DrawSphere.
func (s *Solids3D) SetSphereResolution(res int) {
	if res < 4 {
		res = 4
	}
	s.sphereRes = res
}

// SphereResolution returns the sphere segment count.
func (s *Solids3D) SphereResolution() int { return s.sphereRes }

// SetIcoSphereResolution sets the subdivision iterations for
// DrawIcoSphere.
func (s *Solids3D) SetIcoSphereResolution(iterations int) {
	if iterations < 0 {
		iterations = 0
	}
	if iterations > 5 {
		iterations = 5
	}
	s.icoIter = iterations
}

// IcoSphereResolution returns the icosphere subdivision count.
func (s *Solids3D) IcoSphereResolution() int { return s.icoIter }

// SetCylinderResolution sets radial and height segment counts for
// DrawCylinder.
func (s *Solids3D) SetCylinderResolution(radiusSegments, heightSegments int) {
	if radiusSegments < 3 {
		radiusSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	s.cylinderRes = [2]int{radiusSegments, heightSegments}
}

// CylinderResolution returns the radial and height segment counts.
func (s *Solids3D) CylinderResolution() (radiusSegments, heightSegments int) {
	return s.cylinderRes[0], s.cylinderRes[1]
}

// SetConeResolution sets radial and height segment counts for DrawCone.
func (s *Solids3D) SetConeResolution(radiusSegments, heightSegments int) {
	if radiusSegments < 3 {
		radiusSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	s.coneRes = [2]int{radiusSegments, heightSegments}
}

// ConeResolution returns the radial and height segment counts.
func (s *Solids3D) ConeResolution() (radiusSegments, heightSegments int) {
	return s.coneRes[0], s.coneRes[1]
}

// SetBoxResolution sets the per-face subdivision for DrawBox.
func (s *Solids3D) SetBoxResolution(res int) {
	if res < 1 {
		res = 1
	}
	s.boxRes = res
}

// BoxResolution returns the per-face box subdivision.
func (s *Solids3D) BoxResolution() int { return s.boxRes }

// SetPlaneResolution sets the column and row counts for DrawPlane.
func (s *Solids3D) SetPlaneResolution(columns, rows int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.planeRes = [2]int{columns, rows}
}

// PlaneResolution returns the plane column and row counts.
func (s *Solids3D) PlaneResolution() (columns, rows int) {
	return s.planeRes[0], s.planeRes[1]
}

func (s *Solids3D) renderMode() RenderMode {
	if s.r.FillMode() == Filled {
		return RenderFill
	}
	return RenderWireframe
}

func (s *Solids3D) drawScaled(mesh *Mesh, x, y, z, sx, sy, sz float64) {
	s.r.PushMatrix()
	s.r.Translate(x, y, z)
	s.r.Scale(sx, sy, sz)
	s.r.DrawMesh(mesh, s.renderMode())
	s.r.PopMatrix()
}

// DrawSphere draws a UV sphere centered on (x, y, z).
func (s *Solids3D) DrawSphere(x, y, z, radius float64) {
	if s.sphere == nil || s.sphereKey != s.sphereRes {
		s.sphere = SphereMesh(1, s.sphereRes)
		s.sphereKey = s.sphereRes
	}
	s.drawScaled(s.sphere, x, y, z, radius, radius, radius)
}

// DrawIcoSphere draws a subdivided icosahedron centered on (x, y, z).
func (s *Solids3D) DrawIcoSphere(x, y, z, radius float64) {
	if s.ico == nil || s.icoKey != s.icoIter {
		s.ico = IcoSphereMesh(1, s.icoIter)
		s.icoKey = s.icoIter
	}
	s.drawScaled(s.ico, x, y, z, radius, radius, radius)
}

// DrawBox draws an axis-aligned box centered on (x, y, z).
func (s *Solids3D) DrawBox(x, y, z, width, height, depth float64) {
	if s.box == nil || s.boxKey != s.boxRes {
		s.box = BoxMesh(1, 1, 1, s.boxRes)
		s.boxKey = s.boxRes
	}
	s.drawScaled(s.box, x, y, z, width, height, depth)
}

// DrawCube draws a box with equal sides.
func (s *Solids3D) DrawCube(x, y, z, size float64) {
	s.DrawBox(x, y, z, size, size, size)
}

// DrawCylinder draws a cylinder centered on (x, y, z) with its axis
// along y.
func (s *Solids3D) DrawCylinder(x, y, z, radius, height float64) {
	if s.cyl == nil || s.cylKey != s.cylinderRes {
		s.cyl = CylinderMesh(1, 1, s.cylinderRes[0], s.cylinderRes[1], true)
		s.cylKey = s.cylinderRes
	}
	s.drawScaled(s.cyl, x, y, z, radius, height, radius)
}

// DrawCone draws a cone centered on (x, y, z), apex up along y.
func (s *Solids3D) DrawCone(x, y, z, radius, height float64) {
	if s.cone == nil || s.coneKey != s.coneRes {
		s.cone = ConeMesh(1, 1, s.coneRes[0], s.coneRes[1])
		s.coneKey = s.coneRes
	}
	s.drawScaled(s.cone, x, y, z, radius, height, radius)
}

// DrawPlane draws a subdivided plane centered on (x, y, z) in the xy
// plane.
func (s *Solids3D) DrawPlane(x, y, z, width, height float64) {
	if s.plane == nil || s.planeKey != s.planeRes {
		s.plane = PlaneMesh(1, 1, s.planeRes[0], s.planeRes[1])
		s.planeKey = s.planeRes
	}
	s.drawScaled(s.plane, x, y, z, width, height, 1)
}

// DrawAxis draws the three coordinate axes in red, green and blue.
func (s *Solids3D) DrawAxis(size float64) {
	s.r.PushStyle()
	s.r.SetColor(ColorRed)
	s.r.DrawLine(0, 0, 0, size, 0, 0)
	s.r.SetColor(ColorGreen)
	s.r.DrawLine(0, 0, 0, 0, size, 0)
	s.r.SetColor(ColorBlue)
	s.r.DrawLine(0, 0, 0, 0, 0, size)
	s.r.PopStyle()
}

// DrawGrid draws three intersecting grid planes.
func (s *Solids3D) DrawGrid(stepSize float64, numberOfSteps int, labels, x, y, z bool) {
	if x {
		s.DrawGridPlane(stepSize, numberOfSteps, 0)
	}
	if y {
		s.DrawGridPlane(stepSize, numberOfSteps, 1)
	}
	if z {
		s.DrawGridPlane(stepSize, numberOfSteps, 2)
	}
	if labels {
		half := stepSize * float64(numberOfSteps)
		s.r.DrawString("x", half+stepSize/2, 0, 0)
		s.r.DrawString("y", 0, half+stepSize/2, 0)
		s.r.DrawString("z", 0, 0, half+stepSize/2)
	}
}

// DrawGridPlane draws one grid plane. The plane normal is the axis
// with the given index: 0 for x, 1 for y, 2 for z.
func (s *Solids3D) DrawGridPlane(stepSize float64, numberOfSteps int, axis int) {
	half := stepSize * float64(numberOfSteps)
	for i := -numberOfSteps; i <= numberOfSteps; i++ {
		p := stepSize * float64(i)
		switch axis {
		case 0:
			s.r.DrawLine(0, p, -half, 0, p, half)
			s.r.DrawLine(0, -half, p, 0, half, p)
		case 1:
			s.r.DrawLine(p, 0, -half, p, 0, half)
			s.r.DrawLine(-half, 0, p, half, 0, p)
		default:
			s.r.DrawLine(p, -half, 0, p, half, 0)
			s.r.DrawLine(-half, p, 0, half, p, 0)
		}
	}
}

// DrawArrow draws a line from start to end capped with a cone.
func (s *Solids3D) DrawArrow(start, end Vec3, headSize float64) {
	s.r.DrawLine(start.X, start.Y, start.Z, end.X, end.Y, end.Z)

	dir := end.Sub(start)
	length := dir.Length()
	if length == 0 {
		return
	}
	dir = dir.Mul(1 / length)

	s.r.PushMatrix()
	s.r.Translate(end.X, end.Y, end.Z)
	// rotate +y onto dir
	axis := V3(0, 1, 0).Cross(dir)
	angle := degrees(math.Acos(clampUnit(dir.Y)))
	if axis.Length() > 1e-9 {
		s.r.RotateAxis(angle, axis.Normalize())
	} else if dir.Y < 0 {
		s.r.RotateX(180)
	}
	s.r.Translate(0, -headSize/2, 0)
	s.DrawCone(0, 0, 0, headSize/4, headSize)
	s.r.PopMatrix()
}

// DrawRotationAxes draws a compact axis gizmo: colored axis lines with
// small spheres marking the positive directions.
func (s *Solids3D) DrawRotationAxes(radius float64) {
	s.DrawAxis(radius)
	s.r.PushStyle()
	s.r.SetColor(ColorRed)
	s.DrawSphere(radius, 0, 0, radius/20)
	s.r.SetColor(ColorGreen)
	s.DrawSphere(0, radius, 0, radius/20)
	s.r.SetColor(ColorBlue)
	s.DrawSphere(0, 0, radius, radius/20)
	s.r.PopStyle()
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
