package easel

import (
	"math"
	"testing"
)

func TestPlaneMeshCounts(t *testing.T) {
	m := PlaneMesh(10, 6, 3, 2)
	wantVerts := (3 + 1) * (2 + 1)
	if m.NumVertices() != wantVerts {
		t.Fatalf("vertices = %d, want %d", m.NumVertices(), wantVerts)
	}
	if got := len(m.Indices); got != 3*2*6 {
		t.Fatalf("indices = %d, want %d", got, 3*2*6)
	}
	for _, n := range m.Normals {
		if n != V3(0, 0, 1) {
			t.Fatalf("plane normal = %+v, want +z", n)
		}
	}
	// centered on the origin
	var sum Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	if math.Abs(sum.X) > 1e-9 || math.Abs(sum.Y) > 1e-9 {
		t.Fatalf("vertex centroid off origin: %+v", sum)
	}
}

func TestSphereMeshOnRadius(t *testing.T) {
	const r = 3.0
	m := SphereMesh(r, 8)
	if m.NumVertices() == 0 {
		t.Fatal("empty sphere")
	}
	for i, v := range m.Vertices {
		if math.Abs(v.Length()-r) > 1e-9 {
			t.Fatalf("vertex %d at radius %v, want %v", i, v.Length(), r)
		}
	}
	for i, n := range m.Normals {
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Fatalf("normal %d not unit length", i)
		}
		// normal points along the vertex direction
		if n.Sub(m.Vertices[i].Mul(1 / r)).Length() > 1e-9 {
			t.Fatalf("normal %d does not match vertex direction", i)
		}
	}
}

func TestSphereMeshMinimumResolution(t *testing.T) {
	m := SphereMesh(1, 0)
	if m.NumVertices() != 5*5 {
		t.Fatalf("vertices = %d, want res clamped to 4", m.NumVertices())
	}
}

func TestIcoSphereMeshSubdivision(t *testing.T) {
	tests := []struct {
		iterations int
		wantTris   int
	}{
		{0, 20},
		{1, 80},
		{2, 320},
	}
	for _, tt := range tests {
		m := IcoSphereMesh(1, tt.iterations)
		if got := m.NumVertices() / 3; got != tt.wantTris {
			t.Errorf("iterations %d: triangles = %d, want %d",
				tt.iterations, got, tt.wantTris)
		}
		for _, v := range m.Vertices {
			if math.Abs(v.Length()-1) > 1e-9 {
				t.Fatalf("iterations %d: vertex off the unit sphere", tt.iterations)
			}
		}
	}
}

func TestBoxMeshCounts(t *testing.T) {
	m := BoxMesh(2, 2, 2, 1)
	if m.NumVertices() != 6*4 {
		t.Fatalf("vertices = %d, want 24", m.NumVertices())
	}
	if got := len(m.Indices); got != 6*2*3 {
		t.Fatalf("indices = %d, want 36", got)
	}
	// every vertex sits on the box surface
	for i, v := range m.Vertices {
		onFace := math.Abs(math.Abs(v.X)-1) < 1e-9 ||
			math.Abs(math.Abs(v.Y)-1) < 1e-9 ||
			math.Abs(math.Abs(v.Z)-1) < 1e-9
		if !onFace {
			t.Fatalf("vertex %d off the surface: %+v", i, v)
		}
	}
}

func TestBoxMeshNormalsFaceOutward(t *testing.T) {
	m := BoxMesh(2, 2, 2, 2)
	for i, v := range m.Vertices {
		if m.Normals[i].Dot(v) < 0 {
			t.Fatalf("normal %d points inward", i)
		}
	}
}

func TestCylinderMeshCaps(t *testing.T) {
	open := CylinderMesh(1, 2, 8, 1, false)
	capped := CylinderMesh(1, 2, 8, 1, true)
	if capped.NumVertices() <= open.NumVertices() {
		t.Fatal("caps added no vertices")
	}
	// side normals are horizontal
	for i := 0; i < open.NumVertices(); i++ {
		if open.Normals[i].Y != 0 {
			t.Fatalf("side normal %d has vertical component", i)
		}
	}
	// cylinder spans -h/2..h/2
	for _, v := range capped.Vertices {
		if v.Y < -1-1e-9 || v.Y > 1+1e-9 {
			t.Fatalf("vertex outside height range: %+v", v)
		}
	}
}

func TestConeMeshApex(t *testing.T) {
	m := ConeMesh(1, 2, 8, 2)
	foundApex := false
	for _, v := range m.Vertices {
		if math.Abs(v.Y-1) < 1e-9 && math.Abs(v.X) < 1e-9 && math.Abs(v.Z) < 1e-9 {
			foundApex = true
		}
		if v.Y > 1+1e-9 || v.Y < -1-1e-9 {
			t.Fatalf("vertex outside cone: %+v", v)
		}
	}
	if !foundApex {
		t.Fatal("no apex vertex at the top")
	}
}
