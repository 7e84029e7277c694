package easel

import (
	"errors"
	"math"
	"testing"
)

// recorder is a Backend that captures draw calls for inspection.
type recorder struct {
	width, height int

	fills      [][]Vec3
	fillColors [][]Color
	strokes    [][]Vec3
	points     [][]Vec3
	states     []DrawState
	texts      []string
	clears     int
}

func newRecorder(w, h int) *recorder { return &recorder{width: w, height: h} }

func (r *recorder) Name() string   { return "recorder" }
func (r *recorder) Width() int     { return r.width }
func (r *recorder) Height() int    { return r.height }
func (r *recorder) Begin()         {}
func (r *recorder) End()           {}
func (r *recorder) Clear(c Color)  { r.clears++ }
func (r *recorder) ClearAlpha()    {}

func (r *recorder) FillTriangles(verts []Vec3, colors []Color, st *DrawState) {
	r.fills = append(r.fills, append([]Vec3(nil), verts...))
	r.fillColors = append(r.fillColors, append([]Color(nil), colors...))
	r.states = append(r.states, *st)
}

func (r *recorder) StrokePolyline(points []Vec3, closed bool, st *DrawState) {
	r.strokes = append(r.strokes, append([]Vec3(nil), points...))
	r.states = append(r.states, *st)
}

func (r *recorder) DrawPoints(points []Vec3, st *DrawState) {
	r.points = append(r.points, append([]Vec3(nil), points...))
	r.states = append(r.states, *st)
}

func (r *recorder) DrawPixels(pm *Pixmap, dst Rectangle, src Rectangle, z float64, st *DrawState) {
	r.states = append(r.states, *st)
}

func (r *recorder) DrawText(text string, x, y, z float64, st *DrawState) {
	r.texts = append(r.texts, text)
	r.states = append(r.states, *st)
}

func (r *recorder) ReadPixels(x, y, w, h int) *Pixmap { return nil }

func (r *recorder) lastState(t *testing.T) DrawState {
	t.Helper()
	if len(r.states) == 0 {
		t.Fatal("no draw calls recorded")
	}
	return r.states[len(r.states)-1]
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDrawOutsideBracket(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.DrawLine(0, 0, 0, 10, 10, 0)
	if !errors.Is(g.Err(), ErrNotRendering) {
		t.Fatalf("Err() = %v, want ErrNotRendering", g.Err())
	}
	g.ClearErr()
	if g.Err() != nil {
		t.Fatalf("Err() after ClearErr = %v, want nil", g.Err())
	}
}

func TestNestedStartRender(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.StartRender()
	g.StartRender()
	if !errors.Is(g.Err(), ErrAlreadyRendering) {
		t.Fatalf("Err() = %v, want ErrAlreadyRendering", g.Err())
	}
	g.FinishRender()
}

func TestPopEmptyStacks(t *testing.T) {
	tests := []struct {
		name string
		pop  func(*Graphics)
		want error
	}{
		{"matrix", (*Graphics).PopMatrix, ErrMatrixStackEmpty},
		{"view", (*Graphics).PopView, ErrViewportStackEmpty},
		{"style", (*Graphics).PopStyle, ErrStyleStackEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraphics(newRecorder(100, 100))
			g.StartRender()
			tt.pop(g)
			if !errors.Is(g.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", g.Err(), tt.want)
			}
			g.ClearErr()
			g.FinishRender()
		})
	}
}

func TestFinishRenderUnbalanced(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.StartRender()
	g.PushMatrix()
	g.PushStyle()
	g.FinishRender()
	if !errors.Is(g.Err(), ErrRenderUnbalanced) {
		t.Fatalf("Err() = %v, want ErrRenderUnbalanced", g.Err())
	}

	// stacks must be truncated so the next frame starts clean
	g.ClearErr()
	g.StartRender()
	g.FinishRender()
	if g.Err() != nil {
		t.Fatalf("Err() after clean frame = %v, want nil", g.Err())
	}
}

func TestPushPopMatrixRestores(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.StartRender()
	before := g.CurrentMatrix(MatrixModelView)
	g.PushMatrix()
	g.Translate(30, 40, 0)
	g.Rotate(45)
	g.PopMatrix()
	after := g.CurrentMatrix(MatrixModelView)
	for i := range before {
		if !near(before[i], after[i]) {
			t.Fatalf("matrix element %d = %v after pop, want %v", i, after[i], before[i])
		}
	}
	g.FinishRender()
}

func TestScreenPerspectiveMapsPixels(t *testing.T) {
	rec := newRecorder(200, 100)
	g := NewGraphics(rec)
	g.StartRender()
	defer g.FinishRender()

	g.DrawLine(0, 0, 0, 1, 1, 0)
	st := rec.lastState(t)
	tests := []struct {
		world    Vec3
		wantX    float64
		wantY    float64
	}{
		{V3(0, 0, 0), 0, 0},
		{V3(200, 100, 0), 200, 100},
		{V3(100, 50, 0), 100, 50},
		{V3(40, 80, 0), 40, 80},
	}
	for _, tt := range tests {
		got := st.Project(tt.world)
		if !near(got.X, tt.wantX) || !near(got.Y, tt.wantY) {
			t.Errorf("Project(%v) = (%v, %v), want (%v, %v)",
				tt.world, got.X, got.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestTranslateMovesDevicePosition(t *testing.T) {
	rec := newRecorder(200, 200)
	g := NewGraphics(rec)
	g.StartRender()
	g.Translate(100, 50, 0)
	g.DrawLine(0, 0, 0, 1, 0, 0)
	st := rec.lastState(t)
	got := st.Project(V3(0, 0, 0))
	if !near(got.X, 100) || !near(got.Y, 50) {
		t.Fatalf("origin after Translate(100,50) = (%v, %v), want (100, 50)", got.X, got.Y)
	}
	g.FinishRender()
}

func TestTransformCompositionOrder(t *testing.T) {
	// the most recent call must affect geometry first: translate then
	// scale means the scale happens around the translated origin
	rec := newRecorder(200, 200)
	g := NewGraphics(rec)
	g.StartRender()
	g.Translate(100, 100, 0)
	g.Scale(2, 2, 1)
	g.DrawLine(0, 0, 0, 1, 0, 0)
	st := rec.lastState(t)
	got := st.Project(V3(10, 0, 0))
	if !near(got.X, 120) || !near(got.Y, 100) {
		t.Fatalf("point (10,0) = (%v, %v), want (120, 100)", got.X, got.Y)
	}
	g.FinishRender()
}

func TestSetupScreenOrthoMapsPixels(t *testing.T) {
	rec := newRecorder(160, 90)
	g := NewGraphics(rec)
	g.StartRender()
	g.SetupScreenOrtho(-1, -1, 0, 0)
	g.DrawLine(0, 0, 0, 1, 0, 0)
	st := rec.lastState(t)
	if got := st.Project(V3(0, 0, 0)); !near(got.X, 0) || !near(got.Y, 0) {
		t.Errorf("Project(0,0) = (%v, %v), want (0, 0)", got.X, got.Y)
	}
	if got := st.Project(V3(160, 90, 0)); !near(got.X, 160) || !near(got.Y, 90) {
		t.Errorf("Project(160,90) = (%v, %v), want (160, 90)", got.X, got.Y)
	}
	g.FinishRender()
}

func TestOrientationSwapsViewport(t *testing.T) {
	g := NewGraphics(newRecorder(200, 100))
	tests := []struct {
		o     Orientation
		wantW float64
		wantH float64
	}{
		{OrientationDefault, 200, 100},
		{Orientation180, 200, 100},
		{Orientation90Left, 100, 200},
		{Orientation90Right, 100, 200},
	}
	for _, tt := range tests {
		g.SetOrientation(tt.o, true)
		vp := g.CurrentViewport()
		if vp.W != tt.wantW || vp.H != tt.wantH {
			t.Errorf("orientation %v: viewport %vx%v, want %vx%v",
				tt.o, vp.W, vp.H, tt.wantW, tt.wantH)
		}
	}
}

func TestOrientation180SelfInverse(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.SetOrientation(Orientation180, true)
	m := g.CurrentOrientationMatrix()
	if !m.Mul(m).IsIdentity() {
		t.Fatal("two 180 degree rotations do not compose to identity")
	}
}

func TestBindUnbindMismatch(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	camA := NewCamera()
	camB := NewCamera()
	g.StartRender()
	g.Bind(camA, Rect(0, 0, 100, 100))
	g.Unbind(camB)
	if !errors.Is(g.Err(), ErrBindMismatch) {
		t.Fatalf("Err() = %v, want ErrBindMismatch", g.Err())
	}
	g.ClearErr()
	g.Unbind(camA)
	if g.Err() != nil {
		t.Fatalf("Err() after matching unbind = %v, want nil", g.Err())
	}
	g.FinishRender()
}

func TestBindRestoresMatrices(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	cam := NewCamera()
	cam.Position = V3(0, 0, 500)
	g.StartRender()
	proj := g.CurrentMatrix(MatrixProjection)
	g.Bind(cam, Rect(0, 0, 100, 100))
	bound := g.CurrentMatrix(MatrixProjection)
	same := true
	for i := range proj {
		if !near(proj[i], bound[i]) {
			same = false
		}
	}
	if same {
		t.Fatal("Bind did not replace the projection")
	}
	g.Unbind(cam)
	restored := g.CurrentMatrix(MatrixProjection)
	for i := range proj {
		if !near(proj[i], restored[i]) {
			t.Fatalf("projection element %d = %v after unbind, want %v", i, restored[i], proj[i])
		}
	}
	g.FinishRender()
}

func TestStyleStackRestores(t *testing.T) {
	g := NewGraphics(newRecorder(100, 100))
	g.StartRender()
	g.SetColor(ColorRed)
	g.PushStyle()
	g.SetColor(ColorBlue)
	g.SetLineWidth(4)
	g.PopStyle()
	if got := g.Style().Color; got != ColorRed {
		t.Errorf("color after PopStyle = %v, want red", got)
	}
	if got := g.Style().LineWidth; got != 1 {
		t.Errorf("line width after PopStyle = %v, want 1", got)
	}
	g.FinishRender()
}

func TestRectModeCenter(t *testing.T) {
	rec := newRecorder(100, 100)
	g := NewGraphics(rec)
	g.StartRender()
	g.SetRectMode(RectCenter)
	g.DrawRectangle(50, 50, 0, 20, 10)
	if len(rec.fills) == 0 {
		t.Fatal("no fill recorded")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for _, v := range rec.fills[0] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
	}
	if !near(minX, 40) || !near(minY, 45) {
		t.Fatalf("rect corner = (%v, %v), want (40, 45)", minX, minY)
	}
	g.FinishRender()
}

func TestDrawMeshModes(t *testing.T) {
	mesh := NewMesh()
	mesh.Mode = TriangleFan
	mesh.AddVertex(V3(0, 0, 0))
	mesh.AddVertex(V3(10, 0, 0))
	mesh.AddVertex(V3(10, 10, 0))
	mesh.AddVertex(V3(0, 10, 0))

	t.Run("points", func(t *testing.T) {
		rec := newRecorder(100, 100)
		g := NewGraphics(rec)
		g.StartRender()
		g.DrawMesh(mesh, RenderPoints)
		if len(rec.points) != 1 || len(rec.points[0]) != 4 {
			t.Fatalf("points draws = %v, want one batch of 4", rec.points)
		}
		g.FinishRender()
	})

	t.Run("fill expands fan", func(t *testing.T) {
		rec := newRecorder(100, 100)
		g := NewGraphics(rec)
		g.StartRender()
		g.DrawMesh(mesh, RenderFill)
		if len(rec.fills) != 1 {
			t.Fatalf("fill batches = %d, want 1", len(rec.fills))
		}
		// a 4-vertex fan resolves to 2 triangles
		if got := len(rec.fills[0]); got != 6 {
			t.Fatalf("fill vertices = %d, want 6", got)
		}
		g.FinishRender()
	})

	t.Run("wireframe strokes triangles", func(t *testing.T) {
		rec := newRecorder(100, 100)
		g := NewGraphics(rec)
		g.StartRender()
		g.DrawMesh(mesh, RenderWireframe)
		if len(rec.strokes) != 2 {
			t.Fatalf("stroke batches = %d, want 2", len(rec.strokes))
		}
		g.FinishRender()
	})
}

func TestMeshColorsFollowIndices(t *testing.T) {
	mesh := NewMesh()
	mesh.AddVertex(V3(0, 0, 0))
	mesh.AddVertex(V3(10, 0, 0))
	mesh.AddVertex(V3(0, 10, 0))
	mesh.AddColor(ColorRed)
	mesh.AddColor(ColorGreen)
	mesh.AddColor(ColorBlue)

	rec := newRecorder(100, 100)
	g := NewGraphics(rec)
	g.StartRender()
	g.DrawMesh(mesh, RenderFill)
	if len(rec.fillColors) != 1 || len(rec.fillColors[0]) != 3 {
		t.Fatalf("fill colors = %v, want 3", rec.fillColors)
	}
	if rec.fillColors[0][1] != ColorGreen {
		t.Fatalf("vertex 1 color = %v, want green", rec.fillColors[0][1])
	}
	g.FinishRender()
}

func TestBackgroundAuto(t *testing.T) {
	rec := newRecorder(100, 100)
	g := NewGraphics(rec)
	g.StartRender()
	g.FinishRender()
	if rec.clears != 1 {
		t.Fatalf("clears = %d, want 1", rec.clears)
	}
	g.SetBackgroundAuto(false)
	g.StartRender()
	g.FinishRender()
	if rec.clears != 1 {
		t.Fatalf("clears = %d after disabling auto, want 1", rec.clears)
	}
}

func TestDrawNodeAppliesHierarchy(t *testing.T) {
	rec := newRecorder(200, 200)
	g := NewGraphics(rec)

	parent := NewNode()
	parent.Position = V3(50, 0, 0)
	child := NewNode()
	child.Position = V3(0, 30, 0)
	child.Mesh = NewMesh()
	child.Mesh.AddVertex(V3(0, 0, 0))
	child.Mesh.AddVertex(V3(1, 0, 0))
	child.Mesh.AddVertex(V3(0, 1, 0))
	child.SetParent(parent)

	g.StartRender()
	g.DrawNode(parent)
	st := rec.lastState(t)
	got := st.Project(V3(0, 0, 0))
	if !near(got.X, 50) || !near(got.Y, 30) {
		t.Fatalf("child origin = (%v, %v), want (50, 30)", got.X, got.Y)
	}
	g.FinishRender()
}

func TestPathDraw(t *testing.T) {
	rec := newRecorder(100, 100)
	g := NewGraphics(rec)
	p := g.Path()
	p.Clear()
	p.MoveTo(10, 10, 0)
	p.LineTo(90, 10, 0)
	p.LineTo(90, 90, 0)
	p.Close()

	g.StartRender()
	g.DrawPath(p)
	if len(rec.fills) != 1 {
		t.Fatalf("fill batches = %d, want 1", len(rec.fills))
	}
	p.SetFilled(false)
	g.DrawPath(p)
	if len(rec.strokes) != 1 {
		t.Fatalf("stroke batches = %d, want 1", len(rec.strokes))
	}
	g.FinishRender()
}

func TestViewportSentinelDimensions(t *testing.T) {
	g := NewGraphics(newRecorder(300, 200))
	g.StartRender()
	g.ViewportArea(10, 10, -1, -1, true)
	vp := g.CurrentViewport()
	if vp.W != 300 || vp.H != 200 {
		t.Fatalf("viewport = %vx%v, want 300x200", vp.W, vp.H)
	}
	g.FinishRender()
}
