package easel

import "fmt"

// viewSave captures everything PushView must restore.
type viewSave struct {
	viewport   Rectangle
	vflip      bool
	projection Mat4
	modelview  Mat4
	view       Mat4
}

// Graphics is the reference Renderer implementation. It keeps all
// immediate-mode state (matrix stacks, viewport stack, style stack,
// orientation) on the CPU and hands finished geometry to a Backend.
//
// A Graphics is not safe for concurrent use. Drive it from a single
// goroutine, typically the one that owns the output surface.
type Graphics struct {
	backend Backend

	rendering bool
	err       error

	matrixMode   MatrixMode
	matrixStacks [numMatrixModes][]Mat4
	viewMatrix   Mat4

	orientation Orientation
	orientMat   Mat4
	vflip       bool
	handedness  Handedness

	viewStack []viewSave
	viewport  Rectangle

	style      Style
	styleStack []Style

	bgAuto    bool
	depthTest bool
	antiAlias bool

	bound []*Camera

	path   *Path
	solids *Solids3D
}

var _ Renderer = (*Graphics)(nil)

// NewGraphics creates a Graphics drawing through the given backend.
func NewGraphics(b Backend, opts ...GraphicsOption) *Graphics {
	g := &Graphics{
		backend:   b,
		style:     DefaultStyle(),
		vflip:     true,
		bgAuto:    true,
		antiAlias: true,
		orientMat: Mat4Identity(),
	}
	for i := range g.matrixStacks {
		g.matrixStacks[i] = []Mat4{Mat4Identity()}
	}
	g.viewport = Rect(0, 0, float64(b.Width()), float64(b.Height()))
	g.path = NewPath()
	g.solids = newSolids3D(g)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Type reports which backend this Graphics draws through.
func (g *Graphics) Type() string { return g.backend.Name() }

// Err returns the first structural error recorded since the last
// ClearErr. Structural errors come from misuse of the state API, for
// example popping an empty matrix stack or drawing outside a
// StartRender/FinishRender bracket.
func (g *Graphics) Err() error { return g.err }

// ClearErr discards any recorded structural error.
func (g *Graphics) ClearErr() { g.err = nil }

func (g *Graphics) recordErr(err error) {
	Logger().Error("easel: graphics state violation", "backend", g.backend.Name(), "err", err)
	if g.err == nil {
		g.err = err
	}
}

// ensure reports whether a frame bracket is open, recording an error
// when it is not. Every draw and state-stack operation calls it.
func (g *Graphics) ensure(op string) bool {
	if !g.rendering {
		g.recordErr(fmt.Errorf("%s: %w", op, ErrNotRendering))
		return false
	}
	return true
}

// StartRender opens a frame. It resets the matrix, viewport and style
// stacks to a known baseline and, if background auto-clearing is on,
// clears the target to the background color.
func (g *Graphics) StartRender() {
	if g.rendering {
		g.recordErr(fmt.Errorf("StartRender: %w", ErrAlreadyRendering))
		return
	}
	g.rendering = true
	g.backend.Begin()

	for i := range g.matrixStacks {
		g.matrixStacks[i] = g.matrixStacks[i][:0]
		g.matrixStacks[i] = append(g.matrixStacks[i], Mat4Identity())
	}
	g.viewMatrix = Mat4Identity()
	g.matrixMode = MatrixModelView
	g.viewStack = g.viewStack[:0]
	g.styleStack = g.styleStack[:0]
	g.bound = g.bound[:0]

	g.viewport = g.NativeViewport()
	g.SetupScreenPerspective(-1, -1, 0, 0, 0)
	if g.bgAuto {
		g.backend.Clear(g.style.Background)
	}
}

// FinishRender closes the frame. Any push left unmatched inside the
// bracket is recorded as ErrRenderUnbalanced and the stacks are
// truncated back to their baseline, so the next frame starts clean.
func (g *Graphics) FinishRender() {
	if !g.rendering {
		g.recordErr(fmt.Errorf("FinishRender: %w", ErrNotRendering))
		return
	}
	for mode, stack := range g.matrixStacks {
		if len(stack) != 1 {
			g.recordErr(fmt.Errorf("FinishRender: %w: matrix stack %d depth %d", ErrRenderUnbalanced, mode, len(stack)))
			g.matrixStacks[mode] = stack[:1]
		}
	}
	if len(g.viewStack) != 0 {
		g.recordErr(fmt.Errorf("FinishRender: %w: %d unmatched PushView", ErrRenderUnbalanced, len(g.viewStack)))
		g.viewStack = g.viewStack[:0]
	}
	if len(g.styleStack) != 0 {
		g.recordErr(fmt.Errorf("FinishRender: %w: %d unmatched PushStyle", ErrRenderUnbalanced, len(g.styleStack)))
		g.styleStack = g.styleStack[:0]
	}
	if len(g.bound) != 0 {
		g.recordErr(fmt.Errorf("FinishRender: %w: %d unmatched Bind", ErrRenderUnbalanced, len(g.bound)))
		g.bound = g.bound[:0]
	}
	g.backend.End()
	g.rendering = false
}

// --- matrix stacks ---

func (g *Graphics) stack() *[]Mat4 {
	return &g.matrixStacks[g.matrixMode]
}

func (g *Graphics) top(mode MatrixMode) *Mat4 {
	s := g.matrixStacks[mode]
	return &s[len(s)-1]
}

// PushMatrix duplicates the top of the active matrix stack.
func (g *Graphics) PushMatrix() {
	if !g.ensure("PushMatrix") {
		return
	}
	s := g.stack()
	*s = append(*s, (*s)[len(*s)-1])
}

// PopMatrix restores the previous matrix. Popping the bottom identity
// records ErrMatrixStackEmpty and leaves the stack untouched.
func (g *Graphics) PopMatrix() {
	if !g.ensure("PopMatrix") {
		return
	}
	s := g.stack()
	if len(*s) <= 1 {
		g.recordErr(fmt.Errorf("PopMatrix: %w", ErrMatrixStackEmpty))
		return
	}
	*s = (*s)[:len(*s)-1]
}

// CurrentMatrix returns the top of the given matrix stack.
func (g *Graphics) CurrentMatrix(mode MatrixMode) Mat4 {
	return *g.top(mode)
}

// CurrentOrientationMatrix returns the rotation applied for the active
// screen orientation.
func (g *Graphics) CurrentOrientationMatrix() Mat4 { return g.orientMat }

// CurrentViewMatrix returns the matrix loaded by LoadViewMatrix, or
// identity when none has been set this frame.
func (g *Graphics) CurrentViewMatrix() Mat4 { return g.viewMatrix }

// CurrentNormalMatrix returns the inverse transpose of the modelview,
// suitable for transforming normals.
func (g *Graphics) CurrentNormalMatrix() Mat4 {
	return g.top(MatrixModelView).Invert().Transpose()
}

func (g *Graphics) mult(m Mat4) {
	t := g.top(g.matrixMode)
	*t = t.Mul(m)
}

// Translate moves subsequent geometry by (x, y, z). Transform calls
// compose so that the most recent call affects geometry first.
func (g *Graphics) Translate(x, y, z float64) {
	if !g.ensure("Translate") {
		return
	}
	g.mult(Mat4Translate(x, y, z))
}

// Scale scales subsequent geometry.
func (g *Graphics) Scale(x, y, z float64) {
	if !g.ensure("Scale") {
		return
	}
	g.mult(Mat4Scale(x, y, z))
}

// Rotate rotates by degrees around the z axis.
func (g *Graphics) Rotate(degrees float64) { g.RotateZ(degrees) }

// RotateAxis rotates by degrees around an arbitrary axis.
func (g *Graphics) RotateAxis(degrees float64, axis Vec3) {
	if !g.ensure("RotateAxis") {
		return
	}
	g.mult(Mat4RotateAxis(axis, radians(degrees)))
}

// RotateX rotates by degrees around the x axis.
func (g *Graphics) RotateX(degrees float64) {
	if !g.ensure("RotateX") {
		return
	}
	g.mult(Mat4RotateX(radians(degrees)))
}

// RotateY rotates by degrees around the y axis.
func (g *Graphics) RotateY(degrees float64) {
	if !g.ensure("RotateY") {
		return
	}
	g.mult(Mat4RotateY(radians(degrees)))
}

// RotateZ rotates by degrees around the z axis.
func (g *Graphics) RotateZ(degrees float64) {
	if !g.ensure("RotateZ") {
		return
	}
	g.mult(Mat4RotateZ(radians(degrees)))
}

// SetMatrixMode selects which stack Translate, Rotate, Scale, Load and
// Mult operate on.
func (g *Graphics) SetMatrixMode(mode MatrixMode) {
	if mode < 0 || int(mode) >= numMatrixModes {
		return
	}
	g.matrixMode = mode
}

// LoadIdentityMatrix replaces the top of the active stack with identity.
func (g *Graphics) LoadIdentityMatrix() {
	if !g.ensure("LoadIdentityMatrix") {
		return
	}
	*g.top(g.matrixMode) = Mat4Identity()
}

// LoadMatrix replaces the top of the active stack with m.
func (g *Graphics) LoadMatrix(m Mat4) {
	if !g.ensure("LoadMatrix") {
		return
	}
	*g.top(g.matrixMode) = m
}

// MultMatrix right-multiplies the top of the active stack by m.
func (g *Graphics) MultMatrix(m Mat4) {
	if !g.ensure("MultMatrix") {
		return
	}
	g.mult(m)
}

// LoadViewMatrix sets the view matrix and loads it into the modelview
// stack, discarding any model transform on the current level.
func (g *Graphics) LoadViewMatrix(m Mat4) {
	if !g.ensure("LoadViewMatrix") {
		return
	}
	g.viewMatrix = m
	*g.top(MatrixModelView) = m
}

// MultViewMatrix right-multiplies both the view matrix and the current
// modelview by m.
func (g *Graphics) MultViewMatrix(m Mat4) {
	if !g.ensure("MultViewMatrix") {
		return
	}
	g.viewMatrix = g.viewMatrix.Mul(m)
	t := g.top(MatrixModelView)
	*t = t.Mul(m)
}

// --- viewport and projection ---

// NativeViewport returns the full backend target in device orientation,
// ignoring any screen rotation.
func (g *Graphics) NativeViewport() Rectangle {
	return Rect(0, 0, float64(g.backend.Width()), float64(g.backend.Height()))
}

// CurrentViewport returns the active viewport in oriented coordinates.
// Under a 90 degree orientation the width and height swap relative to
// the native viewport.
func (g *Graphics) CurrentViewport() Rectangle {
	vp := g.viewport
	switch g.orientation {
	case Orientation90Left, Orientation90Right:
		vp.W, vp.H = vp.H, vp.W
	}
	return vp
}

// ViewportWidth returns the oriented viewport width.
func (g *Graphics) ViewportWidth() int { return int(g.CurrentViewport().W) }

// ViewportHeight returns the oriented viewport height.
func (g *Graphics) ViewportHeight() int { return int(g.CurrentViewport().H) }

// IsVFlipped reports whether the y axis points down in world space.
func (g *Graphics) IsVFlipped() bool { return g.vflip }

// Viewport sets the active viewport rectangle in device coordinates.
func (g *Graphics) Viewport(vp Rectangle) {
	if !g.ensure("Viewport") {
		return
	}
	if vp.W <= 0 {
		vp.W = float64(g.backend.Width())
	}
	if vp.H <= 0 {
		vp.H = float64(g.backend.Height())
	}
	g.viewport = vp
}

// ViewportArea sets the viewport from components. A width or height of
// zero or less selects the full backend dimension.
func (g *Graphics) ViewportArea(x, y, w, h float64, vflip bool) {
	if !g.ensure("ViewportArea") {
		return
	}
	g.vflip = vflip
	g.Viewport(Rect(x, y, w, h))
}

// PushView saves the viewport, flip state and the projection, modelview
// and view matrices.
func (g *Graphics) PushView() {
	if !g.ensure("PushView") {
		return
	}
	g.viewStack = append(g.viewStack, viewSave{
		viewport:   g.viewport,
		vflip:      g.vflip,
		projection: *g.top(MatrixProjection),
		modelview:  *g.top(MatrixModelView),
		view:       g.viewMatrix,
	})
}

// PopView restores the state saved by the matching PushView.
func (g *Graphics) PopView() {
	if !g.ensure("PopView") {
		return
	}
	if len(g.viewStack) == 0 {
		g.recordErr(fmt.Errorf("PopView: %w", ErrViewportStackEmpty))
		return
	}
	v := g.viewStack[len(g.viewStack)-1]
	g.viewStack = g.viewStack[:len(g.viewStack)-1]
	g.viewport = v.viewport
	g.vflip = v.vflip
	*g.top(MatrixProjection) = v.projection
	*g.top(MatrixModelView) = v.modelview
	g.viewMatrix = v.view
}

// SetupScreenPerspective loads a perspective projection in which one
// world unit maps to one pixel at z=0. Negative width or height picks
// the oriented viewport size. A fov of zero or less defaults to 60
// degrees. Zero near and far clip distances derive from the eye
// distance: near is a tenth of it and far ten times it.
func (g *Graphics) SetupScreenPerspective(width, height, fov, nearDist, farDist float64) {
	if !g.ensure("SetupScreenPerspective") {
		return
	}
	vp := g.CurrentViewport()
	if width < 0 {
		width = vp.W
	}
	if height < 0 {
		height = vp.H
	}
	if fov <= 0 {
		fov = 60
	}
	dist := eyeDistance(height, fov)
	if nearDist == 0 {
		nearDist = dist / 10
	}
	if farDist == 0 {
		farDist = dist * 10
	}

	proj := Mat4Perspective(radians(fov), width/height, nearDist, farDist)
	if g.vflip {
		proj = Mat4Scale(1, -1, 1).Mul(proj)
	}
	*g.top(MatrixProjection) = proj.Mul(g.zFlip())

	view := Mat4LookAt(
		V3(width/2, height/2, dist),
		V3(width/2, height/2, 0),
		V3(0, 1, 0),
	)
	g.viewMatrix = view
	*g.top(MatrixModelView) = view
}

// SetupScreenOrtho loads an orthographic projection mapping world
// units 1:1 to pixels. Zero near and far expand to a symmetric range
// derived from the viewport height.
func (g *Graphics) SetupScreenOrtho(width, height, nearDist, farDist float64) {
	if !g.ensure("SetupScreenOrtho") {
		return
	}
	vp := g.CurrentViewport()
	if width < 0 {
		width = vp.W
	}
	if height < 0 {
		height = vp.H
	}
	dist := eyeDistance(height, 60)
	if nearDist == 0 {
		nearDist = -dist * 10
	}
	if farDist == 0 {
		farDist = dist * 10
	}

	var proj Mat4
	if g.vflip {
		proj = Mat4Ortho(0, width, height, 0, nearDist, farDist)
	} else {
		proj = Mat4Ortho(0, width, 0, height, nearDist, farDist)
	}
	*g.top(MatrixProjection) = proj.Mul(g.zFlip())

	g.viewMatrix = Mat4Identity()
	*g.top(MatrixModelView) = Mat4Identity()
}

// zFlip mirrors the z axis for left-handed coordinates.
func (g *Graphics) zFlip() Mat4 {
	if g.handedness == LeftHanded {
		return Mat4Scale(1, 1, -1)
	}
	return Mat4Identity()
}

// SetOrientation sets the screen rotation and y axis direction. The
// orientation is absolute, not cumulative; two successive 180 degree
// settings therefore do not cancel, while composing the 180 degree
// rotation matrix with itself does yield identity.
func (g *Graphics) SetOrientation(o Orientation, vflip bool) {
	g.orientation = o
	g.vflip = vflip
	switch o {
	case Orientation90Left:
		g.orientMat = Mat4RotateZ(radians(90))
	case Orientation90Right:
		g.orientMat = Mat4RotateZ(radians(-90))
	case Orientation180:
		g.orientMat = Mat4RotateZ(radians(180))
	default:
		g.orientMat = Mat4Identity()
	}
}

// SetCoordHandedness selects the z axis direction used by the screen
// projection helpers.
func (g *Graphics) SetCoordHandedness(h Handedness) { g.handedness = h }

// CoordHandedness returns the active coordinate handedness.
func (g *Graphics) CoordHandedness() Handedness { return g.handedness }

// --- camera binding ---

// Bind routes subsequent drawing through the camera: the viewport is
// set, the camera projection is loaded and the camera view matrix
// becomes the modelview base. The prior state is saved and restored by
// the matching Unbind.
func (g *Graphics) Bind(camera *Camera, viewport Rectangle) {
	if !g.ensure("Bind") {
		return
	}
	g.PushView()
	g.Viewport(viewport)
	*g.top(MatrixProjection) = camera.ProjectionMatrix(g.CurrentViewport())
	g.LoadViewMatrix(camera.ViewMatrix())
	g.bound = append(g.bound, camera)
}

// Unbind ends the most recent Bind. Unbinding a camera that is not the
// innermost bound one records ErrBindMismatch.
func (g *Graphics) Unbind(camera *Camera) {
	if !g.ensure("Unbind") {
		return
	}
	if len(g.bound) == 0 || g.bound[len(g.bound)-1] != camera {
		g.recordErr(fmt.Errorf("Unbind: %w", ErrBindMismatch))
		return
	}
	g.bound = g.bound[:len(g.bound)-1]
	g.PopView()
}

// --- setup ---

// SetupGraphicDefaults resets the drawing style to its defaults.
func (g *Graphics) SetupGraphicDefaults() {
	bg := g.style.Background
	g.style = DefaultStyle()
	g.style.Background = bg
	g.path.SetCurveResolution(g.style.CurveResolution)
	g.path.SetWindingMode(g.style.Winding)
}

// SetupScreen loads the default screen perspective for the current
// viewport.
func (g *Graphics) SetupScreen() {
	g.SetupScreenPerspective(-1, -1, 0, 0, 0)
}

// --- style ---

// Style returns a copy of the active style.
func (g *Graphics) Style() Style { return g.style }

// SetStyle replaces the active style wholesale.
func (g *Graphics) SetStyle(s Style) {
	g.style = s
	g.path.SetCurveResolution(s.CurveResolution)
	g.path.SetWindingMode(s.Winding)
}

// PushStyle saves the active style.
func (g *Graphics) PushStyle() {
	if !g.ensure("PushStyle") {
		return
	}
	g.styleStack = append(g.styleStack, g.style)
}

// PopStyle restores the style saved by the matching PushStyle.
func (g *Graphics) PopStyle() {
	if !g.ensure("PopStyle") {
		return
	}
	if len(g.styleStack) == 0 {
		g.recordErr(fmt.Errorf("PopStyle: %w", ErrStyleStackEmpty))
		return
	}
	g.style = g.styleStack[len(g.styleStack)-1]
	g.styleStack = g.styleStack[:len(g.styleStack)-1]
}

func (g *Graphics) SetRectMode(mode RectMode)  { g.style.RectMode = mode }
func (g *Graphics) RectMode() RectMode         { return g.style.RectMode }
func (g *Graphics) SetFillMode(mode FillMode)  { g.style.Fill = mode }
func (g *Graphics) FillMode() FillMode         { return g.style.Fill }
func (g *Graphics) SetLineWidth(width float64) { g.style.LineWidth = width }
func (g *Graphics) SetDepthTest(enabled bool)  { g.depthTest = enabled }
func (g *Graphics) SetBlendMode(mode BlendMode) {
	g.style.Blend = mode
}
func (g *Graphics) SetLineSmoothing(smooth bool) { g.style.Smoothing = smooth }
func (g *Graphics) SetCircleResolution(res int) {
	if res < 3 {
		res = 3
	}
	g.style.CircleResolution = res
}
func (g *Graphics) SetCurveResolution(res int) {
	if res < 1 {
		res = 1
	}
	g.style.CurveResolution = res
	g.path.SetCurveResolution(res)
}
func (g *Graphics) SetPolyWindingMode(mode WindingMode) {
	g.style.Winding = mode
	g.path.SetWindingMode(mode)
}
func (g *Graphics) EnableAntiAliasing()  { g.antiAlias = true }
func (g *Graphics) DisableAntiAliasing() { g.antiAlias = false }

// SetColor sets the color used by subsequent draws.
func (g *Graphics) SetColor(c Color) { g.style.Color = c }

// SetColorRGB sets the draw color from 0..255 components.
func (g *Graphics) SetColorRGB(r, gr, b int) { g.style.Color = RGB8(r, gr, b) }

// SetColorRGBA sets the draw color from 0..255 components with alpha.
func (g *Graphics) SetColorRGBA(r, gr, b, a int) { g.style.Color = RGBA8(r, gr, b, a) }

// SetColorGray sets an opaque gray draw color from a 0..255 brightness.
func (g *Graphics) SetColorGray(brightness int) { g.style.Color = Gray(brightness) }

// SetHexColor sets the draw color from a 0xRRGGBB value, keeping the
// current alpha.
func (g *Graphics) SetHexColor(hex int) {
	a := g.style.Color.A
	c := Hex(hex)
	c.A = a
	g.style.Color = c
}

// SetBitmapTextMode selects how DrawString positions text.
func (g *Graphics) SetBitmapTextMode(mode BitmapTextMode) { g.style.BitmapText = mode }

// --- background ---

// BackgroundColor returns the clear color.
func (g *Graphics) BackgroundColor() Color { return g.style.Background }

// SetBackgroundColor sets the clear color without clearing.
func (g *Graphics) SetBackgroundColor(c Color) { g.style.Background = c }

// Background sets the clear color and clears the target immediately.
func (g *Graphics) Background(c Color) {
	if !g.ensure("Background") {
		return
	}
	g.style.Background = c
	g.backend.Clear(c)
}

// SetBackgroundAuto controls whether StartRender clears automatically.
func (g *Graphics) SetBackgroundAuto(auto bool) { g.bgAuto = auto }

// BackgroundAuto reports whether StartRender clears automatically.
func (g *Graphics) BackgroundAuto() bool { return g.bgAuto }

// Clear clears the target to the background color.
func (g *Graphics) Clear() {
	if !g.ensure("Clear") {
		return
	}
	g.backend.Clear(g.style.Background)
}

// ClearWithColor clears the target to the given color.
func (g *Graphics) ClearWithColor(c Color) {
	if !g.ensure("ClearWithColor") {
		return
	}
	g.backend.Clear(c)
}

// ClearAlpha resets the alpha channel of the target to fully opaque.
func (g *Graphics) ClearAlpha() {
	if !g.ensure("ClearAlpha") {
		return
	}
	g.backend.ClearAlpha()
}

// Path returns the scratch path shared by the shape helpers. Its curve
// resolution and winding follow the active style.
func (g *Graphics) Path() *Path { return g.path }

// Solids returns the 3d primitive helper bound to this Graphics.
func (g *Graphics) Solids() *Solids3D { return g.solids }

// drawState snapshots everything a backend needs to place geometry.
func (g *Graphics) drawState() *DrawState {
	proj := *g.top(MatrixProjection)
	mv := *g.top(MatrixModelView)
	return &DrawState{
		Transform: proj.Mul(g.orientMat).Mul(mv),
		Viewport:  g.viewport,
		VFlip:     g.vflip,
		Style:     g.style,
	}
}

// screenState is a DrawState that maps world units straight to pixels,
// used for screen-space bitmap text.
func (g *Graphics) screenState() *DrawState {
	vp := g.CurrentViewport()
	var proj Mat4
	if g.vflip {
		proj = Mat4Ortho(0, vp.W, vp.H, 0, -1, 1)
	} else {
		proj = Mat4Ortho(0, vp.W, 0, vp.H, -1, 1)
	}
	return &DrawState{
		Transform: proj,
		Viewport:  g.viewport,
		VFlip:     g.vflip,
		Style:     g.style,
	}
}
