package easel

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fanTriangles triangulates a polygon as a fan around its first point.
// Winding modes requiring full tessellation are resolved by backends
// that can; the fan covers the convex and star-shaped cases the shape
// helpers produce.
func fanTriangles(points []Vec3, out []Vec3) []Vec3 {
	for i := 1; i+1 < len(points); i++ {
		out = append(out, points[0], points[i], points[i+1])
	}
	return out
}

// DrawPolyline draws the polyline as a stroke with the current style.
func (g *Graphics) DrawPolyline(poly *Polyline) {
	if !g.ensure("DrawPolyline") {
		return
	}
	if poly.Size() < 2 {
		return
	}
	g.backend.StrokePolyline(poly.Points(), poly.IsClosed(), g.drawState())
}

// DrawPath draws each outline of the path, filled or stroked according
// to the path's own fill flag. A color set on the path overrides the
// style color for this draw.
func (g *Graphics) DrawPath(path *Path) {
	if !g.ensure("DrawPath") {
		return
	}
	st := g.drawState()
	if c, ok := path.PathColor(); ok {
		st.Style.Color = c
	}
	for _, outline := range path.Outlines() {
		pts := outline.Points()
		if len(pts) < 2 {
			continue
		}
		if path.IsFilled() {
			tris := fanTriangles(pts, nil)
			g.backend.FillTriangles(tris, nil, st)
		} else {
			g.backend.StrokePolyline(pts, outline.IsClosed(), st)
		}
	}
}

// DrawPathAt draws the path translated by (x, y).
func (g *Graphics) DrawPathAt(path *Path, x, y float64) {
	if !g.ensure("DrawPathAt") {
		return
	}
	g.PushMatrix()
	g.Translate(x, y, 0)
	g.DrawPath(path)
	g.PopMatrix()
}

// DrawMesh draws the mesh, deriving color, texture and normal usage
// from the mesh itself.
func (g *Graphics) DrawMesh(mesh *Mesh, mode RenderMode) {
	g.DrawMeshEx(mesh, mode, mesh.UsingColors(), mesh.UsingTextures(), mesh.UsingNormals())
}

// DrawMeshEx draws the mesh with explicit capability flags. Flags
// asking for data the mesh does not carry are ignored.
func (g *Graphics) DrawMeshEx(mesh *Mesh, mode RenderMode, useColors, useTextures, useNormals bool) {
	if !g.ensure("DrawMeshEx") {
		return
	}
	if mesh.NumVertices() == 0 {
		return
	}
	_ = useTextures
	_ = useNormals
	st := g.drawState()
	switch mode {
	case RenderPoints:
		g.backend.DrawPoints(mesh.Vertices, st)
	case RenderWireframe:
		g.strokeTriangles(mesh, st)
	default:
		verts, colors := g.resolveTriangles(mesh, useColors)
		if len(verts) == 0 {
			return
		}
		g.backend.FillTriangles(verts, colors, st)
	}
}

// resolveTriangles expands the mesh's primitive mode and indices into a
// flat triangle list, with per-vertex colors when requested.
func (g *Graphics) resolveTriangles(mesh *Mesh, useColors bool) ([]Vec3, []Color) {
	idx := mesh.triangleIndices()
	verts := make([]Vec3, 0, len(idx))
	var colors []Color
	useColors = useColors && len(mesh.Colors) > 0
	if useColors {
		colors = make([]Color, 0, len(idx))
	}
	for _, i := range idx {
		if int(i) >= len(mesh.Vertices) {
			continue
		}
		verts = append(verts, mesh.Vertices[i])
		if useColors {
			c := g.style.Color
			if int(i) < len(mesh.Colors) {
				c = mesh.Colors[i]
			}
			colors = append(colors, c)
		}
	}
	return verts, colors
}

func (g *Graphics) strokeTriangles(mesh *Mesh, st *DrawState) {
	idx := mesh.triangleIndices()
	tri := make([]Vec3, 3)
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		if int(a) >= len(mesh.Vertices) || int(b) >= len(mesh.Vertices) || int(c) >= len(mesh.Vertices) {
			continue
		}
		tri[0], tri[1], tri[2] = mesh.Vertices[a], mesh.Vertices[b], mesh.Vertices[c]
		g.backend.StrokePolyline(tri, true, st)
	}
}

// DrawNode draws the node's mesh and all its children, each under its
// own local transform.
func (g *Graphics) DrawNode(node *Node) {
	if !g.ensure("DrawNode") {
		return
	}
	g.PushMatrix()
	g.MultMatrix(node.LocalTransform())
	if node.Mesh != nil {
		g.DrawMesh(node.Mesh, RenderFill)
	}
	for _, child := range node.Children() {
		g.DrawNode(child)
	}
	g.PopMatrix()
}

// drawImage is the shared body of the typed image draws.
func drawImage[T PixelChannel](g *Graphics, img Image[T], x, y, z, w, h, sx, sy, sw, sh float64) {
	px := img.GetPixels()
	if px == nil || !px.IsAllocated() {
		return
	}
	if w <= 0 {
		w = img.Width()
	}
	if h <= 0 {
		h = img.Height()
	}
	if sw <= 0 {
		sw = float64(px.Width()) - sx
	}
	if sh <= 0 {
		sh = float64(px.Height()) - sy
	}
	var off Vec2
	if a, ok := any(img).(HasAnchor); ok {
		off = a.Offset(w, h)
	}
	pm := px.ToPixmap()
	g.backend.DrawPixels(pm, Rect(x-off.X, y-off.Y, w, h), Rect(sx, sy, sw, sh), z, g.drawState())
}

// DrawImage draws an 8-bit image.
func (g *Graphics) DrawImage(img Image[uint8], x, y, z, w, h, sx, sy, sw, sh float64) {
	if !g.ensure("DrawImage") {
		return
	}
	drawImage(g, img, x, y, z, w, h, sx, sy, sw, sh)
}

// DrawFloatImage draws a float image, tone-mapped to 8-bit.
func (g *Graphics) DrawFloatImage(img Image[float32], x, y, z, w, h, sx, sy, sw, sh float64) {
	if !g.ensure("DrawFloatImage") {
		return
	}
	drawImage(g, img, x, y, z, w, h, sx, sy, sw, sh)
}

// DrawShortImage draws a 16-bit image.
func (g *Graphics) DrawShortImage(img Image[uint16], x, y, z, w, h, sx, sy, sw, sh float64) {
	if !g.ensure("DrawShortImage") {
		return
	}
	drawImage(g, img, x, y, z, w, h, sx, sy, sw, sh)
}

// DrawVideo draws the current frame of a video source. Sources without
// a decoded frame draw nothing.
func (g *Graphics) DrawVideo(video VideoDraws, x, y, w, h float64) {
	if !g.ensure("DrawVideo") {
		return
	}
	px := video.GetPixels()
	if px == nil || !px.IsAllocated() {
		return
	}
	if w <= 0 {
		w = video.Width()
	}
	if h <= 0 {
		h = video.Height()
	}
	pm := px.ToPixmap()
	src := Rect(0, 0, float64(pm.Width()), float64(pm.Height()))
	g.backend.DrawPixels(pm, Rect(x, y, w, h), src, 0, g.drawState())
}

// DrawPixmap draws raw RGBA pixels.
func (g *Graphics) DrawPixmap(pm *Pixmap, x, y, z, w, h, sx, sy, sw, sh float64) {
	if !g.ensure("DrawPixmap") {
		return
	}
	if pm == nil {
		return
	}
	if w <= 0 {
		w = float64(pm.Width())
	}
	if h <= 0 {
		h = float64(pm.Height())
	}
	if sw <= 0 {
		sw = float64(pm.Width()) - sx
	}
	if sh <= 0 {
		sh = float64(pm.Height()) - sy
	}
	g.backend.DrawPixels(pm, Rect(x, y, w, h), Rect(sx, sy, sw, sh), z, g.drawState())
}

// --- shape helpers ---

// DrawLine draws a line segment with the current style.
func (g *Graphics) DrawLine(x1, y1, z1, x2, y2, z2 float64) {
	if !g.ensure("DrawLine") {
		return
	}
	pts := []Vec3{V3(x1, y1, z1), V3(x2, y2, z2)}
	g.backend.StrokePolyline(pts, false, g.drawState())
}

// DrawRectangle draws a rectangle. In center mode (x, y) addresses the
// rectangle's center rather than its corner.
func (g *Graphics) DrawRectangle(x, y, z, w, h float64) {
	if !g.ensure("DrawRectangle") {
		return
	}
	if g.style.RectMode == RectCenter {
		x -= w / 2
		y -= h / 2
	}
	pts := []Vec3{
		V3(x, y, z),
		V3(x+w, y, z),
		V3(x+w, y+h, z),
		V3(x, y+h, z),
	}
	st := g.drawState()
	if g.style.Fill == Filled {
		g.backend.FillTriangles(fanTriangles(pts, nil), nil, st)
	} else {
		g.backend.StrokePolyline(pts, true, st)
	}
}

// DrawTriangle draws a triangle.
func (g *Graphics) DrawTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64) {
	if !g.ensure("DrawTriangle") {
		return
	}
	pts := []Vec3{V3(x1, y1, z1), V3(x2, y2, z2), V3(x3, y3, z3)}
	st := g.drawState()
	if g.style.Fill == Filled {
		g.backend.FillTriangles(pts, nil, st)
	} else {
		g.backend.StrokePolyline(pts, true, st)
	}
}

// DrawCircle draws a circle at the current circle resolution.
func (g *Graphics) DrawCircle(x, y, z, radius float64) {
	g.DrawEllipse(x, y, z, radius*2, radius*2)
}

// DrawEllipse draws an axis-aligned ellipse with the given total width
// and height, centered on (x, y).
func (g *Graphics) DrawEllipse(x, y, z, width, height float64) {
	if !g.ensure("DrawEllipse") {
		return
	}
	res := g.style.CircleResolution
	if res < 3 {
		res = 3
	}
	rx, ry := width/2, height/2
	pts := make([]Vec3, res)
	for i := 0; i < res; i++ {
		a := 2 * math.Pi * float64(i) / float64(res)
		pts[i] = V3(x+rx*math.Cos(a), y+ry*math.Sin(a), z)
	}
	st := g.drawState()
	if g.style.Fill == Filled {
		g.backend.FillTriangles(fanTriangles(pts, nil), nil, st)
	} else {
		g.backend.StrokePolyline(pts, true, st)
	}
}

// DrawString draws text with the built-in bitmap font. In screen mode
// (x, y) are pixel coordinates unaffected by the model transform; in
// model mode the text origin moves with the current matrix.
func (g *Graphics) DrawString(text string, x, y, z float64) {
	if !g.ensure("DrawString") {
		return
	}
	if text == "" {
		return
	}
	switch g.style.BitmapText {
	case BitmapTextScreen:
		g.backend.DrawText(text, x, y, 0, g.screenState())
	default:
		g.backend.DrawText(text, x, y, z, g.drawState())
	}
}

// DrawStringFont draws text with a font face. The text is rasterized
// with the current color and blitted with (x, y) as the baseline
// origin.
func (g *Graphics) DrawStringFont(face font.Face, text string, x, y float64) {
	if !g.ensure("DrawStringFont") {
		return
	}
	if text == "" || face == nil {
		return
	}
	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(g.style.Color.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(text)

	pm := FromImage(dst)
	ox := x + float64(bounds.Min.X.Floor())
	oy := y + float64(bounds.Min.Y.Floor())
	src := Rect(0, 0, float64(w), float64(h))
	g.backend.DrawPixels(pm, Rect(ox, oy, float64(w), float64(h)), src, 0, g.drawState())
}
