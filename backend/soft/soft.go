// Package soft is a pure-Go software backend for the easel renderer.
// It rasterizes into a Pixmap with no GPU involvement, which makes it
// the reference backend for headless rendering and tests. It also
// implements the GL backend hooks, so both Graphics and GLGraphics can
// run on it.
package soft

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/easelgl/easel"
	"github.com/easelgl/easel/backend"
)

func init() {
	backend.Register("soft", func(width, height int) easel.Backend {
		return New(width, height)
	})
}

// Backend rasterizes into a CPU pixmap.
type Backend struct {
	primary *easel.Pixmap
	target  *easel.Pixmap

	targetFbo *easel.Fbo
	units     map[int]*easel.Texture
	lighting  easel.LightingState
}

var (
	_ easel.Backend   = (*Backend)(nil)
	_ easel.GLBackend = (*Backend)(nil)
)

// New creates a software backend with the given target size.
func New(width, height int) *Backend {
	pm := easel.NewPixmap(width, height)
	return &Backend{
		primary: pm,
		target:  pm,
		units:   make(map[int]*easel.Texture),
	}
}

// Name returns "soft".
func (b *Backend) Name() string { return "soft" }

// Width returns the target width in pixels.
func (b *Backend) Width() int { return b.primary.Width() }

// Height returns the target height in pixels.
func (b *Backend) Height() int { return b.primary.Height() }

// Pixmap returns the primary render target for inspection or saving.
func (b *Backend) Pixmap() *easel.Pixmap { return b.primary }

func (b *Backend) Begin() {}
func (b *Backend) End()   {}

// Clear fills the active target with a color.
func (b *Backend) Clear(c easel.Color) { b.target.Clear(c) }

// ClearAlpha resets the target's alpha channel to opaque.
func (b *Backend) ClearAlpha() {
	data := b.target.Data()
	for i := 3; i < len(data); i += 4 {
		data[i] = 0xff
	}
}

// blend writes a color at (x, y) honoring the draw state's blend mode.
func (b *Backend) blend(x, y int, c easel.Color, st *easel.DrawState) {
	if x < 0 || y < 0 || x >= b.target.Width() || y >= b.target.Height() {
		return
	}
	switch st.Style.Blend {
	case easel.BlendDisabled:
		b.target.SetPixel(x, y, c)
	case easel.BlendAdd:
		dst := b.target.GetPixel(x, y)
		b.target.SetPixel(x, y, easel.RGBA(
			dst.R+c.R*c.A,
			dst.G+c.G*c.A,
			dst.B+c.B*c.A,
			dst.A,
		))
	case easel.BlendMultiply:
		dst := b.target.GetPixel(x, y)
		b.target.SetPixel(x, y, easel.RGBA(dst.R*c.R, dst.G*c.G, dst.B*c.B, dst.A))
	default: // alpha
		if c.A >= 1 {
			b.target.SetPixel(x, y, c)
			return
		}
		if c.A <= 0 {
			return
		}
		dst := b.target.GetPixel(x, y)
		b.target.SetPixel(x, y, dst.Lerp(c, c.A))
	}
}

// sampler interpolates a color across a triangle from barycentric
// weights.
type sampler func(w0, w1, w2 float64) easel.Color

// fillTriangle rasterizes one device-space triangle.
func (b *Backend) fillTriangle(p0, p1, p2 easel.Vec3, sample sampler, st *easel.DrawState) {
	minX := int(math.Floor(min3(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max3(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min3(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max3(p0.Y, p1.Y, p2.Y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= b.target.Width() {
		maxX = b.target.Width() - 1
	}
	if maxY >= b.target.Height() {
		maxY = b.target.Height() - 1
	}

	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := easel.V3(float64(x)+0.5, float64(y)+0.5, 0)
			w0 := edge(p1, p2, p) * inv
			w1 := edge(p2, p0, p) * inv
			w2 := edge(p0, p1, p) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b.blend(x, y, sample(w0, w1, w2), st)
		}
	}
}

func edge(a, bb, c easel.Vec3) float64 {
	return (bb.X-a.X)*(c.Y-a.Y) - (bb.Y-a.Y)*(c.X-a.X)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// FillTriangles rasterizes world-space triangle triples.
func (b *Backend) FillTriangles(verts []easel.Vec3, colors []easel.Color, st *easel.DrawState) {
	flat := st.Style.Color
	for i := 0; i+2 < len(verts); i += 3 {
		p0 := st.Project(verts[i])
		p1 := st.Project(verts[i+1])
		p2 := st.Project(verts[i+2])
		var sample sampler
		if colors != nil && i+2 < len(colors) {
			c0, c1, c2 := colors[i], colors[i+1], colors[i+2]
			sample = func(w0, w1, w2 float64) easel.Color {
				return easel.RGBA(
					c0.R*w0+c1.R*w1+c2.R*w2,
					c0.G*w0+c1.G*w1+c2.G*w2,
					c0.B*w0+c1.B*w1+c2.B*w2,
					c0.A*w0+c1.A*w1+c2.A*w2,
				)
			}
		} else {
			sample = func(_, _, _ float64) easel.Color { return flat }
		}
		b.fillTriangle(p0, p1, p2, sample, st)
	}
}

// FillTrianglesInstanced draws the triangles primCount times. Without
// per-instance attributes the instances coincide, so one pass covers
// opaque draws; additive blends accumulate per instance.
func (b *Backend) FillTrianglesInstanced(verts []easel.Vec3, colors []easel.Color, primCount int, st *easel.DrawState) {
	passes := 1
	if st.Style.Blend == easel.BlendAdd {
		passes = primCount
	}
	for i := 0; i < passes; i++ {
		b.FillTriangles(verts, colors, st)
	}
}

// line draws a device-space segment with the style line width.
func (b *Backend) line(p0, p1 easel.Vec3, st *easel.DrawState) {
	c := st.Style.Color
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		b.thickPoint(p0.X, p0.Y, c, st)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.thickPoint(p0.X+dx*t, p0.Y+dy*t, c, st)
	}
}

func (b *Backend) thickPoint(x, y float64, c easel.Color, st *easel.DrawState) {
	lw := st.Style.LineWidth
	if lw <= 1 {
		b.blend(int(x), int(y), c, st)
		return
	}
	r := lw / 2
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			if ox*ox+oy*oy <= r*r {
				b.blend(int(x+ox), int(y+oy), c, st)
			}
		}
	}
}

// StrokePolyline rasterizes a world-space line strip.
func (b *Backend) StrokePolyline(points []easel.Vec3, closed bool, st *easel.DrawState) {
	if len(points) < 2 {
		return
	}
	prev := st.Project(points[0])
	for _, p := range points[1:] {
		cur := st.Project(p)
		b.line(prev, cur, st)
		prev = cur
	}
	if closed {
		b.line(prev, st.Project(points[0]), st)
	}
}

// DrawPoints rasterizes isolated world-space points.
func (b *Backend) DrawPoints(points []easel.Vec3, st *easel.DrawState) {
	for _, p := range points {
		d := st.Project(p)
		b.thickPoint(d.X, d.Y, st.Style.Color, st)
	}
}

// DrawPixels blits a pixmap subsection to the world-space rectangle
// dst. The rectangle's corners go through the full transform, so the
// blit rotates and scales with the current matrix.
func (b *Backend) DrawPixels(pm *easel.Pixmap, dst easel.Rectangle, src easel.Rectangle, z float64, st *easel.DrawState) {
	if pm == nil || pm.Width() == 0 || pm.Height() == 0 {
		return
	}
	src = src.Standardized()
	if src.W <= 0 || src.H <= 0 {
		return
	}
	tint := st.Style.Color

	// corner positions and their texture coordinates
	p := [4]easel.Vec3{
		st.Project(easel.V3(dst.X, dst.Y, z)),
		st.Project(easel.V3(dst.X+dst.W, dst.Y, z)),
		st.Project(easel.V3(dst.X+dst.W, dst.Y+dst.H, z)),
		st.Project(easel.V3(dst.X, dst.Y+dst.H, z)),
	}
	uv := [4][2]float64{
		{src.X, src.Y},
		{src.X + src.W, src.Y},
		{src.X + src.W, src.Y + src.H},
		{src.X, src.Y + src.H},
	}
	tri := func(a, bb, c int) {
		sample := func(w0, w1, w2 float64) easel.Color {
			u := uv[a][0]*w0 + uv[bb][0]*w1 + uv[c][0]*w2
			v := uv[a][1]*w0 + uv[bb][1]*w1 + uv[c][1]*w2
			texel := pm.GetPixel(clampInt(int(u), pm.Width()-1), clampInt(int(v), pm.Height()-1))
			return easel.RGBA(texel.R*tint.R, texel.G*tint.G, texel.B*tint.B, texel.A*tint.A)
		}
		b.fillTriangle(p[a], p[bb], p[c], sample, st)
	}
	tri(0, 1, 2)
	tri(0, 2, 3)
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// DrawText draws text with the built-in 7x13 bitmap font. The anchor
// position goes through the transform; glyphs are blitted unscaled, as
// bitmap fonts are.
func (b *Backend) DrawText(text string, x, y, z float64, st *easel.DrawState) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	h := face.Metrics().Height.Ceil()
	if w <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Src = image.NewUniform(st.Style.Color.Color())
	d.Dot = fixed.P(0, face.Metrics().Ascent.Ceil())
	d.DrawString(text)

	anchor := st.Project(easel.V3(x, y, z))
	ox := int(anchor.X)
	oy := int(anchor.Y) - face.Metrics().Ascent.Ceil()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			c := easel.FromColor(img.RGBAAt(ix, iy))
			if c.A == 0 {
				continue
			}
			b.blend(ox+ix, oy+iy, c, st)
		}
	}
}

// ReadPixels copies a region of the active target.
func (b *Backend) ReadPixels(x, y, w, h int) *easel.Pixmap {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := easel.NewPixmap(w, h)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			sx, sy := x+ix, y+iy
			if sx < 0 || sy < 0 || sx >= b.target.Width() || sy >= b.target.Height() {
				continue
			}
			out.SetPixel(ix, iy, b.target.GetPixel(sx, sy))
		}
	}
	return out
}

// SetLighting stores the lighting block. The software rasterizer is
// unlit; the state is kept so callers can verify what was uploaded.
func (b *Backend) SetLighting(state *easel.LightingState) {
	if state != nil {
		b.lighting = *state
	}
}

// Lighting returns the most recently uploaded lighting block.
func (b *Backend) Lighting() easel.LightingState { return b.lighting }

// BindTextureUnit binds a texture to a unit.
func (b *Backend) BindTextureUnit(tex *easel.Texture, location int) {
	b.units[location] = tex
}

// UnbindTextureUnit unbinds a unit.
func (b *Backend) UnbindTextureUnit(location int) {
	delete(b.units, location)
}

// BoundTexture returns the texture bound to a unit, if any.
func (b *Backend) BoundTexture(location int) *easel.Texture { return b.units[location] }

// SetTargetFbo redirects drawing into the framebuffer's first
// attachment, or back to the primary target when fbo is nil.
func (b *Backend) SetTargetFbo(fbo *easel.Fbo) {
	b.targetFbo = fbo
	if fbo == nil {
		b.target = b.primary
		return
	}
	if t := fbo.Attachment(0); t != nil && t.Pixmap() != nil {
		b.target = t.Pixmap()
	}
}

// Blit copies a framebuffer attachment into another framebuffer.
func (b *Backend) Blit(src, dst *easel.Fbo, attachmentPoint int) {
	st := src.Attachment(attachmentPoint)
	dt := dst.Attachment(attachmentPoint)
	if st == nil || dt == nil || st.Pixmap() == nil || dt.Pixmap() == nil {
		return
	}
	sp, dp := st.Pixmap(), dt.Pixmap()
	w := sp.Width()
	if dp.Width() < w {
		w = dp.Width()
	}
	h := sp.Height()
	if dp.Height() < h {
		h = dp.Height()
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dp.SetPixel(x, y, sp.GetPixel(x, y))
		}
	}
}
