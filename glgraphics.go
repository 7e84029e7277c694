package easel

import "fmt"

// GLGraphics extends Graphics with the GLRenderer capabilities:
// texture draws, vertex buffers with instancing, a fixed-function
// style lighting block, and framebuffer redirection. It requires a
// GLBackend.
type GLGraphics struct {
	Graphics

	gl GLBackend

	lighting *LightingState

	materials []Material
	shaders   []*Shader
	fbos      []*Fbo

	alphaMask    *Texture
	pointSprites bool
}

var _ GLRenderer = (*GLGraphics)(nil)

// NewGLGraphics creates a GLGraphics drawing through the given
// backend.
func NewGLGraphics(b GLBackend, opts ...GraphicsOption) *GLGraphics {
	g := &GLGraphics{gl: b, lighting: NewLightingState()}
	g.Graphics = *NewGraphics(b, opts...)
	// the solids helper must drive this instance, not the one the
	// embedded Graphics was copied from
	g.solids.r = g
	return g
}

// --- texture draws ---

// DrawTexture draws a subsection of a texture. Zero draw or source
// dimensions expand to the texture size.
func (g *GLGraphics) DrawTexture(tex *Texture, x, y, z, w, h, sx, sy, sw, sh float64) {
	if !g.ensure("DrawTexture") {
		return
	}
	if tex == nil || !tex.IsAllocated() {
		return
	}
	if w <= 0 {
		w = tex.Width()
	}
	if h <= 0 {
		h = tex.Height()
	}
	if sw <= 0 {
		sw = tex.Width() - sx
	}
	if sh <= 0 {
		sh = tex.Height() - sy
	}
	pm := tex.Pixmap()
	if pm == nil {
		return
	}
	g.gl.DrawPixels(pm, Rect(x, y, w, h), Rect(sx, sy, sw, sh), z, g.drawState())
}

// --- vertex buffers ---

// vboTriangles expands a vbo range into flat triangles, honoring the
// primitive mode.
func vboTriangles(vbo *Vbo, mode PrimitiveMode, idx []uint32) ([]Vec3, []Color) {
	m := &Mesh{
		Mode:      mode,
		Vertices:  vbo.Vertices(),
		Colors:    vbo.Colors(),
		Indices:   idx,
		TexCoords: vbo.TexCoords(),
		Normals:   vbo.Normals(),
	}
	tri := m.triangleIndices()
	verts := make([]Vec3, 0, len(tri))
	var colors []Color
	useColors := len(vbo.Colors()) > 0
	if useColors {
		colors = make([]Color, 0, len(tri))
	}
	for _, i := range tri {
		if int(i) >= vbo.NumVertices() {
			continue
		}
		verts = append(verts, vbo.Vertices()[i])
		if useColors {
			colors = append(colors, vbo.Colors()[i])
		}
	}
	return verts, colors
}

func rangeIndices(first, total, limit int) []uint32 {
	if first < 0 {
		first = 0
	}
	if first+total > limit {
		total = limit - first
	}
	if total <= 0 {
		return nil
	}
	idx := make([]uint32, total)
	for i := range idx {
		idx[i] = uint32(first + i)
	}
	return idx
}

// DrawVbo draws total vertices of the buffer starting at first.
func (g *GLGraphics) DrawVbo(vbo *Vbo, mode PrimitiveMode, first, total int) {
	if !g.ensure("DrawVbo") {
		return
	}
	idx := rangeIndices(first, total, vbo.NumVertices())
	verts, colors := vboTriangles(vbo, mode, idx)
	if len(verts) == 0 {
		return
	}
	g.gl.FillTriangles(verts, colors, g.drawState())
}

// DrawElements draws amt indices of the buffer starting at
// offsetElements.
func (g *GLGraphics) DrawElements(vbo *Vbo, mode PrimitiveMode, amt, offsetElements int) {
	if !g.ensure("DrawElements") {
		return
	}
	all := vbo.Indices()
	if offsetElements < 0 || offsetElements >= len(all) {
		return
	}
	if offsetElements+amt > len(all) {
		amt = len(all) - offsetElements
	}
	verts, colors := vboTriangles(vbo, mode, all[offsetElements:offsetElements+amt])
	if len(verts) == 0 {
		return
	}
	g.gl.FillTriangles(verts, colors, g.drawState())
}

// DrawInstanced draws a vertex range primCount times.
func (g *GLGraphics) DrawInstanced(vbo *Vbo, mode PrimitiveMode, first, total, primCount int) {
	if !g.ensure("DrawInstanced") {
		return
	}
	if primCount < 1 {
		return
	}
	idx := rangeIndices(first, total, vbo.NumVertices())
	verts, colors := vboTriangles(vbo, mode, idx)
	if len(verts) == 0 {
		return
	}
	g.gl.FillTrianglesInstanced(verts, colors, primCount, g.drawState())
}

// DrawElementsInstanced draws an indexed range primCount times.
func (g *GLGraphics) DrawElementsInstanced(vbo *Vbo, mode PrimitiveMode, amt, primCount int) {
	if !g.ensure("DrawElementsInstanced") {
		return
	}
	if primCount < 1 {
		return
	}
	all := vbo.Indices()
	if amt > len(all) {
		amt = len(all)
	}
	verts, colors := vboTriangles(vbo, mode, all[:amt])
	if len(verts) == 0 {
		return
	}
	g.gl.FillTrianglesInstanced(verts, colors, primCount, g.drawState())
}

// DrawMeshInstanced draws a mesh primCount times.
func (g *GLGraphics) DrawMeshInstanced(mesh *Mesh, mode RenderMode, primCount int) {
	if !g.ensure("DrawMeshInstanced") {
		return
	}
	if primCount < 1 || mesh.NumVertices() == 0 {
		return
	}
	if mode != RenderFill {
		// point and wireframe instancing degenerate to repeated draws
		for i := 0; i < primCount; i++ {
			g.DrawMesh(mesh, mode)
		}
		return
	}
	verts, colors := g.resolveTriangles(mesh, mesh.UsingColors())
	if len(verts) == 0 {
		return
	}
	g.gl.FillTrianglesInstanced(verts, colors, primCount, g.drawState())
}

// --- texture units ---

// EnableTextureTarget binds a texture to a texture unit.
func (g *GLGraphics) EnableTextureTarget(tex *Texture, textureLocation int) {
	g.gl.BindTextureUnit(tex, textureLocation)
}

// DisableTextureTarget unbinds a texture unit.
func (g *GLGraphics) DisableTextureTarget(textureLocation int) {
	g.gl.UnbindTextureUnit(textureLocation)
}

// SetAlphaMaskTexture sets a texture used as alpha mask on unit 1.
func (g *GLGraphics) SetAlphaMaskTexture(tex *Texture) {
	g.alphaMask = tex
	g.gl.BindTextureUnit(tex, 1)
}

// DisableAlphaMask removes the alpha mask texture.
func (g *GLGraphics) DisableAlphaMask() {
	if g.alphaMask == nil {
		return
	}
	g.alphaMask = nil
	g.gl.UnbindTextureUnit(1)
}

// EnablePointSprites enables textured point sprites.
func (g *GLGraphics) EnablePointSprites() { g.pointSprites = true }

// DisablePointSprites disables textured point sprites.
func (g *GLGraphics) DisablePointSprites() { g.pointSprites = false }

// --- lighting ---

func (g *GLGraphics) pushLighting() {
	g.gl.SetLighting(g.lighting)
}

// EnableLighting enables lighting.
func (g *GLGraphics) EnableLighting() {
	g.lighting.Enabled = true
	g.pushLighting()
}

// DisableLighting disables lighting.
func (g *GLGraphics) DisableLighting() {
	g.lighting.Enabled = false
	g.pushLighting()
}

// LightingEnabled reports whether lighting is enabled.
func (g *GLGraphics) LightingEnabled() bool { return g.lighting.Enabled }

// EnableSeparateSpecularLight computes specular after texturing.
func (g *GLGraphics) EnableSeparateSpecularLight() {
	g.lighting.SeparateSpecular = true
	g.pushLighting()
}

// DisableSeparateSpecularLight restores combined specular.
func (g *GLGraphics) DisableSeparateSpecularLight() {
	g.lighting.SeparateSpecular = false
	g.pushLighting()
}

// SetSmoothLighting selects smooth or flat shading.
func (g *GLGraphics) SetSmoothLighting(smooth bool) {
	g.lighting.Smooth = smooth
	g.pushLighting()
}

// SetGlobalAmbientColor sets the scene-wide ambient term.
func (g *GLGraphics) SetGlobalAmbientColor(c Color) {
	g.lighting.GlobalAmbient = c
	g.pushLighting()
}

func (g *GLGraphics) withLight(index int, f func(*Light)) {
	l := g.lighting.light(index)
	if l == nil {
		return
	}
	f(l)
	g.pushLighting()
}

// EnableLight enables the light at the given index.
func (g *GLGraphics) EnableLight(lightIndex int) {
	g.withLight(lightIndex, func(l *Light) { l.Enabled = true })
}

// DisableLight disables the light at the given index.
func (g *GLGraphics) DisableLight(lightIndex int) {
	g.withLight(lightIndex, func(l *Light) { l.Enabled = false })
}

// SetLightSpotlightCutOff sets the spot cutoff angle in degrees.
func (g *GLGraphics) SetLightSpotlightCutOff(lightIndex int, spotCutOff float64) {
	g.withLight(lightIndex, func(l *Light) { l.SpotCutOff = spotCutOff })
}

// SetLightSpotConcentration sets the spot falloff exponent.
func (g *GLGraphics) SetLightSpotConcentration(lightIndex int, exponent float64) {
	g.withLight(lightIndex, func(l *Light) { l.SpotConcentration = exponent })
}

// SetLightAttenuation sets the distance attenuation coefficients.
func (g *GLGraphics) SetLightAttenuation(lightIndex int, constant, linear, quadratic float64) {
	g.withLight(lightIndex, func(l *Light) {
		l.AttenuationConstant = constant
		l.AttenuationLinear = linear
		l.AttenuationQuadratic = quadratic
	})
}

// SetLightAmbientColor sets the light's ambient color.
func (g *GLGraphics) SetLightAmbientColor(lightIndex int, c Color) {
	g.withLight(lightIndex, func(l *Light) { l.Ambient = c })
}

// SetLightDiffuseColor sets the light's diffuse color.
func (g *GLGraphics) SetLightDiffuseColor(lightIndex int, c Color) {
	g.withLight(lightIndex, func(l *Light) { l.Diffuse = c })
}

// SetLightSpecularColor sets the light's specular color.
func (g *GLGraphics) SetLightSpecularColor(lightIndex int, c Color) {
	g.withLight(lightIndex, func(l *Light) { l.Specular = c })
}

// SetLightPosition sets the light's position. A w of 0 makes the light
// directional.
func (g *GLGraphics) SetLightPosition(lightIndex int, position Vec4) {
	g.withLight(lightIndex, func(l *Light) { l.Position = position })
}

// SetLightSpotDirection sets the spot direction.
func (g *GLGraphics) SetLightSpotDirection(lightIndex int, direction Vec4) {
	g.withLight(lightIndex, func(l *Light) { l.SpotDirection = direction })
}

// --- readback ---

// SaveScreen reads back a region of the render target into pixels.
// Backends without readback leave pixels untouched.
func (g *GLGraphics) SaveScreen(x, y, w, h int, pixels *Pixels[uint8]) {
	pm := g.gl.ReadPixels(x, y, w, h)
	if pm == nil || pixels == nil {
		return
	}
	pixels.Allocate(pm.Width(), pm.Height(), PixelFormatRGBA)
	copy(pixels.Data(), pm.Data())
}

// SaveFullViewport reads back the full viewport.
func (g *GLGraphics) SaveFullViewport(pixels *Pixels[uint8]) {
	vp := g.CurrentViewport()
	g.SaveScreen(int(vp.X), int(vp.Y), int(vp.W), int(vp.H), pixels)
}

// --- binds ---

// BindMaterial applies a material. Materials nest in LIFO order.
func (g *GLGraphics) BindMaterial(material Material) {
	if !g.ensure("BindMaterial") {
		return
	}
	if material == nil {
		return
	}
	g.materials = append(g.materials, material)
	material.Begin(g)
}

// UnbindMaterial removes the most recently bound material. Unbinding
// out of order records ErrBindMismatch.
func (g *GLGraphics) UnbindMaterial(material Material) {
	if !g.ensure("UnbindMaterial") {
		return
	}
	if len(g.materials) == 0 || g.materials[len(g.materials)-1] != material {
		g.recordErr(fmt.Errorf("UnbindMaterial: %w", ErrBindMismatch))
		return
	}
	g.materials = g.materials[:len(g.materials)-1]
	material.End(g)
}

// BindShader makes a shader current.
func (g *GLGraphics) BindShader(shader *Shader) {
	if !g.ensure("BindShader") {
		return
	}
	if shader == nil {
		return
	}
	g.shaders = append(g.shaders, shader)
}

// UnbindShader restores the previous shader. Unbinding out of order
// records ErrBindMismatch.
func (g *GLGraphics) UnbindShader(shader *Shader) {
	if !g.ensure("UnbindShader") {
		return
	}
	if len(g.shaders) == 0 || g.shaders[len(g.shaders)-1] != shader {
		g.recordErr(fmt.Errorf("UnbindShader: %w", ErrBindMismatch))
		return
	}
	g.shaders = g.shaders[:len(g.shaders)-1]
}

// BindTexture binds a texture to a unit.
func (g *GLGraphics) BindTexture(texture *Texture, location int) {
	if !g.ensure("BindTexture") {
		return
	}
	g.gl.BindTextureUnit(texture, location)
}

// UnbindTexture unbinds a texture unit.
func (g *GLGraphics) UnbindTexture(texture *Texture, location int) {
	if !g.ensure("UnbindTexture") {
		return
	}
	g.gl.UnbindTextureUnit(location)
}

// BindVideo binds a video source's texture planes to consecutive
// units.
func (g *GLGraphics) BindVideo(video VideoDraws) {
	if !g.ensure("BindVideo") {
		return
	}
	for i, plane := range video.GetTexturePlanes() {
		g.gl.BindTextureUnit(plane, i)
	}
}

// UnbindVideo unbinds a video source's texture planes.
func (g *GLGraphics) UnbindVideo(video VideoDraws) {
	if !g.ensure("UnbindVideo") {
		return
	}
	for i := range video.GetTexturePlanes() {
		g.gl.UnbindTextureUnit(i)
	}
}

// BindFbo redirects drawing into a framebuffer. Fbo binds nest.
func (g *GLGraphics) BindFbo(fbo *Fbo) {
	if !g.ensure("BindFbo") {
		return
	}
	if fbo == nil {
		return
	}
	g.fbos = append(g.fbos, fbo)
	g.gl.SetTargetFbo(fbo)
}

// UnbindFbo restores the previous draw target. Unbinding a
// framebuffer that is not the innermost bound one records
// ErrBindMismatch.
func (g *GLGraphics) UnbindFbo(fbo *Fbo) {
	if !g.ensure("UnbindFbo") {
		return
	}
	if len(g.fbos) == 0 || g.fbos[len(g.fbos)-1] != fbo {
		g.recordErr(fmt.Errorf("UnbindFbo: %w", ErrBindMismatch))
		return
	}
	g.fbos = g.fbos[:len(g.fbos)-1]
	if len(g.fbos) > 0 {
		g.gl.SetTargetFbo(g.fbos[len(g.fbos)-1])
	} else {
		g.gl.SetTargetFbo(nil)
	}
}

// BindForBlitting binds two framebuffers for a cross-buffer copy and
// performs the blit.
func (g *GLGraphics) BindForBlitting(src, dst *Fbo, attachmentPoint int) {
	if !g.ensure("BindForBlitting") {
		return
	}
	if src == nil || dst == nil {
		return
	}
	g.gl.Blit(src, dst, attachmentPoint)
}

// BeginFbo starts drawing into a framebuffer. With setupPerspective
// the viewport and screen projection are switched to the framebuffer's
// dimensions, restored by EndFbo.
func (g *GLGraphics) BeginFbo(fbo *Fbo, setupPerspective bool) {
	if !g.ensure("BeginFbo") {
		return
	}
	if fbo == nil {
		return
	}
	g.PushView()
	g.BindFbo(fbo)
	if setupPerspective {
		g.Viewport(Rect(0, 0, float64(fbo.Width()), float64(fbo.Height())))
		g.SetupScreenPerspective(float64(fbo.Width()), float64(fbo.Height()), 0, 0, 0)
	}
}

// EndFbo finishes drawing into a framebuffer and restores the saved
// view state.
func (g *GLGraphics) EndFbo(fbo *Fbo) {
	if !g.ensure("EndFbo") {
		return
	}
	g.UnbindFbo(fbo)
	g.PopView()
}
