package easel

import "golang.org/x/image/font"

// Renderer is the backend-agnostic immediate-mode drawing contract.
// All drawing, transform, and style operations go through a Renderer;
// callers never talk to a backend directly.
//
// Draw and transform calls are only valid inside a
// StartRender/FinishRender bracket. One render session may be active
// per renderer instance at a time; nesting is not permitted. State
// pushed inside the bracket must be popped before FinishRender.
// Violations of either rule are precondition errors: the call becomes a
// no-op and the violation is logged and recorded (see Err).
type Renderer interface {
	// Type returns the renderer type name, for example "soft".
	Type() string

	// StartRender begins a render session.
	StartRender()

	// FinishRender ends the render session, verifying that all stacks
	// pushed since StartRender are balanced.
	FinishRender()

	// Err returns the first structural error recorded since the last
	// ClearErr: stack underflow, unbalanced FinishRender, bind/unbind
	// mismatch, or a call outside the render bracket.
	Err() error

	// ClearErr discards the recorded error.
	ClearErr()

	// DrawPolyline draws a polyline with the current style.
	DrawPolyline(poly *Polyline)

	// DrawPath draws a path shape.
	DrawPath(path *Path)

	// DrawPathAt draws a path shape translated by (x, y).
	DrawPathAt(path *Path, x, y float64)

	// DrawMesh draws a mesh, deriving color, texture, and normal usage
	// from the mesh's own declared capabilities.
	DrawMesh(mesh *Mesh, mode RenderMode)

	// DrawMeshEx draws a mesh with explicit capability flags.
	DrawMeshEx(mesh *Mesh, mode RenderMode, useColors, useTextures, useNormals bool)

	// DrawNode draws a node hierarchy, applying each node's transform.
	DrawNode(node *Node)

	// DrawImage draws an 8-bit image. (sx, sy, sw, sh) select a
	// subsection of the source.
	DrawImage(img Image[uint8], x, y, z, w, h, sx, sy, sw, sh float64)

	// DrawFloatImage draws a float image.
	DrawFloatImage(img Image[float32], x, y, z, w, h, sx, sy, sw, sh float64)

	// DrawShortImage draws a 16-bit image.
	DrawShortImage(img Image[uint16], x, y, z, w, h, sx, sy, sw, sh float64)

	// DrawVideo draws the current frame of a drawable video source.
	DrawVideo(video VideoDraws, x, y, w, h float64)

	// DrawPixmap draws raw RGBA pixels.
	DrawPixmap(pm *Pixmap, x, y, z, w, h, sx, sy, sw, sh float64)

	// PushView saves the current viewport and matrix state.
	PushView()

	// PopView restores the viewport and matrix state saved by the
	// matching PushView.
	PopView()

	// Viewport sets the active viewport rectangle.
	Viewport(rect Rectangle)

	// ViewportArea sets the active viewport from components. A width or
	// height of -1 (or 0) selects the current render target dimensions.
	ViewportArea(x, y, width, height float64, vflip bool)

	// SetupScreenPerspective loads a perspective projection calibrated
	// so the z=0 plane maps 1:1 to pixels. Width and height of -1
	// select the current viewport dimensions; fov of 0 selects 60
	// degrees; near or far of 0 select defaults derived from the
	// viewport size (eye distance / 10 and * 10).
	SetupScreenPerspective(width, height, fov, nearDist, farDist float64)

	// SetupScreenOrtho loads an orthographic projection mapping world
	// units 1:1 to pixels. Sentinels as in SetupScreenPerspective.
	SetupScreenOrtho(width, height, nearDist, farDist float64)

	// SetOrientation composes a rotation/flip between authored content
	// space and the physical output surface.
	SetOrientation(orientation Orientation, vFlip bool)

	// CurrentViewport returns the viewport with orientation and
	// vertical flip applied.
	CurrentViewport() Rectangle

	// NativeViewport returns the viewport without orientation applied.
	NativeViewport() Rectangle

	// ViewportWidth returns the current (oriented) viewport width.
	ViewportWidth() int

	// ViewportHeight returns the current (oriented) viewport height.
	ViewportHeight() int

	// IsVFlipped reports whether the current viewport is vertically
	// flipped.
	IsVFlipped() bool

	// SetCoordHandedness sets the renderer-wide coordinate handedness.
	// This is not part of the stacked state.
	SetCoordHandedness(handedness Handedness)

	// CoordHandedness returns the renderer-wide coordinate handedness.
	CoordHandedness() Handedness

	// PushMatrix saves the current matrix of the active matrix mode.
	PushMatrix()

	// PopMatrix restores the matrix saved by the matching PushMatrix.
	PopMatrix()

	// CurrentMatrix returns the current matrix for a matrix mode.
	CurrentMatrix(mode MatrixMode) Mat4

	// CurrentOrientationMatrix returns the orientation matrix composed
	// by SetOrientation.
	CurrentOrientationMatrix() Mat4

	// Translate composes a translation onto the current matrix.
	Translate(x, y, z float64)

	// Scale composes a scale onto the current matrix.
	Scale(x, y, z float64)

	// Rotate composes a rotation of degrees about the z axis onto the
	// current matrix. Alias of RotateZ.
	Rotate(degrees float64)

	// RotateAxis composes a rotation of degrees about an arbitrary axis
	// onto the current matrix.
	RotateAxis(degrees float64, axis Vec3)

	// RotateX composes a rotation about the x axis.
	RotateX(degrees float64)

	// RotateY composes a rotation about the y axis.
	RotateY(degrees float64)

	// RotateZ composes a rotation about the z axis.
	RotateZ(degrees float64)

	// SetMatrixMode selects which matrix stack transform calls operate
	// on.
	SetMatrixMode(mode MatrixMode)

	// LoadIdentityMatrix replaces the current matrix with identity.
	LoadIdentityMatrix()

	// LoadMatrix replaces the current matrix.
	LoadMatrix(m Mat4)

	// MultMatrix right-multiplies the current matrix by m.
	MultMatrix(m Mat4)

	// LoadViewMatrix replaces the view matrix.
	LoadViewMatrix(m Mat4)

	// MultViewMatrix right-multiplies the view matrix by m.
	MultViewMatrix(m Mat4)

	// CurrentViewMatrix returns the current view matrix.
	CurrentViewMatrix() Mat4

	// CurrentNormalMatrix returns the inverse-transpose of the current
	// model-view matrix.
	CurrentNormalMatrix() Mat4

	// Bind pushes the camera's view and projection matrices, derived
	// from the given viewport, onto the matrix stacks. Must be paired
	// with Unbind in strict LIFO order relative to other binds.
	Bind(camera *Camera, viewport Rectangle)

	// Unbind restores the matrices replaced by the matching Bind.
	Unbind(camera *Camera)

	// SetupGraphicDefaults restores the default style.
	SetupGraphicDefaults()

	// SetupScreen restores the default screen perspective.
	SetupScreen()

	// SetRectMode sets corner or center rectangle addressing.
	SetRectMode(mode RectMode)

	// RectMode returns the current rectangle addressing mode.
	RectMode() RectMode

	// SetFillMode selects filled or outline drawing.
	SetFillMode(fill FillMode)

	// FillMode returns the current fill mode.
	FillMode() FillMode

	// SetLineWidth sets the width used when drawing lines.
	SetLineWidth(width float64)

	// SetDepthTest enables or disables depth testing.
	SetDepthTest(depthTest bool)

	// SetBlendMode sets the fragment blend mode.
	SetBlendMode(mode BlendMode)

	// SetLineSmoothing enables line smoothing on backends that support
	// it; backends without support absorb the request.
	SetLineSmoothing(smooth bool)

	// SetCircleResolution sets the segment count for circles and
	// ellipses.
	SetCircleResolution(res int)

	// SetCurveResolution sets the segment count used to flatten curves.
	SetCurveResolution(res int)

	// SetPolyWindingMode sets the polygon fill rule.
	SetPolyWindingMode(mode WindingMode)

	// EnableAntiAliasing enables anti-aliasing if supported.
	EnableAntiAliasing()

	// DisableAntiAliasing disables anti-aliasing.
	DisableAntiAliasing()

	// SetColor sets the global drawing color.
	SetColor(c Color)

	// SetColorRGB sets the global drawing color from 8-bit components.
	SetColorRGB(r, g, b int)

	// SetColorRGBA sets the global drawing color from 8-bit components
	// with alpha.
	SetColorRGBA(r, g, b, a int)

	// SetColorGray sets the global drawing color to an 8-bit gray.
	SetColorGray(gray int)

	// SetHexColor sets the global drawing color from 0xRRGGBB.
	SetHexColor(hexColor int)

	// SetBitmapTextMode sets bitmap text positioning.
	SetBitmapTextMode(mode BitmapTextMode)

	// BackgroundColor returns the background color.
	BackgroundColor() Color

	// SetBackgroundColor sets the background color without clearing.
	SetBackgroundColor(c Color)

	// Background sets the background color and clears the target.
	Background(c Color)

	// SetBackgroundAuto controls whether StartRender clears the target
	// with the background color. Default is true.
	SetBackgroundAuto(auto bool)

	// BackgroundAuto reports whether automatic clearing is enabled.
	BackgroundAuto() bool

	// Clear clears the target to the background color.
	Clear()

	// ClearWithColor clears the target to the given color.
	ClearWithColor(c Color)

	// ClearAlpha resets the target's alpha channel to opaque.
	ClearAlpha()

	// DrawLine draws a line segment with the current style.
	DrawLine(x1, y1, z1, x2, y2, z2 float64)

	// DrawRectangle draws a rectangle honoring the current rect mode.
	DrawRectangle(x, y, z, w, h float64)

	// DrawTriangle draws a triangle.
	DrawTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64)

	// DrawCircle draws a circle at the current circle resolution.
	DrawCircle(x, y, z, radius float64)

	// DrawEllipse draws an ellipse at the current circle resolution.
	DrawEllipse(x, y, z, width, height float64)

	// DrawString draws bitmap text honoring the bitmap text mode.
	DrawString(text string, x, y, z float64)

	// DrawStringFont draws text with the given font face.
	DrawStringFont(face font.Face, text string, x, y float64)

	// Path returns the renderer's shared immediate-mode path. This
	// keeps shape drawing allocation-free across multiple windows and
	// contexts without duplicating the shape logic in every renderer.
	Path() *Path

	// Style returns the current style snapshot.
	Style() Style

	// SetStyle replaces the current style.
	SetStyle(style Style)

	// PushStyle saves the current style.
	PushStyle()

	// PopStyle restores the style saved by the matching PushStyle.
	PopStyle()

	// Solids returns the renderer's procedural solid drawing state:
	// sphere, box, cylinder, cone, icosphere, and plane helpers with
	// their renderer-global resolution settings.
	Solids() *Solids3D
}

// GLRenderer extends Renderer with capabilities of fixed-function and
// programmable GL-style pipelines: texture draws, vertex buffers with
// instancing, lighting, and framebuffer operations.
//
// Lighting state is global to the renderer, not stacked: per-light
// parameters persist until changed. Save and restore of lighting state
// is the caller's responsibility.
type GLRenderer interface {
	Renderer

	// DrawTexture draws a texture subsection.
	DrawTexture(tex *Texture, x, y, z, w, h, sx, sy, sw, sh float64)

	// DrawVbo draws a range of a vertex buffer.
	DrawVbo(vbo *Vbo, mode PrimitiveMode, first, total int)

	// DrawElements draws an indexed range of a vertex buffer.
	DrawElements(vbo *Vbo, mode PrimitiveMode, amt, offsetElements int)

	// DrawInstanced draws a vertex buffer range primCount times.
	DrawInstanced(vbo *Vbo, mode PrimitiveMode, first, total, primCount int)

	// DrawElementsInstanced draws an indexed range primCount times.
	DrawElementsInstanced(vbo *Vbo, mode PrimitiveMode, amt, primCount int)

	// DrawMeshInstanced draws a mesh primCount times.
	DrawMeshInstanced(mesh *Mesh, mode RenderMode, primCount int)

	// EnableTextureTarget binds a texture to a texture unit.
	EnableTextureTarget(tex *Texture, textureLocation int)

	// DisableTextureTarget unbinds a texture unit.
	DisableTextureTarget(textureLocation int)

	// SetAlphaMaskTexture sets a texture used as alpha mask.
	SetAlphaMaskTexture(tex *Texture)

	// DisableAlphaMask disables alpha masking.
	DisableAlphaMask()

	// EnablePointSprites enables textured point sprites.
	EnablePointSprites()

	// DisablePointSprites disables textured point sprites.
	DisablePointSprites()

	// EnableLighting enables lighting.
	EnableLighting()

	// DisableLighting disables lighting.
	DisableLighting()

	// LightingEnabled reports whether lighting is enabled.
	LightingEnabled() bool

	// EnableSeparateSpecularLight computes specular highlights after
	// texturing.
	EnableSeparateSpecularLight()

	// DisableSeparateSpecularLight restores combined specular.
	DisableSeparateSpecularLight()

	// SetSmoothLighting selects smooth or flat shading.
	SetSmoothLighting(smooth bool)

	// SetGlobalAmbientColor sets the scene-wide ambient term.
	SetGlobalAmbientColor(c Color)

	// EnableLight enables the light at the given index.
	EnableLight(lightIndex int)

	// DisableLight disables the light at the given index.
	DisableLight(lightIndex int)

	// SetLightSpotlightCutOff sets the spot cutoff angle in degrees.
	SetLightSpotlightCutOff(lightIndex int, spotCutOff float64)

	// SetLightSpotConcentration sets the spot falloff exponent.
	SetLightSpotConcentration(lightIndex int, exponent float64)

	// SetLightAttenuation sets the distance attenuation coefficients.
	SetLightAttenuation(lightIndex int, constant, linear, quadratic float64)

	// SetLightAmbientColor sets the light's ambient color.
	SetLightAmbientColor(lightIndex int, c Color)

	// SetLightDiffuseColor sets the light's diffuse color.
	SetLightDiffuseColor(lightIndex int, c Color)

	// SetLightSpecularColor sets the light's specular color.
	SetLightSpecularColor(lightIndex int, c Color)

	// SetLightPosition sets the light's position. A w of 0 makes the
	// light directional.
	SetLightPosition(lightIndex int, position Vec4)

	// SetLightSpotDirection sets the spot direction.
	SetLightSpotDirection(lightIndex int, direction Vec4)

	// SaveScreen reads back a region of the render target.
	SaveScreen(x, y, w, h int, pixels *Pixels[uint8])

	// SaveFullViewport reads back the full viewport.
	SaveFullViewport(pixels *Pixels[uint8])

	// BindMaterial applies a material; must be unbound in LIFO order.
	BindMaterial(material Material)

	// UnbindMaterial removes the most recently bound material.
	UnbindMaterial(material Material)

	// BindShader makes a shader current.
	BindShader(shader *Shader)

	// UnbindShader restores the previous shader.
	UnbindShader(shader *Shader)

	// BindTexture binds a texture to a unit.
	BindTexture(texture *Texture, location int)

	// UnbindTexture unbinds a texture unit.
	UnbindTexture(texture *Texture, location int)

	// BindVideo binds a video source's texture planes.
	BindVideo(video VideoDraws)

	// UnbindVideo unbinds a video source's texture planes.
	UnbindVideo(video VideoDraws)

	// BindFbo redirects drawing into a framebuffer.
	BindFbo(fbo *Fbo)

	// UnbindFbo restores the previous draw target.
	UnbindFbo(fbo *Fbo)

	// BindForBlitting binds two framebuffers for a cross-buffer copy.
	BindForBlitting(src, dst *Fbo, attachmentPoint int)

	// BeginFbo starts drawing into a framebuffer, optionally setting up
	// a screen perspective for its dimensions.
	BeginFbo(fbo *Fbo, setupPerspective bool)

	// EndFbo finishes drawing into a framebuffer.
	EndFbo(fbo *Fbo)
}

// DrawState is the stacked renderer state resolved for one draw call:
// the combined transform, the active viewport, and the style snapshot.
// Backends receive world-space geometry together with a DrawState and
// must not retain the pointer past the call.
type DrawState struct {
	// Transform is projection * orientation * model-view.
	Transform Mat4

	// Viewport is the active native viewport.
	Viewport Rectangle

	// VFlip reports whether device y increases downward.
	VFlip bool

	// Style is the active style snapshot.
	Style Style
}

// Project resolves a world-space point to device coordinates through
// the state's transform and viewport. The returned z is the normalized
// depth.
func (st *DrawState) Project(v Vec3) Vec3 {
	ndc := st.Transform.TransformPoint(v)
	vp := st.Viewport.Standardized()
	x := vp.X + (ndc.X*0.5+0.5)*vp.W
	var y float64
	if st.VFlip {
		y = vp.Y + (0.5-ndc.Y*0.5)*vp.H
	} else {
		y = vp.Y + (ndc.Y*0.5+0.5)*vp.H
	}
	return Vec3{X: x, Y: y, Z: ndc.Z}
}

// Backend is the minimal primitive interface a concrete graphics
// backend must implement. Everything else the Renderer contract offers
// is layered on these calls by [Graphics]; a minimal backend needs
// nothing more.
type Backend interface {
	// Name returns the backend identifier, for example "soft".
	Name() string

	// Width returns the render target width in pixels.
	Width() int

	// Height returns the render target height in pixels.
	Height() int

	// Begin is called by StartRender.
	Begin()

	// End is called by FinishRender.
	End()

	// Clear fills the render target with a color.
	Clear(c Color)

	// ClearAlpha resets the target's alpha channel to opaque.
	ClearAlpha()

	// FillTriangles rasterizes filled triangles. verts holds triangle
	// triples in world space; colors is either nil (use the style
	// color) or one color per vertex.
	FillTriangles(verts []Vec3, colors []Color, st *DrawState)

	// StrokePolyline rasterizes a line strip in world space.
	StrokePolyline(points []Vec3, closed bool, st *DrawState)

	// DrawPoints rasterizes isolated points in world space.
	DrawPoints(points []Vec3, st *DrawState)

	// DrawPixels blits a pixmap subsection src to the world-space
	// rectangle dst at depth z.
	DrawPixels(pm *Pixmap, dst Rectangle, src Rectangle, z float64, st *DrawState)

	// DrawText draws bitmap text at a world-space position.
	DrawText(text string, x, y, z float64, st *DrawState)

	// ReadPixels reads back a region of the render target. Backends
	// without readback support return nil; this is an
	// optional-capability sentinel, not an error.
	ReadPixels(x, y, w, h int) *Pixmap
}

// GLBackend extends Backend with the hooks the GL-specialized renderer
// needs: instanced fills, lighting uploads, texture units, and
// framebuffer redirection.
type GLBackend interface {
	Backend

	// FillTrianglesInstanced rasterizes the triangles primCount times.
	// Backends decide how instances are distinguished.
	FillTrianglesInstanced(verts []Vec3, colors []Color, primCount int, st *DrawState)

	// SetLighting uploads the current lighting block. Called whenever
	// lighting state changes.
	SetLighting(state *LightingState)

	// BindTextureUnit binds a texture to a texture unit.
	BindTextureUnit(tex *Texture, location int)

	// UnbindTextureUnit unbinds a texture unit.
	UnbindTextureUnit(location int)

	// SetTargetFbo redirects subsequent drawing into fbo, or back to
	// the primary target when fbo is nil.
	SetTargetFbo(fbo *Fbo)

	// Blit copies a framebuffer attachment into another framebuffer.
	Blit(src, dst *Fbo, attachmentPoint int)
}
