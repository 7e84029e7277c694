package soft_test

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/easelgl/easel"
	"github.com/easelgl/easel/backend/soft"
)

func colorNear(a, b easel.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

// pixel reads a pixel from the primary target with an 8-bit tolerance
// comparison against want.
func checkPixel(t *testing.T, b *soft.Backend, x, y int, want easel.Color) {
	t.Helper()
	got := b.Pixmap().GetPixel(x, y)
	if !colorNear(got, want, 2.0/255) {
		t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

func TestFilledRectangleRasterizes(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.ColorRed)
	g.DrawRectangle(8, 8, 0, 16, 16)
	g.FinishRender()

	if err := g.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	checkPixel(t, b, 16, 16, easel.ColorRed)
	checkPixel(t, b, 40, 40, easel.Black)
}

func TestOutlineRectangleLeavesInterior(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.White)
	g.SetFillMode(easel.Outline)
	g.DrawRectangle(8, 8, 0, 32, 32)
	g.FinishRender()

	checkPixel(t, b, 24, 8, easel.White) // on the top edge
	checkPixel(t, b, 24, 24, easel.Black)
}

func TestTranslateShiftsPixels(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.ColorGreen)
	g.Translate(24, 24, 0)
	g.DrawRectangle(0, 0, 0, 8, 8)
	g.FinishRender()

	checkPixel(t, b, 28, 28, easel.ColorGreen)
	checkPixel(t, b, 4, 4, easel.Black)
}

func TestDrawLine(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.White)
	g.DrawLine(0, 32, 0, 63, 32, 0)
	g.FinishRender()

	checkPixel(t, b, 31, 32, easel.White)
	checkPixel(t, b, 31, 40, easel.Black)
}

func TestDrawCircle(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.ColorBlue)
	g.DrawCircle(32, 32, 0, 12)
	g.FinishRender()

	checkPixel(t, b, 32, 32, easel.ColorBlue)
	checkPixel(t, b, 2, 2, easel.Black)
}

func TestDrawStringRasterizes(t *testing.T) {
	b := soft.New(128, 64)
	g := easel.NewGraphics(b)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.White)
	g.DrawString("hi", 10, 30, 0)
	g.FinishRender()

	lit := 0
	pm := b.Pixmap()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).R > 0.5 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("no glyph pixels rasterized")
	}
}

func TestDrawPixmapBlits(t *testing.T) {
	b := soft.New(32, 32)
	g := easel.NewGraphics(b)

	src := easel.NewPixmap(4, 4)
	src.Clear(easel.ColorRed)

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.White) // tint is neutral
	g.DrawPixmap(src, 10, 10, 0, 4, 4, 0, 0, 4, 4)
	g.FinishRender()

	checkPixel(t, b, 11, 11, easel.ColorRed)
	checkPixel(t, b, 20, 20, easel.Black)
}

func TestLightingUpload(t *testing.T) {
	b := soft.New(16, 16)
	g := easel.NewGLGraphics(b)

	g.EnableLighting()
	g.EnableLight(0)
	g.SetLightDiffuseColor(0, easel.ColorRed)
	g.SetGlobalAmbientColor(easel.Gray(30))

	st := b.Lighting()
	if !st.Enabled {
		t.Fatal("lighting not uploaded as enabled")
	}
	if !st.Lights[0].Enabled {
		t.Fatal("light 0 not enabled")
	}
	if !colorNear(st.Lights[0].Diffuse, easel.ColorRed, 1e-9) {
		t.Fatalf("light 0 diffuse = %+v", st.Lights[0].Diffuse)
	}

	g.DisableLighting()
	if b.Lighting().Enabled {
		t.Fatal("lighting still enabled after disable")
	}

	// out-of-range light indices are ignored
	g.SetLightDiffuseColor(easel.MaxLights, easel.ColorBlue)
	g.SetLightDiffuseColor(-1, easel.ColorBlue)
}

func TestTextureUnits(t *testing.T) {
	b := soft.New(16, 16)
	g := easel.NewGLGraphics(b)

	tex := easel.NewTexture(4, 4)
	g.StartRender()
	g.BindTexture(tex, 2)
	if got := b.BoundTexture(2); got != tex {
		t.Fatal("texture not bound to unit 2")
	}
	g.UnbindTexture(tex, 2)
	if b.BoundTexture(2) != nil {
		t.Fatal("texture still bound after unbind")
	}
	g.FinishRender()
}

func TestFboRedirectsDrawing(t *testing.T) {
	b := soft.New(64, 64)
	g := easel.NewGLGraphics(b)

	fbo := easel.NewFbo()
	fbo.Allocate(32, 32, gputypes.TextureFormatRGBA8Unorm, 1)

	g.StartRender()
	g.Background(easel.Black)

	g.BeginFbo(fbo, true)
	g.ClearWithColor(easel.ColorBlue)
	g.SetColor(easel.ColorRed)
	g.DrawRectangle(4, 4, 0, 8, 8)
	g.EndFbo(fbo)

	g.FinishRender()
	if err := g.Err(); err != nil {
		t.Fatalf("render error: %v", err)
	}

	att := fbo.Texture().Pixmap()
	if got := att.GetPixel(8, 8); !colorNear(got, easel.ColorRed, 2.0/255) {
		t.Fatalf("fbo interior pixel = %+v, want red", got)
	}
	if got := att.GetPixel(24, 24); !colorNear(got, easel.ColorBlue, 2.0/255) {
		t.Fatalf("fbo background pixel = %+v, want blue", got)
	}
	// the primary target is untouched by fbo drawing
	checkPixel(t, b, 8, 8, easel.Black)
}

func TestFboBindMismatch(t *testing.T) {
	b := soft.New(16, 16)
	g := easel.NewGLGraphics(b)

	a := easel.NewFbo()
	a.Allocate(8, 8, gputypes.TextureFormatRGBA8Unorm, 1)
	c := easel.NewFbo()
	c.Allocate(8, 8, gputypes.TextureFormatRGBA8Unorm, 1)

	g.StartRender()
	g.BindFbo(a)
	g.UnbindFbo(c)
	g.FinishRender()
	if g.Err() == nil {
		t.Fatal("mismatched fbo unbind not recorded")
	}
}

func TestBlitCopiesAttachment(t *testing.T) {
	b := soft.New(16, 16)
	g := easel.NewGLGraphics(b)

	src := easel.NewFbo()
	src.Allocate(8, 8, gputypes.TextureFormatRGBA8Unorm, 1)
	src.Texture().Pixmap().Clear(easel.ColorGreen)
	dst := easel.NewFbo()
	dst.Allocate(8, 8, gputypes.TextureFormatRGBA8Unorm, 1)

	g.StartRender()
	g.BindForBlitting(src, dst, 0)
	g.FinishRender()
	got := dst.Texture().Pixmap().GetPixel(3, 3)
	if !colorNear(got, easel.ColorGreen, 2.0/255) {
		t.Fatalf("blitted pixel = %+v, want green", got)
	}
}

func TestSaveScreen(t *testing.T) {
	b := soft.New(32, 32)
	g := easel.NewGLGraphics(b)

	g.StartRender()
	g.Background(easel.ColorRed)
	g.FinishRender()

	var px easel.Pixels[uint8]
	g.SaveScreen(0, 0, 8, 8, &px)
	if px.Width() != 8 || px.Height() != 8 {
		t.Fatalf("saved %dx%d, want 8x8", px.Width(), px.Height())
	}
	if got := px.At(4, 4, 0); got != 255 {
		t.Fatalf("saved red channel = %d, want 255", got)
	}

	var full easel.Pixels[uint8]
	g.SaveFullViewport(&full)
	if full.Width() != 32 || full.Height() != 32 {
		t.Fatalf("full viewport saved %dx%d", full.Width(), full.Height())
	}
}

func TestDrawVideoUsesCurrentFrame(t *testing.T) {
	b := soft.New(32, 32)
	g := easel.NewGraphics(b)

	frame := easel.NewPixels[uint8](4, 4, easel.PixelFormatRGBA)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			frame.Set(x, y, 1, 255) // green
			frame.Set(x, y, 3, 255)
		}
	}
	clip, err := easel.NewMemoryClip([]*easel.Pixels[uint8]{frame}, 30)
	if err != nil {
		t.Fatal(err)
	}
	p := easel.NewPlayer(singleClip{clip})
	if err := p.Load("clip"); err != nil {
		t.Fatal(err)
	}

	g.StartRender()
	g.Background(easel.Black)
	g.SetColor(easel.White)
	g.DrawVideo(p, 8, 8, 4, 4)
	g.FinishRender()

	checkPixel(t, b, 9, 9, easel.ColorGreen)
}

type singleClip struct{ clip easel.Clip }

func (s singleClip) Open(string) (easel.Clip, error) { return s.clip, nil }

func TestInstancedAddBlendAccumulates(t *testing.T) {
	b := soft.New(32, 32)
	g := easel.NewGLGraphics(b)

	mesh := &easel.Mesh{
		Mode: easel.Triangles,
		Vertices: []easel.Vec3{
			easel.V3(0, 0, 0), easel.V3(32, 0, 0), easel.V3(0, 32, 0),
		},
	}

	g.StartRender()
	g.Background(easel.Black)
	g.SetBlendMode(easel.BlendAdd)
	g.SetColor(easel.RGBA(0.25, 0, 0, 1))
	g.DrawMeshInstanced(mesh, easel.RenderFill, 4)
	g.FinishRender()

	got := b.Pixmap().GetPixel(4, 4)
	if got.R < 0.9 {
		t.Fatalf("accumulated red = %v, want near 1 after 4 additive passes", got.R)
	}
}
