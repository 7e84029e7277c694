// Package easel is the polymorphic contract layer of a creative-coding
// graphics and media toolkit.
//
// # Overview
//
// easel defines the capability interfaces shared by drawable objects,
// pixel and texture sources, and time-based media (video players and
// grabbers), together with an immediate-mode renderer abstraction that
// concrete graphics backends implement behind one stable API.
//
// The central type is [Graphics], a state-stack engine that implements
// [Renderer] on top of a minimal [Backend] primitive interface. Graphics
// owns the matrix, viewport, and style stacks and dispatches drawing to
// the backend; backends only rasterize primitives with the state handed
// to them.
//
// # Quick Start
//
//	import (
//		"github.com/easelgl/easel"
//		"github.com/easelgl/easel/backend/soft"
//	)
//
//	g := easel.NewGraphics(soft.New(800, 600))
//	g.StartRender()
//	g.SetColorRGB(255, 0, 0)
//	g.PushMatrix()
//	g.Translate(100, 50, 0)
//	g.DrawRectangle(0, 0, 0, 200, 100)
//	g.PopMatrix()
//	g.FinishRender()
//
// # State discipline
//
// Transform and style state is stacked: PushMatrix/PopMatrix and
// PushStyle/PopStyle must be paired, and all pushes issued inside a
// StartRender/FinishRender bracket must be popped before FinishRender.
// Violations are never silently tolerated; they are logged and recorded
// on the Graphics instance (see [Graphics.Err]).
//
// Lighting state on [GLGraphics] is deliberately not stacked: per-light
// parameters persist until changed, and save/restore is the caller's
// responsibility.
//
// # Coordinate System
//
// The default screen setup maps world units 1:1 to pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotations in degrees, positive is clockwise on screen
//
// # Concurrency
//
// One renderer instance serves one drawing context, and all drawing
// calls must run on the thread owning that context. The only
// asynchronous operation is [Player.LoadAsync]; completion is observed
// by polling [Player.IsLoaded].
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
