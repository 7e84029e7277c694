package easel

import "errors"

// Structural errors. These indicate programming errors in the calling
// code (mismatched push/pop pairs, drawing outside a render bracket)
// and are recorded on the Graphics instance rather than silently
// corrupting subsequent draws. See [Graphics.Err].
var (
	// ErrNotRendering is recorded when a draw, transform, or style call
	// is made outside a StartRender/FinishRender bracket.
	ErrNotRendering = errors.New("easel: call outside StartRender/FinishRender")

	// ErrAlreadyRendering is recorded when StartRender is called while a
	// render session is already active. Nesting is not permitted.
	ErrAlreadyRendering = errors.New("easel: StartRender while already rendering")

	// ErrMatrixStackEmpty is recorded when PopMatrix is called with no
	// matching PushMatrix on the current matrix mode's stack.
	ErrMatrixStackEmpty = errors.New("easel: matrix stack underflow")

	// ErrViewportStackEmpty is recorded when PopView is called with no
	// matching PushView.
	ErrViewportStackEmpty = errors.New("easel: viewport stack underflow")

	// ErrStyleStackEmpty is recorded when PopStyle is called with no
	// matching PushStyle.
	ErrStyleStackEmpty = errors.New("easel: style stack underflow")

	// ErrRenderUnbalanced is recorded by FinishRender when pushes issued
	// since the matching StartRender were not all popped.
	ErrRenderUnbalanced = errors.New("easel: unbalanced stacks at FinishRender")

	// ErrBindMismatch is recorded when Unbind does not correspond to the
	// most recent Bind (bind/unbind must be strictly LIFO).
	ErrBindMismatch = errors.New("easel: bind/unbind order mismatch")
)

// Resource errors. These are recoverable and reported as ordinary
// return values; the caller decides whether to retry or abort.
var (
	// ErrNotLoaded is returned by player operations that require a
	// loaded clip.
	ErrNotLoaded = errors.New("easel: no clip loaded")

	// ErrClipNotFound is returned when a clip source cannot resolve the
	// requested name.
	ErrClipNotFound = errors.New("easel: clip not found")

	// ErrDeviceUnavailable is returned when a grabber device cannot be
	// opened.
	ErrDeviceUnavailable = errors.New("easel: video device unavailable")

	// ErrNoDriver is returned when a grabber has no capture driver
	// registered.
	ErrNoDriver = errors.New("easel: no capture driver registered")
)
