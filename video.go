package easel

// VideoDraws is the contract between a video source and the renderer's
// DrawVideo and BindVideo operations. Sources without a decoded frame
// return unallocated pixels; planar sources additionally expose their
// per-plane textures.
type VideoDraws interface {
	// Width returns the frame width in pixels, 0 before initialization.
	Width() float64

	// Height returns the frame height in pixels, 0 before
	// initialization.
	Height() float64

	// GetPixels returns the current decoded frame.
	GetPixels() *Pixels[uint8]

	// GetTexturePlanes returns one texture per plane for planar pixel
	// formats, or a single texture for packed formats. Empty when no
	// frame is decoded.
	GetTexturePlanes() []*Texture

	// IsFrameNew reports whether a new frame arrived since the last
	// Update.
	IsFrameNew() bool
}

// VideoSource is the state shared by players and grabbers.
type VideoSource interface {
	VideoDraws

	// IsInitialized reports whether the source is ready to produce
	// frames.
	IsInitialized() bool

	// PixelFormat returns the negotiated pixel format,
	// PixelFormatUnknown before initialization.
	PixelFormat() PixelFormat

	// SetPixelFormat requests a decode format. It reports whether the
	// source honors the request; sources decide before initialization
	// and may refuse afterwards.
	SetPixelFormat(format PixelFormat) bool

	// Close releases the source. Closing an uninitialized or already
	// closed source is a no-op.
	Close()
}

// VideoPlayer plays back prerecorded clips with seeking, looping and
// variable speed. Playback is driven explicitly: Update advances the
// playhead by a time delta, nothing runs on its own clock.
type VideoPlayer interface {
	VideoSource

	// Load opens a clip synchronously.
	Load(name string) error

	// LoadAsync opens a clip in the background. Poll IsLoaded, or call
	// Err for a failure.
	LoadAsync(name string)

	// IsLoaded reports whether a clip is open and decodable.
	IsLoaded() bool

	// Err returns the error from the most recent load, if any.
	Err() error

	// Update advances playback by dt seconds and decodes the frame at
	// the new playhead.
	Update(dt float64)

	// Play starts playback from the current position.
	Play()

	// Stop halts playback and rewinds to the first frame.
	Stop()

	// SetPaused suspends or resumes playback without moving the
	// playhead.
	SetPaused(paused bool)

	// IsPaused reports whether playback is paused.
	IsPaused() bool

	// IsPlaying reports whether playback is running.
	IsPlaying() bool

	// IsMovieDone reports whether a non-looping clip has reached its
	// last frame.
	IsMovieDone() bool

	// Position returns the playhead as a 0..1 fraction.
	Position() float64

	// SetPosition seeks to a 0..1 fraction, quantized to the nearest
	// frame.
	SetPosition(pct float64)

	// Duration returns the clip length in seconds.
	Duration() float64

	// Speed returns the playback rate. Negative rates play backwards.
	Speed() float64

	// SetSpeed sets the playback rate.
	SetSpeed(speed float64)

	// SetLoopMode selects what happens at the clip boundaries.
	SetLoopMode(mode LoopMode)

	// LoopMode returns the active loop mode.
	LoopMode() LoopMode

	// CurrentFrame returns the zero-based frame under the playhead.
	CurrentFrame() int

	// TotalFrames returns the clip frame count.
	TotalFrames() int

	// SetFrame seeks to a zero-based frame, clamped to the clip.
	SetFrame(frame int)

	// FirstFrame seeks to frame zero.
	FirstFrame()

	// NextFrame steps one frame forward, honoring the loop mode.
	NextFrame()

	// PreviousFrame steps one frame back, honoring the loop mode.
	PreviousFrame()

	// SetVolume sets playback volume as a 0..1 fraction. Sources
	// without audio absorb the call.
	SetVolume(volume float64)
}

// VideoFormat is one capture configuration a device offers.
type VideoFormat struct {
	PixelFormat PixelFormat
	Width       int
	Height      int
	FrameRates  []float64
}

// VideoDevice describes one attachable capture device.
type VideoDevice struct {
	// ID is the position in the driver's device list, used by
	// SetDeviceID.
	ID int

	DeviceName   string
	HardwareName string

	// SerialID distinguishes devices with identical names. Drivers
	// that cannot read one leave it empty.
	SerialID string

	// Available is false when the device exists but is held by another
	// process.
	Available bool

	Formats []VideoFormat
}

// VideoGrabber captures live frames from a device.
type VideoGrabber interface {
	VideoSource

	// ListDevices enumerates capture devices.
	ListDevices() []VideoDevice

	// Setup negotiates a capture session at the requested size. The
	// device may pick different dimensions; read them back with Width
	// and Height. It reports whether capture started.
	Setup(width, height int) bool

	// SetDeviceID selects a device by list position before Setup.
	SetDeviceID(id int)

	// SetDesiredFrameRate requests a capture rate before Setup.
	SetDesiredFrameRate(framerate int)

	// SetVerbose enables device negotiation logging.
	SetVerbose(verbose bool)

	// Update polls the device for a new frame.
	Update()
}
