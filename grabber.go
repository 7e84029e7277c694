package easel

import (
	"fmt"
	"sort"
	"sync"
)

// CaptureDriver produces capture sessions for a class of devices.
// Platform packages register their driver in an init function; tests
// register in-process fakes.
type CaptureDriver interface {
	// Name identifies the driver, for example "v4l2".
	Name() string

	// ListDevices enumerates the devices this driver can open.
	ListDevices() []VideoDevice

	// Open starts a capture session. The driver may adjust the
	// requested parameters; the session reports the negotiated ones.
	Open(cfg CaptureConfig) (CaptureSession, error)
}

// CaptureConfig is the requested capture setup.
type CaptureConfig struct {
	DeviceID    int
	Width       int
	Height      int
	FrameRate   int
	PixelFormat PixelFormat
	Verbose     bool
}

// CaptureSession is an open device stream.
type CaptureSession interface {
	// Width returns the negotiated frame width.
	Width() int

	// Height returns the negotiated frame height.
	Height() int

	// PixelFormat returns the negotiated frame format.
	PixelFormat() PixelFormat

	// Poll returns the newest frame, or nil when no frame arrived since
	// the previous Poll.
	Poll() *Pixels[uint8]

	// Close stops the stream.
	Close() error
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]CaptureDriver)
)

// RegisterDriver makes a capture driver available to grabbers.
// Registering two drivers under one name panics.
func RegisterDriver(d CaptureDriver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	name := d.Name()
	if _, dup := drivers[name]; dup {
		panic("easel: RegisterDriver called twice for driver " + name)
	}
	drivers[name] = d
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupDriver returns a registered driver by name.
func LookupDriver(name string) (CaptureDriver, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	d, ok := drivers[name]
	return d, ok
}

func defaultDriver() (CaptureDriver, error) {
	names := Drivers()
	if len(names) == 0 {
		return nil, ErrNoDriver
	}
	d, _ := LookupDriver(names[0])
	return d, nil
}

// Grabber captures live frames through a registered CaptureDriver.
// Configure with SetDeviceID, SetDesiredFrameRate and SetPixelFormat,
// then call Setup; after that, Update polls for frames once per tick.
type Grabber struct {
	driver  CaptureDriver
	session CaptureSession

	deviceID     int
	desiredRate  int
	wantedFormat PixelFormat
	verbose      bool

	pixels   *Pixels[uint8]
	plane    *Texture
	frameNew bool
}

var _ VideoGrabber = (*Grabber)(nil)

// NewGrabber creates a grabber on the first registered driver. Pass a
// driver explicitly with NewGrabberWithDriver.
func NewGrabber() *Grabber {
	return &Grabber{pixels: &Pixels[uint8]{}}
}

// NewGrabberWithDriver creates a grabber bound to a specific driver.
func NewGrabberWithDriver(d CaptureDriver) *Grabber {
	return &Grabber{driver: d, pixels: &Pixels[uint8]{}}
}

// ListDevices enumerates capture devices on the grabber's driver.
func (g *Grabber) ListDevices() []VideoDevice {
	d, err := g.resolveDriver()
	if err != nil {
		Logger().Error("easel: video grabber", "err", err)
		return nil
	}
	return d.ListDevices()
}

func (g *Grabber) resolveDriver() (CaptureDriver, error) {
	if g.driver != nil {
		return g.driver, nil
	}
	d, err := defaultDriver()
	if err != nil {
		return nil, err
	}
	g.driver = d
	return d, nil
}

// SetDeviceID selects a device by list position. Takes effect on the
// next Setup.
func (g *Grabber) SetDeviceID(id int) { g.deviceID = id }

// SetDesiredFrameRate requests a capture rate. Takes effect on the
// next Setup.
func (g *Grabber) SetDesiredFrameRate(framerate int) { g.desiredRate = framerate }

// SetVerbose enables device negotiation logging.
func (g *Grabber) SetVerbose(verbose bool) { g.verbose = verbose }

// Setup opens a capture session at the requested size. The device may
// negotiate different dimensions; read them back with Width and
// Height. It reports whether capture started.
func (g *Grabber) Setup(width, height int) bool {
	d, err := g.resolveDriver()
	if err != nil {
		Logger().Error("easel: video grabber setup", "err", err)
		return false
	}
	if g.session != nil {
		g.session.Close()
		g.session = nil
	}
	cfg := CaptureConfig{
		DeviceID:    g.deviceID,
		Width:       width,
		Height:      height,
		FrameRate:   g.desiredRate,
		PixelFormat: g.wantedFormat,
		Verbose:     g.verbose,
	}
	s, err := d.Open(cfg)
	if err != nil {
		Logger().Error("easel: video grabber setup",
			"driver", d.Name(), "device", g.deviceID, "err", err)
		return false
	}
	if g.verbose {
		Logger().Info("easel: video grabber running",
			"driver", d.Name(), "device", g.deviceID,
			"width", s.Width(), "height", s.Height(),
			"format", fmt.Sprint(s.PixelFormat()))
	}
	g.session = s
	g.frameNew = false
	return true
}

// IsInitialized reports whether a capture session is open.
func (g *Grabber) IsInitialized() bool { return g.session != nil }

// Update polls the device for a new frame.
func (g *Grabber) Update() {
	g.frameNew = false
	if g.session == nil {
		return
	}
	if px := g.session.Poll(); px != nil {
		g.pixels = px
		g.plane = nil
		g.frameNew = true
	}
}

// Close stops the capture session.
func (g *Grabber) Close() {
	if g.session != nil {
		g.session.Close()
		g.session = nil
	}
	g.plane = nil
}

// Width returns the negotiated frame width, 0 before Setup.
func (g *Grabber) Width() float64 {
	if g.session == nil {
		return 0
	}
	return float64(g.session.Width())
}

// Height returns the negotiated frame height, 0 before Setup.
func (g *Grabber) Height() float64 {
	if g.session == nil {
		return 0
	}
	return float64(g.session.Height())
}

// GetPixels returns the most recent captured frame.
func (g *Grabber) GetPixels() *Pixels[uint8] { return g.pixels }

// GetTexturePlanes returns a single texture holding the current frame.
func (g *Grabber) GetTexturePlanes() []*Texture {
	if g.pixels == nil || !g.pixels.IsAllocated() {
		return nil
	}
	if g.plane == nil {
		t := NewTexture(g.pixels.Width(), g.pixels.Height())
		t.LoadPixmap(g.pixels.ToPixmap())
		g.plane = t
	}
	return []*Texture{g.plane}
}

// IsFrameNew reports whether the last Update captured a new frame.
func (g *Grabber) IsFrameNew() bool { return g.frameNew }

// PixelFormat returns the negotiated frame format.
func (g *Grabber) PixelFormat() PixelFormat {
	if g.session == nil {
		return PixelFormatUnknown
	}
	return g.session.PixelFormat()
}

// SetPixelFormat requests a capture format for the next Setup.
func (g *Grabber) SetPixelFormat(format PixelFormat) bool {
	if g.session != nil {
		return g.session.PixelFormat() == format
	}
	g.wantedFormat = format
	return true
}
