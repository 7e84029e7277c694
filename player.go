package easel

import (
	"fmt"
	"math"
	"sync"
)

// Player plays back clips opened through a ClipSource. Playback is
// clocked by the caller: Update(dt) advances the playhead, nothing
// runs on an internal timer, so a player steps deterministically in
// tests and stays in lockstep with the render loop.
//
// Load and Close may race with an in-flight LoadAsync; all other
// methods must be called from the goroutine driving Update.
type Player struct {
	source ClipSource

	mu      sync.Mutex
	clip    Clip
	loadErr error
	loading bool
	closed  bool
	loadGen int

	playing   bool
	paused    bool
	movieDone bool
	speed     float64
	loop      LoopMode
	// palindrome direction, 1 forward or -1 backward
	dir float64

	// playhead in fractional frames
	pos       float64
	lastFrame int
	frameNew  bool

	pixels       *Pixels[uint8]
	plane        *Texture
	volume       float64
	wantedFormat PixelFormat
}

var _ VideoPlayer = (*Player)(nil)

// NewPlayer creates a player reading clips from source.
func NewPlayer(source ClipSource, opts ...PlayerOption) *Player {
	p := &Player{
		source:    source,
		speed:     1,
		dir:       1,
		loop:      LoopNormal,
		volume:    1,
		lastFrame: -1,
		pixels:    &Pixels[uint8]{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load opens the named clip synchronously, replacing any open clip and
// rewinding to the first frame.
func (p *Player) Load(name string) error {
	p.mu.Lock()
	if p.source == nil {
		p.mu.Unlock()
		return fmt.Errorf("video player: no clip source")
	}
	p.loadGen++
	p.closed = false
	source := p.source
	p.mu.Unlock()

	clip, err := source.Open(name)
	p.install(clip, err)
	return err
}

// LoadAsync opens the named clip in the background. Poll IsLoaded for
// completion and Err for failure. A Close racing the load wins: the
// clip is discarded.
func (p *Player) LoadAsync(name string) {
	p.mu.Lock()
	if p.source == nil {
		p.loadErr = fmt.Errorf("video player: no clip source")
		p.mu.Unlock()
		return
	}
	p.loadGen++
	p.closed = false
	gen := p.loadGen
	p.loading = true
	source := p.source
	p.mu.Unlock()

	go func() {
		clip, err := source.Open(name)
		p.mu.Lock()
		stale := p.closed || gen != p.loadGen
		p.mu.Unlock()
		if stale {
			if clip != nil {
				clip.Close()
			}
			return
		}
		p.install(clip, err)
	}()
}

// install publishes the result of a load.
func (p *Player) install(clip Clip, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip != nil {
		p.clip.Close()
	}
	p.clip = nil
	p.loading = false
	p.loadErr = err
	p.pos = 0
	p.lastFrame = -1
	p.frameNew = false
	p.movieDone = false
	p.dir = 1
	p.plane = nil
	if err != nil {
		Logger().Error("easel: video load failed", "err", err)
		return
	}
	if p.closed {
		clip.Close()
		return
	}
	p.clip = clip
	p.decodeLocked(0)
}

// Err returns the error from the most recent load, if any.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadErr
}

// IsLoaded reports whether a clip is open.
func (p *Player) IsLoaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clip != nil
}

// IsInitialized reports whether a clip is open.
func (p *Player) IsInitialized() bool { return p.IsLoaded() }

// Close releases the clip. Closing during an async load discards the
// loaded clip when it arrives. A closed player is reusable: a later
// Load or LoadAsync opens a new clip.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.loadGen++
	if p.clip != nil {
		p.clip.Close()
		p.clip = nil
	}
	p.plane = nil
	p.playing = false
}

// decodeLocked fetches the frame under the playhead. Caller holds mu.
func (p *Player) decodeLocked(frame int) {
	if p.clip == nil {
		return
	}
	if frame == p.lastFrame {
		return
	}
	src := p.clip.FrameAt(frame)
	if src == nil {
		return
	}
	p.pixels = src
	p.lastFrame = frame
	p.frameNew = true
	p.plane = nil
}

func (p *Player) frames() int {
	if p.clip == nil {
		return 0
	}
	return p.clip.NumFrames()
}

// Update advances playback by dt seconds. With looping off the
// playhead clamps at the clip boundary and IsMovieDone turns true;
// palindrome looping reverses direction at each boundary.
func (p *Player) Update(dt float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frameNew = false
	n := p.frames()
	if n == 0 {
		return
	}
	if p.playing && !p.paused && dt > 0 {
		p.advanceLocked(dt, n)
	}
	frame := int(p.pos)
	if frame > n-1 {
		frame = n - 1
	}
	if frame < 0 {
		frame = 0
	}
	p.decodeLocked(frame)
}

func (p *Player) advanceLocked(dt float64, n int) {
	step := dt * p.clip.FrameRate() * p.speed * p.dir
	p.pos += step
	last := float64(n - 1)
	switch p.loop {
	case LoopNone:
		if p.pos >= last {
			p.pos = last
			p.movieDone = true
		} else if p.pos <= 0 {
			p.pos = 0
			if p.speed*p.dir < 0 {
				p.movieDone = true
			}
		}
	case LoopPalindrome:
		if last <= 0 {
			// single frame, nothing to bounce between
			p.pos = 0
			return
		}
		for p.pos > last || p.pos < 0 {
			if p.pos > last {
				p.pos = 2*last - p.pos
			} else {
				p.pos = -p.pos
			}
			p.dir = -p.dir
		}
	default: // LoopNormal
		if n > 1 {
			span := float64(n)
			p.pos = math.Mod(p.pos, span)
			if p.pos < 0 {
				p.pos += span
			}
		} else {
			p.pos = 0
		}
	}
}

// Play starts playback from the current position.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.paused = false
	p.movieDone = false
}

// Stop halts playback and rewinds to the first frame.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.pos = 0
	p.movieDone = false
	p.dir = 1
	p.decodeLocked(0)
}

// SetPaused suspends or resumes playback without moving the playhead.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = paused
}

// IsPaused reports whether playback is paused.
func (p *Player) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// IsPlaying reports whether playback is running.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing && !p.paused
}

// IsMovieDone reports whether a non-looping clip has hit its boundary.
func (p *Player) IsMovieDone() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.movieDone
}

// Position returns the playhead as a 0..1 fraction of the clip.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.frames()
	if n <= 1 {
		return 0
	}
	return float64(p.currentFrameLocked(n)) / float64(n-1)
}

// SetPosition seeks to a 0..1 fraction, quantized to the nearest
// frame.
func (p *Player) SetPosition(pct float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.frames()
	if n == 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	p.pos = math.Round(pct * float64(n-1))
	p.movieDone = false
	p.decodeLocked(int(p.pos))
}

// Duration returns the clip length in seconds.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip == nil || p.clip.FrameRate() <= 0 {
		return 0
	}
	return float64(p.clip.NumFrames()) / p.clip.FrameRate()
}

// Speed returns the playback rate.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// SetSpeed sets the playback rate. Negative speeds play backwards.
func (p *Player) SetSpeed(speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speed = speed
}

// SetLoopMode selects the behavior at clip boundaries.
func (p *Player) SetLoopMode(mode LoopMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loop = mode
	if mode != LoopPalindrome {
		p.dir = 1
	}
}

// LoopMode returns the active loop mode.
func (p *Player) LoopMode() LoopMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loop
}

func (p *Player) currentFrameLocked(n int) int {
	f := int(p.pos)
	if f > n-1 {
		f = n - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// CurrentFrame returns the zero-based frame under the playhead.
func (p *Player) CurrentFrame() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.frames()
	if n == 0 {
		return 0
	}
	return p.currentFrameLocked(n)
}

// TotalFrames returns the clip frame count, 0 when nothing is loaded.
func (p *Player) TotalFrames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames()
}

// SetFrame seeks to a zero-based frame, clamped to the clip.
func (p *Player) SetFrame(frame int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.frames()
	if n == 0 {
		return
	}
	if frame < 0 {
		frame = 0
	}
	if frame > n-1 {
		frame = n - 1
	}
	p.pos = float64(frame)
	p.movieDone = false
	p.decodeLocked(frame)
}

// FirstFrame seeks to frame zero.
func (p *Player) FirstFrame() { p.SetFrame(0) }

// NextFrame steps one frame forward. With normal looping the step
// wraps past the last frame.
func (p *Player) NextFrame() { p.stepFrame(1) }

// PreviousFrame steps one frame back. With normal looping the step
// wraps past the first frame.
func (p *Player) PreviousFrame() { p.stepFrame(-1) }

func (p *Player) stepFrame(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.frames()
	if n == 0 {
		return
	}
	f := p.currentFrameLocked(n) + delta
	if p.loop == LoopNormal && n > 0 {
		f = ((f % n) + n) % n
	} else {
		if f < 0 {
			f = 0
		}
		if f > n-1 {
			f = n - 1
		}
	}
	p.pos = float64(f)
	p.decodeLocked(f)
}

// SetVolume sets playback volume as a 0..1 fraction. Frame-sequence
// clips carry no audio; the value is kept for sources that do.
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp01(volume)
}

// Width returns the clip frame width, 0 before a load.
func (p *Player) Width() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip == nil {
		return 0
	}
	return float64(p.clip.Width())
}

// Height returns the clip frame height, 0 before a load.
func (p *Player) Height() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip == nil {
		return 0
	}
	return float64(p.clip.Height())
}

// GetPixels returns the frame under the playhead.
func (p *Player) GetPixels() *Pixels[uint8] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixels
}

// GetTexturePlanes returns a single texture holding the current frame.
func (p *Player) GetTexturePlanes() []*Texture {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pixels == nil || !p.pixels.IsAllocated() {
		return nil
	}
	if p.plane == nil {
		t := NewTexture(p.pixels.Width(), p.pixels.Height())
		t.LoadPixmap(p.pixels.ToPixmap())
		p.plane = t
	}
	return []*Texture{p.plane}
}

// IsFrameNew reports whether the last Update decoded a new frame.
func (p *Player) IsFrameNew() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frameNew
}

// PixelFormat returns the decoded frame format.
func (p *Player) PixelFormat() PixelFormat {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip == nil {
		return PixelFormatUnknown
	}
	return p.clip.PixelFormat()
}

// SetPixelFormat requests a decode format. The request is honored only
// before a clip is loaded.
func (p *Player) SetPixelFormat(format PixelFormat) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip != nil {
		return p.clip.PixelFormat() == format
	}
	p.wantedFormat = format
	return true
}
