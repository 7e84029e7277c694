package easel

// GraphicsOption configures a Graphics during creation.
//
// Example:
//
//	// Default screen-space setup
//	g := easel.NewGraphics(soft.New(800, 600))
//
//	// GL-style y-up coordinates
//	g := easel.NewGraphics(b, easel.WithVFlip(false))
type GraphicsOption func(*Graphics)

// WithStyle sets the initial drawing style.
func WithStyle(style Style) GraphicsOption {
	return func(g *Graphics) {
		g.SetStyle(style)
	}
}

// WithVFlip sets the initial y axis direction. The default is true:
// y increases downward, matching screen coordinates.
func WithVFlip(vflip bool) GraphicsOption {
	return func(g *Graphics) {
		g.vflip = vflip
	}
}

// WithCoordHandedness sets the initial coordinate handedness.
func WithCoordHandedness(h Handedness) GraphicsOption {
	return func(g *Graphics) {
		g.handedness = h
	}
}

// WithOrientation sets the initial screen orientation.
func WithOrientation(o Orientation, vflip bool) GraphicsOption {
	return func(g *Graphics) {
		g.SetOrientation(o, vflip)
	}
}

// WithBackgroundAuto controls whether StartRender clears the target.
func WithBackgroundAuto(auto bool) GraphicsOption {
	return func(g *Graphics) {
		g.bgAuto = auto
	}
}

// PlayerOption configures a Player during creation.
type PlayerOption func(*Player)

// WithLoopMode sets the initial loop mode. The default is LoopNormal.
func WithLoopMode(mode LoopMode) PlayerOption {
	return func(p *Player) {
		p.loop = mode
	}
}

// WithSpeed sets the initial playback rate. The default is 1.
func WithSpeed(speed float64) PlayerOption {
	return func(p *Player) {
		p.speed = speed
	}
}

// WithVolume sets the initial volume as a 0..1 fraction.
func WithVolume(volume float64) PlayerOption {
	return func(p *Player) {
		p.volume = clamp01(volume)
	}
}
