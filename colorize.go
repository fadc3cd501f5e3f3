package nom

// ColorizeAction blends a target's RGB tint over time. The alpha channel of
// the target's color is left as captured on the first frame.
type ColorizeAction struct {
	leafBase
	target ColorTarget
	mode   BlendMode

	// Either an absolute destination (to) or a per-channel delta (by).
	to       Color
	by       [3]int16
	relative bool

	initialColor Color
	hasInitial   bool
	displacement [3]float64
	color        Color
}

// Colorize blends the target's tint to the given color over duration
// seconds, drawing with mode.
func Colorize(target ColorTarget, to Color, mode BlendMode, duration float64) *ColorizeAction {
	return &ColorizeAction{
		leafBase: newLeafBase(duration),
		target:   target,
		mode:     mode,
		to:       to,
	}
}

// ColorizeBy shifts each RGB channel of the target's tint by the given
// deltas over duration seconds.
func ColorizeBy(target ColorTarget, dr, dg, db int16, mode BlendMode, duration float64) *ColorizeAction {
	return &ColorizeAction{
		leafBase: newLeafBase(duration),
		target:   target,
		mode:     mode,
		by:       [3]int16{dr, dg, db},
		relative: true,
	}
}

// Target returns the animated target, or nil once released.
func (a *ColorizeAction) Target() ColorTarget { return a.target }

// SetTarget replaces the animated target.
func (a *ColorizeAction) SetTarget(target ColorTarget) { a.target = target }

// InitialColor returns the color captured on the first frame.
func (a *ColorizeAction) InitialColor() (Color, bool) {
	return a.initialColor, a.hasInitial
}

// Color returns the last color computed.
func (a *ColorizeAction) Color() Color { return a.color }

func (a *ColorizeAction) NextFrame(dt float64) FrameState {
	return a.update(dt, 1)
}

// PrevFrame plays the blend backwards using the negated displacement.
func (a *ColorizeAction) PrevFrame(dt float64) FrameState {
	return a.update(dt, -1)
}

func (a *ColorizeAction) update(dt, sign float64) FrameState {
	frameTime, state, first := a.advance(dt)
	if first {
		a.firstFrame()
	}

	b := a.initialColor
	a.color = Color{
		R: roundChannel(interpolate(a.curve, frameTime, float64(b.R), sign*a.displacement[0], a.duration)),
		G: roundChannel(interpolate(a.curve, frameTime, float64(b.G), sign*a.displacement[1], a.duration)),
		B: roundChannel(interpolate(a.curve, frameTime, float64(b.B), sign*a.displacement[2], a.duration)),
		A: b.A,
	}
	if live(a.target) {
		a.target.SetColor(a.color)
	}
	return state
}

func (a *ColorizeAction) firstFrame() {
	if live(a.target) {
		a.initialColor = a.target.Color()
		a.hasInitial = true
		a.target.SetColorBlendMode(a.mode)
	}

	b := a.initialColor
	if a.relative {
		a.displacement = [3]float64{float64(a.by[0]), float64(a.by[1]), float64(a.by[2])}
		return
	}
	a.displacement = [3]float64{
		float64(a.to.R) - float64(b.R),
		float64(a.to.G) - float64(b.G),
		float64(a.to.B) - float64(b.B),
	}
}

func (a *ColorizeAction) Rewind(float64) {
	a.rewindTimer()
	if !a.hasInitial {
		return
	}
	a.color = a.initialColor
	if live(a.target) {
		a.target.SetColor(a.initialColor)
	}
}

func (a *ColorizeAction) Release() { a.target = nil }

func (a *ColorizeAction) Clone() Action {
	c := *a
	return &c
}
