package nom

// FadeAction animates a target's alpha by a fixed displacement.
type FadeAction struct {
	leafBase
	target       AlphaTarget
	displacement int16

	initialAlpha uint8
	hasInitial   bool
	alpha        uint8
}

// FadeIn fades the target up by 255, i.e. to fully opaque from wherever its
// alpha is on the first frame.
func FadeIn(target AlphaTarget, duration float64) *FadeAction {
	return FadeAlphaBy(target, 255, duration)
}

// FadeOut fades the target down by 255, i.e. to fully transparent.
func FadeOut(target AlphaTarget, duration float64) *FadeAction {
	return FadeAlphaBy(target, -255, duration)
}

// FadeAlphaBy changes the target's alpha by delta over duration seconds.
func FadeAlphaBy(target AlphaTarget, delta int16, duration float64) *FadeAction {
	return &FadeAction{
		leafBase:     newLeafBase(duration),
		target:       target,
		displacement: delta,
	}
}

// Target returns the animated target, or nil once released.
func (a *FadeAction) Target() AlphaTarget { return a.target }

// SetTarget replaces the animated target. Intended for freshly cloned
// actions; changing the target mid-flight keeps the old initial alpha.
func (a *FadeAction) SetTarget(target AlphaTarget) { a.target = target }

// Displacement returns the total alpha change.
func (a *FadeAction) Displacement() int16 { return a.displacement }

// InitialAlpha returns the alpha captured on the first frame.
func (a *FadeAction) InitialAlpha() (alpha uint8, ok bool) {
	return a.initialAlpha, a.hasInitial
}

// Alpha returns the last alpha value computed.
func (a *FadeAction) Alpha() uint8 { return a.alpha }

func (a *FadeAction) NextFrame(dt float64) FrameState {
	return a.update(dt, float64(a.displacement))
}

// PrevFrame plays the fade backwards. The displacement used is
// -(displacement + 1), so a fade and its reverse are not exact mirrors; see
// TestFadeForwardBackwardAsymmetry.
func (a *FadeAction) PrevFrame(dt float64) FrameState {
	return a.update(dt, -(float64(a.displacement) + 1))
}

func (a *FadeAction) update(dt, change float64) FrameState {
	frameTime, state, first := a.advance(dt)
	if first {
		a.firstFrame()
	}

	a.alpha = roundChannel(interpolate(a.curve, frameTime, float64(a.initialAlpha), change, a.duration))
	if live(a.target) {
		a.target.SetAlpha(a.alpha)
	}
	return state
}

func (a *FadeAction) firstFrame() {
	if !live(a.target) {
		return
	}
	a.initialAlpha = a.target.Alpha()
	a.hasInitial = true
	if bt, ok := a.target.(interface{ SetColorBlendMode(BlendMode) }); ok {
		bt.SetColorBlendMode(BlendNormal)
	}
}

func (a *FadeAction) Rewind(float64) {
	a.rewindTimer()
	if !a.hasInitial {
		return
	}
	a.alpha = a.initialAlpha
	if live(a.target) {
		a.target.SetAlpha(a.initialAlpha)
	}
}

func (a *FadeAction) Release() { a.target = nil }

func (a *FadeAction) Clone() Action {
	c := *a
	return &c
}
