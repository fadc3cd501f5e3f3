package nom

// transformAction is the shared shape of MoveBy, ScaleBy and RotateBy: a
// float displacement of one Transformable property.
type transformAction struct {
	leafBase
	target Transformable

	initial    Vec2
	hasInitial bool
	current    Vec2
}

func (a *transformAction) step(dt, sign float64, by Vec2, get func(Transformable) Vec2, set func(Transformable, Vec2)) FrameState {
	frameTime, state, first := a.advance(dt)
	if first && live(a.target) {
		a.initial = get(a.target)
		a.hasInitial = true
	}

	a.current = Vec2{
		X: interpolate(a.curve, frameTime, a.initial.X, sign*by.X, a.duration),
		Y: interpolate(a.curve, frameTime, a.initial.Y, sign*by.Y, a.duration),
	}
	if live(a.target) {
		set(a.target, a.current)
	}
	return state
}

func (a *transformAction) rewind(set func(Transformable, Vec2)) {
	a.rewindTimer()
	if !a.hasInitial {
		return
	}
	a.current = a.initial
	if live(a.target) {
		set(a.target, a.initial)
	}
}

// Target returns the animated target, or nil once released.
func (a *transformAction) Target() Transformable { return a.target }

// SetTarget replaces the animated target.
func (a *transformAction) SetTarget(target Transformable) { a.target = target }

func (a *transformAction) Release() { a.target = nil }

func getPosition(t Transformable) Vec2    { return t.Position() }
func setPosition(t Transformable, v Vec2) { t.SetPosition(v) }
func getScale(t Transformable) Vec2       { return t.Scale() }
func setScale(t Transformable, v Vec2)    { t.SetScale(v) }
func getRotation(t Transformable) Vec2    { return Vec2{X: t.Rotation()} }
func setRotation(t Transformable, v Vec2) { t.SetRotation(v.X) }

// MoveByAction translates a target by a fixed offset.
type MoveByAction struct {
	transformAction
	by Vec2
}

// MoveBy moves the target by offset over duration seconds.
func MoveBy(target Transformable, offset Vec2, duration float64) *MoveByAction {
	return &MoveByAction{
		transformAction: transformAction{leafBase: newLeafBase(duration), target: target},
		by:              offset,
	}
}

func (a *MoveByAction) NextFrame(dt float64) FrameState {
	return a.step(dt, 1, a.by, getPosition, setPosition)
}

func (a *MoveByAction) PrevFrame(dt float64) FrameState {
	return a.step(dt, -1, a.by, getPosition, setPosition)
}

func (a *MoveByAction) Rewind(float64) { a.rewind(setPosition) }

func (a *MoveByAction) Clone() Action {
	c := *a
	return &c
}

// ScaleByAction changes a target's scale by a fixed amount.
type ScaleByAction struct {
	transformAction
	by Vec2
}

// ScaleBy adds delta to the target's scale over duration seconds.
func ScaleBy(target Transformable, delta Vec2, duration float64) *ScaleByAction {
	return &ScaleByAction{
		transformAction: transformAction{leafBase: newLeafBase(duration), target: target},
		by:              delta,
	}
}

func (a *ScaleByAction) NextFrame(dt float64) FrameState {
	return a.step(dt, 1, a.by, getScale, setScale)
}

func (a *ScaleByAction) PrevFrame(dt float64) FrameState {
	return a.step(dt, -1, a.by, getScale, setScale)
}

func (a *ScaleByAction) Rewind(float64) { a.rewind(setScale) }

func (a *ScaleByAction) Clone() Action {
	c := *a
	return &c
}

// RotateByAction turns a target by a fixed angle.
type RotateByAction struct {
	transformAction
	by float64
}

// RotateBy rotates the target by radians over duration seconds.
func RotateBy(target Transformable, radians float64, duration float64) *RotateByAction {
	return &RotateByAction{
		transformAction: transformAction{leafBase: newLeafBase(duration), target: target},
		by:              radians,
	}
}

func (a *RotateByAction) NextFrame(dt float64) FrameState {
	return a.step(dt, 1, Vec2{X: a.by}, getRotation, setRotation)
}

func (a *RotateByAction) PrevFrame(dt float64) FrameState {
	return a.step(dt, -1, Vec2{X: a.by}, getRotation, setRotation)
}

func (a *RotateByAction) Rewind(float64) { a.rewind(setRotation) }

func (a *RotateByAction) Clone() Action {
	c := *a
	return &c
}
