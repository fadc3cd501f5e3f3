package nom

// ReversedAction plays its child backwards: NextFrame drives the child's
// PrevFrame and vice versa. Everything else passes straight through.
type ReversedAction struct {
	actionBase
	action Action
}

// Reversed wraps action so that it plays in reverse.
func Reversed(action Action) *ReversedAction {
	if isNilAction(action) {
		action = nil
	}
	r := &ReversedAction{actionBase: newActionBase(0), action: action}
	if action != nil {
		r.duration = action.Duration()
	}
	return r
}

// Action returns the wrapped child.
func (r *ReversedAction) Action() Action { return r.action }

func (r *ReversedAction) NextFrame(dt float64) FrameState {
	if r.action == nil {
		return FrameCompleted
	}
	return r.action.PrevFrame(dt)
}

func (r *ReversedAction) PrevFrame(dt float64) FrameState {
	if r.action == nil {
		return FrameCompleted
	}
	return r.action.NextFrame(dt)
}

func (r *ReversedAction) Pause(dt float64) {
	if r.action != nil {
		r.action.Pause(dt)
	}
}

func (r *ReversedAction) Resume(dt float64) {
	if r.action != nil {
		r.action.Resume(dt)
	}
}

func (r *ReversedAction) Rewind(dt float64) {
	if r.action != nil {
		r.action.Rewind(dt)
	}
}

func (r *ReversedAction) Release() {
	if r.action != nil {
		r.action.Release()
	}
}

func (r *ReversedAction) SetSpeed(speed float64) {
	r.speed = speed
	if r.action != nil {
		r.action.SetSpeed(speed)
	}
}

func (r *ReversedAction) SetTimingCurve(fn TimingCurve) {
	r.curve = fn
	if r.action != nil {
		r.action.SetTimingCurve(fn)
	}
}

func (r *ReversedAction) SetClock(clock Clock) {
	if r.action != nil {
		BindClock(r.action, clock)
	}
}

func (r *ReversedAction) Clone() Action {
	c := *r
	if r.action != nil {
		if c.action = r.action.Clone(); isNilAction(c.action) {
			return nil
		}
	}
	return &c
}
