package nom

// RepeatForeverAction replays its child endlessly. Each time the child
// completes, the repeat count is incremented and the child is rewound within
// the same frame, so no frame is spent idle between iterations. A Group or
// Sequence child is driven and rewound as a whole. It never reports
// FrameCompleted unless it has no child.
type RepeatForeverAction struct {
	actionBase
	action  Action
	repeats int
}

// RepeatForever wraps action in an endless loop.
func RepeatForever(action Action) *RepeatForeverAction {
	if isNilAction(action) {
		action = nil
	}
	return &RepeatForeverAction{actionBase: newActionBase(0), action: action}
}

// Action returns the wrapped child.
func (r *RepeatForeverAction) Action() Action { return r.action }

// Repeats returns how many times the child has completed since the last
// rewind.
func (r *RepeatForeverAction) Repeats() int { return r.repeats }

func (r *RepeatForeverAction) NextFrame(dt float64) FrameState {
	if r.action == nil {
		return FrameCompleted
	}
	r.loop(dt, r.action.NextFrame(dt))
	return FramePlaying
}

func (r *RepeatForeverAction) PrevFrame(dt float64) FrameState {
	if r.action == nil {
		return FrameCompleted
	}
	r.loop(dt, r.action.PrevFrame(dt))
	return FramePlaying
}

func (r *RepeatForeverAction) loop(dt float64, state FrameState) {
	if state != FrameCompleted {
		return
	}
	r.repeats++
	r.action.Rewind(dt)
}

func (r *RepeatForeverAction) Pause(dt float64) {
	if r.action != nil {
		r.action.Pause(dt)
	}
}

func (r *RepeatForeverAction) Resume(dt float64) {
	if r.action != nil {
		r.action.Resume(dt)
	}
}

func (r *RepeatForeverAction) Rewind(dt float64) {
	r.repeats = 0
	if r.action != nil {
		r.action.Rewind(dt)
	}
}

func (r *RepeatForeverAction) Release() {
	if r.action != nil {
		r.action.Release()
	}
}

func (r *RepeatForeverAction) SetSpeed(speed float64) {
	r.speed = speed
	if r.action != nil {
		r.action.SetSpeed(speed)
	}
}

func (r *RepeatForeverAction) SetTimingCurve(fn TimingCurve) {
	r.curve = fn
	if r.action != nil {
		r.action.SetTimingCurve(fn)
	}
}

func (r *RepeatForeverAction) SetClock(clock Clock) {
	if r.action != nil {
		BindClock(r.action, clock)
	}
}

func (r *RepeatForeverAction) Clone() Action {
	c := *r
	if r.action != nil {
		if c.action = r.action.Clone(); isNilAction(c.action) {
			return nil
		}
	}
	return &c
}

// RepeatForAction replays its child a fixed number of times, then completes.
// The child is left in its final state after the last iteration.
type RepeatForAction struct {
	actionBase
	action  Action
	times   int
	repeats int
}

// RepeatFor wraps action so that it plays times times in a row.
func RepeatFor(action Action, times int) *RepeatForAction {
	if isNilAction(action) {
		action = nil
	}
	if times < 0 {
		times = 0
	}
	r := &RepeatForAction{actionBase: newActionBase(0), action: action, times: times}
	if action != nil {
		r.duration = action.Duration() * float64(times)
	}
	return r
}

// Action returns the wrapped child.
func (r *RepeatForAction) Action() Action { return r.action }

// Repeats returns how many iterations have completed since the last rewind.
func (r *RepeatForAction) Repeats() int { return r.repeats }

// Times returns the total number of iterations.
func (r *RepeatForAction) Times() int { return r.times }

func (r *RepeatForAction) NextFrame(dt float64) FrameState {
	if r.action == nil || r.repeats >= r.times {
		return FrameCompleted
	}
	return r.loop(dt, r.action.NextFrame(dt))
}

func (r *RepeatForAction) PrevFrame(dt float64) FrameState {
	if r.action == nil || r.repeats >= r.times {
		return FrameCompleted
	}
	return r.loop(dt, r.action.PrevFrame(dt))
}

func (r *RepeatForAction) loop(dt float64, state FrameState) FrameState {
	if state != FrameCompleted {
		return FramePlaying
	}
	r.repeats++
	if r.repeats >= r.times {
		return FrameCompleted
	}
	r.action.Rewind(dt)
	return FramePlaying
}

func (r *RepeatForAction) Pause(dt float64) {
	if r.action != nil {
		r.action.Pause(dt)
	}
}

func (r *RepeatForAction) Resume(dt float64) {
	if r.action != nil {
		r.action.Resume(dt)
	}
}

func (r *RepeatForAction) Rewind(dt float64) {
	r.repeats = 0
	if r.action != nil {
		r.action.Rewind(dt)
	}
}

func (r *RepeatForAction) Release() {
	if r.action != nil {
		r.action.Release()
	}
}

func (r *RepeatForAction) SetSpeed(speed float64) {
	r.speed = speed
	if r.action != nil {
		r.action.SetSpeed(speed)
	}
}

func (r *RepeatForAction) SetTimingCurve(fn TimingCurve) {
	r.curve = fn
	if r.action != nil {
		r.action.SetTimingCurve(fn)
	}
}

func (r *RepeatForAction) SetClock(clock Clock) {
	if r.action != nil {
		BindClock(r.action, clock)
	}
}

func (r *RepeatForAction) Clone() Action {
	c := *r
	if r.action != nil {
		if c.action = r.action.Clone(); isNilAction(c.action) {
			return nil
		}
	}
	return &c
}
