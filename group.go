package nom

// GroupAction runs its children in parallel. Every child receives the same
// dt within one call so grouped actions never drift out of phase. A child
// that completes is dropped from the active set on that call; the group
// completes on the call that empties the set.
//
// Pause, Resume, Rewind and Release reach every child, including children
// that have already completed.
type GroupAction struct {
	actionBase
	actions []Action
	done    []bool

	// elapsed counts completed children; order records which ones, in the
	// order they finished.
	elapsed int
	order   []int
}

// Group returns a composite that plays actions simultaneously. Nil actions
// are skipped.
func Group(actions ...Action) *GroupAction {
	g := &GroupAction{actionBase: newActionBase(0)}
	for _, a := range actions {
		if isNilAction(a) {
			Logger().Warn("nom: group skipped nil action")
			continue
		}
		g.actions = append(g.actions, a)
		if d := a.Duration(); d > g.duration {
			g.duration = d
		}
	}
	g.done = make([]bool, len(g.actions))
	return g
}

// Actions returns the children. The returned slice MUST NOT be mutated.
func (g *GroupAction) Actions() []Action { return g.actions }

// NumCompleted returns how many children have completed.
func (g *GroupAction) NumCompleted() int { return g.elapsed }

// CompletionOrder returns the indices of completed children in the order
// they finished.
func (g *GroupAction) CompletionOrder() []int { return g.order }

func (g *GroupAction) NextFrame(dt float64) FrameState {
	return g.frame(dt, Action.NextFrame)
}

func (g *GroupAction) PrevFrame(dt float64) FrameState {
	return g.frame(dt, Action.PrevFrame)
}

func (g *GroupAction) frame(dt float64, advance func(Action, float64) FrameState) FrameState {
	for i, a := range g.actions {
		if g.done[i] {
			continue
		}
		if advance(a, dt) == FrameCompleted {
			g.done[i] = true
			g.elapsed++
			g.order = append(g.order, i)
			Logger().Debug("nom: group child completed",
				"group", g.name, "child", a.Name(), "index", i, "completed", g.elapsed)
		}
	}
	if g.elapsed >= len(g.actions) {
		return FrameCompleted
	}
	return FramePlaying
}

func (g *GroupAction) Pause(dt float64) {
	for _, a := range g.actions {
		a.Pause(dt)
	}
}

func (g *GroupAction) Resume(dt float64) {
	for _, a := range g.actions {
		a.Resume(dt)
	}
}

func (g *GroupAction) Rewind(dt float64) {
	for _, a := range g.actions {
		a.Rewind(dt)
	}
	for i := range g.done {
		g.done[i] = false
	}
	g.elapsed = 0
	g.order = g.order[:0]
}

func (g *GroupAction) Release() {
	for _, a := range g.actions {
		a.Release()
	}
}

func (g *GroupAction) SetSpeed(speed float64) {
	g.speed = speed
	for _, a := range g.actions {
		a.SetSpeed(speed)
	}
}

func (g *GroupAction) SetTimingCurve(fn TimingCurve) {
	g.curve = fn
	for _, a := range g.actions {
		a.SetTimingCurve(fn)
	}
}

func (g *GroupAction) SetClock(clock Clock) {
	for _, a := range g.actions {
		BindClock(a, clock)
	}
}

func (g *GroupAction) NeedsCloneOnEnqueue() bool { return true }

func (g *GroupAction) Clone() Action {
	actions, ok := cloneAll(g.actions)
	if !ok {
		return nil
	}
	c := *g
	c.actions = actions
	c.done = append([]bool(nil), g.done...)
	c.order = append([]int(nil), g.order...)
	return &c
}

// cloneAll deep-copies every action, failing if any clone fails.
func cloneAll(actions []Action) ([]Action, bool) {
	out := make([]Action, len(actions))
	for i, a := range actions {
		c := a.Clone()
		if isNilAction(c) {
			Logger().Warn("nom: clone failed", "action", a.Name(), "index", i)
			return nil, false
		}
		out[i] = c
	}
	return out, true
}
