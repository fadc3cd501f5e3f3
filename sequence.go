package nom

// SequenceAction runs its children one after another. Only the current child
// receives frames; the next child starts on the following frame. Played
// backwards, children run last to first.
type SequenceAction struct {
	actionBase
	actions []Action
	index   int
}

// Sequence returns a composite that plays actions in order. Nil actions are
// skipped.
func Sequence(actions ...Action) *SequenceAction {
	s := &SequenceAction{actionBase: newActionBase(0)}
	for _, a := range actions {
		if isNilAction(a) {
			Logger().Warn("nom: sequence skipped nil action")
			continue
		}
		s.actions = append(s.actions, a)
		s.duration += a.Duration()
	}
	return s
}

// Actions returns the children. The returned slice MUST NOT be mutated.
func (s *SequenceAction) Actions() []Action { return s.actions }

// Index returns how many children have completed.
func (s *SequenceAction) Index() int { return s.index }

// ActiveChild returns the child receiving frames when played forwards, or nil
// once every child has completed.
func (s *SequenceAction) ActiveChild() Action {
	if s.index >= len(s.actions) {
		return nil
	}
	return s.actions[s.index]
}

func (s *SequenceAction) NextFrame(dt float64) FrameState {
	if s.index >= len(s.actions) {
		return FrameCompleted
	}
	return s.step(s.actions[s.index].NextFrame(dt))
}

func (s *SequenceAction) PrevFrame(dt float64) FrameState {
	if s.index >= len(s.actions) {
		return FrameCompleted
	}
	return s.step(s.actions[len(s.actions)-1-s.index].PrevFrame(dt))
}

func (s *SequenceAction) step(state FrameState) FrameState {
	if state != FrameCompleted {
		return FramePlaying
	}
	s.index++
	Logger().Debug("nom: sequence child completed", "sequence", s.name, "index", s.index)
	if s.index >= len(s.actions) {
		return FrameCompleted
	}
	return FramePlaying
}

func (s *SequenceAction) Pause(dt float64) {
	for _, a := range s.actions {
		a.Pause(dt)
	}
}

func (s *SequenceAction) Resume(dt float64) {
	for _, a := range s.actions {
		a.Resume(dt)
	}
}

// Rewind rewinds children last to first, so when several children animate
// the same property the first child's captured value is what remains.
func (s *SequenceAction) Rewind(dt float64) {
	for i := len(s.actions) - 1; i >= 0; i-- {
		s.actions[i].Rewind(dt)
	}
	s.index = 0
}

func (s *SequenceAction) Release() {
	for _, a := range s.actions {
		a.Release()
	}
}

func (s *SequenceAction) SetSpeed(speed float64) {
	s.speed = speed
	for _, a := range s.actions {
		a.SetSpeed(speed)
	}
}

func (s *SequenceAction) SetTimingCurve(fn TimingCurve) {
	s.curve = fn
	for _, a := range s.actions {
		a.SetTimingCurve(fn)
	}
}

func (s *SequenceAction) SetClock(clock Clock) {
	for _, a := range s.actions {
		BindClock(a, clock)
	}
}

func (s *SequenceAction) NeedsCloneOnEnqueue() bool { return true }

func (s *SequenceAction) Clone() Action {
	actions, ok := cloneAll(s.actions)
	if !ok {
		return nil
	}
	c := *s
	c.actions = actions
	return &c
}
