package nom

// WaitAction does nothing for its duration.
type WaitAction struct {
	leafBase
}

// Wait returns an action that completes after duration seconds.
func Wait(duration float64) *WaitAction {
	return &WaitAction{leafBase: newLeafBase(duration)}
}

func (a *WaitAction) NextFrame(dt float64) FrameState {
	_, state, _ := a.advance(dt)
	return state
}

func (a *WaitAction) PrevFrame(dt float64) FrameState { return a.NextFrame(dt) }
func (a *WaitAction) Rewind(float64)                  { a.rewindTimer() }
func (a *WaitAction) Release()                        {}

func (a *WaitAction) Clone() Action {
	c := *a
	return &c
}

// CallbackAction calls a function on its first frame, then waits out its
// duration. A zero duration completes on the same frame.
type CallbackAction struct {
	leafBase
	fn     func()
	called bool
}

// Callback returns an action that invokes fn once and completes after
// duration seconds.
func Callback(duration float64, fn func()) *CallbackAction {
	return &CallbackAction{leafBase: newLeafBase(duration), fn: fn}
}

func (a *CallbackAction) NextFrame(dt float64) FrameState {
	_, state, _ := a.advance(dt)
	if !a.called {
		a.called = true
		if a.fn != nil {
			a.fn()
		}
	}
	return state
}

func (a *CallbackAction) PrevFrame(dt float64) FrameState { return a.NextFrame(dt) }

func (a *CallbackAction) Rewind(float64) {
	a.rewindTimer()
	a.called = false
}

// Release drops the callback so it can no longer be invoked.
func (a *CallbackAction) Release() { a.fn = nil }

func (a *CallbackAction) Clone() Action {
	c := *a
	return &c
}
