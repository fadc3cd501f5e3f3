package nom

import (
	"math"
	"reflect"
)

// FrameState is the result of advancing an action by one frame.
type FrameState uint8

const (
	FramePlaying   FrameState = iota // the action wants another frame
	FrameCompleted                   // the action finished on this frame
)

// String returns the state's name.
func (s FrameState) String() string {
	switch s {
	case FramePlaying:
		return "playing"
	case FrameCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Action is a schedulable, time-driven mutation.
//
// Actions are advanced once per host tick through NextFrame (or PrevFrame
// when played backwards) and report FrameCompleted exactly once, on the tick
// their work finishes. Leaf actions measure elapsed time with their own Timer
// rather than summing the dt arguments: the first frame is credited with dt,
// every later frame reads the timer. dt is therefore a hint, not the
// authoritative elapsed time, and implementations must not accumulate it.
//
// Actions are not safe for concurrent use. Everything runs on the goroutine
// that calls ActionPlayer.Update.
type Action interface {
	// Name returns the action's identifier. Empty until assigned by the
	// caller or by ActionPlayer.RunAction.
	Name() string
	SetName(name string)

	// Duration returns the natural run length in seconds, or 0 for actions
	// without one (instant actions, endless repeats).
	Duration() float64

	// Speed is a time-scale factor. 0 halts progress without completing.
	// Composites forward SetSpeed to every child.
	Speed() float64
	SetSpeed(speed float64)

	// TimingCurve is the interpolation function. Composites forward
	// SetTimingCurve to every child.
	TimingCurve() TimingCurve
	SetTimingCurve(fn TimingCurve)

	NextFrame(dt float64) FrameState
	PrevFrame(dt float64) FrameState

	// Pause and Resume freeze and thaw the action's timers.
	Pause(dt float64)
	Resume(dt float64)

	// Rewind returns the action to its state before the first frame and
	// restores any mutated target value to what was captured on that frame.
	Rewind(dt float64)

	// Release drops the action's reference to its target. The frame state is
	// left alone; a released action keeps running as a no-op.
	Release()

	// Clone returns an independent copy. Leaf clones share the target;
	// composite clones deep-copy every child. Returns nil on failure.
	Clone() Action

	// NeedsCloneOnEnqueue reports whether a DispatchQueue must store a clone
	// of the action instead of the caller's instance.
	NeedsCloneOnEnqueue() bool
}

// ClockSetter is implemented by actions whose timers can be rebound to a
// different Clock. Composites forward the clock to every child.
type ClockSetter interface {
	SetClock(clock Clock)
}

// BindClock points every timer in the action tree at clock.
func BindClock(a Action, clock Clock) {
	if cs, ok := a.(ClockSetter); ok && clock != nil {
		cs.SetClock(clock)
	}
}

// isNilAction reports whether a is nil or a typed nil pointer.
func isNilAction(a Action) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// actionBase holds the fields every action carries.
type actionBase struct {
	name     string
	duration float64
	speed    float64
	curve    TimingCurve
}

func newActionBase(duration float64) actionBase {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	return actionBase{duration: duration, speed: 1, curve: DefaultTimingCurve}
}

func (b *actionBase) Name() string                  { return b.name }
func (b *actionBase) SetName(name string)           { b.name = name }
func (b *actionBase) Duration() float64             { return b.duration }
func (b *actionBase) Speed() float64                { return b.speed }
func (b *actionBase) SetSpeed(speed float64)        { b.speed = speed }
func (b *actionBase) TimingCurve() TimingCurve      { return b.curve }
func (b *actionBase) SetTimingCurve(fn TimingCurve) { b.curve = fn }
func (b *actionBase) NeedsCloneOnEnqueue() bool     { return false }

// leafBase adds the timer shared by actions that do their own time keeping.
type leafBase struct {
	actionBase
	timer Timer
}

func newLeafBase(duration float64) leafBase {
	return leafBase{actionBase: newActionBase(duration)}
}

func (l *leafBase) SetClock(clock Clock) { l.timer.SetClock(clock) }
func (l *leafBase) Pause(float64)        { l.timer.Pause() }
func (l *leafBase) Resume(float64)       { l.timer.Unpause() }

// limit is the real time the action takes at its current speed. A
// non-positive speed never completes.
func (l *leafBase) limit() float64 {
	if l.speed <= 0 || math.IsNaN(l.speed) {
		return math.Inf(1)
	}
	return l.duration / l.speed
}

// advance starts the timer on the first frame, crediting it with dt, and
// returns the curve time for this frame along with the frame state. first is
// true when this call started the timer.
func (l *leafBase) advance(dt float64) (frameTime float64, state FrameState, first bool) {
	if !l.timer.Started() {
		if !(dt > 0) || math.IsInf(dt, 1) {
			dt = 0
		}
		l.timer.StartAt(l.timer.now() - seconds(dt))
		first = true
	}

	limit := l.limit()
	elapsed := math.Min(math.Max(l.timer.Seconds(), 0), limit)

	speed := l.speed
	if speed < 0 || math.IsNaN(speed) {
		speed = 0
	}
	frameTime = elapsed * speed

	if elapsed < limit {
		return frameTime, FramePlaying, first
	}
	return frameTime, FrameCompleted, first
}

// rewindTimer resets the timer so the next frame counts as a first frame.
func (l *leafBase) rewindTimer() { l.timer.Stop() }
