package nom

// PlayerState is the run state an ActionPlayer applies to all of its queues.
type PlayerState uint8

const (
	PlayerRunning PlayerState = iota // actions advance normally
	PlayerPaused                     // action timers are frozen
	PlayerStopped                    // actions are rewound every frame
)

// String returns the state's name.
func (s PlayerState) String() string {
	switch s {
	case PlayerRunning:
		return "running"
	case PlayerPaused:
		return "paused"
	case PlayerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// dispatchEntry pairs an action with its completion callback. owned marks
// clones the queue made for itself; those are released when dropped.
type dispatchEntry struct {
	action Action
	done   func()
	owned  bool
}

// DispatchQueue advances one current action per Update and retires it when
// it completes, firing its callback.
type DispatchQueue struct {
	entries []dispatchEntry
	cursor  int

	// cleared counts calls to clear, so Update can tell that the action it
	// is advancing was dropped from under it.
	cleared uint64
}

// NewDispatchQueue creates an empty queue.
func NewDispatchQueue() *DispatchQueue {
	return &DispatchQueue{}
}

// Len returns the number of queued actions.
func (q *DispatchQueue) Len() int { return len(q.entries) }

// Current returns the action that the next Update will advance, or nil.
func (q *DispatchQueue) Current() Action {
	if len(q.entries) == 0 {
		return nil
	}
	return q.entries[q.cursor].action
}

// Enqueue appends action and makes it the current entry. done, if non-nil,
// is called once when the action completes. Actions that report
// NeedsCloneOnEnqueue are cloned so the caller's instance stays reusable;
// others are stored as is. Returns false if action is nil or cannot be
// cloned.
func (q *DispatchQueue) Enqueue(action Action, done func()) bool {
	if isNilAction(action) {
		Logger().Error("nom: enqueue rejected", "reason", "nil action")
		return false
	}

	entry := dispatchEntry{action: action, done: done}
	if action.NeedsCloneOnEnqueue() {
		c := action.Clone()
		if isNilAction(c) {
			Logger().Error("nom: enqueue rejected", "reason", "clone failed", "action", action.Name())
			return false
		}
		entry.action = c
		entry.owned = true
	}

	q.entries = append(q.entries, entry)
	q.cursor = len(q.entries) - 1
	Logger().Debug("nom: action enqueued", "action", action.Name(), "cloned", entry.owned)
	return true
}

// Update advances the current action by one frame and applies state to it.
// When the action completes it is removed from the queue and then its
// callback runs, so a callback may enqueue more work. If the frame itself
// clears the queue, the action is treated as cancelled and its callback
// does not run. Returns true only on the frame an action was retired.
func (q *DispatchQueue) Update(state PlayerState, dt float64) bool {
	if len(q.entries) == 0 {
		return false
	}
	if q.cursor >= len(q.entries) {
		q.cursor = len(q.entries) - 1
	}

	i, cleared := q.cursor, q.cleared
	e := q.entries[i]
	frame := e.action.NextFrame(dt)
	if q.cleared != cleared {
		Logger().Debug("nom: action dropped during its frame", "action", e.action.Name())
		return false
	}
	if frame != FrameCompleted {
		switch state {
		case PlayerPaused:
			e.action.Pause(dt)
		case PlayerStopped:
			e.action.Rewind(dt)
		default:
			// Resuming every running frame also recovers actions whose
			// explicit Resume was missed.
			e.action.Resume(dt)
		}
		return false
	}

	q.remove(i)
	Logger().Debug("nom: action completed", "action", e.action.Name())
	if e.owned {
		e.action.Release()
	}
	if e.done != nil {
		e.done()
	}
	return true
}

func (q *DispatchQueue) remove(i int) {
	copy(q.entries[i:], q.entries[i+1:])
	q.entries[len(q.entries)-1] = dispatchEntry{}
	q.entries = q.entries[:len(q.entries)-1]
	q.cursor = len(q.entries) - 1
	if q.cursor < 0 {
		q.cursor = 0
	}
}

// clear drops every entry without firing callbacks.
func (q *DispatchQueue) clear() {
	for i := range q.entries {
		if q.entries[i].owned {
			q.entries[i].action.Release()
		}
		q.entries[i] = dispatchEntry{}
	}
	q.entries = q.entries[:0]
	q.cursor = 0
	q.cleared++
}
