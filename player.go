package nom

import (
	"strconv"
	"time"
)

// PlayerConfig holds optional ActionPlayer settings. The zero value is valid.
type PlayerConfig struct {
	// Clock drives the timers of every action the player runs. Nil means
	// SystemClock. A *FrameClock is advanced by dt on every Update.
	Clock Clock

	// OnComplete, if set, is called with the action's name after the
	// action's own completion callback. It is not called on cancellation.
	OnComplete func(name string)
}

// ActionPlayer maps action names to dispatch queues and drives all of them
// from the host's update loop. Its state (running, paused, stopped) applies
// to every queue and takes effect on the next Update.
type ActionPlayer struct {
	state  PlayerState
	clock  Clock
	queues map[string]*DispatchQueue
	order  []string
	nextID uint64

	onComplete func(name string)
	debug      bool

	// scratch buffers reused across Update calls
	visit   []namedQueue
	retired []namedQueue
}

type namedQueue struct {
	name  string
	queue *DispatchQueue
}

// NewActionPlayer creates a running player.
func NewActionPlayer(cfg PlayerConfig) *ActionPlayer {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	return &ActionPlayer{
		clock:      clock,
		queues:     make(map[string]*DispatchQueue),
		onComplete: cfg.OnComplete,
	}
}

// State returns the player's current state.
func (p *ActionPlayer) State() PlayerState { return p.state }

// Clock returns the clock bound to actions run by this player.
func (p *ActionPlayer) Clock() Clock { return p.clock }

// NumActions returns the number of named actions still running.
func (p *ActionPlayer) NumActions() int { return len(p.queues) }

// Names returns the running action names in update order.
func (p *ActionPlayer) Names() []string {
	return append([]string(nil), p.order...)
}

// RunAction runs action under its own name, generating one if the name is
// empty. done, if non-nil, is called once when the action completes.
func (p *ActionPlayer) RunAction(action Action, done func()) bool {
	if isNilAction(action) {
		Logger().Error("nom: run action rejected", "reason", "nil action")
		return false
	}
	return p.RunActionName(action.Name(), action, done)
}

// RunActionName runs action under name, generating one if name is empty.
// An action already running under the same name is discarded without
// firing its callback. The name and the player's clock are applied to the
// action the queue stores: a leaf is named in place, a Group or Sequence
// only through its clone. Returns false if the action is rejected.
func (p *ActionPlayer) RunActionName(name string, action Action, done func()) bool {
	if isNilAction(action) {
		Logger().Error("nom: run action rejected", "reason", "nil action", "name", name)
		return false
	}
	if name == "" {
		name = p.generateName()
	}

	q := NewDispatchQueue()
	if !q.Enqueue(action, p.completion(name, done)) {
		return false
	}
	stored := q.Current()
	stored.SetName(name)
	BindClock(stored, p.clock)

	if old, ok := p.queues[name]; ok {
		Logger().Warn("nom: action name already running, replacing", "name", name)
		old.clear()
		p.removeOrder(name)
	}
	p.queues[name] = q
	p.order = append(p.order, name)
	return true
}

func (p *ActionPlayer) completion(name string, done func()) func() {
	if p.onComplete == nil {
		return done
	}
	hook := p.onComplete
	return func() {
		if done != nil {
			done()
		}
		hook(name)
	}
}

// generateName returns the next id not already in use.
func (p *ActionPlayer) generateName() string {
	for {
		p.nextID++
		name := strconv.FormatUint(p.nextID, 10)
		if _, taken := p.queues[name]; !taken {
			return name
		}
	}
}

// ActionRunning reports whether an action is running under name.
func (p *ActionPlayer) ActionRunning(name string) bool {
	_, ok := p.queues[name]
	return ok
}

// CancelAction discards the action running under name without firing its
// callback. Returns false if no such action exists.
func (p *ActionPlayer) CancelAction(name string) bool {
	q, ok := p.queues[name]
	if !ok {
		return false
	}
	q.clear()
	delete(p.queues, name)
	p.removeOrder(name)
	Logger().Debug("nom: action cancelled", "name", name)
	return true
}

// CancelActions discards every running action without firing callbacks.
func (p *ActionPlayer) CancelActions() {
	for _, name := range p.order {
		p.queues[name].clear()
	}
	clear(p.queues)
	p.order = p.order[:0]
}

// Pause freezes every action on the next Update.
func (p *ActionPlayer) Pause() { p.state = PlayerPaused }

// Resume lets every action advance again on the next Update.
func (p *ActionPlayer) Resume() { p.state = PlayerRunning }

// Stop rewinds every action on each Update until resumed.
func (p *ActionPlayer) Stop() { p.state = PlayerStopped }

// Update advances every queue once, in the order the actions were started.
// Queues whose action completed are erased after the pass, so callbacks may
// run or cancel actions freely. Actions started during the pass are first
// advanced on the next Update. Returns true if any action is still running.
func (p *ActionPlayer) Update(dt float64) bool {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	if fc, ok := p.clock.(*FrameClock); ok {
		fc.Advance(dt)
	}

	p.visit = p.visit[:0]
	for _, name := range p.order {
		p.visit = append(p.visit, namedQueue{name, p.queues[name]})
	}

	p.retired = p.retired[:0]
	visited := 0
	for _, nq := range p.visit {
		if p.queues[nq.name] != nq.queue {
			// cancelled or replaced by a callback earlier in this pass
			continue
		}
		visited++
		nq.queue.Update(p.state, dt)
		if nq.queue.Len() == 0 {
			p.retired = append(p.retired, nq)
		}
	}

	erased := 0
	for _, nq := range p.retired {
		if p.queues[nq.name] == nq.queue && nq.queue.Len() == 0 {
			delete(p.queues, nq.name)
			p.removeOrder(nq.name)
			erased++
		}
	}
	clear(p.visit)
	clear(p.retired)

	if p.debug {
		p.debugLog(playerStats{
			visited:   visited,
			retired:   erased,
			remaining: len(p.queues),
			elapsed:   time.Since(t0),
		})
	}

	for _, q := range p.queues {
		if q.Len() > 0 {
			return true
		}
	}
	return false
}

func (p *ActionPlayer) removeOrder(name string) {
	for i, n := range p.order {
		if n == name {
			copy(p.order[i:], p.order[i+1:])
			p.order[len(p.order)-1] = ""
			p.order = p.order[:len(p.order)-1]
			return
		}
	}
}
