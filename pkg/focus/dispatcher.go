package focus

import (
	"time"

	"github.com/go-logr/logr"
)

// DefaultDebounce is the trailing-edge debounce window for key-down events.
const DefaultDebounce = 50 * time.Millisecond

// KeyDispatcher turns raw key-down events into at most one handling pass per
// burst. Repeat events are dropped, the rest are debounced on the trailing
// edge, and the surviving event goes to the pending override, the custom
// handler, or the fallback handler, in that order.
type KeyDispatcher struct {
	sched     Scheduler
	delay     time.Duration
	overrides *OverrideChain
	custom    KeyHandler
	fallback  KeyHandler

	timer   Timer
	pending *KeyEvent
	seq     uint64
	closed  bool

	// invoke runs the override and custom handlers. nil runs them inline.
	invoke func(fn func())

	log     logr.Logger
	metrics *Metrics
}

// NewKeyDispatcher creates a dispatcher. fallback handles events that neither
// the override chain nor a custom handler claims.
func NewKeyDispatcher(sched Scheduler, delay time.Duration, overrides *OverrideChain, fallback KeyHandler) *KeyDispatcher {
	if overrides == nil {
		overrides = &OverrideChain{}
	}
	return &KeyDispatcher{
		sched:     sched,
		delay:     delay,
		overrides: overrides,
		fallback:  fallback,
		log:       logr.Discard(),
	}
}

// SetCustomHandler installs or replaces the handler consulted before the
// fallback. nil removes it.
func (d *KeyDispatcher) SetCustomHandler(h KeyHandler) { d.custom = h }

// Pending reports whether an event is waiting for the debounce window to end.
func (d *KeyDispatcher) Pending() bool { return d.pending != nil }

// HandleKeyDown accepts a raw key-down event.
func (d *KeyDispatcher) HandleKeyDown(ev *KeyEvent) {
	if ev == nil || d.closed {
		return
	}
	if ev.Repeat {
		d.log.V(1).Info("dropped repeat key", "key", ev.Key)
		d.metrics.key(OutcomeRepeatDropped)
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		if d.pending != nil {
			d.log.V(1).Info("coalesced key", "replaced", d.pending.Key, "key", ev.Key)
			d.metrics.key(OutcomeCoalesced)
		}
	}
	d.pending = ev
	d.seq++
	seq := d.seq
	d.timer = d.sched.Schedule(d.delay, func() { d.fire(seq) })
}

// Flush dispatches the pending event now instead of waiting for the window.
func (d *KeyDispatcher) Flush() {
	if d.pending == nil {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.fire(d.seq)
}

// Close cancels any pending event. Later events are ignored.
func (d *KeyDispatcher) Close() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.closed = true
}

// fire runs the dispatch pass for the event scheduled under seq. A stale
// callback, one whose timer was reset after it had already been queued,
// finds a newer seq and does nothing.
func (d *KeyDispatcher) fire(seq uint64) {
	if d.closed || seq != d.seq || d.pending == nil {
		return
	}
	ev := d.pending
	d.pending = nil
	d.timer = nil
	d.dispatch(ev)
}

func (d *KeyDispatcher) dispatch(ev *KeyEvent) {
	switch {
	case d.overrides.ShouldFire(ev):
		d.log.V(1).Info("key consumed by override", "key", ev.Key)
		d.metrics.key(OutcomeOverride)
		fn := d.overrides.take()
		d.run(func() { fn(ev) })
	case d.custom != nil:
		d.metrics.key(OutcomeCustom)
		h := d.custom
		d.run(func() { h(ev) })
	default:
		if d.overrides.Pending() {
			d.log.V(1).Info("override waiting for another key", "want", d.overrides.Key(), "key", ev.Key)
		}
		if d.fallback != nil {
			d.fallback(ev)
		}
	}
}

func (d *KeyDispatcher) run(fn func()) {
	if d.invoke == nil {
		fn()
		return
	}
	d.invoke(fn)
}
