package focus

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Manager is the focus manager: it owns the registry, the focus state, the
// key mapping, the pending override and the key dispatcher.
//
// Methods and the debounce callback are serialized by an internal lock, so
// the callback may arrive on any goroutine. Key handlers, overrides and
// element activation run after the lock is released and may call back into
// the manager. The Presenter and Element.Focus run under the lock and must
// not.
type Manager struct {
	mu sync.Mutex
	// calls queued under mu, run once it is released.
	calls []func()

	source     Source
	presenter  Presenter
	registry   *Registry
	state      *FocusState
	keys       KeyMap
	overrides  *OverrideChain
	dispatcher *KeyDispatcher

	log     logr.Logger
	metrics *Metrics
}

type options struct {
	keys      KeyMap
	style     Style
	scheduler Scheduler
	debounce  time.Duration
	log       logr.Logger
	metrics   *Metrics
}

// Option configures a Manager.
type Option func(*options)

// WithKeyMap sets the arrow key mapping. Only one mapping exists per manager.
func WithKeyMap(km KeyMap) Option {
	return func(o *options) { o.keys = km }
}

// WithStyle sets the initial focus style.
func WithStyle(s Style) Option {
	return func(o *options) { o.style = s }
}

// WithScheduler sets the scheduler backing the debounce timer.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets the diagnostic counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a manager reading elements from src and styling them through
// p. The registry stays empty until Initialize.
func New(src Source, p Presenter, opts ...Option) *Manager {
	o := options{
		keys:      DefaultKeyMap(),
		style:     DefaultStyle(),
		scheduler: AfterFuncScheduler{},
		debounce:  DefaultDebounce,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		src = SourceFunc(func() []Element { return nil })
	}
	if p == nil {
		p = nopPresenter{}
	}

	m := &Manager{
		source:    src,
		presenter: p,
		registry:  NewRegistry(),
		state:     NewFocusState(p, o.style),
		keys:      o.keys,
		overrides: &OverrideChain{},
		log:       o.log,
		metrics:   o.metrics,
	}
	sched := serialScheduler{inner: o.scheduler, m: m}
	m.dispatcher = NewKeyDispatcher(sched, o.debounce, m.overrides, m.defaultKeyDown)
	m.dispatcher.invoke = m.later
	m.dispatcher.log = o.log
	m.dispatcher.metrics = o.metrics
	return m
}

// Initialize reads the focusable elements from the source and focuses
// initial, or the first registered element when initial is nil. With an
// empty registry focus is left as it was.
func (m *Manager) Initialize(initial Element) {
	m.locked(func() { m.initialize(initial) })
}

func (m *Manager) initialize(initial Element) {
	m.registry = NewRegistry(m.source.Focusables()...)
	if m.registry.Len() == 0 {
		m.log.V(1).Info("no focusable elements registered")
		m.metrics.registryEmpty()
		return
	}
	target := initial
	if target == nil {
		target, _ = m.registry.First()
	}
	m.focusOn(target)
}

// FocusOnElement moves focus to el directly. A nil el clears focus.
func (m *Manager) FocusOnElement(el Element) {
	m.locked(func() { m.focusOn(el) })
}

func (m *Manager) focusOn(el Element) {
	prev := m.state.Current()
	m.state.Apply(el)
	m.metrics.focusChanged()
	if m.log.V(2).Enabled() {
		m.log.V(2).Info("focus changed", "from", elementID(prev), "to", elementID(el))
	}
}

// MoveFocus moves focus to the nearest element in dir. It reports whether
// focus changed; without a focused element or a valid candidate it does
// nothing.
func (m *Manager) MoveFocus(dir Direction) (moved bool) {
	m.locked(func() { moved = m.moveFocus(dir) })
	return moved
}

func (m *Manager) moveFocus(dir Direction) bool {
	cur := m.state.Current()
	if cur == nil {
		m.log.V(1).Info("move ignored without focus", "direction", dir.String())
		m.metrics.move(dir, MoveResultNoFocus)
		return false
	}
	target, ok := Locate(cur, dir, m.registry.elems)
	if !ok {
		m.log.V(1).Info("no element in direction", "direction", dir.String(), "from", cur.ID())
		m.metrics.move(dir, MoveResultNoTarget)
		return false
	}
	m.focusOn(target)
	m.metrics.move(dir, MoveResultMoved)
	return true
}

// SetCustomKeyDownHandler installs or replaces the handler consulted before
// the default key handling. nil restores the default handling.
func (m *Manager) SetCustomKeyDownHandler(h KeyHandler) {
	m.locked(func() { m.dispatcher.SetCustomHandler(h) })
}

// ChangeFocusStyle merges p into the active style and returns the result.
// The new style applies from the next focus transition.
func (m *Manager) ChangeFocusStyle(p StylePatch) (next Style) {
	m.locked(func() {
		next = m.state.Style()
		if p.Empty() {
			return
		}
		next = next.Merge(p)
		m.state.SetStyle(next)
	})
	return next
}

// OverrideNextKeyDown installs a one-shot interceptor for the next key-down
// event matching key, or for any key when key is "". It replaces any pending
// override.
func (m *Manager) OverrideNextKeyDown(h KeyHandler, key string) {
	m.locked(func() {
		if m.overrides.Pending() {
			m.log.V(1).Info("replacing pending override", "key", m.overrides.Key())
		}
		m.overrides.Set(h, key)
	})
}

// HandleKeyDown feeds a raw key-down event into the dispatch pipeline.
func (m *Manager) HandleKeyDown(ev *KeyEvent) {
	m.locked(func() { m.dispatcher.HandleKeyDown(ev) })
}

// Flush dispatches a debounced event immediately.
func (m *Manager) Flush() {
	m.locked(m.dispatcher.Flush)
}

// Focused returns the focused element, or nil.
func (m *Manager) Focused() Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Current()
}

// Style returns the active style.
func (m *Manager) Style() Style {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Style()
}

// KeyMap returns the arrow key mapping.
func (m *Manager) KeyMap() KeyMap { return m.keys }

// Registry returns the registry built by the last Initialize. It is never
// modified after it is built.
func (m *Manager) Registry() *Registry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry
}

// Close stops the debounce timer and drops any pending override. The manager
// ignores key events afterwards.
func (m *Manager) Close() {
	m.locked(func() {
		m.dispatcher.Close()
		m.overrides.Set(nil, "")
	})
}

// locked runs fn under the manager lock, then runs the calls fn queued.
func (m *Manager) locked(fn func()) {
	calls := func() []func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		fn()
		calls := m.calls
		m.calls = nil
		return calls
	}()
	for _, call := range calls {
		call()
	}
}

// later queues fn to run once the lock is released. Callers hold mu.
func (m *Manager) later(fn func()) {
	m.calls = append(m.calls, fn)
}

// serialScheduler runs the dispatcher's callbacks under the manager lock.
type serialScheduler struct {
	inner Scheduler
	m     *Manager
}

func (s serialScheduler) Schedule(delay time.Duration, fn func()) Timer {
	return s.inner.Schedule(delay, func() { s.m.locked(fn) })
}

func (m *Manager) defaultKeyDown(ev *KeyEvent) {
	if dir, ok := m.keys.Resolve(ev.Key); ok {
		ev.PreventDefault()
		if m.moveFocus(dir) {
			m.metrics.key(OutcomeMoved)
		}
		return
	}
	if ev.Key != KeyEnter {
		m.log.V(1).Info("ignored unmapped key", "key", ev.Key)
		m.metrics.key(OutcomeUnmapped)
		return
	}

	ev.PreventDefault()
	if m.overrides.ShouldFire(ev) {
		m.metrics.key(OutcomeOverride)
		fn := m.overrides.take()
		m.later(func() { fn(ev) })
		return
	}
	cur := m.state.Current()
	if cur == nil {
		m.metrics.key(OutcomeNoFocus)
		return
	}
	switch el := cur.(type) {
	case EnterHandler:
		m.metrics.key(OutcomeEnterHandler)
		m.later(func() { el.OnEnter(ev) })
	case Activatable:
		m.metrics.key(OutcomeActivated)
		m.later(el.Activate)
	default:
		m.metrics.key(OutcomeNotified)
		m.presenter.Notify(fmt.Sprintf("Focused element: %s", KindOf(cur)))
	}
}

func elementID(el Element) string {
	if el == nil {
		return ""
	}
	return el.ID()
}

type nopPresenter struct{}

func (nopPresenter) ScrollIntoView(Element)            {}
func (nopPresenter) SetTransition(Element, Transition) {}
func (nopPresenter) SetOutline(Element, Outline)       {}
func (nopPresenter) ClearOutline(Element)              {}
func (nopPresenter) SetBackground(Element, string)     {}
func (nopPresenter) ClearBackground(Element)           {}
func (nopPresenter) SetBorderRadius(Element, string)   {}
func (nopPresenter) ClearBorderRadius(Element)         {}
func (nopPresenter) AddClass(Element, string)          {}
func (nopPresenter) RemoveClass(Element, string)       {}
func (nopPresenter) Notify(string)                     {}
