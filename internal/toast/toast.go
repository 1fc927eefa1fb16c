// Package toast manages transient notifications that dismiss themselves.
package toast

import (
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// Level indicates the severity of a toast.
type Level string

const (
	Info    Level = "info"
	Warning Level = "warning"
)

const (
	DefaultDuration = 3 * time.Second
	DefaultMax      = 3
)

// Toast is a single notification.
type Toast struct {
	ID       string
	Level    Level
	Message  string
	Duration time.Duration
}

// Manager holds the active toasts. Dismissal timers go through a
// focus.Scheduler so they fire on the host's event loop.
type Manager struct {
	mu       sync.Mutex
	toasts   []*Toast
	timers   map[string]focus.Timer
	sched    focus.Scheduler
	duration time.Duration
	maxCount int
	onChange func([]*Toast)
}

// NewManager returns a manager whose toasts last duration. A nil sched uses
// time.AfterFunc.
func NewManager(sched focus.Scheduler, duration time.Duration) *Manager {
	if sched == nil {
		sched = focus.AfterFuncScheduler{}
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Manager{
		timers:   make(map[string]focus.Timer),
		sched:    sched,
		duration: duration,
		maxCount: DefaultMax,
	}
}

// SetOnChange configures the callback for toast updates. It is called once
// immediately with the current toasts.
func (m *Manager) SetOnChange(fn func([]*Toast)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.onChange = fn
	snapshot := m.snapshotLocked()
	m.mu.Unlock()
	if fn != nil {
		fn(snapshot)
	}
}

// Notify shows an informational toast for the default duration. It satisfies
// the notification half of focus.Presenter.
func (m *Manager) Notify(message string) {
	m.Show(Info, message, 0)
}

// Show creates a toast and returns its id. A non-positive duration uses the
// manager default.
func (m *Manager) Show(level Level, message string, duration time.Duration) string {
	if m == nil {
		return ""
	}
	if duration <= 0 {
		duration = m.duration
	}
	t := &Toast{
		ID:       ulid.Make().String(),
		Level:    level,
		Message:  strings.TrimSpace(message),
		Duration: duration,
	}

	m.mu.Lock()
	m.toasts = append(m.toasts, t)
	m.timers[t.ID] = m.sched.Schedule(duration, func() { m.Dismiss(t.ID) })
	if overflow := len(m.toasts) - m.maxCount; overflow > 0 {
		for _, removed := range m.toasts[:overflow] {
			m.stopTimerLocked(removed.ID)
		}
		m.toasts = append([]*Toast(nil), m.toasts[overflow:]...)
	}
	snapshot := m.snapshotLocked()
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
	return t.ID
}

// Dismiss removes a toast by id.
func (m *Manager) Dismiss(id string) {
	if m == nil || strings.TrimSpace(id) == "" {
		return
	}
	m.mu.Lock()
	found := false
	remaining := m.toasts[:0]
	for _, t := range m.toasts {
		if t.ID == id {
			found = true
			m.stopTimerLocked(id)
			continue
		}
		remaining = append(remaining, t)
	}
	m.toasts = remaining
	if !found {
		m.mu.Unlock()
		return
	}
	snapshot := m.snapshotLocked()
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// Active returns the current toasts, oldest first.
func (m *Manager) Active() []*Toast {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Close stops every pending dismissal timer.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range m.timers {
		m.stopTimerLocked(id)
	}
}

func (m *Manager) stopTimerLocked(id string) {
	if timer, ok := m.timers[id]; ok {
		timer.Stop()
		delete(m.timers, id)
	}
}

func (m *Manager) snapshotLocked() []*Toast {
	if len(m.toasts) == 0 {
		return nil
	}
	out := make([]*Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}
