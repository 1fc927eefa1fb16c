package focus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "spatialnav"

// Key outcomes recorded on spatialnav_keys_total.
const (
	OutcomeRepeatDropped = "repeat_dropped"
	OutcomeCoalesced     = "coalesced"
	OutcomeOverride      = "override"
	OutcomeCustom        = "custom"
	OutcomeMoved         = "moved"
	OutcomeUnmapped      = "unmapped"
	OutcomeEnterHandler  = "enter_handler"
	OutcomeActivated     = "activated"
	OutcomeNotified      = "notified"
	OutcomeNoFocus       = "no_focus"
)

// Move results recorded on spatialnav_moves_total.
const (
	MoveResultMoved    = "moved"
	MoveResultNoTarget = "no_target"
	MoveResultNoFocus  = "no_focus"
)

// Metrics is the diagnostic channel for conditions the navigation API
// deliberately swallows. A nil *Metrics records nothing.
type Metrics struct {
	moves         *prometheus.CounterVec
	keys          *prometheus.CounterVec
	focusChanges  prometheus.Counter
	emptyRegistry prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// creates unregistered counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		moves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "moves_total",
			Help:      "Directional focus moves by direction and result.",
		}, []string{"direction", "result"}),
		keys: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "keys_total",
			Help:      "Key-down events by dispatch outcome.",
		}, []string{"outcome"}),
		focusChanges: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "focus_changes_total",
			Help:      "Focus transitions applied.",
		}),
		emptyRegistry: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "empty_registry_total",
			Help:      "Initializations that found no focusable elements.",
		}),
	}
}

func (m *Metrics) move(dir Direction, result string) {
	if m == nil {
		return
	}
	m.moves.WithLabelValues(dir.String(), result).Inc()
}

func (m *Metrics) key(outcome string) {
	if m == nil {
		return
	}
	m.keys.WithLabelValues(outcome).Inc()
}

func (m *Metrics) focusChanged() {
	if m == nil {
		return
	}
	m.focusChanges.Inc()
}

func (m *Metrics) registryEmpty() {
	if m == nil {
		return
	}
	m.emptyRegistry.Inc()
}
