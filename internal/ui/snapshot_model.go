package ui

import (
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// SnapshotConfig configures a one-shot render.
type SnapshotConfig struct {
	Options
	StartKeys []string
}

// RenderSnapshot builds a model on a manual clock, replays the startup keys
// and renders a single frame. The clock only advances past each debounce,
// so notifications raised by the keys are still visible.
func RenderSnapshot(cfg SnapshotConfig) (string, error) {
	opts := cfg.Options
	opts.Scheduler = focus.NewManualScheduler()
	m, err := NewModel(opts)
	if err != nil {
		return "", err
	}
	ApplyStartupKeys(m, cfg.StartKeys)
	return m.Render(), nil
}
