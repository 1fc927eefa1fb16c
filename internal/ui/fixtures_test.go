package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func newTestModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:  testConfig(t),
		NoColor: true,
		Width:   width,
		Height:  height,
	})
	require.NoError(t, err)
	return m
}

func manualClock(t *testing.T, m *Model) *focus.ManualScheduler {
	t.Helper()
	ms, ok := m.sched.(*focus.ManualScheduler)
	require.True(t, ok)
	return ms
}

// press sends each key and lets the debounce elapse after it.
func press(m *Model, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		m.Update(k)
		m.settle()
	}
}

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}
