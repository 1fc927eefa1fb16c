package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusStateApplyOrder(t *testing.T) {
	a, b, _ := abcBoard()
	p := newRecordingPresenter()
	s := NewFocusState(p, DefaultStyle())

	s.Apply(a)
	assert.Equal(t, []string{
		"scroll A",
		"transition A",
		"outline A 2px solid #0000ff",
		"radius A 0px",
	}, p.calls)
	assert.Equal(t, 1, a.focused)

	p.calls = nil
	s.Apply(b)
	assert.Equal(t, []string{
		"transition A",
		"clear-outline A",
		"clear-radius A",
		"scroll B",
		"transition B",
		"outline B 2px solid #0000ff",
		"radius B 0px",
	}, p.calls)
	assert.Equal(t, "B", s.Current().ID())
	assert.Equal(t, []string{"B"}, p.outlined())
}

func TestFocusStateOptionalProperties(t *testing.T) {
	a, b, _ := abcBoard()
	p := newRecordingPresenter()
	style := DefaultStyle()
	style.Border = false
	style.BorderRadius = ""
	style.BackgroundColor = "#222222"
	style.Animate = true
	style.AnimationStyle = "pulse"
	style.ScrollIntoView = false
	s := NewFocusState(p, style)

	s.Apply(a)
	assert.Equal(t, []string{
		"transition A",
		"background A #222222",
		"add-class A pulse",
	}, p.calls)

	p.calls = nil
	s.Apply(b)
	assert.Equal(t, []string{
		"transition A",
		"clear-outline A",
		"clear-background A",
		"remove-class A pulse",
		"transition B",
		"background B #222222",
		"add-class B pulse",
	}, p.calls)
	assert.Empty(t, p.scrolled)
	assert.Empty(t, p.get(a).classes)
	assert.True(t, p.get(b).classes["pulse"])
}

func TestFocusStateApplySameElementIsIdempotent(t *testing.T) {
	a, _, _ := abcBoard()
	p := newRecordingPresenter()
	s := NewFocusState(p, DefaultStyle())

	s.Apply(a)
	first := *p.get(a).outline
	s.Apply(a)

	assert.Equal(t, []string{"A"}, p.outlined())
	require.NotNil(t, p.get(a).outline)
	assert.Equal(t, first, *p.get(a).outline)
	assert.Equal(t, 2, a.focused, "native focus runs on every apply")
}

func TestFocusStateApplyNilClearsFocus(t *testing.T) {
	a, _, _ := abcBoard()
	p := newRecordingPresenter()
	s := NewFocusState(p, DefaultStyle())

	s.Apply(a)
	s.Apply(nil)
	assert.Nil(t, s.Current())
	assert.Empty(t, p.outlined())
}

func TestFocusStateRevertUsesCurrentStyle(t *testing.T) {
	a, b, _ := abcBoard()
	p := newRecordingPresenter()
	s := NewFocusState(p, DefaultStyle())
	s.Apply(a)

	// Background was not configured when A was styled, but is now: the
	// revert clears it anyway because it follows the active style.
	s.SetStyle(s.Style().Merge(StylePatch{BackgroundColor: Ptr("#333333")}))
	p.calls = nil
	s.Apply(b)
	assert.Contains(t, p.calls, "clear-background A")
	assert.Contains(t, p.calls, "background B #333333")
}
