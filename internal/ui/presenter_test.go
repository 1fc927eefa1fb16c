package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

type stubElement struct {
	id string
}

func (s stubElement) ID() string         { return s.id }
func (s stubElement) Bounds() focus.Rect { return focus.Rect{} }
func (s stubElement) Focus()             {}

func TestPresenterRecordsTreatment(t *testing.T) {
	p := NewPresenter(nil, nil)
	el := stubElement{id: "a"}
	assert.Nil(t, p.Treatment("a"))
	assert.False(t, p.Treatment("a").Styled())

	p.SetOutline(el, focus.Outline{Thickness: "2px", Color: "#0000ff"})
	p.SetBackground(el, "#222")
	p.SetBorderRadius(el, "4px")
	p.AddClass(el, "pulse")
	p.AddClass(el, "bold")

	tr := p.Treatment("a")
	require.NotNil(t, tr)
	assert.True(t, tr.Styled())
	assert.Equal(t, []string{"bold", "pulse"}, tr.ClassNames())

	p.ClearOutline(el)
	p.ClearBackground(el)
	p.ClearBorderRadius(el)
	p.RemoveClass(el, "pulse")
	p.RemoveClass(el, "bold")
	assert.False(t, tr.Styled())

	p.Reset()
	assert.Nil(t, p.Treatment("a"))
}

func TestPresenterScrollUsesLastTransition(t *testing.T) {
	var got []time.Duration
	p := NewPresenter(func(_ focus.Element, d time.Duration) { got = append(got, d) }, nil)
	a, b := stubElement{id: "a"}, stubElement{id: "b"}

	p.ScrollIntoView(a)
	p.SetTransition(a, focus.Transition{Duration: "0.3s", TimingFunction: "ease"})
	p.ScrollIntoView(b)
	p.SetTransition(b, focus.Transition{Duration: "bogus"})
	p.ScrollIntoView(a)

	assert.Equal(t, []time.Duration{0, 300 * time.Millisecond, 0}, got)
	assert.Equal(t, "0.3s", p.Treatment("a").Transition.Duration)
}

func TestPresenterNotify(t *testing.T) {
	var notes []string
	p := NewPresenter(nil, func(s string) { notes = append(notes, s) })
	p.Notify("hello")
	assert.Equal(t, []string{"hello"}, notes)

	assert.NotPanics(t, func() {
		NewPresenter(nil, nil).Notify("dropped")
		NewPresenter(nil, nil).ScrollIntoView(stubElement{id: "x"})
	})
}

func TestParseLength(t *testing.T) {
	assert.InDelta(t, 2.0, parseLength("2px"), 0)
	assert.InDelta(t, 0.5, parseLength(" 0.5em "), 0)
	assert.InDelta(t, 0.0, parseLength("0px"), 0)
	assert.InDelta(t, 0.0, parseLength("px"), 0)
	assert.InDelta(t, 0.0, parseLength(""), 0)
}

var _ focus.Presenter = (*Presenter)(nil)
