package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// Treatment is the focus styling currently applied to one tile.
type Treatment struct {
	Outline    *focus.Outline
	Background string
	Radius     string
	Classes    map[string]bool
	Transition focus.Transition
}

// Styled reports whether any visible styling is applied.
func (t *Treatment) Styled() bool {
	if t == nil {
		return false
	}
	return t.Outline != nil || t.Background != "" || t.Radius != "" || len(t.Classes) > 0
}

// ClassNames returns the applied classes, sorted.
func (t *Treatment) ClassNames() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Classes))
	for c := range t.Classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Presenter implements focus.Presenter by recording per-tile treatments that
// the view turns into lipgloss styles.
type Presenter struct {
	tiles    map[string]*Treatment
	last     focus.Transition
	onScroll func(el focus.Element, smooth time.Duration)
	onNotify func(string)
}

// NewPresenter returns a presenter that forwards scroll requests and
// notifications to the given callbacks. Either may be nil.
func NewPresenter(onScroll func(focus.Element, time.Duration), onNotify func(string)) *Presenter {
	return &Presenter{
		tiles:    make(map[string]*Treatment),
		onScroll: onScroll,
		onNotify: onNotify,
	}
}

// Treatment returns the treatment for id, or nil when the tile was never
// styled.
func (p *Presenter) Treatment(id string) *Treatment {
	return p.tiles[id]
}

// Reset drops every recorded treatment.
func (p *Presenter) Reset() {
	p.tiles = make(map[string]*Treatment)
}

func (p *Presenter) get(el focus.Element) *Treatment {
	t, ok := p.tiles[el.ID()]
	if !ok {
		t = &Treatment{Classes: make(map[string]bool)}
		p.tiles[el.ID()] = t
	}
	return t
}

// ScrollIntoView asks the host to center el, animating over the most
// recently set transition duration.
func (p *Presenter) ScrollIntoView(el focus.Element) {
	if p.onScroll == nil {
		return
	}
	p.onScroll(el, parseCSSDuration(p.last.Duration))
}

func (p *Presenter) SetTransition(el focus.Element, t focus.Transition) {
	p.get(el).Transition = t
	p.last = t
}

func (p *Presenter) SetOutline(el focus.Element, o focus.Outline) {
	p.get(el).Outline = &o
}

func (p *Presenter) ClearOutline(el focus.Element) {
	p.get(el).Outline = nil
}

func (p *Presenter) SetBackground(el focus.Element, color string) {
	p.get(el).Background = color
}

func (p *Presenter) ClearBackground(el focus.Element) {
	p.get(el).Background = ""
}

func (p *Presenter) SetBorderRadius(el focus.Element, radius string) {
	p.get(el).Radius = radius
}

func (p *Presenter) ClearBorderRadius(el focus.Element) {
	p.get(el).Radius = ""
}

func (p *Presenter) AddClass(el focus.Element, class string) {
	p.get(el).Classes[class] = true
}

func (p *Presenter) RemoveClass(el focus.Element, class string) {
	delete(p.get(el).Classes, class)
}

// Notify forwards message to the notification callback.
func (p *Presenter) Notify(message string) {
	if p.onNotify != nil {
		p.onNotify(message)
	}
}

// parseCSSDuration reads "0.3s" or "300ms". Anything else is zero.
func parseCSSDuration(s string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// parseLength returns the numeric part of a CSS length such as "2px" or
// "0.5em". Unparseable lengths are zero.
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 && (s[end-1] < '0' || s[end-1] > '9') && s[end-1] != '.' {
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
