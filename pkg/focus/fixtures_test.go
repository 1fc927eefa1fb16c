package focus

import (
	"fmt"
	"sort"
)

type testElement struct {
	id      string
	rect    Rect
	kind    string
	focused int
}

func (e *testElement) ID() string   { return e.id }
func (e *testElement) Bounds() Rect { return e.rect }
func (e *testElement) Focus()       { e.focused++ }
func (e *testElement) Kind() string { return e.kind }

type testButton struct {
	testElement
	clicks int
}

func (b *testButton) Activate() { b.clicks++ }

type testEnterElement struct {
	testElement
	entered []string
}

func (e *testEnterElement) OnEnter(ev *KeyEvent) { e.entered = append(e.entered, ev.Key) }

func elem(id string, left, top, right, bottom int) *testElement {
	return &testElement{id: id, rect: Rect{Top: top, Bottom: bottom, Left: left, Right: right}, kind: "DIV"}
}

// abcBoard is A (0,0)-(50,50), B (100,0)-(150,50), C (0,100)-(50,150).
func abcBoard() (a, b, c *testElement) {
	return elem("A", 0, 0, 50, 50), elem("B", 100, 0, 150, 50), elem("C", 0, 100, 50, 150)
}

func sourceOf(elems ...Element) Source {
	return SourceFunc(func() []Element { return elems })
}

// elemTreatment is what recordingPresenter believes is applied to an element.
type elemTreatment struct {
	outline    *Outline
	background string
	radius     string
	classes    map[string]bool
	transition Transition
}

type recordingPresenter struct {
	calls    []string
	state    map[string]*elemTreatment
	scrolled []string
	notes    []string
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{state: map[string]*elemTreatment{}}
}

func (p *recordingPresenter) get(el Element) *elemTreatment {
	t, ok := p.state[el.ID()]
	if !ok {
		t = &elemTreatment{classes: map[string]bool{}}
		p.state[el.ID()] = t
	}
	return t
}

func (p *recordingPresenter) record(format string, args ...any) {
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *recordingPresenter) ScrollIntoView(el Element) {
	p.record("scroll %s", el.ID())
	p.scrolled = append(p.scrolled, el.ID())
}

func (p *recordingPresenter) SetTransition(el Element, t Transition) {
	p.record("transition %s", el.ID())
	p.get(el).transition = t
}

func (p *recordingPresenter) SetOutline(el Element, o Outline) {
	p.record("outline %s %s", el.ID(), o)
	p.get(el).outline = &o
}

func (p *recordingPresenter) ClearOutline(el Element) {
	p.record("clear-outline %s", el.ID())
	p.get(el).outline = nil
}

func (p *recordingPresenter) SetBackground(el Element, color string) {
	p.record("background %s %s", el.ID(), color)
	p.get(el).background = color
}

func (p *recordingPresenter) ClearBackground(el Element) {
	p.record("clear-background %s", el.ID())
	p.get(el).background = ""
}

func (p *recordingPresenter) SetBorderRadius(el Element, radius string) {
	p.record("radius %s %s", el.ID(), radius)
	p.get(el).radius = radius
}

func (p *recordingPresenter) ClearBorderRadius(el Element) {
	p.record("clear-radius %s", el.ID())
	p.get(el).radius = ""
}

func (p *recordingPresenter) AddClass(el Element, class string) {
	p.record("add-class %s %s", el.ID(), class)
	p.get(el).classes[class] = true
}

func (p *recordingPresenter) RemoveClass(el Element, class string) {
	p.record("remove-class %s %s", el.ID(), class)
	delete(p.get(el).classes, class)
}

func (p *recordingPresenter) Notify(message string) {
	p.notes = append(p.notes, message)
}

// outlined returns the IDs of elements currently carrying an outline.
func (p *recordingPresenter) outlined() []string {
	var ids []string
	for id, t := range p.state {
		if t.outline != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
