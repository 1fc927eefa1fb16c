package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type managerFixture struct {
	m         *Manager
	sched     *ManualScheduler
	presenter *recordingPresenter
	a, b, c   *testElement
}

func newManagerFixture(t *testing.T, opts ...Option) *managerFixture {
	t.Helper()
	a, b, c := abcBoard()
	sched := NewManualScheduler()
	p := newRecordingPresenter()
	opts = append([]Option{WithScheduler(sched)}, opts...)
	m := New(sourceOf(a, b, c), p, opts...)
	t.Cleanup(m.Close)
	return &managerFixture{m: m, sched: sched, presenter: p, a: a, b: b, c: c}
}

func (f *managerFixture) press(key string) {
	f.m.HandleKeyDown(NewKeyEvent(key))
	f.sched.Advance(DefaultDebounce)
}

func TestManagerInitializeFocusesFirst(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)

	require.NotNil(t, f.m.Focused())
	assert.Equal(t, "A", f.m.Focused().ID())
	assert.Equal(t, 3, f.m.Registry().Len())
	assert.Equal(t, 1, f.a.focused)
}

func TestManagerInitializeWithInitialElement(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(f.c)
	assert.Equal(t, "C", f.m.Focused().ID())
}

func TestManagerInitializeEmptyRegistry(t *testing.T) {
	p := newRecordingPresenter()
	m := New(sourceOf(), p, WithScheduler(NewManualScheduler()))
	m.Initialize(nil)

	assert.Nil(t, m.Focused())
	assert.False(t, m.MoveFocus(Right))
	assert.Empty(t, p.calls)
}

func TestManagerMoveFocusScenario(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)

	assert.True(t, f.m.MoveFocus(Right))
	assert.Equal(t, "B", f.m.Focused().ID())

	f.m.FocusOnElement(f.a)
	assert.True(t, f.m.MoveFocus(Down))
	assert.Equal(t, "C", f.m.Focused().ID())

	f.m.FocusOnElement(f.a)
	assert.False(t, f.m.MoveFocus(Left))
	assert.Equal(t, "A", f.m.Focused().ID())
	assert.Equal(t, []string{"A"}, f.presenter.outlined())
}

func TestManagerMoveFocusWithoutFocus(t *testing.T) {
	f := newManagerFixture(t)
	assert.False(t, f.m.MoveFocus(Down))
	assert.Nil(t, f.m.Focused())
}

func TestManagerFocusOnElementTwice(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	f.m.FocusOnElement(f.b)
	f.m.FocusOnElement(f.b)

	assert.Equal(t, []string{"B"}, f.presenter.outlined())
}

func TestManagerChangeFocusStyle(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)

	style := f.m.ChangeFocusStyle(StylePatch{BorderColor: Ptr("#ff0000")})
	assert.Equal(t, "#ff0000", style.BorderColor)
	assert.Equal(t, "2px", style.BorderThickness, "unspecified keys unchanged")

	f.m.FocusOnElement(f.b)
	require.NotNil(t, f.presenter.get(f.b).outline)
	assert.Equal(t, "#ff0000", f.presenter.get(f.b).outline.Color)
	assert.Nil(t, f.presenter.get(f.a).outline)
}

func TestManagerArrowKeysMoveFocus(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)

	ev := NewKeyEvent("right")
	f.m.HandleKeyDown(ev)
	f.sched.Advance(DefaultDebounce)

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "B", f.m.Focused().ID())

	f.press("left")
	f.press("down")
	assert.Equal(t, "C", f.m.Focused().ID())
}

func TestManagerCustomKeyMap(t *testing.T) {
	km, err := NewKeyMap(map[string]Direction{"l": Right, "j": Down})
	require.NoError(t, err)
	f := newManagerFixture(t, WithKeyMap(km))
	f.m.Initialize(nil)

	f.press("right")
	assert.Equal(t, "A", f.m.Focused().ID(), "arrow keys are not mapped")
	f.press("l")
	assert.Equal(t, "B", f.m.Focused().ID())
}

func TestManagerUnmappedKeyIgnored(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)

	ev := NewKeyEvent("x")
	f.m.HandleKeyDown(ev)
	f.sched.Advance(DefaultDebounce)

	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "A", f.m.Focused().ID())
}

func TestManagerDebounceCoalescesFivePresses(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	var seen []string
	f.m.SetCustomKeyDownHandler(func(ev *KeyEvent) { seen = append(seen, ev.Key) })

	for i := 0; i < 5; i++ {
		f.m.HandleKeyDown(NewKeyEvent("down"))
		f.sched.Advance(9 * time.Millisecond)
	}
	f.sched.Advance(DefaultDebounce)

	assert.Equal(t, []string{"down"}, seen)
}

func TestManagerOverrideOneShotOnEnter(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	calls := 0
	f.m.OverrideNextKeyDown(func(*KeyEvent) { calls++ }, KeyEnter)

	f.press(KeyEnter)
	assert.Equal(t, 1, calls)
	assert.Empty(t, f.presenter.notes)

	f.press(KeyEnter)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Focused element: DIV"}, f.presenter.notes)
}

func TestManagerOverrideMismatchStaysPending(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	calls := 0
	f.m.OverrideNextKeyDown(func(*KeyEvent) { calls++ }, KeyEnter)

	f.press("right")
	assert.Equal(t, 0, calls)
	assert.Equal(t, "B", f.m.Focused().ID())

	f.press(KeyEnter)
	assert.Equal(t, 1, calls)
}

func TestManagerOverrideBeatsCustomHandler(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	var order []string
	f.m.SetCustomKeyDownHandler(func(*KeyEvent) { order = append(order, "custom") })
	f.m.OverrideNextKeyDown(func(*KeyEvent) { order = append(order, "override") }, "")

	f.press("up")
	f.press("up")
	assert.Equal(t, []string{"override", "custom"}, order)
}

func TestManagerEnterCapabilities(t *testing.T) {
	button := &testButton{testElement: *elem("btn", 0, 0, 10, 10)}
	link := &testEnterElement{testElement: *elem("link", 20, 0, 30, 10)}
	label := &testElement{id: "label", rect: Rect{Top: 0, Bottom: 10, Left: 40, Right: 50}, kind: "SPAN"}

	sched := NewManualScheduler()
	p := newRecordingPresenter()
	m := New(sourceOf(button, link, label), p, WithScheduler(sched))
	m.Initialize(nil)

	press := func(key string) {
		m.HandleKeyDown(NewKeyEvent(key))
		sched.Advance(DefaultDebounce)
	}

	press(KeyEnter)
	assert.Equal(t, 1, button.clicks)

	press("right")
	press(KeyEnter)
	assert.Equal(t, []string{KeyEnter}, link.entered)
	assert.Equal(t, 1, button.clicks)

	press("right")
	press(KeyEnter)
	assert.Equal(t, []string{"Focused element: SPAN"}, p.notes)
}

func TestManagerEnterWithoutFocusIsNoop(t *testing.T) {
	p := newRecordingPresenter()
	sched := NewManualScheduler()
	m := New(sourceOf(), p, WithScheduler(sched))
	m.Initialize(nil)

	ev := NewKeyEvent(KeyEnter)
	m.HandleKeyDown(ev)
	sched.Advance(DefaultDebounce)

	assert.True(t, ev.DefaultPrevented())
	assert.Empty(t, p.notes)
}

func TestManagerCloseStopsDispatch(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	f.m.OverrideNextKeyDown(func(*KeyEvent) { t.Fatal("override must not run after Close") }, "")

	f.m.HandleKeyDown(NewKeyEvent("right"))
	f.m.Close()
	f.sched.Advance(time.Second)
	f.press("right")

	assert.Equal(t, "A", f.m.Focused().ID())
}

func TestManagerWithNilCollaborators(t *testing.T) {
	m := New(nil, nil, WithScheduler(NewManualScheduler()))
	m.Initialize(nil)
	assert.Nil(t, m.Focused())
	assert.Equal(t, DefaultStyle(), m.Style())
}

func TestManagerHandlersMayCallBack(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Initialize(nil)
	f.m.SetCustomKeyDownHandler(func(ev *KeyEvent) {
		assert.True(t, f.m.MoveFocus(Down))
		f.m.SetCustomKeyDownHandler(nil)
		f.m.OverrideNextKeyDown(func(*KeyEvent) { f.m.FocusOnElement(f.b) }, KeyEnter)
	})

	f.press("x")
	assert.Equal(t, "C", f.m.Focused().ID())

	f.press(KeyEnter)
	assert.Equal(t, "B", f.m.Focused().ID())
}

func TestManagerChangeFocusStyleEmptyPatch(t *testing.T) {
	f := newManagerFixture(t)
	before := f.m.Style()
	assert.Equal(t, before, f.m.ChangeFocusStyle(StylePatch{}))
	assert.Equal(t, before, f.m.Style())
}

func TestManagerDefaultSchedulerIsSerialized(t *testing.T) {
	a, b, c := abcBoard()
	m := New(sourceOf(a, b, c), nil, WithDebounce(5*time.Millisecond))
	t.Cleanup(m.Close)
	m.Initialize(nil)

	focusedIs := func(want Element) func() bool {
		return func() bool { return m.Focused() == want }
	}
	for range 5 {
		m.HandleKeyDown(NewKeyEvent("right"))
		require.Eventually(t, focusedIs(b), time.Second, time.Millisecond)
		m.HandleKeyDown(NewKeyEvent("left"))
		require.Eventually(t, focusedIs(a), time.Second, time.Millisecond)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 50 {
			m.HandleKeyDown(NewKeyEvent("down"))
			time.Sleep(time.Millisecond)
		}
	}()
	for range 50 {
		_ = m.Focused()
		_ = m.Style()
		time.Sleep(time.Millisecond)
	}
	<-done
	require.Eventually(t, focusedIs(c), time.Second, time.Millisecond)
}
