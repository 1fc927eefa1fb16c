package ui

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/spatialnav/internal/board"
	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/internal/toast"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// scrollFrame is the interval between smooth scroll steps.
	scrollFrame = 30 * time.Millisecond
)

// StyleChangeMsg merges Patch into the focus style and restyles the focused
// tile.
type StyleChangeMsg struct {
	Patch focus.StylePatch
}

// StyleReloadMsg replaces the focus style, typically after the config file
// changed on disk.
type StyleReloadMsg struct {
	Style focus.Style
}

// ConfigErrorMsg reports a failed config reload as a warning toast.
type ConfigErrorMsg struct {
	Err error
}

// runMsg carries a scheduler callback onto the event loop.
type runMsg struct {
	fn func()
}

type scrollFrameMsg struct {
	seq int
}

// Options configures a Model.
type Options struct {
	Config  config.Config
	NoColor bool
	Width   int
	Height  int
	Logger  logr.Logger
	Metrics *focus.Metrics
	// Scheduler runs debounce and toast timers. Run installs one that posts
	// back onto the program; snapshots use a focus.ManualScheduler.
	Scheduler focus.Scheduler
}

// Model hosts the board and routes key presses through the focus manager.
type Model struct {
	AppName      string
	NoColor      bool
	Board        *board.Board
	Manager      *focus.Manager
	Presenter    *Presenter
	Toasts       *toast.Manager
	Status       string
	ShowFullHelp bool
	WinWidth     int
	WinHeight    int
	ScrollY      int

	// Smooth scroll state. Without a running program, scrolling is instant.
	smooth       bool
	scrollTarget int
	scrollFrames int
	scrollSeq    int
	pendingCmd   tea.Cmd

	sched    focus.Scheduler
	debounce time.Duration
	keys     keyBindings
	help     help.Model
	log      logr.Logger
	quitting bool
}

// NewModel builds the board from opts.Config and focuses its first tile.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	km, err := cfg.KeyMap()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = focus.NewManualScheduler()
	}

	m := &Model{
		AppName:   cfg.App.Name,
		NoColor:   opts.NoColor,
		Status:    "Ready",
		WinWidth:  opts.Width,
		WinHeight: opts.Height,
		sched:     sched,
		debounce:  cfg.Navigation.Debounce.Std(),
		keys:      newKeyBindings(km),
		help:      help.New(),
		log:       log,
	}
	if m.WinWidth <= 0 {
		m.WinWidth = defaultWidth
	}
	if m.WinHeight <= 0 {
		m.WinHeight = defaultHeight
	}
	if m.NoColor {
		m.help.Styles = help.Styles{}
	}

	b, err := board.New(cfg.Board, board.WithEvents(func(s string) { m.Status = s }))
	if err != nil {
		return nil, err
	}
	m.Board = b
	m.Toasts = toast.NewManager(sched, cfg.Notification.Duration.Std())
	m.Toasts.SetOnChange(m.logToasts)
	m.Presenter = NewPresenter(m.scrollTo, m.Toasts.Notify)
	m.Manager = focus.New(b, m.Presenter,
		focus.WithKeyMap(km),
		focus.WithStyle(cfg.Style),
		focus.WithScheduler(sched),
		focus.WithDebounce(m.debounce),
		focus.WithLogger(log.WithName("focus")),
		focus.WithMetrics(opts.Metrics),
	)
	m.Manager.Initialize(nil)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WinWidth = msg.Width
		m.WinHeight = msg.Height
		m.ScrollY = m.clampScroll(m.ScrollY)
	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.Manager.Close()
			m.Toasts.Close()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.ShowFullHelp = !m.ShowFullHelp
			break
		}
		m.Manager.HandleKeyDown(keyEvent(msg))
	case runMsg:
		if msg.fn != nil && !m.quitting {
			msg.fn()
		}
	case scrollFrameMsg:
		return m, m.stepScroll(msg.seq)
	case StyleChangeMsg:
		if msg.Patch.Empty() {
			break
		}
		m.Manager.ChangeFocusStyle(msg.Patch)
		m.restyle()
	case StyleReloadMsg:
		patch := m.Manager.Style().Diff(msg.Style)
		if patch.Empty() {
			m.Status = "Style unchanged"
			break
		}
		m.Manager.ChangeFocusStyle(patch)
		m.restyle()
		m.Status = "Style reloaded"
	case ConfigErrorMsg:
		if msg.Err != nil {
			m.Toasts.Show(toast.Warning, msg.Err.Error(), 0)
		}
	}
	return m, m.takeCmd()
}

// restyle reapplies focus so a style change is visible immediately. Old
// treatments are dropped first because the revert only clears what the new
// style configures.
func (m *Model) restyle() {
	cur := m.Manager.Focused()
	if cur == nil {
		return
	}
	m.Presenter.Reset()
	m.Manager.FocusOnElement(cur)
}

func (m *Model) logToasts(active []*toast.Toast) {
	if len(active) == 0 {
		m.log.V(1).Info("notifications cleared")
		return
	}
	newest := active[len(active)-1]
	m.log.V(1).Info("notification shown",
		"active", len(active),
		"level", string(newest.Level),
		"message", newest.Message,
		"ttl", newest.Duration.String(),
	)
}

func (m *Model) takeCmd() tea.Cmd {
	cmd := m.pendingCmd
	m.pendingCmd = nil
	return cmd
}

// settle dispatches a debounced key without waiting for the timer.
func (m *Model) settle() {
	if ms, ok := m.sched.(*focus.ManualScheduler); ok {
		ms.Advance(m.debounce)
		return
	}
	m.Manager.Flush()
}

// viewportHeight is the number of board rows that fit between the header and
// the footer.
func (m *Model) viewportHeight() int {
	h := m.WinHeight - m.chromeHeight()
	if h < board.TileHeight {
		h = board.TileHeight
	}
	return h
}

func (m *Model) clampScroll(y int) int {
	_, bh := m.Board.Size()
	maxY := bh - m.viewportHeight()
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

// scrollTo centers el vertically. With a running program and a non-zero
// duration the offset moves there over several frames.
func (m *Model) scrollTo(el focus.Element, d time.Duration) {
	r := el.Bounds()
	target := m.clampScroll(r.CenterY() - m.viewportHeight()/2)
	m.scrollSeq++
	if !m.smooth || d <= 0 || target == m.ScrollY {
		m.ScrollY = target
		m.scrollFrames = 0
		return
	}
	m.scrollTarget = target
	m.scrollFrames = int(d / scrollFrame)
	if m.scrollFrames < 1 {
		m.scrollFrames = 1
	}
	m.pendingCmd = scrollTick(m.scrollSeq)
}

func (m *Model) stepScroll(seq int) tea.Cmd {
	if seq != m.scrollSeq || m.scrollFrames <= 0 {
		return nil
	}
	remaining := m.scrollTarget - m.ScrollY
	step := remaining / m.scrollFrames
	if step == 0 && remaining != 0 {
		step = 1
		if remaining < 0 {
			step = -1
		}
	}
	m.ScrollY += step
	m.scrollFrames--
	if m.scrollFrames == 0 || m.ScrollY == m.scrollTarget {
		m.ScrollY = m.scrollTarget
		m.scrollFrames = 0
		return nil
	}
	return scrollTick(seq)
}

func scrollTick(seq int) tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollFrameMsg{seq: seq}
	})
}

// FocusedID returns the id of the focused tile, or "".
func (m *Model) FocusedID() string {
	if el := m.Manager.Focused(); el != nil {
		return el.ID()
	}
	return ""
}

// errNoModel is returned when a program finishes without a model.
var errNoModel = errors.New("program returned no model")

func finalModel(tm tea.Model) (*Model, error) {
	fm, ok := tm.(*Model)
	if !ok || fm == nil {
		return nil, fmt.Errorf("%w: %T", errNoModel, tm)
	}
	return fm, nil
}
