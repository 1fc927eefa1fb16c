package board

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// Tile is a focusable cell on the board.
type Tile interface {
	focus.Element
	focus.Kinded
	Label() string
	// Text is the tile content, fitted to Width.
	Text() string
	// Width is the content width in cells, without border.
	Width() int
}

type tile struct {
	board *Board
	id    string
	label string
	kind  string
	width int
	rect  focus.Rect
}

func (t *tile) ID() string          { return t.id }
func (t *tile) Label() string       { return t.label }
func (t *tile) Width() int          { return t.width }
func (t *tile) Bounds() focus.Rect  { return t.rect }
func (t *tile) Kind() string        { return strings.ToUpper(t.kind) }
func (t *tile) Focus()              { t.board.setActive(t.id) }
func (t *tile) fit(s string) string { return fit(s, t.width) }

// Button counts activations.
type Button struct {
	tile
	presses int
}

// Presses returns how many times the button was activated.
func (b *Button) Presses() int { return b.presses }

// Activate presses the button.
func (b *Button) Activate() {
	b.presses++
	b.board.emit(fmt.Sprintf("%s pressed (%d)", b.label, b.presses))
}

func (b *Button) Text() string { return b.fit(b.label) }

// Checkbox toggles on activation.
type Checkbox struct {
	tile
	checked bool
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// Activate toggles the checkbox.
func (c *Checkbox) Activate() {
	c.checked = !c.checked
	state := "off"
	if c.checked {
		state = "on"
	}
	c.board.emit(fmt.Sprintf("%s %s", c.label, state))
}

func (c *Checkbox) Text() string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	return c.fit(mark + " " + c.label)
}

// Link handles enter itself instead of being activated.
type Link struct {
	tile
	visits int
}

// Visits returns how many times the link was followed.
func (l *Link) Visits() int { return l.visits }

// OnEnter follows the link.
func (l *Link) OnEnter(ev *focus.KeyEvent) {
	ev.PreventDefault()
	l.visits++
	l.board.emit("Opened " + l.label)
}

func (l *Link) Text() string { return l.fit(l.label + " >") }

// Label is display-only; enter on a label shows its kind.
type Label struct {
	tile
}

func (l *Label) Text() string { return l.fit(l.label) }

func newTile(b *Board, tc config.TileConfig) Tile {
	natural := runewidth.StringWidth(tc.Label)
	switch tc.Kind {
	case config.KindCheckbox:
		natural += 4
	case config.KindLink:
		natural += 2
	}
	base := tile{
		board: b,
		id:    strings.TrimSpace(tc.ID),
		label: tc.Label,
		kind:  tc.Kind,
		width: tc.Width,
	}
	if base.width == 0 {
		base.width = natural + 2*padding
	}
	switch tc.Kind {
	case config.KindButton:
		return &Button{tile: base}
	case config.KindCheckbox:
		return &Checkbox{tile: base}
	case config.KindLink:
		return &Link{tile: base}
	default:
		return &Label{tile: base}
	}
}

func (t *tile) place(r focus.Rect) { t.rect = r }

// fit centers s in w cells, truncating with an ellipsis when it does not fit.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	gap := w - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
