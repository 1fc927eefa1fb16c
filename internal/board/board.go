// Package board lays out focusable tiles on a character grid.
//
// Every tile is three rows tall: a border row, one content row and a border
// row. Rectangles are in terminal cells with the board origin at (0, 0).
package board

import (
	"fmt"

	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

const (
	// TileHeight is the rendered height of every tile, border included.
	TileHeight = 3
	// borderWidth is the cells a border adds on each side.
	borderWidth = 1
	padding     = 1
)

// Option configures a Board.
type Option func(*Board)

// WithEvents sets the callback that receives tile status messages, such as
// "Play pressed (2)".
func WithEvents(fn func(string)) Option {
	return func(b *Board) { b.onEvent = fn }
}

// Board owns the tiles and their geometry. It implements focus.Source.
type Board struct {
	rows    [][]Tile
	order   []Tile
	byID    map[string]Tile
	rowGap  int
	colGap  int
	width   int
	height  int
	active  string
	onEvent func(string)
}

type placeable interface {
	place(focus.Rect)
}

// New builds the board described by cfg and computes tile rectangles.
func New(cfg config.BoardConfig, opts ...Option) (*Board, error) {
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", config.ErrInvalidLayout)
	}
	b := &Board{
		byID:   make(map[string]Tile),
		rowGap: cfg.RowGap,
		colGap: cfg.ColGap,
	}
	for _, opt := range opts {
		opt(b)
	}
	for r, rc := range cfg.Rows {
		if len(rc.Tiles) == 0 {
			return nil, fmt.Errorf("%w: row %d has no tiles", config.ErrInvalidLayout, r)
		}
		row := make([]Tile, 0, len(rc.Tiles))
		for _, tc := range rc.Tiles {
			t := newTile(b, tc)
			if _, dup := b.byID[t.ID()]; dup {
				return nil, fmt.Errorf("%w: %q", config.ErrDuplicateTile, t.ID())
			}
			b.byID[t.ID()] = t
			row = append(row, t)
			b.order = append(b.order, t)
		}
		b.rows = append(b.rows, row)
	}
	b.layout()
	return b, nil
}

func (b *Board) layout() {
	y := 0
	b.width = 0
	for r, row := range b.rows {
		if r > 0 {
			y += b.rowGap
		}
		x := 0
		for c, t := range row {
			if c > 0 {
				x += b.colGap
			}
			w := t.Width() + 2*borderWidth
			t.(placeable).place(focus.NewRect(x, y, w, TileHeight))
			x += w
		}
		if x > b.width {
			b.width = x
		}
		y += TileHeight
	}
	b.height = y
}

// Focusables returns the tiles in row-major order.
func (b *Board) Focusables() []focus.Element {
	out := make([]focus.Element, len(b.order))
	for i, t := range b.order {
		out[i] = t
	}
	return out
}

// Rows returns the tiles grouped by row. The slices must not be modified.
func (b *Board) Rows() [][]Tile { return b.rows }

// Tile returns the tile with the given id.
func (b *Board) Tile(id string) (Tile, bool) {
	t, ok := b.byID[id]
	return t, ok
}

// Size returns the board extent in cells.
func (b *Board) Size() (width, height int) { return b.width, b.height }

// RowGap returns the blank rows between tile rows.
func (b *Board) RowGap() int { return b.rowGap }

// ColGap returns the blank columns between tiles in a row.
func (b *Board) ColGap() int { return b.colGap }

// Active returns the id of the tile that last received native focus.
func (b *Board) Active() string { return b.active }

func (b *Board) setActive(id string) { b.active = id }

func (b *Board) emit(msg string) {
	if b.onEvent != nil {
		b.onEvent(msg)
	}
}
