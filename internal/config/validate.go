package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLayout is returned when the board cannot be laid out.
	ErrInvalidLayout = errors.New("invalid board layout")
	// ErrDuplicateTile is returned when two tiles share an id.
	ErrDuplicateTile = errors.New("duplicate tile id")
)

var knownKinds = map[string]bool{
	KindButton:   true,
	KindCheckbox: true,
	KindLink:     true,
	KindLabel:    true,
}

// Validate checks the board and navigation sections.
func (c Config) Validate() error {
	if c.Board.RowGap < 0 || c.Board.ColGap < 0 {
		return fmt.Errorf("%w: gaps must not be negative", ErrInvalidLayout)
	}
	if len(c.Board.Rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	seen := make(map[string]string)
	for r, row := range c.Board.Rows {
		if len(row.Tiles) == 0 {
			return fmt.Errorf("%w: row %d has no tiles", ErrInvalidLayout, r)
		}
		for i, t := range row.Tiles {
			where := fmt.Sprintf("row %d tile %d", r, i)
			id := strings.TrimSpace(t.ID)
			if id == "" {
				return fmt.Errorf("%w: %s has no id", ErrInvalidLayout, where)
			}
			if !knownKinds[t.Kind] {
				return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidLayout, where, t.Kind)
			}
			if t.Width < 0 {
				return fmt.Errorf("%w: %s has negative width", ErrInvalidLayout, where)
			}
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("%w: %q at %s and %s", ErrDuplicateTile, id, prev, where)
			}
			seen[id] = where
		}
	}
	if _, err := c.KeyMap(); err != nil {
		return err
	}
	return nil
}
