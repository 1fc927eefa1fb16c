package focus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for names outside the four
// logical directions.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the four logical movement directions.
type Direction int

const (
	// Up moves focus toward smaller row coordinates.
	Up Direction = iota + 1
	// Down moves focus toward larger row coordinates.
	Down
	// Left moves focus toward smaller column coordinates.
	Left
	// Right moves focus toward larger column coordinates.
	Right
)

// Directions lists every valid direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection accepts the lowercase names and the browser-style arrow key
// names (ArrowUp, ArrowDown, ...), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "arrow")
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText implements encoding.TextMarshaler so directions serialize by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
