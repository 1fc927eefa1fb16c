package focus

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidKeyMap is returned when a key mapping has an empty key or an
// invalid direction.
var ErrInvalidKeyMap = errors.New("invalid key map")

// KeyMap is the fixed translation from raw key identifiers to directions.
// It is built once and never mutated.
type KeyMap struct {
	table map[string]Direction
}

// DefaultKeyMap maps the arrow keys to their directions.
func DefaultKeyMap() KeyMap {
	km, _ := NewKeyMap(map[string]Direction{
		"up":    Up,
		"down":  Down,
		"left":  Left,
		"right": Right,
	})
	return km
}

// NewKeyMap copies bindings into a new KeyMap.
func NewKeyMap(bindings map[string]Direction) (KeyMap, error) {
	table := make(map[string]Direction, len(bindings))
	for key, dir := range bindings {
		key = strings.TrimSpace(key)
		if key == "" {
			return KeyMap{}, fmt.Errorf("%w: empty key for %s", ErrInvalidKeyMap, dir)
		}
		if !dir.Valid() {
			return KeyMap{}, fmt.Errorf("%w: key %q bound to %s", ErrInvalidKeyMap, key, dir)
		}
		if key == KeyEnter {
			return KeyMap{}, fmt.Errorf("%w: %q is reserved", ErrInvalidKeyMap, KeyEnter)
		}
		table[key] = dir
	}
	return KeyMap{table: table}, nil
}

// Resolve returns the direction bound to key. ok is false when key has no
// mapping.
func (m KeyMap) Resolve(key string) (dir Direction, ok bool) {
	dir, ok = m.table[key]
	return dir, ok
}

// Len returns the number of bound keys.
func (m KeyMap) Len() int { return len(m.table) }

// Keys returns the keys bound to dir, sorted.
func (m KeyMap) Keys(dir Direction) []string {
	var keys []string
	for k, d := range m.table {
		if d == dir {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
