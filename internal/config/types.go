package config

import (
	"fmt"
	"time"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// Tile kinds understood by the board.
const (
	KindButton   = "button"
	KindCheckbox = "checkbox"
	KindLink     = "link"
	KindLabel    = "label"
)

// Config is the fully merged configuration.
type Config struct {
	App          AppConfig          `yaml:"app" json:"app" toml:"app"`
	Navigation   NavigationConfig   `yaml:"navigation" json:"navigation" toml:"navigation"`
	Notification NotificationConfig `yaml:"notification" json:"notification" toml:"notification"`
	Style        focus.Style        `yaml:"style" json:"style" toml:"style"`
	Board        BoardConfig        `yaml:"board" json:"board" toml:"board"`
}

// AppConfig is descriptive metadata shown in the header and help.
type AppConfig struct {
	Name        string `yaml:"name" json:"name" toml:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
}

// NavigationConfig controls key handling. Keys maps a direction name to the
// key names that move focus that way.
type NavigationConfig struct {
	Debounce Duration            `yaml:"debounce" json:"debounce" toml:"debounce"`
	Keys     map[string][]string `yaml:"keys" json:"keys" toml:"keys"`
}

// NotificationConfig controls the transient notification banner.
type NotificationConfig struct {
	Duration Duration `yaml:"duration" json:"duration" toml:"duration"`
}

// BoardConfig lays tiles out in rows. Gaps are in terminal cells.
type BoardConfig struct {
	RowGap int         `yaml:"row_gap" json:"row_gap" toml:"row_gap"`
	ColGap int         `yaml:"col_gap" json:"col_gap" toml:"col_gap"`
	Rows   []RowConfig `yaml:"rows" json:"rows" toml:"rows"`
}

// RowConfig is one horizontal run of tiles.
type RowConfig struct {
	Tiles []TileConfig `yaml:"tiles" json:"tiles" toml:"tiles"`
}

// TileConfig describes a single focusable tile. Width 0 sizes the tile to
// its label.
type TileConfig struct {
	ID    string `yaml:"id" json:"id" toml:"id"`
	Label string `yaml:"label" json:"label" toml:"label"`
	Kind  string `yaml:"kind" json:"kind" toml:"kind"`
	Width int    `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
}

// Duration is a time.Duration that reads and writes as "50ms" style text in
// every config format.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("duration %q is negative", text)
	}
	*d = Duration(v)
	return nil
}

// fileConfig is the on-disk shape. Pointer and nil-able fields distinguish
// "absent" from "set to zero" so a user file only overrides what it names.
type fileConfig struct {
	App          fileApp          `yaml:"app"`
	Navigation   fileNavigation   `yaml:"navigation"`
	Notification fileNotification `yaml:"notification"`
	Style        focus.StylePatch `yaml:"style"`
	Board        fileBoard        `yaml:"board"`
}

type fileApp struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type fileNavigation struct {
	Debounce *Duration          `yaml:"debounce"`
	Keys     map[string][]string `yaml:"keys"`
}

type fileNotification struct {
	Duration *Duration `yaml:"duration"`
}

type fileBoard struct {
	RowGap *int        `yaml:"row_gap"`
	ColGap *int        `yaml:"col_gap"`
	Rows   []RowConfig `yaml:"rows"`
}
