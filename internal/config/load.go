// Package config loads spatialnav configuration: an embedded default YAML
// document merged with an optional user file.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// ErrUnknownFormat is returned by Encode for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// DefaultYAML returns a copy of the embedded default config.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Loader merges configuration sources. The zero value uses the embedded
// defaults.
type Loader struct {
	// Defaults overrides the embedded default document. Tests use it.
	Defaults func() ([]byte, error)
}

// Default returns the embedded defaults.
func Default() (Config, error) {
	return Loader{}.Load("")
}

// Load returns the embedded defaults merged with the file at path. An empty
// path loads defaults only.
func Load(path string) (Config, error) {
	return Loader{}.Load(path)
}

// Load returns the defaults merged with the file at path.
func (l Loader) Load(path string) (Config, error) {
	var cfg Config

	data, err := l.defaults()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	base, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	cfg = merge(Config{}, base)
	if cfg.App.Name == "" || len(cfg.Navigation.Keys) == 0 {
		return cfg, fmt.Errorf("default config is missing required app and navigation defaults")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		user, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
		cfg = merge(cfg, user)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (l Loader) defaults() ([]byte, error) {
	if l.Defaults != nil {
		return l.Defaults()
	}
	if len(embeddedDefaultConfig) == 0 {
		return nil, errors.New("embedded default config is empty")
	}
	return DefaultYAML(), nil
}

func decode(data []byte) (fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		// An empty document is a valid, empty config.
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fc, err
	}
	return fc, nil
}

// merge applies fc over base, one section at a time. Key bindings and board
// rows replace their whole section when present.
func merge(base Config, fc fileConfig) Config {
	out := base
	if fc.App.Name != "" {
		out.App.Name = fc.App.Name
	}
	if fc.App.Description != "" {
		out.App.Description = fc.App.Description
	}
	if fc.Navigation.Debounce != nil {
		out.Navigation.Debounce = *fc.Navigation.Debounce
	}
	if len(fc.Navigation.Keys) > 0 {
		keys := make(map[string][]string, len(fc.Navigation.Keys))
		for dir, names := range fc.Navigation.Keys {
			keys[dir] = append([]string(nil), names...)
		}
		out.Navigation.Keys = keys
	}
	if fc.Notification.Duration != nil {
		out.Notification.Duration = *fc.Notification.Duration
	}
	out.Style = out.Style.Merge(fc.Style)
	if fc.Board.RowGap != nil {
		out.Board.RowGap = *fc.Board.RowGap
	}
	if fc.Board.ColGap != nil {
		out.Board.ColGap = *fc.Board.ColGap
	}
	if len(fc.Board.Rows) > 0 {
		out.Board.Rows = append([]RowConfig(nil), fc.Board.Rows...)
	}
	return out
}

// KeyMap builds the focus key map from the navigation bindings.
func (c Config) KeyMap() (focus.KeyMap, error) {
	bindings := make(map[string]focus.Direction)
	for name, keys := range c.Navigation.Keys {
		dir, err := focus.ParseDirection(name)
		if err != nil {
			return focus.KeyMap{}, fmt.Errorf("navigation.keys: %w", err)
		}
		for _, k := range keys {
			k = strings.TrimSpace(k)
			if prev, ok := bindings[k]; ok && prev != dir {
				return focus.KeyMap{}, fmt.Errorf("%w: key %q bound to both %s and %s", focus.ErrInvalidKeyMap, k, prev, dir)
			}
			bindings[k] = dir
		}
	}
	return focus.NewKeyMap(bindings)
}

// Encode renders c as yaml, json or toml.
func Encode(c Config, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case "json":
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case "toml":
		out, err := toml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q (want yaml, json or toml)", ErrUnknownFormat, format)
	}
}
