// Package config loads console settings from the game manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"rotanika/pkg/engine/style"
)

// DefaultPath is the manifest read when no path is given
const DefaultPath = "rotanika.toml"

// Settings is the [console] table of the manifest. Colors are style names
// such as "blue" or "bright-cyan".
type Settings struct {
	Title             string   `toml:"title"`
	BorderChar        string   `toml:"border_char"`
	BorderColor       string   `toml:"border_color"`
	DinkusChar        string   `toml:"dinkus_char"`
	DinkusColor       string   `toml:"dinkus_color"`
	InputPrefix       string   `toml:"input_prefix"`
	InputColor        string   `toml:"input_color"`
	Width             int      `toml:"width"`
	Height            int      `toml:"height"`
	ExitKeywords      []string `toml:"exit_keywords"`
	LoadingIntervalMS int      `toml:"loading_interval_ms"`
	ExitDelayMS       int      `toml:"exit_delay_ms"`
}

// Palette holds the resolved escape sequences for the configured colors
type Palette struct {
	Border string
	Dinkus string
	Input  string
}

type manifest struct {
	Console Settings `toml:"console"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		BorderChar:        "#",
		BorderColor:       "blue",
		DinkusChar:        "=",
		DinkusColor:       "cyan",
		InputPrefix:       "> ",
		InputColor:        "green",
		ExitKeywords:      []string{"exit"},
		LoadingIntervalMS: 500,
		ExitDelayMS:       1500,
	}
}

// Load reads the [console] table from the manifest at path on top of the
// defaults. A missing file is not an error: the defaults are returned.
func Load(path string) (Settings, error) {
	m := manifest{Console: Default()}
	if path == "" {
		path = DefaultPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Console, nil
		}
		return m.Console, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, &m); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := m.Console.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return m.Console, nil
}

// Validate checks that the settings can drive a console
func (s Settings) Validate() error {
	if s.BorderChar == "" {
		return errors.New("border_char must not be empty")
	}
	if s.DinkusChar == "" {
		return errors.New("dinkus_char must not be empty")
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("width and height must not be negative, got %dx%d", s.Width, s.Height)
	}
	if s.LoadingIntervalMS <= 0 {
		return fmt.Errorf("loading_interval_ms must be positive, got %d", s.LoadingIntervalMS)
	}
	if s.ExitDelayMS < 0 {
		return fmt.Errorf("exit_delay_ms must not be negative, got %d", s.ExitDelayMS)
	}
	_, err := s.Palette()
	return err
}

// Palette resolves the configured color names
func (s Settings) Palette() (Palette, error) {
	var p Palette
	for _, c := range []struct {
		key  string
		name string
		dst  *string
	}{
		{"border_color", s.BorderColor, &p.Border},
		{"dinkus_color", s.DinkusColor, &p.Dinkus},
		{"input_color", s.InputColor, &p.Input},
	} {
		seq, ok := style.Lookup(c.name)
		if !ok {
			return Palette{}, fmt.Errorf("%s: unknown style %q", c.key, c.name)
		}
		*c.dst = seq
	}
	return p, nil
}

// LoadingInterval returns the loading animation tick period
func (s Settings) LoadingInterval() time.Duration {
	return time.Duration(s.LoadingIntervalMS) * time.Millisecond
}

// ExitDelay returns how long the exit message stays on screen
func (s Settings) ExitDelay() time.Duration {
	return time.Duration(s.ExitDelayMS) * time.Millisecond
}
