package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrUnknownProfile is returned when a config file selects a profile that
// does not exist.
var ErrUnknownProfile = errors.New("unknown binding profile")

// File is the on-disk viewer configuration. Binding expressions are not part
// of it; a file only picks one of the built-in profiles.
type File struct {
	Window  Config      `toml:"window"`
	Debug   DebugConfig `toml:"debug"`
	Input   InputConfig `toml:"input"`
	Profile string      `toml:"profile"`
}

// Current returns the file form of the live configuration.
func Current() File {
	return File{
		Window:  *C,
		Debug:   Debug,
		Input:   Input,
		Profile: Input.Active().Name,
	}
}

// Load reads a TOML file on top of the live configuration. A missing or
// empty file yields the live values unchanged.
func Load(path string) (File, error) {
	f := Current()
	path = strings.TrimSpace(path)
	if path == "" {
		return f, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("read config: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return f, nil
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, ok := Input.ProfileIndex(f.Profile); !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownProfile, f.Profile)
	}
	return f, nil
}

// Apply copies f into the global configuration.
func (f File) Apply() {
	if f.Window.Width > 0 && f.Window.Height > 0 {
		C.Width, C.Height = f.Window.Width, f.Window.Height
	}
	if f.Window.TPS > 0 {
		C.TPS = f.Window.TPS
	}
	if f.Window.Title != "" {
		C.Title = f.Window.Title
	}
	Debug = f.Debug
	if f.Input.MaxLogLines > 0 {
		Input.MaxLogLines = f.Input.MaxLogLines
	}
	if f.Input.EventFadeSeconds > 0 {
		Input.EventFadeSeconds = f.Input.EventFadeSeconds
	}
	if i, ok := Input.ProfileIndex(f.Profile); ok {
		Input.ActiveProfile = i
	}
}

// LoadFile loads path and applies it.
func LoadFile(path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	f.Apply()
	return nil
}

// Save writes the live configuration to path as TOML.
func Save(path string) error {
	data, err := toml.Marshal(Current())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
