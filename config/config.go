// Package config loads line editor options from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable options for a line-editing session and the
// demo REPL around it
type Config struct {
	// PollTimeoutMS bounds each raw read attempt, in milliseconds
	PollTimeoutMS int `toml:"poll_timeout_ms"`

	// BufferSize is the per-session line capacity in bytes
	BufferSize int `toml:"buffer_size"`

	// Prompt is printed before each read
	Prompt string `toml:"prompt"`

	// TraceFile, when set, receives key/lifecycle trace logs.
	// Must not point at the edited terminal.
	TraceFile string `toml:"trace_file"`
}

// Default returns the built-in options
func Default() Config {
	return Config{
		PollTimeoutMS: 100,
		BufferSize:    1024,
		Prompt:        "> ",
	}
}

// PollTimeout returns the poll timeout as a duration
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMS) * time.Millisecond
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults; a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects option values the editor cannot operate with
func (c Config) Validate() error {
	if c.PollTimeoutMS <= 0 {
		return fmt.Errorf("config: poll_timeout_ms must be positive, got %d", c.PollTimeoutMS)
	}
	if c.BufferSize < 2 {
		return fmt.Errorf("config: buffer_size must be at least 2, got %d", c.BufferSize)
	}
	return nil
}
