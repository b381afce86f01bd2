/*
Copyright © 2025 Nikolai Voronin <nv@nvoronin.dev>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package progress

import (
	"fmt"
	"io"
	"time"
)

// Config describes one progress session. It is copied on Reset and not
// consulted again, so mutating it afterwards has no effect on a running
// session.
type Config struct {
	// TotalItems is the number of items the job will process.
	TotalItems int

	// ConsoleInterval is the minimum time between console redraws,
	// measured from session start. Zero redraws on every accepted tick.
	ConsoleInterval time.Duration

	// FileInterval is the minimum time between file overwrites,
	// measured from session start. Zero overwrites on every accepted tick.
	FileInterval time.Duration

	// ConsoleFormat is the template rendered to the console sink.
	ConsoleFormat string

	// FileFormat is the template rendered to the file sink.
	FileFormat string

	// MaxWidth is the maximum rendered line width. The %bar% tag is sized
	// to fill the template up to this width; console templates without a
	// %bar% are right-padded with spaces to exactly this width so a
	// shorter redraw still covers the previous line.
	MaxWidth int

	// Rotator is the spinner glyph sequence. It advances one glyph per
	// accepted tick regardless of which sinks redraw.
	Rotator []rune

	// PercentPrecision, SpeedPrecision and TimePrecision are the number
	// of fractional digits used for %percent%, the two speed tags, and
	// the seconds field of %eta% / %time_passed%.
	PercentPrecision int
	SpeedPrecision   int
	TimePrecision    int

	// Title is the static %title% value.
	Title string

	// Console is where console output goes. Nil disables the console sink.
	Console io.Writer

	// FilePath is the progress file overwritten on each qualifying tick.
	// Empty disables the file sink.
	FilePath string
}

// Default templates and rotator, in the spirit of classic single-line
// progress tools.
const (
	DefaultConsoleFormat = "%title% %rotator% [%bar%] %percent% eta %eta%"
	DefaultFileFormat    = "%title%: %item%/%total% (%percent%) eta %eta% avg %speed_avg%"
	DefaultMaxWidth      = 79
	DefaultRotator       = `|/-\`
)

// DefaultConfig returns a Config with sensible defaults for a console-only
// session of totalItems items. The caller still has to set Console (or
// FilePath) to enable a sink.
func DefaultConfig(totalItems int) Config {
	return Config{
		TotalItems:       totalItems,
		ConsoleInterval:  200 * time.Millisecond,
		FileInterval:     2 * time.Second,
		ConsoleFormat:    DefaultConsoleFormat,
		FileFormat:       DefaultFileFormat,
		MaxWidth:         DefaultMaxWidth,
		Rotator:          []rune(DefaultRotator),
		PercentPrecision: 1,
		SpeedPrecision:   1,
		TimePrecision:    0,
	}
}

// ConfigError reports an invalid Config field. Reset returns it before any
// session state is touched, so the engine stays in its previous state.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("progress config: %s %s", e.Field, e.Reason)
}

func (c *Config) validate() error {
	if c.TotalItems < 0 {
		return &ConfigError{Field: "TotalItems", Reason: "must not be negative"}
	}
	if c.ConsoleInterval < 0 {
		return &ConfigError{Field: "ConsoleInterval", Reason: "must not be negative"}
	}
	if c.FileInterval < 0 {
		return &ConfigError{Field: "FileInterval", Reason: "must not be negative"}
	}
	if len(c.Rotator) == 0 {
		return &ConfigError{Field: "Rotator", Reason: "must not be empty"}
	}
	if c.MaxWidth <= 0 {
		return &ConfigError{Field: "MaxWidth", Reason: "must be positive"}
	}
	return nil
}

// consoleEnabled and fileEnabled decide sink participation; a disabled sink
// never influences the effective refresh interval.
func (c *Config) consoleEnabled() bool { return c.Console != nil }
func (c *Config) fileEnabled() bool    { return c.FilePath != "" }

// effectiveInterval is the smallest interval among enabled sinks. The
// second return is false when neither sink is enabled, which turns the
// whole engine into a no-op.
func (c *Config) effectiveInterval() (time.Duration, bool) {
	switch {
	case c.consoleEnabled() && c.fileEnabled():
		if c.FileInterval < c.ConsoleInterval {
			return c.FileInterval, true
		}
		return c.ConsoleInterval, true
	case c.consoleEnabled():
		return c.ConsoleInterval, true
	case c.fileEnabled():
		return c.FileInterval, true
	default:
		return 0, false
	}
}
