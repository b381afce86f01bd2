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
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nvoronin/cliutil/pkg/textutil"
)

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateActive
	stateEnded
)

// Engine converts a raw "current item / total items" signal into throttled
// progress output on up to two sinks. All mutable state lives here; one
// Engine serves one logical stream of updates.
type Engine struct {
	cfg   Config
	state sessionState

	// active is false when neither sink is enabled; Update is then a
	// cheap no-op so tight loops pay nothing for disabled progress.
	active    bool
	effective time.Duration

	console *consoleSink
	file    *fileSink

	started    bool
	startTime  time.Time
	lastUpdate time.Time
	lastItem   int
	rotatorIdx int
	tags       map[Tag]string

	// now is the monotonic clock; tests substitute it to simulate ticks.
	now func() time.Time
}

// New returns an uninitialized Engine. Update is a no-op until Reset has
// been called with a valid Config.
func New() *Engine {
	return &Engine{
		state: stateUninitialized,
		now:   time.Now,
	}
}

// Reset starts (or mid-run restarts) a session. It validates cfg first and
// returns a *ConfigError without touching any state on failure. A mid-run
// Reset restarts timing and speed averages but keeps the rotator position;
// a Reset from a fresh or ended engine starts the rotator at its first
// glyph.
func (e *Engine) Reset(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if e.state != stateActive {
		e.rotatorIdx = 0
	}
	e.rotatorIdx %= len(cfg.Rotator)

	e.cfg = cfg
	e.effective, e.active = cfg.effectiveInterval()
	e.state = stateActive
	e.started = false
	e.startTime = time.Time{}
	e.lastUpdate = time.Time{}
	e.lastItem = 0

	if cfg.consoleEnabled() {
		e.console = &consoleSink{w: cfg.Console}
	} else {
		e.console = nil
	}
	if cfg.fileEnabled() {
		e.file = &fileSink{path: cfg.FilePath}
	} else {
		e.file = nil
	}

	e.tags = map[Tag]string{
		TagTitle: cfg.Title,
		TagTotal: strconv.Itoa(cfg.TotalItems),
	}
	e.markUnknown()
	return nil
}

// Update advances one tick. Cheap when the session is not running, when
// both sinks are disabled, or when the effective refresh interval has not
// elapsed yet; the final item always gets through so a finished job never
// shows a stale line.
func (e *Engine) Update(current int) {
	if e.state != stateActive || !e.active {
		return
	}

	now := e.now()
	lastItem := current >= e.cfg.TotalItems

	if e.started && now.Sub(e.lastUpdate) < e.effective && !lastItem {
		return
	}

	// Accepted tick: recompute every tag value.
	if !e.started {
		e.started = true
		e.startTime = now
		e.lastUpdate = now
		e.lastItem = current
		e.markUnknown()
	} else {
		e.estimate(current, now)
	}

	e.tags[TagItem] = strconv.Itoa(current)
	e.tags[TagPercent] = e.formatPercent(current)
	e.tags[TagRotator] = string(e.cfg.Rotator[e.rotatorIdx])
	e.rotatorIdx = (e.rotatorIdx + 1) % len(e.cfg.Rotator)

	donePart := 0.0
	if e.cfg.TotalItems > 0 {
		donePart = float64(current) / float64(e.cfg.TotalItems)
	}
	sinceStart := now.Sub(e.startTime)

	if e.console != nil && sinceStart >= e.cfg.ConsoleInterval {
		text := render(e.cfg.ConsoleFormat, e.tags, donePart, e.cfg.MaxWidth, true)
		if err := e.console.write(text); err != nil {
			logrus.Warnf("progress: console write failed: %v", err)
		}
	}
	if e.file != nil && sinceStart >= e.cfg.FileInterval {
		text := render(e.cfg.FileFormat, e.tags, donePart, e.cfg.MaxWidth, false)
		if err := e.file.write(text); err != nil {
			logrus.Warnf("progress: file sink %s: %v", e.file.path, err)
		}
	}
}

// End erases any outstanding console line and makes the session terminal.
// Idempotent; later Update calls are no-ops until the next Reset.
func (e *Engine) End() {
	if e.state != stateActive {
		return
	}
	e.state = stateEnded
	if e.console != nil {
		if err := e.console.erase(); err != nil {
			logrus.Warnf("progress: console erase failed: %v", err)
		}
	}
}

// markUnknown resets every derived tag to the unknown sentinel. Used at
// reset and on the first accepted tick, when no throughput exists yet.
func (e *Engine) markUnknown() {
	e.tags[TagETA] = Unknown
	e.tags[TagSpeedAvg] = Unknown
	e.tags[TagSpeedCur] = Unknown
	e.tags[TagTimePassed] = Unknown
}

// estimate computes average/instantaneous throughput and ETA from the item
// and time deltas since the previous accepted tick. Zero denominators
// degrade to unknown rather than infinity.
func (e *Engine) estimate(current int, now time.Time) {
	timePassed := now.Sub(e.startTime).Seconds()
	tickDelta := now.Sub(e.lastUpdate).Seconds()
	itemDelta := current - e.lastItem
	e.lastUpdate = now
	e.lastItem = current

	e.markUnknown()

	if tickDelta > 0 {
		cur := float64(itemDelta) / tickDelta
		e.tags[TagSpeedCur] = e.formatSpeed(cur)
	}
	if timePassed <= 0 {
		return
	}

	e.tags[TagTimePassed] = e.formatDuration(timePassed)
	avg := float64(current) / timePassed
	e.tags[TagSpeedAvg] = e.formatSpeed(avg)
	if avg <= 0 {
		return
	}

	eta := float64(e.cfg.TotalItems-current) / avg
	if eta < 0 {
		eta = 0
	}
	e.tags[TagETA] = e.formatDuration(eta)
}

// Percent is intentionally not clamped: a caller overshooting TotalItems
// reads as >100%.
func (e *Engine) formatPercent(current int) string {
	pct := 0.0
	if e.cfg.TotalItems > 0 {
		pct = float64(current) / float64(e.cfg.TotalItems) * 100.0
	}
	return fmt.Sprintf("%.*f%%", e.cfg.PercentPrecision, pct)
}

func (e *Engine) formatSpeed(v float64) string {
	return fmt.Sprintf("%.*f/s", e.cfg.SpeedPrecision, v)
}

func (e *Engine) formatDuration(seconds float64) string {
	return textutil.FormatSeconds(seconds, e.cfg.TimePrecision, true, textutil.NamesNone, false)
}
