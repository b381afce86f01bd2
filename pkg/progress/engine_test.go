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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests drive the engine's notion of time tick by tick.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// countingWriter counts Write calls; one redraw is exactly one Write.
type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("tty gone")
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *fakeClock) {
	t.Helper()
	eng := New()
	clk := newFakeClock()
	eng.now = clk.now
	require.NoError(t, eng.Reset(cfg))
	return eng, clk
}

// immediateConfig accepts and draws on every tick.
func immediateConfig(total int, out *countingWriter, format string) Config {
	cfg := DefaultConfig(total)
	cfg.ConsoleInterval = 0
	cfg.ConsoleFormat = format
	cfg.Console = out
	return cfg
}

func TestUpdate_BeforeResetIsNoop(t *testing.T) {
	eng := New()
	assert.NotPanics(t, func() {
		eng.Update(1)
		eng.Update(2)
	})
}

func TestUpdate_NoSinksIsNoop(t *testing.T) {
	cfg := DefaultConfig(10) // neither Console nor FilePath set
	eng, _ := newTestEngine(t, cfg)

	eng.Update(5)
	assert.Empty(t, eng.tags[TagItem], "disabled engine must not compute tags")
}

func TestRotator_CyclesPerAcceptedTick(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%rotator% %item%")
	cfg.Rotator = []rune("abc")
	eng, clk := newTestEngine(t, cfg)

	for i := 0; i < 7; i++ {
		eng.Update(i)
		want := string("abc"[i%3])
		assert.Equal(t, want, eng.tags[TagRotator], "tick %d", i)
		clk.advance(time.Second)
	}
}

func TestFirstTick_AllUnknown(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%eta% %speed_avg% %speed_cur% %time_passed%")
	eng, _ := newTestEngine(t, cfg)

	eng.Update(1)

	for _, tag := range []Tag{TagETA, TagSpeedAvg, TagSpeedCur, TagTimePassed} {
		assert.Equal(t, Unknown, eng.tags[tag], "%s", tag)
	}
	assert.Contains(t, out.buf.String(), "? ? ? ?")
}

func TestSecondTick_ComputesEstimates(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%item%")
	cfg.SpeedPrecision = 1
	eng, clk := newTestEngine(t, cfg)

	eng.Update(0)
	clk.advance(2 * time.Second)
	eng.Update(10)

	// 10 items over 2s since start, 10 items over 2s since last tick.
	assert.Equal(t, "5.0/s", eng.tags[TagSpeedAvg])
	assert.Equal(t, "5.0/s", eng.tags[TagSpeedCur])
	// 90 items left at 5/s.
	assert.Equal(t, "18s", eng.tags[TagETA])
	assert.Equal(t, "2s", eng.tags[TagTimePassed])
}

func TestEstimate_ZeroTimeDegradesToUnknown(t *testing.T) {
	out := &countingWriter{}
	eng, _ := newTestEngine(t, immediateConfig(100, out, "%item%"))

	eng.Update(1)
	eng.Update(2) // same instant, deltas are zero

	assert.Equal(t, Unknown, eng.tags[TagSpeedAvg])
	assert.Equal(t, Unknown, eng.tags[TagSpeedCur])
	assert.Equal(t, Unknown, eng.tags[TagETA])
}

func TestPercent_MonotonicAndUnclamped(t *testing.T) {
	out := &countingWriter{}
	eng, clk := newTestEngine(t, immediateConfig(100, out, "%percent%"))

	items := []int{10, 50, 100, 150}
	want := []string{"10.0%", "50.0%", "100.0%", "150.0%"}
	for i, item := range items {
		eng.Update(item)
		assert.Equal(t, want[i], eng.tags[TagPercent])
		clk.advance(time.Second)
	}
}

func TestConsole_SuppressesRedundantRedraw(t *testing.T) {
	out := &countingWriter{}
	eng, _ := newTestEngine(t, immediateConfig(100, out, "%item%/%total%"))

	eng.Update(5)
	eng.Update(5)

	assert.Equal(t, 1, out.writes, "identical rendered text must not rewrite")
	assert.Len(t, out.buf.String(), DefaultMaxWidth, "first draw is the padded line with no erase prefix")
}

func TestConsole_EraseBetweenRedraws(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%item%")
	cfg.MaxWidth = 5
	eng, clk := newTestEngine(t, cfg)

	eng.Update(1)
	clk.advance(time.Second)
	eng.Update(2)

	assert.Equal(t, 2, out.writes)
	// Second write starts with CR + 5 spaces + CR to cover "1    ".
	assert.Contains(t, out.buf.String(), "\r     \r2")
}

func TestSinkCadence_Independent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.txt")
	out := &countingWriter{}

	cfg := DefaultConfig(100)
	cfg.Console = out
	cfg.ConsoleInterval = 1 * time.Second
	cfg.FilePath = path
	cfg.FileInterval = 5 * time.Second
	cfg.ConsoleFormat = "%item%"
	cfg.FileFormat = "%item%/%total%"
	eng, clk := newTestEngine(t, cfg)

	for sec := 0; sec <= 6; sec++ {
		eng.Update(sec)
		if sec < 5 {
			assert.NoFileExists(t, path, "file sink must stay silent before t=5s")
		}
		clk.advance(time.Second)
	}

	// Console: t=1..6 qualify (each >=1s since start), t=0 does not.
	assert.Equal(t, 6, out.writes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "6/100", string(data))
}

func TestLastItem_BypassesThrottle(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%item%")
	cfg.ConsoleInterval = time.Hour
	eng, _ := newTestEngine(t, cfg)

	eng.Update(99)  // first call, accepted
	eng.Update(100) // same instant, accepted because currentItem >= total

	assert.Equal(t, "100", eng.tags[TagItem])
}

func TestEnd_IdempotentErase(t *testing.T) {
	out := &countingWriter{}
	eng, _ := newTestEngine(t, immediateConfig(100, out, "%item%"))

	eng.Update(1)
	require.Equal(t, 1, out.writes)

	eng.End()
	assert.Equal(t, 2, out.writes, "first End erases the outstanding line")

	eng.End()
	assert.Equal(t, 2, out.writes, "second End must be a no-op")

	eng.Update(2)
	assert.Equal(t, 2, out.writes, "Update after End must not reactivate")
}

func TestReset_MidRunKeepsRotator(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%rotator%%item%")
	cfg.Rotator = []rune("abc")
	eng, clk := newTestEngine(t, cfg)

	eng.Update(1)
	clk.advance(time.Second)
	eng.Update(2) // rotator index now 2

	require.NoError(t, eng.Reset(cfg))
	eng.Update(1)
	assert.Equal(t, "c", eng.tags[TagRotator], "mid-run reset keeps the rotator position")

	// Timing restarted: the first tick after reset is all-unknown again.
	assert.Equal(t, Unknown, eng.tags[TagETA])
	assert.Equal(t, Unknown, eng.tags[TagTimePassed])
}

func TestReset_AfterEndRestartsRotator(t *testing.T) {
	out := &countingWriter{}
	cfg := immediateConfig(100, out, "%rotator%%item%")
	cfg.Rotator = []rune("abc")
	eng, clk := newTestEngine(t, cfg)

	eng.Update(1)
	clk.advance(time.Second)
	eng.Update(2)
	eng.End()

	require.NoError(t, eng.Reset(cfg))
	eng.Update(1)
	assert.Equal(t, "a", eng.tags[TagRotator])
}

func TestFileSink_OverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.txt")
	cfg := DefaultConfig(10)
	cfg.FilePath = path
	cfg.FileInterval = 0
	cfg.FileFormat = "at %item%"
	eng, clk := newTestEngine(t, cfg)

	eng.Update(3)
	clk.advance(time.Second)
	eng.Update(7)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "at 7", string(data), "file holds only the latest render")
}

func TestSinkWriteError_WarnsAndContinues(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	cfg := DefaultConfig(10)
	cfg.ConsoleInterval = 0
	cfg.ConsoleFormat = "%item%"
	cfg.Console = failingWriter{}
	eng, clk := newTestEngine(t, cfg)

	assert.NotPanics(t, func() {
		eng.Update(1)
		clk.advance(time.Second)
		eng.Update(2)
	})

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "console write failed")
	assert.Equal(t, "2", eng.tags[TagItem], "tracking survives sink failure")
}

func TestInvalidResetKeepsPreviousSession(t *testing.T) {
	out := &countingWriter{}
	eng, clk := newTestEngine(t, immediateConfig(100, out, "%item%"))
	eng.Update(1)

	bad := DefaultConfig(-1)
	require.Error(t, eng.Reset(bad))

	clk.advance(time.Second)
	eng.Update(2)
	assert.Equal(t, "2", eng.tags[TagItem], "previous session must survive a failed reset")
	assert.Equal(t, "100", eng.tags[TagTotal])
}
