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

package cmd

import (
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/nvoronin/cliutil/pkg/progress"
	"github.com/nvoronin/cliutil/pkg/status"
)

var (
	runTotal         int
	runConsoleEvery  time.Duration
	runFileEvery     time.Duration
	runConsoleFormat string
	runFileFormat    string
	runWidth         int
	runRotator       string
	runTitle         string
	runFile          string
	runDelay         time.Duration
	runNoConsole     bool
)

// runCmd drives a simulated iterative job through the progress engine.
// Useful for eyeballing formats and as a template for real scripts.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demo job with progress reporting",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runTotal, "total", "n", 100, "Number of items to process")
	runCmd.Flags().DurationVar(&runConsoleEvery, "console-every", 200*time.Millisecond, "Console refresh interval")
	runCmd.Flags().DurationVar(&runFileEvery, "file-every", 2*time.Second, "Progress file refresh interval")
	runCmd.Flags().StringVar(&runConsoleFormat, "console-format", progress.DefaultConsoleFormat, "Console format template")
	runCmd.Flags().StringVar(&runFileFormat, "file-format", progress.DefaultFileFormat, "Progress file format template")
	runCmd.Flags().IntVarP(&runWidth, "width", "w", 0, "Maximum output width (0 = detect terminal)")
	runCmd.Flags().StringVar(&runRotator, "rotator", progress.DefaultRotator, "Rotator glyph sequence")
	runCmd.Flags().StringVarP(&runTitle, "title", "t", "", "Operation title (%title% tag)")
	runCmd.Flags().StringVarP(&runFile, "progress-file", "p", "", "Path of the progress file sink")
	runCmd.Flags().DurationVar(&runDelay, "delay", 50*time.Millisecond, "Simulated per-item work")
	runCmd.Flags().BoolVar(&runNoConsole, "no-console", false, "Disable the console sink")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if runTitle == "" {
		runTitle = viper.GetString("title")
	}
	if runTitle == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		prompt := &survey.Input{Message: "Operation title:", Default: "demo"}
		if err := survey.AskOne(prompt, &runTitle); err != nil {
			return err
		}
	}
	if runTitle == "" {
		runTitle = "demo"
	}

	cfg := progress.Config{
		TotalItems:       runTotal,
		ConsoleInterval:  runConsoleEvery,
		FileInterval:     runFileEvery,
		ConsoleFormat:    runConsoleFormat,
		FileFormat:       runFileFormat,
		MaxWidth:         outputWidth(),
		Rotator:          []rune(runRotator),
		PercentPrecision: 1,
		SpeedPrecision:   1,
		TimePrecision:    0,
		Title:            runTitle,
		FilePath:         runFile,
	}
	if !runNoConsole {
		cfg.Console = os.Stderr
	}

	eng := progress.New()
	if err := eng.Reset(cfg); err != nil {
		return err
	}
	defer eng.End()

	started := time.Now()
	status.Step(1, 2, "processing %d items", runTotal)
	for i := 1; i <= runTotal; i++ {
		time.Sleep(runDelay)
		eng.Update(i)
	}
	eng.End()

	status.Step(2, 2, "cleaning up")
	status.Done("demo job", started)
	return nil
}

// outputWidth resolves the maximum line width: flag, then config file,
// then the terminal itself, then the classic 79-column default.
func outputWidth() int {
	if runWidth > 0 {
		return runWidth
	}
	if w := viper.GetInt("width"); w > 0 {
		return w
	}
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 1 {
		// One column spare: a line that exactly fills the terminal makes
		// some emulators wrap and breaks the in-place redraw.
		return w - 1
	}
	log.Debugln("terminal width not detectable, using default")
	return progress.DefaultMaxWidth
}
