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

// Package status emits uniform status and log messages for CLI jobs. It is
// a thin layer over logrus so that scripts using the progress engine and
// plain status lines get one consistent output channel, with elapsed times
// rendered the same way the progress tags render them.
package status

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nvoronin/cliutil/pkg/textutil"
)

// DurationPrecision is the number of fractional second digits used by Done
// and Elapsed.
const DurationPrecision = 1

func Debugf(format string, args ...any) { logrus.Debugf(format, args...) }
func Infof(format string, args ...any)  { logrus.Infof(format, args...) }
func Warnf(format string, args ...any)  { logrus.Warnf(format, args...) }
func Errorf(format string, args ...any) { logrus.Errorf(format, args...) }

// Step logs one numbered step of a multi-step operation.
func Step(n, total int, format string, args ...any) {
	logrus.Infof("[%d/%d] "+format, append([]any{n, total}, args...)...)
}

// Done logs that op finished, with the elapsed time since started.
func Done(op string, started time.Time) {
	logrus.Infof("%s finished in %s", op, Elapsed(started))
}

// Elapsed renders the time since started as a human-readable duration.
func Elapsed(started time.Time) string {
	secs := time.Since(started).Seconds()
	return textutil.FormatSeconds(secs, DurationPrecision, true, textutil.NamesNone, false)
}
