/*
Copyright © 2024 Nikolai Voronin <nv@nvoronin.dev>

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

package textutil

import (
	"fmt"
	"strings"
)

// Verbosity selects the unit naming style of FormatSeconds.
type Verbosity int

const (
	// NamesNone glues a single letter to the value: "2h 05m 30s".
	NamesNone Verbosity = iota
	// NamesShort uses abbreviated unit names: "2 hr 5 min 30 sec".
	NamesShort
	// NamesLong uses full unit names: "2 hours 5 minutes 30 seconds".
	NamesLong
	// NamesFull is NamesLong joined with commas:
	// "2 hours, 5 minutes, 30 seconds".
	NamesFull
)

var unitSeconds = []float64{604800, 86400, 3600, 60}

var unitNames = map[Verbosity][5]string{
	NamesNone:  {"w", "d", "h", "m", "s"},
	NamesShort: {"wk", "day", "hr", "min", "sec"},
	NamesLong:  {"week", "day", "hour", "minute", "second"},
	NamesFull:  {"week", "day", "hour", "minute", "second"},
}

// FormatSeconds renders a duration in seconds as weeks, days, hours,
// minutes and seconds.
//
// precision is the number of fractional digits on the seconds field.
// stripLeading omits leading all-zero units, so 90 seconds is "1m 30s"
// rather than "0w 0d 0h 1m 30s". pad zero-pads the hour, minute and second
// values to two digits whenever a higher unit is present.
//
// Verbosities above NamesNone append a plural "s" whenever the rendered
// value does not end in the digit 1. The rule is deliberately naive: 11 or
// 21 of a unit therefore come out singular. Long-standing output contract,
// kept as is.
//
// Negative input is treated as zero; the function never fails. Rendering
// an unknown-value sentinel is the caller's job, not this function's.
func FormatSeconds(seconds float64, precision int, stripLeading bool, names Verbosity, pad bool) string {
	if seconds < 0 {
		seconds = 0
	}

	values := make([]float64, 0, 5)
	rest := seconds
	for _, unit := range unitSeconds {
		n := float64(int(rest / unit))
		values = append(values, n)
		rest -= n * unit
	}
	values = append(values, rest)

	labels := unitNames[names]
	parts := make([]string, 0, 5)
	for i, v := range values {
		if stripLeading && len(parts) == 0 && i < 4 && v == 0 {
			continue
		}

		higher := len(parts) > 0
		var value string
		if i < 4 {
			value = formatUnitValue(v, 0, pad && higher && i >= 2)
		} else {
			value = formatUnitValue(v, precision, pad && higher)
		}

		label := labels[i]
		if names > NamesNone {
			label = " " + label + pluralSuffix(value)
		}
		parts = append(parts, value+label)
	}

	if names == NamesFull {
		return strings.Join(parts, ", ")
	}
	return strings.Join(parts, " ")
}

func formatUnitValue(v float64, precision int, pad bool) string {
	if !pad {
		return fmt.Sprintf("%.*f", precision, v)
	}
	width := 2
	if precision > 0 {
		width += precision + 1
	}
	return fmt.Sprintf("%0*.*f", width, precision, v)
}

// pluralSuffix implements the naive last-character rule: anything not
// ending in "1" is plural.
func pluralSuffix(value string) string {
	if strings.HasSuffix(value, "1") {
		return ""
	}
	return "s"
}
