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
	"math"
	"strings"
)

// Tag is a placeholder substituted into a format template. Only tags from
// the closed set below are recognized; anything else in a template passes
// through literally, so operators can embed e.g. %custom% untouched.
type Tag string

const (
	TagPercent    Tag = "%percent%"
	TagBar        Tag = "%bar%"
	TagETA        Tag = "%eta%"
	TagItem       Tag = "%item%"
	TagTotal      Tag = "%total%"
	TagSpeedAvg   Tag = "%speed_avg%"
	TagSpeedCur   Tag = "%speed_cur%"
	TagTimePassed Tag = "%time_passed%"
	TagRotator    Tag = "%rotator%"
	TagTitle      Tag = "%title%"
)

// Unknown is rendered for tags whose value cannot be computed yet, such as
// ETA before any throughput is known.
const Unknown = "?"

// substitutable is every tag replaced by plain lookup. %bar% is excluded:
// its width depends on the length of the line after all other tags are in.
var substitutable = []Tag{
	TagPercent,
	TagETA,
	TagItem,
	TagTotal,
	TagSpeedAvg,
	TagSpeedCur,
	TagTimePassed,
	TagRotator,
	TagTitle,
}

const (
	barFill  = "#"
	barTrack = "-"
)

// render expands a template against the current tag values.
//
// The %bar% tag is sized so the finished line fits maxWidth: its length is
// maxWidth minus the length of the line with every other tag substituted
// (the %bar% literal still counted). donePart is the completed fraction;
// the fill glyph count is round(donePart*barLength), clamped to the bar.
//
// pad right-pads a barless result with spaces to exactly maxWidth. The
// console sink needs that so a shorter redraw fully covers the previous
// line; the file sink does not pad.
func render(template string, tags map[Tag]string, donePart float64, maxWidth int, pad bool) string {
	out := template
	for _, tag := range substitutable {
		out = strings.ReplaceAll(out, string(tag), tags[tag])
	}

	if !strings.Contains(out, string(TagBar)) {
		if pad && len(out) < maxWidth {
			out += strings.Repeat(" ", maxWidth-len(out))
		}
		return out
	}

	barLength := maxWidth - len(out)
	bar := ""
	if barLength > 0 {
		filled := int(math.Round(donePart * float64(barLength)))
		if filled < 0 {
			filled = 0
		}
		if filled > barLength {
			filled = barLength
		}
		bar = strings.Repeat(barFill, filled) + strings.Repeat(barTrack, barLength-filled)
	}
	return strings.ReplaceAll(out, string(TagBar), bar)
}
