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

import "strings"

// Alignment controls how Justify pads wrapped lines.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	// AlignBlock stretches inner spaces so every line except the last
	// ends exactly at the target width.
	AlignBlock
)

// Wrap greedily word-wraps s into lines of at most width characters.
// A single word longer than width gets a line of its own, unbroken.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// Justify wraps s to width and aligns every line.
func Justify(s string, width int, align Alignment) string {
	lines := Wrap(s, width)
	for i, line := range lines {
		switch align {
		case AlignRight:
			lines[i] = Pad(line, width, AlignRight)
		case AlignCenter:
			lines[i] = Pad(line, width, AlignCenter)
		case AlignBlock:
			// The last line of a block-justified paragraph stays ragged.
			if i < len(lines)-1 {
				lines[i] = stretch(line, width)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Pad pads s with spaces to exactly width. Strings already at or past the
// width come back unchanged.
func Pad(s string, width int, align Alignment) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Indent prefixes every line of s with prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// stretch widens the gaps between words until the line reaches width.
// Extra spaces go to the leftmost gaps first.
func stretch(line string, width int) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return Pad(line, width, AlignLeft)
	}

	gaps := len(words) - 1
	total := width - lineLen(words)
	if total <= gaps {
		return strings.Join(words, " ")
	}
	base := total / gaps
	extra := total % gaps

	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			n := base
			if i <= extra {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
		b.WriteString(w)
	}
	return b.String()
}

func lineLen(words []string) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}
