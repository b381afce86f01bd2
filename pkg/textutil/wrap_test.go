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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("wraps greedily at width", func(t *testing.T) {
		lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
		assert.Equal(t, []string{
			"the quick brown",
			"fox jumps over",
			"the lazy dog",
		}, lines)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		lines := Wrap("a   b\n\tc", 80)
		assert.Equal(t, []string{"a b c"}, lines)
	})

	t.Run("long word gets its own line", func(t *testing.T) {
		lines := Wrap("hi supercalifragilistic yo", 10)
		assert.Equal(t, []string{"hi", "supercalifragilistic", "yo"}, lines)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Wrap("   ", 10))
	})
}

func TestJustify(t *testing.T) {
	text := "one two three four five six"

	t.Run("right aligns every line", func(t *testing.T) {
		out := Justify(text, 12, AlignRight)
		for _, line := range strings.Split(out, "\n") {
			assert.Len(t, line, 12)
			assert.Equal(t, strings.TrimLeft(line, " "), strings.TrimSpace(line))
		}
	})

	t.Run("center keeps width", func(t *testing.T) {
		out := Justify("hi", 10, AlignCenter)
		assert.Equal(t, "    hi    ", out)
	})

	t.Run("block stretches all but last line", func(t *testing.T) {
		out := Justify(text, 12, AlignBlock)
		lines := strings.Split(out, "\n")
		require.Greater(t, len(lines), 1)
		for _, line := range lines[:len(lines)-1] {
			assert.Len(t, line, 12)
		}
		assert.Less(t, len(lines[len(lines)-1]), 13)
	})
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", Pad("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", Pad("ab", 5, AlignCenter))
	assert.Equal(t, "abcdef", Pad("abcdef", 5, AlignLeft))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", "  "))
}
