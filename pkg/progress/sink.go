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
	"io"
	"os"
	"strings"
)

// consoleSink redraws a single line in place. The erase protocol is
// carriage-return, as many spaces as the previous line, carriage-return,
// then the new text with no trailing newline so the next redraw can reuse
// the line.
type consoleSink struct {
	w    io.Writer
	last string
}

// write emits text unless it matches the previous redraw exactly, in which
// case nothing is written at all (no erase, no output). Erase and new text
// go out in a single Write.
func (s *consoleSink) write(text string) error {
	if text == s.last {
		return nil
	}
	var b strings.Builder
	if s.last != "" {
		b.WriteString("\r")
		b.WriteString(strings.Repeat(" ", len(s.last)))
		b.WriteString("\r")
	}
	b.WriteString(text)
	_, err := io.WriteString(s.w, b.String())
	s.last = text
	return err
}

// erase clears the current line and forgets it. Safe to call when nothing
// has been drawn.
func (s *consoleSink) erase() error {
	if s.last == "" {
		return nil
	}
	n := len(s.last)
	s.last = ""
	_, err := io.WriteString(s.w, "\r"+strings.Repeat(" ", n)+"\r")
	return err
}

// fileSink overwrites a plain text file with the rendered line. No diffing
// against previous content, no retries: a failed write is reported once and
// the next qualifying tick tries again naturally.
type fileSink struct {
	path string
	last string
}

func (s *fileSink) write(text string) error {
	s.last = text
	return os.WriteFile(s.path, []byte(text), 0o644)
}
