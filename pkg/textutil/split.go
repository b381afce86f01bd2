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
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned by SplitQuoted for input whose quoted
// section never closes.
var ErrUnterminatedQuote = errors.New("textutil: unterminated quote")

// SplitQuoted splits s into whitespace-separated fields, honoring single
// and double quotes. Quotes group characters (including whitespace) into
// one field and are stripped from the result. A backslash escapes the next
// character outside quotes and inside double quotes; inside single quotes
// it is literal.
//
//	SplitQuoted(`say "hello world" 'it''s'`) → ["say", "hello world", "its"]
func SplitQuoted(s string) ([]string, error) {
	var (
		fields  []string
		field   strings.Builder
		inField bool
		quote   rune
		escaped bool
	)

	for _, r := range s {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			inField = true
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				field.WriteRune(r)
			}
		case r == '\'' || r == '"':
			inField = true
			quote = r
		case unicode.IsSpace(r):
			if inField {
				fields = append(fields, field.String())
				field.Reset()
				inField = false
			}
		default:
			inField = true
			field.WriteRune(r)
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inField {
		fields = append(fields, field.String())
	}
	return fields, nil
}
