/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "strings"

// Tokenize splits PDDL text into "(", ")", and bare-symbol tokens. A ";"
// begins a comment that runs to end of line. Symbols are maximal runs of
// non-whitespace, non-paren characters, compared exactly as written.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		for _, c := range line {
			switch {
			case c == '(' || c == ')':
				flush()
				tokens = append(tokens, string(c))
			case c == ' ' || c == '\t' || c == '\r':
				flush()
			default:
				current.WriteRune(c)
			}
		}
		flush()
	}
	flush()
	return tokens
}
