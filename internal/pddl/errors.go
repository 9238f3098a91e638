/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "fmt"

// ParseError is returned for malformed PDDL: unbalanced parens, a missing
// top-level (define ...), or a malformed typed list. It carries the
// offending token or subexpression for diagnostics.
type ParseError struct {
	Message string
	Token   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pddl: %s", e.Message)
	}
	return fmt.Sprintf("pddl: %s (at %q)", e.Message, e.Token)
}

func newParseError(token, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Token: token}
}
