/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package model holds the core STRIPS data types: atoms, states, grounded
// and lifted actions, domains, problems, and grounded tasks.
package model

import "strings"

// Atom is the canonical string form of a grounded predicate: name(arg1,arg2,...)
// or a bare name when arity is zero. Atoms are compared by value.
type Atom = string

// FormatAtom builds the canonical atom string for a predicate name and its
// grounded arguments. Argument order is significant.
func FormatAtom(name string, args []string) Atom {
	if len(args) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// FormatActionName builds the canonical grounded-action name schema(arg1,...,argN)
// preserving schema parameter order.
func FormatActionName(schema string, args []string) string {
	return FormatAtom(schema, args)
}
