/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "github.com/stripslab/planner/internal/model"

// parseTypedList parses a flat list of symbols such as
// "a b - block c - ball d" into [(a,block), (b,block), (c,ball), (d,object)].
// A "-" token binds the preceding run of names to the following symbol as
// their type; trailing unbound names receive model.RootType.
func parseTypedList(items []sexpr) ([]model.Param, error) {
	var result []model.Param
	var pending []string

	i := 0
	for i < len(items) {
		sym, ok := asSymbol(items[i])
		if !ok {
			return nil, newParseError("", "malformed typed list: expected symbol")
		}
		if sym == "-" {
			if i+1 >= len(items) {
				return nil, newParseError("-", "malformed typed list: missing type after '-'")
			}
			typeName, ok := asSymbol(items[i+1])
			if !ok {
				return nil, newParseError("-", "malformed typed list: type must be a symbol")
			}
			for _, name := range pending {
				result = append(result, model.Param{Name: name, Type: typeName})
			}
			pending = nil
			i += 2
			continue
		}
		pending = append(pending, sym)
		i++
	}

	for _, name := range pending {
		result = append(result, model.Param{Name: name, Type: model.RootType})
	}

	return result, nil
}
