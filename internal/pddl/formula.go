/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "github.com/stripslab/planner/internal/model"

// parseFormula flattens a precondition/goal formula into positive literals.
// "(and F...)" recurses into each subform; "(not ...)" and "(= ...)" are
// silently dropped (negative preconditions and equality are out of scope);
// anything else is a single positive literal.
func parseFormula(e sexpr) []model.Literal {
	l, ok := asList(e)
	if !ok || len(l) == 0 {
		return nil
	}

	op, _ := asSymbol(l[0])
	switch op {
	case "and":
		var out []model.Literal
		for _, sub := range l[1:] {
			out = append(out, parseFormula(sub)...)
		}
		return out
	case "not", "=":
		return nil
	default:
		return []model.Literal{literalFromList(l)}
	}
}

// parseEffect flattens an effect formula into add-effects and del-effects.
// "(and F...)" recurses; "(not (pred ...))" contributes a delete effect;
// anything else is a positive add effect. "(= ...)" is dropped.
func parseEffect(e sexpr) (add, del []model.Literal) {
	l, ok := asList(e)
	if !ok || len(l) == 0 {
		return nil, nil
	}

	op, _ := asSymbol(l[0])
	switch op {
	case "and":
		for _, sub := range l[1:] {
			a, d := parseEffect(sub)
			add = append(add, a...)
			del = append(del, d...)
		}
		return add, del
	case "not":
		if len(l) < 2 {
			return nil, nil
		}
		inner, ok := asList(l[1])
		if !ok || len(inner) == 0 {
			return nil, nil
		}
		return nil, []model.Literal{literalFromList(inner)}
	case "=":
		return nil, nil
	default:
		return []model.Literal{literalFromList(l)}, nil
	}
}

// literalFromList converts a list node "(pred a b ...)" into a Literal.
func literalFromList(l []sexpr) model.Literal {
	name, _ := asSymbol(l[0])
	args := make([]string, 0, len(l)-1)
	for _, a := range l[1:] {
		if sym, ok := asSymbol(a); ok {
			args = append(args, sym)
		}
	}
	return model.Literal{Pred: name, Args: args}
}
