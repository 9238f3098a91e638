/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

import (
	"fmt"
	"strings"
)

// Param is a single typed parameter of a lifted action schema: (var, type).
type Param struct {
	Name string
	Type string
}

// Literal is a predicate name paired with a tuple of symbols, each of which
// is either a schema parameter variable or a constant. Argument order is
// significant.
type Literal struct {
	Pred string
	Args []string
}

// ActionSchema is a lifted (parameterized) STRIPS action.
type ActionSchema struct {
	Name          string
	Parameters    []Param
	Preconditions []Literal
	AddEffects    []Literal
	DelEffects    []Literal
}

// Ground substitutes binding (parameter variable -> object/constant name)
// throughout the schema's literals and returns the resulting grounded
// Action. binding must supply a value for every schema parameter.
func (s ActionSchema) Ground(binding map[string]string) (Action, error) {
	args := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		v, ok := binding[p.Name]
		if !ok {
			return Action{}, fmt.Errorf("grounding %s: missing binding for parameter %s", s.Name, p.Name)
		}
		args[i] = v
	}

	groundLiterals := func(lits []Literal) AtomSet {
		out := make(AtomSet, len(lits))
		for _, l := range lits {
			groundArgs := make([]string, len(l.Args))
			for i, a := range l.Args {
				if v, ok := binding[a]; ok {
					groundArgs[i] = v
				} else {
					groundArgs[i] = a
				}
			}
			out[FormatAtom(l.Pred, groundArgs)] = struct{}{}
		}
		return out
	}

	return Action{
		Name:          FormatActionName(s.Name, args),
		SchemaName:    s.Name,
		Preconditions: groundLiterals(s.Preconditions),
		Adds:          groundLiterals(s.AddEffects),
		Dels:          groundLiterals(s.DelEffects),
	}, nil
}

// Action is a grounded, concrete STRIPS action. It is applicable in a state
// S iff Preconditions ⊆ S; applying it yields (S ∪ Adds) \ Dels.
type Action struct {
	Name          string
	SchemaName    string
	Preconditions AtomSet
	Adds          AtomSet
	Dels          AtomSet
}

func (a Action) Applicable(s State) bool {
	return s.Satisfies(a.Preconditions)
}

func (a Action) Apply(s State) State {
	return s.Apply(a.Adds, a.Dels)
}

// Key is a canonical identity string derived from name and all three atom
// sets, mirroring the name+sets equality/hash contract in spec.md §3.
func (a Action) Key() string {
	var b strings.Builder
	b.WriteString(a.Name)
	b.WriteByte('|')
	b.WriteString(a.SchemaName)
	b.WriteByte('|')
	b.WriteString(strings.Join(a.Preconditions.Slice(), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(a.Adds.Slice(), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(a.Dels.Slice(), ","))
	return b.String()
}
