/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

// Problem is a parsed PDDL problem: the object universe, initial atoms,
// and goal conjunction for one planning instance.
type Problem struct {
	Name       string
	DomainName string
	Objects    map[string]string // object name -> type
	Init       AtomSet
	Goal       AtomSet
}

// NewProblem returns an empty Problem ready for the parser to populate.
func NewProblem(name string) *Problem {
	return &Problem{
		Name:    name,
		Objects: make(map[string]string),
		Init:    make(AtomSet),
		Goal:    make(AtomSet),
	}
}
