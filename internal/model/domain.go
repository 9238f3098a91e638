/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

// RootType is the default type given to names with no explicit "- type"
// binding in a PDDL typed list, and the implicit root of the type tree.
const RootType = "object"

// Domain is a parsed PDDL domain: its type hierarchy, predicate
// signatures, typed constants, and action schemas.
type Domain struct {
	Name         string
	Requirements []string
	Types        map[string]string   // type -> parent
	Predicates   map[string][]string // predicate name -> parameter types
	Constants    map[string]string   // constant name -> type
	Schemas      map[string]ActionSchema
	SchemaOrder  []string // declaration order, preserved for grounding/tie-break order
}

// NewDomain returns an empty Domain ready for the parser to populate.
func NewDomain(name string) *Domain {
	return &Domain{
		Name:       name,
		Types:      make(map[string]string),
		Predicates: make(map[string][]string),
		Constants:  make(map[string]string),
		Schemas:    make(map[string]ActionSchema),
	}
}

// TypeHierarchy returns the chain of types from t up to (and including) the
// root, following declared parents. A cycle in the declared hierarchy
// terminates the walk rather than looping forever.
func (d *Domain) TypeHierarchy(t string) []string {
	hierarchy := []string{t}
	seen := map[string]bool{t: true}
	current := t
	for {
		parent, ok := d.Types[current]
		if !ok || seen[parent] {
			return hierarchy
		}
		hierarchy = append(hierarchy, parent)
		seen[parent] = true
		current = parent
	}
}

// IsSubtype reports whether super appears in sub's type hierarchy
// (reflexive: every type is a subtype of itself).
func (d *Domain) IsSubtype(sub, super string) bool {
	for _, t := range d.TypeHierarchy(sub) {
		if t == super {
			return true
		}
	}
	return false
}

// ObjectsOfType returns every name in objects whose declared type is
// paramType or a subtype of it, plus any domain constants of that type.
func (d *Domain) ObjectsOfType(objects map[string]string, paramType string) []string {
	var out []string
	for name, t := range objects {
		if t == paramType || d.IsSubtype(t, paramType) {
			out = append(out, name)
		}
	}
	for name, t := range d.Constants {
		if t == paramType || d.IsSubtype(t, paramType) {
			out = append(out, name)
		}
	}
	return out
}
