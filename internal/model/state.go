/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

import (
	"hash/fnv"
	"sort"
	"strings"
)

// AtomSet is an unordered collection of atoms used for preconditions,
// add-effects, delete-effects, and goals.
type AtomSet map[Atom]struct{}

// NewAtomSet builds an AtomSet from a slice, deduplicating as it goes.
func NewAtomSet(atoms []Atom) AtomSet {
	s := make(AtomSet, len(atoms))
	for _, a := range atoms {
		s[a] = struct{}{}
	}
	return s
}

// Slice returns the atoms in sorted order, for stable serialization.
func (s AtomSet) Slice() []Atom {
	out := make([]Atom, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func (s AtomSet) Has(a Atom) bool {
	_, ok := s[a]
	return ok
}

// State is an immutable, hashable set of atoms. Equality is set equality;
// hashing and the canonical Key are independent of insertion order. States
// are never mutated in place — Apply returns a new State.
type State struct {
	atoms AtomSet
}

// NewState builds a canonical State from a slice of atoms.
func NewState(atoms []Atom) State {
	return State{atoms: NewAtomSet(atoms)}
}

// EmptyState is the State containing no atoms.
var EmptyState = State{atoms: AtomSet{}}

func (s State) Contains(a Atom) bool {
	return s.atoms.Has(a)
}

// Satisfies reports whether condition is a subset of this state's atoms.
func (s State) Satisfies(condition AtomSet) bool {
	for a := range condition {
		if !s.atoms.Has(a) {
			return false
		}
	}
	return true
}

// Apply produces the successor state (s ∪ add) \ del without mutating s.
func (s State) Apply(add, del AtomSet) State {
	next := make(AtomSet, len(s.atoms)+len(add))
	for a := range s.atoms {
		if !del.Has(a) {
			next[a] = struct{}{}
		}
	}
	for a := range add {
		if !del.Has(a) {
			next[a] = struct{}{}
		}
	}
	return State{atoms: next}
}

// Atoms returns the atoms in this state, sorted for stable output.
func (s State) Atoms() []Atom {
	return s.atoms.Slice()
}

func (s State) Len() int {
	return len(s.atoms)
}

// Key is the canonical, order-independent identity of this state. Two
// states with the same atoms always produce the same Key, so it is safe to
// use as a map key for visited/closed/frontier bookkeeping.
func (s State) Key() string {
	preds := s.atoms.Slice()
	return strings.Join(preds, "\x1f")
}

// Equal reports whether two states contain exactly the same atoms.
func (s State) Equal(other State) bool {
	return s.Key() == other.Key()
}

// Hash returns a commutative (order-independent) hash of the state's atoms,
// suitable for the search-tree visualization payload's state_hash field.
// It is not collision-free; Key is the authoritative identity.
func (s State) Hash() uint64 {
	var h uint64
	for a := range s.atoms {
		f := fnv.New64a()
		_, _ = f.Write([]byte(a))
		h ^= f.Sum64()
	}
	return h
}
