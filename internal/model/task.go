/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

// Task is a fully grounded planning task: the object universe, initial
// state, goal, and every grounded Action produced by the grounder. Once
// built it is treated as read-only for the duration of search, heuristic
// evaluation, and validation.
type Task struct {
	Name       string
	DomainName string
	Objects    map[string]string
	Initial    State
	Goal       AtomSet
	Actions    []Action
}

// ApplicableActions returns, in grounder order, every action whose
// preconditions are satisfied in s.
func (t *Task) ApplicableActions(s State) []Action {
	out := make([]Action, 0, len(t.Actions))
	for _, a := range t.Actions {
		if a.Applicable(s) {
			out = append(out, a)
		}
	}
	return out
}

// IsGoalReached reports whether s satisfies the task's goal conjunction.
func (t *Task) IsGoalReached(s State) bool {
	return s.Satisfies(t.Goal)
}
