/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package validator replays a plan against a task step by step, producing
// an execution trace and a first-failure report (inapplicable action, or
// goal unmet at the end) rather than raising an exception.
package validator

import (
	"fmt"
	"strings"

	"github.com/stripslab/planner/internal/model"
)

// StepRecord is one entry in the execution trace: the state after the
// step's action fires (step 0 holds the initial state, Action empty), and
// the action's canonical name.
type StepRecord struct {
	Step   int
	Action string
	State  []model.Atom
}

// Result is the outcome of validating one plan against one task.
type Result struct {
	Valid        bool
	ErrorStep    int
	ErrorMessage string
	Trace        []StepRecord
	FinalState   []model.Atom
}

// ValidatePlan simulates plan against task from the initial state. It
// resolves each plan entry by exact canonical-name match first, falling
// back to a schema-name-prefix match when no grounded action carries that
// exact name. An unresolved or inapplicable action fails validation at
// that step's index; an empty or unfinished plan that leaves the goal
// unmet fails at index len(plan).
func ValidatePlan(task *model.Task, plan []string) Result {
	trace := make([]StepRecord, 0, len(plan)+1)
	state := task.Initial
	trace = append(trace, StepRecord{Step: 0, State: state.Atoms()})

	for i, name := range plan {
		action, ok := resolveAction(task, name)
		if !ok {
			return Result{
				Valid:        false,
				ErrorStep:    i,
				ErrorMessage: fmt.Sprintf("action %q is not a known grounded action", name),
				Trace:        trace,
			}
		}
		if !action.Applicable(state) {
			return Result{
				Valid:        false,
				ErrorStep:    i,
				ErrorMessage: fmt.Sprintf("action %s not applicable at step %d", action.Name, i),
				Trace:        trace,
			}
		}
		state = action.Apply(state)
		trace = append(trace, StepRecord{Step: i + 1, Action: action.Name, State: state.Atoms()})
	}

	if !task.IsGoalReached(state) {
		missing := missingGoalAtoms(task, state)
		return Result{
			Valid:        false,
			ErrorStep:    len(plan),
			ErrorMessage: fmt.Sprintf("goal not satisfied: missing %s", strings.Join(missing, ", ")),
			Trace:        trace,
			FinalState:   state.Atoms(),
		}
	}

	return Result{Valid: true, Trace: trace, FinalState: state.Atoms()}
}

// resolveAction finds the grounded action named by name. Exact matches on
// the canonical name win; otherwise the first action whose schema name is
// a prefix match (name == schema, or name begins with "schema(") is
// accepted as a fallback.
func resolveAction(task *model.Task, name string) (model.Action, bool) {
	for _, a := range task.Actions {
		if a.Name == name {
			return a, true
		}
	}
	for _, a := range task.Actions {
		if a.SchemaName == name || strings.HasPrefix(name, a.SchemaName+"(") {
			return a, true
		}
	}
	return model.Action{}, false
}

func missingGoalAtoms(task *model.Task, state model.State) []string {
	var missing []string
	for _, a := range task.Goal.Slice() {
		if !state.Contains(a) {
			missing = append(missing, string(a))
		}
	}
	return missing
}
