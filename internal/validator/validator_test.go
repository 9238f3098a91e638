/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripslab/planner/internal/model"
)

// buildPickUpTask mirrors spec.md scenario S2.
func buildPickUpTask(t *testing.T) *model.Task {
	t.Helper()
	pickUp := model.ActionSchema{
		Name:       "pick-up",
		Parameters: []model.Param{{Name: "x", Type: "block"}},
		Preconditions: []model.Literal{
			{Pred: "clear", Args: []string{"x"}},
			{Pred: "on-table", Args: []string{"x"}},
			{Pred: "hand-empty"},
		},
		AddEffects: []model.Literal{{Pred: "holding", Args: []string{"x"}}},
		DelEffects: []model.Literal{
			{Pred: "on-table", Args: []string{"x"}},
			{Pred: "clear", Args: []string{"x"}},
			{Pred: "hand-empty"},
		},
	}
	putDown := model.ActionSchema{
		Name:          "put-down",
		Parameters:    []model.Param{{Name: "x", Type: "block"}},
		Preconditions: []model.Literal{{Pred: "holding", Args: []string{"x"}}},
		AddEffects: []model.Literal{
			{Pred: "on-table", Args: []string{"x"}},
			{Pred: "clear", Args: []string{"x"}},
			{Pred: "hand-empty"},
		},
		DelEffects: []model.Literal{{Pred: "holding", Args: []string{"x"}}},
	}

	pickUpA, err := pickUp.Ground(map[string]string{"x": "a"})
	require.NoError(t, err)
	putDownA, err := putDown.Ground(map[string]string{"x": "a"})
	require.NoError(t, err)

	return &model.Task{
		Name:    "pickup",
		Initial: model.NewState([]model.Atom{"clear(a)", "on-table(a)", "hand-empty"}),
		Goal:    model.NewAtomSet([]model.Atom{"holding(a)"}),
		Actions: []model.Action{pickUpA, putDownA},
	}
}

func TestValidatePlanSuccess(t *testing.T) {
	task := buildPickUpTask(t)
	result := ValidatePlan(task, []string{"pick-up(a)"})
	assert.True(t, result.Valid)
	require.Len(t, result.Trace, 2)
	assert.Equal(t, 0, result.Trace[0].Step)
	assert.Equal(t, "pick-up(a)", result.Trace[1].Action)
}

// S5: validator inapplicability.
func TestValidatePlanInapplicableAction(t *testing.T) {
	task := buildPickUpTask(t)
	result := ValidatePlan(task, []string{"put-down(a)"})
	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.ErrorStep)
	assert.Contains(t, result.ErrorMessage, "put-down(a)")
}

// S6: validator missing goal.
func TestValidatePlanMissingGoal(t *testing.T) {
	task := buildPickUpTask(t)
	result := ValidatePlan(task, []string{})
	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.ErrorStep)
	assert.Contains(t, result.ErrorMessage, "holding(a)")
}

func TestValidatePlanUnknownAction(t *testing.T) {
	task := buildPickUpTask(t)
	result := ValidatePlan(task, []string{"fly(a)"})
	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.ErrorStep)
}

func TestValidatePlanSchemaPrefixFallback(t *testing.T) {
	task := buildPickUpTask(t)
	// "pick-up(b)" names no grounded action, so it resolves through the
	// schema-prefix fallback to the first pick-up action, pick-up(a).
	result := ValidatePlan(task, []string{"pick-up(b)"})
	assert.True(t, result.Valid)
}

// Property 8: the execution trace, replayed step by step, reproduces the
// final state it reports.
func TestExecutionTraceRoundTrips(t *testing.T) {
	task := buildPickUpTask(t)
	result := ValidatePlan(task, []string{"pick-up(a)"})
	require.True(t, result.Valid)

	state := task.Initial
	for _, step := range result.Trace[1:] {
		action, ok := resolveAction(task, step.Action)
		require.True(t, ok)
		require.True(t, action.Applicable(state))
		state = action.Apply(state)
	}
	assert.Equal(t, result.FinalState, state.Atoms())
}

func TestParsePlanTextStripsCommentsAndBlankLines(t *testing.T) {
	text := "pick-up(a) ; grab it\n\n; full line comment\nput-down(a)\n"
	names := ParsePlanText(text)
	assert.Equal(t, []string{"pick-up(a)", "put-down(a)"}, names)
}
