/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripslab/planner/internal/heuristic"
	"github.com/stripslab/planner/internal/model"
)

// buildPickUpTask mirrors spec.md scenario S2: a single applicable action
// directly reaches the goal.
func buildPickUpTask(t *testing.T) *model.Task {
	t.Helper()
	schema := model.ActionSchema{
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
	action, err := schema.Ground(map[string]string{"x": "a"})
	require.NoError(t, err)

	return &model.Task{
		Name:    "pickup",
		Initial: model.NewState([]model.Atom{"clear(a)", "on-table(a)", "hand-empty"}),
		Goal:    model.NewAtomSet([]model.Atom{"holding(a)"}),
		Actions: []model.Action{action},
	}
}

// buildChainTask builds a 3-step linear chain a->b->c->goal, each action
// usable only once its predecessor has fired, with a single unique optimal
// plan — useful for asserting exact plan contents and length.
func buildChainTask(t *testing.T) *model.Task {
	t.Helper()
	mk := func(name, pre, add string) model.Action {
		a := model.Action{Name: name, SchemaName: name}
		if pre != "" {
			a.Preconditions = model.NewAtomSet([]model.Atom{model.Atom(pre)})
		} else {
			a.Preconditions = model.AtomSet{}
		}
		a.Adds = model.NewAtomSet([]model.Atom{model.Atom(add)})
		a.Dels = model.AtomSet{}
		return a
	}
	return &model.Task{
		Name:    "chain",
		Initial: model.NewState([]model.Atom{"start"}),
		Goal:    model.NewAtomSet([]model.Atom{"at-c"}),
		Actions: []model.Action{
			mk("step-a", "start", "at-a"),
			mk("step-b", "at-a", "at-b"),
			mk("step-c", "at-b", "at-c"),
		},
	}
}

// buildUnsolvableTask has no action that can ever satisfy the goal.
func buildUnsolvableTask(t *testing.T) *model.Task {
	t.Helper()
	return &model.Task{
		Name:    "stuck",
		Initial: model.NewState([]model.Atom{"start"}),
		Goal:    model.NewAtomSet([]model.Atom{"never"}),
		Actions: nil,
	}
}

func TestBFSGoalAlreadySatisfied(t *testing.T) {
	task := buildChainTask(t)
	task.Goal = model.NewAtomSet([]model.Atom{"start"})
	result := BFS(task, time.Second)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.NodesGenerated)
	assert.Empty(t, result.Plan)
}

func TestBFSSingleStepPlan(t *testing.T) {
	task := buildPickUpTask(t)
	result := BFS(task, time.Second)
	require.True(t, result.Success)
	require.Len(t, result.Plan, 1)
	assert.Equal(t, "pick-up(a)", result.Plan[0].Name)
	assert.Equal(t, 1, result.PlanLength)
}

func TestBFSChainPlanOrderAndLength(t *testing.T) {
	task := buildChainTask(t)
	result := BFS(task, time.Second)
	require.True(t, result.Success)
	require.Len(t, result.Plan, 3)
	assert.Equal(t, []string{"step-a", "step-b", "step-c"}, planNames(result.Plan))
}

func TestBFSNoSolution(t *testing.T) {
	task := buildUnsolvableTask(t)
	result := BFS(task, time.Second)
	assert.False(t, result.Success)
	assert.Equal(t, "No solution exists", result.ErrorMessage)
}

func TestBFSTimeout(t *testing.T) {
	task := buildUnsolvableTask(t)
	result := BFS(task, time.Nanosecond)
	assert.False(t, result.Success)
	assert.Equal(t, "Search timeout", result.ErrorMessage)
}

func TestAStarFindsOptimalChainPlan(t *testing.T) {
	task := buildChainTask(t)
	result := AStar(task, time.Second, heuristic.NewHMax(task))
	require.True(t, result.Success)
	assert.Equal(t, []string{"step-a", "step-b", "step-c"}, planNames(result.Plan))
	assert.Equal(t, 0.0, result.FinalH)
}

func TestAStarGoalAlreadySatisfied(t *testing.T) {
	task := buildChainTask(t)
	task.Goal = model.NewAtomSet([]model.Atom{"start"})
	result := AStar(task, time.Second, heuristic.NewHMax(task))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.NodesGenerated)
}

func TestAStarNoSolution(t *testing.T) {
	task := buildUnsolvableTask(t)
	result := AStar(task, time.Second, heuristic.NewGoalCount(task))
	assert.False(t, result.Success)
	assert.Equal(t, "No solution exists", result.ErrorMessage)
}

func TestGreedyFindsAPlan(t *testing.T) {
	task := buildChainTask(t)
	result := Greedy(task, time.Second, heuristic.NewGoalCount(task))
	require.True(t, result.Success)
	assert.Equal(t, []string{"step-a", "step-b", "step-c"}, planNames(result.Plan))
}

func TestGreedySingleStepPlan(t *testing.T) {
	task := buildPickUpTask(t)
	result := Greedy(task, time.Second, heuristic.NewHAdd(task))
	require.True(t, result.Success)
	require.Len(t, result.Plan, 1)
	assert.Equal(t, "pick-up(a)", result.Plan[0].Name)
}

func TestBFSInvokesProgressCallbackPerExpansion(t *testing.T) {
	task := buildChainTask(t)
	var calls []int
	result := BFS(task, time.Second, func(nodesExpanded, frontierSize int) {
		calls = append(calls, nodesExpanded)
	})
	require.True(t, result.Success)
	require.NotEmpty(t, calls)
	assert.Equal(t, result.NodesExpanded, calls[len(calls)-1])
	for i, c := range calls {
		assert.Equal(t, i+1, c)
	}
}

func TestAStarInvokesProgressCallbackPerExpansion(t *testing.T) {
	task := buildChainTask(t)
	var calls int
	result := AStar(task, time.Second, heuristic.NewHMax(task), func(nodesExpanded, frontierSize int) {
		calls++
	})
	require.True(t, result.Success)
	assert.Equal(t, result.NodesExpanded, calls)
}

func TestGreedyInvokesProgressCallbackPerExpansion(t *testing.T) {
	task := buildChainTask(t)
	var calls int
	result := Greedy(task, time.Second, heuristic.NewGoalCount(task), func(nodesExpanded, frontierSize int) {
		calls++
	})
	require.True(t, result.Success)
	assert.Equal(t, result.NodesExpanded, calls)
}

func TestValidatedPlanIsApplicableEndToEnd(t *testing.T) {
	// Property: any plan returned by search is a sequence of actions that,
	// applied in order from the initial state, reaches the goal.
	task := buildChainTask(t)
	result := BFS(task, time.Second)
	require.True(t, result.Success)

	state := task.Initial
	for _, action := range result.Plan {
		require.True(t, action.Applicable(state))
		state = action.Apply(state)
	}
	assert.True(t, task.IsGoalReached(state))
}

func TestDispatchReturnsShortestSuccessfulPlan(t *testing.T) {
	task := buildChainTask(t)
	pairs := []Pair{
		{Algorithm: AlgorithmBFS},
		{Algorithm: AlgorithmAStar, Heuristic: HeuristicMax},
		{Algorithm: AlgorithmGreedy, Heuristic: HeuristicAdd},
	}
	results, best, found := Dispatch(context.Background(), task, time.Second, pairs)
	require.True(t, found)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, best.PlanLength)
	for _, r := range results {
		assert.True(t, r.Success)
	}
}

func TestDispatchNoSolutionAmongAnyPair(t *testing.T) {
	task := buildUnsolvableTask(t)
	pairs := []Pair{{Algorithm: AlgorithmBFS}}
	_, _, found := Dispatch(context.Background(), task, time.Second, pairs)
	assert.False(t, found)
}

func planNames(plan []model.Action) []string {
	names := make([]string, len(plan))
	for i, a := range plan {
		names[i] = a.SchemaName
	}
	return names
}
