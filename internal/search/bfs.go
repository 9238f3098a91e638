/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package search

import (
	"time"

	"github.com/stripslab/planner/internal/model"
)

// BFS performs breadth-first search over propositional states. It is
// complete and, since all actions have unit cost, optimal. A node is
// checked against the goal at generation time (not at expansion), so BFS
// returns as soon as any generated child satisfies the goal. An optional
// ProgressFunc is invoked once per expansion for live progress streaming.
func BFS(task *model.Task, timeout time.Duration, progress ...ProgressFunc) Result {
	start := time.Now()
	e := newEngine(task, timeout)
	if len(progress) > 0 {
		e.onProgress = progress[0]
	}

	if task.IsGoalReached(task.Initial) {
		return Result{Success: true, NodesGenerated: 1}
	}

	rootID := e.newNode(task.Initial, nil, -1, 0, 0)
	e.recordNodeOnce(rootID, false)

	frontier := []int{rootID}
	visited := map[string]bool{task.Initial.Key(): true}

	for len(frontier) > 0 {
		if e.timedOut() {
			return Result{
				Success:        false,
				ErrorMessage:   "Search timeout",
				NodesExpanded:  e.expanded,
				NodesGenerated: e.generated,
				SearchTimeMS:   elapsedMS(start),
				Tree:           e.tree(),
			}
		}

		id := frontier[0]
		frontier = frontier[1:]
		e.expanded++
		e.markExpanded(id)
		e.reportProgress(len(frontier))

		parent := &e.arena[id]
		for _, action := range task.ApplicableActions(parent.state) {
			childState := action.Apply(parent.state)
			e.generated++

			if visited[childState.Key()] {
				continue
			}
			visited[childState.Key()] = true

			action := action
			childID := e.newNode(childState, &action, id, parent.g+1, 0)
			isGoal := task.IsGoalReached(childState)
			e.recordNodeOnce(childID, isGoal)

			if isGoal {
				plan := e.actionSequence(childID)
				return Result{
					Success:        true,
					Plan:           plan,
					NodesExpanded:  e.expanded,
					NodesGenerated: e.generated,
					SearchTimeMS:   elapsedMS(start),
					PlanLength:     len(plan),
					Tree:           e.tree(),
				}
			}

			frontier = append(frontier, childID)
		}
	}

	return Result{
		Success:        false,
		ErrorMessage:   "No solution exists",
		NodesExpanded:  e.expanded,
		NodesGenerated: e.generated,
		SearchTimeMS:   elapsedMS(start),
		Tree:           e.tree(),
	}
}
