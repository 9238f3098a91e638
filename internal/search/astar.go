/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package search

import (
	"container/heap"
	"time"

	"github.com/stripslab/planner/internal/heuristic"
	"github.com/stripslab/planner/internal/model"
)

// AStar performs A* search keyed by (f, id) with id as tie-breaker
// (FIFO within equal f). With a consistent heuristic (h-max) and unit
// costs, returned plans are optimal; with an inadmissible heuristic
// (h-add, goal-count) the search remains complete but not guaranteed
// optimal. An optional ProgressFunc is invoked once per expansion for live
// progress streaming.
func AStar(task *model.Task, timeout time.Duration, h heuristic.Heuristic, progress ...ProgressFunc) Result {
	start := time.Now()
	e := newEngine(task, timeout)
	if len(progress) > 0 {
		e.onProgress = progress[0]
	}

	if task.IsGoalReached(task.Initial) {
		return Result{Success: true, NodesGenerated: 1}
	}

	initialH := h.Calculate(task.Initial)
	rootID := e.newNode(task.Initial, nil, -1, 0, initialH)
	e.recordNodeOnce(rootID, false)

	pq := &priorityQueue{{key: e.arena[rootID].fCost(), id: rootID}}
	heap.Init(pq)

	frontierG := map[string]int{task.Initial.Key(): 0}
	closed := map[string]bool{}

	for pq.Len() > 0 {
		if e.timedOut() {
			return Result{
				Success:        false,
				ErrorMessage:   "Search timeout",
				NodesExpanded:  e.expanded,
				NodesGenerated: e.generated,
				SearchTimeMS:   elapsedMS(start),
				InitialH:       serializeH(initialH),
				Tree:           e.tree(),
			}
		}

		item := heap.Pop(pq).(pqItem)
		n := &e.arena[item.id]

		if closed[n.state.Key()] {
			continue // stale duplicate
		}
		closed[n.state.Key()] = true
		delete(frontierG, n.state.Key())
		e.expanded++
		e.markExpanded(item.id)
		e.reportProgress(pq.Len())

		if task.IsGoalReached(n.state) {
			plan := e.actionSequence(item.id)
			return Result{
				Success:        true,
				Plan:           plan,
				NodesExpanded:  e.expanded,
				NodesGenerated: e.generated,
				SearchTimeMS:   elapsedMS(start),
				PlanLength:     len(plan),
				InitialH:       serializeH(initialH),
				FinalH:         serializeH(n.h),
				Tree:           e.tree(),
			}
		}

		for _, action := range task.ApplicableActions(n.state) {
			childState := action.Apply(n.state)
			e.generated++

			if closed[childState.Key()] {
				continue
			}
			newG := n.g + 1
			if g, ok := frontierG[childState.Key()]; ok && g <= newG {
				continue
			}

			hVal := h.Calculate(childState)
			action := action
			childID := e.newNode(childState, &action, item.id, newG, hVal)
			e.recordNodeOnce(childID, task.IsGoalReached(childState))

			frontierG[childState.Key()] = newG
			heap.Push(pq, pqItem{key: e.arena[childID].fCost(), id: childID})
		}
	}

	return Result{
		Success:        false,
		ErrorMessage:   "No solution exists",
		NodesExpanded:  e.expanded,
		NodesGenerated: e.generated,
		SearchTimeMS:   elapsedMS(start),
		InitialH:       serializeH(initialH),
		Tree:           e.tree(),
	}
}
