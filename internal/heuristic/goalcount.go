/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package heuristic

import "github.com/stripslab/planner/internal/model"

// GoalCount counts the number of unsatisfied goal atoms. Cheap, and not
// admissible — it can overestimate the true distance to the goal.
type GoalCount struct {
	task  *model.Task
	cache map[string]float64
}

func NewGoalCount(task *model.Task) *GoalCount {
	return &GoalCount{task: task, cache: make(map[string]float64)}
}

func (h *GoalCount) Calculate(s model.State) float64 {
	if v, ok := h.cache[s.Key()]; ok {
		return v
	}
	var unsatisfied float64
	for g := range h.task.Goal {
		if !s.Contains(g) {
			unsatisfied++
		}
	}
	h.cache[s.Key()] = unsatisfied
	return unsatisfied
}
