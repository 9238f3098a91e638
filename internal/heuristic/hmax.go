/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package heuristic

import "github.com/stripslab/planner/internal/model"

// HMax is the max delete-relaxation heuristic:
// h_max(s) = max relaxed cost among the goal atoms. It never overestimates
// the true cost (it is admissible, and consistent under unit costs), so
// A*+h-max returns optimal plans.
type HMax struct {
	task  *model.Task
	cache map[string]float64
}

func NewHMax(task *model.Task) *HMax {
	return &HMax{task: task, cache: make(map[string]float64)}
}

func (h *HMax) Calculate(s model.State) float64 {
	if v, ok := h.cache[s.Key()]; ok {
		return v
	}

	costs := computeRelaxedCosts(h.task, s)

	maxCost := 0.0
	unreachable := false
	for g := range h.task.Goal {
		c, ok := costs[g]
		if !ok {
			unreachable = true
			break
		}
		if c > maxCost {
			maxCost = c
		}
	}
	if unreachable {
		maxCost = inf
	}

	h.cache[s.Key()] = maxCost
	return maxCost
}
