/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package heuristic

import "github.com/stripslab/planner/internal/model"

// HAdd is the additive delete-relaxation heuristic:
// h_add(s) = sum of relaxed costs to achieve each goal atom. It is not
// admissible in general (it double-counts shared subgoals), so A*+h-add
// is satisficing rather than guaranteed optimal — a deliberate trade
// accepting sub-optimality for speed.
type HAdd struct {
	task  *model.Task
	cache map[string]float64
}

func NewHAdd(task *model.Task) *HAdd {
	return &HAdd{task: task, cache: make(map[string]float64)}
}

func (h *HAdd) Calculate(s model.State) float64 {
	if v, ok := h.cache[s.Key()]; ok {
		return v
	}

	costs := computeRelaxedCosts(h.task, s)

	total := 0.0
	for g := range h.task.Goal {
		c, ok := costs[g]
		if !ok {
			total = inf
			break
		}
		total += c
	}

	h.cache[s.Key()] = total
	return total
}
