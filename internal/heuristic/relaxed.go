/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package heuristic

import (
	"math"

	"github.com/stripslab/planner/internal/model"
)

const maxRelaxationRounds = 1000

// computeRelaxedCosts runs forward propagation over the delete-relaxed
// problem (delete effects ignored), returning the minimum cost at which
// each reachable atom first becomes true. Atoms absent from the returned
// map are unreachable in the relaxation. An action with no preconditions
// costs 1; otherwise cost = 1 + max(cost[p] for p in preconditions),
// i.e. preconditions combine by max regardless of whether the caller is
// h-add or h-max — the two heuristics differ only in how they aggregate
// across goal atoms afterward.
func computeRelaxedCosts(task *model.Task, state model.State) map[model.Atom]float64 {
	costs := make(map[model.Atom]float64, len(task.Actions))
	for _, a := range state.Atoms() {
		costs[a] = 0
	}

	changed := true
	for round := 0; changed && round < maxRelaxationRounds; round++ {
		changed = false
		for _, action := range task.Actions {
			applicable := true
			maxPre := 0.0
			for pre := range action.Preconditions {
				c, ok := costs[pre]
				if !ok {
					applicable = false
					break
				}
				if c > maxPre {
					maxPre = c
				}
			}
			if !applicable {
				continue
			}
			actionCost := 1.0 + maxPre

			for add := range action.Adds {
				if cur, ok := costs[add]; !ok || actionCost < cur {
					costs[add] = actionCost
					changed = true
				}
			}
		}
	}

	return costs
}

// inf is the sentinel used internally for an unreachable goal atom; callers
// serializing this value downstream must substitute a large finite number.
var inf = math.Inf(1)
