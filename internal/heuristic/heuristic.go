/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package heuristic implements delete-relaxation heuristics (goal-count,
// h-add, h-max) evaluated on demand per state and memoized per task.
package heuristic

import "github.com/stripslab/planner/internal/model"

// Heuristic estimates the cost from a state to the task's goal. A
// heuristic instance is built once per task; it must never be reused
// across tasks, since atom identity is task-specific.
type Heuristic interface {
	Calculate(s model.State) float64
}
