/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package search implements uninformed (BFS) and informed (A*, greedy
// best-first) forward search over propositional STRIPS states, sharing one
// node-bookkeeping and tree-recording framework across algorithms.
package search

import "github.com/stripslab/planner/internal/model"

// Sentinel is substituted for +∞ heuristic/g-cost values in any payload
// that must serialize as a finite number (tree nodes, metrics).
const Sentinel = 999999.0

// TreeNode is one recorded node in the search-tree visualization payload.
type TreeNode struct {
	ID         string `json:"id"`
	StateHash  uint64 `json:"state_hash"`
	Heuristic  float64 `json:"heuristic"`
	Depth      int     `json:"depth"`
	GCost      int     `json:"g_cost"`
	IsGoal     bool    `json:"is_goal"`
	IsExpanded bool    `json:"is_expanded"`
}

// TreeEdge is one recorded parent-to-child edge, labeled with the inbound
// action's name.
type TreeEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Action string `json:"action"`
}

// Tree is the full recorded search tree, emitted with the result even on
// timeout or failure.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
	Edges []TreeEdge `json:"edges"`
}

// Result is the outcome of one search() call.
type Result struct {
	Success       bool           `json:"success"`
	Plan          []model.Action `json:"plan"`
	NodesExpanded int            `json:"nodes_expanded"`
	NodesGenerated int           `json:"nodes_generated"`
	SearchTimeMS  float64        `json:"search_time_ms"`
	PlanLength    int            `json:"plan_length"`
	InitialH      float64        `json:"initial_h"`
	FinalH        float64        `json:"final_h"`
	Tree          Tree           `json:"search_tree"`
	ErrorMessage  string         `json:"error_message,omitempty"`
}

// serializeH substitutes Sentinel for +∞ so downstream JSON encoding never
// has to special-case an infinite heuristic value.
func serializeH(h float64) float64 {
	if h > Sentinel {
		return Sentinel
	}
	return h
}
