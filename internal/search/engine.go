/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package search

import (
	"fmt"
	"time"

	"github.com/stripslab/planner/internal/model"
)

// node is an arena-allocated search node. Children reference their parent
// by index into the engine's arena rather than by pointer, which keeps
// parent back-chains simple index walks with no ownership cycles.
type node struct {
	state    model.State
	action   *model.Action // nil at the root
	parentID int           // -1 at the root
	g        int
	h        float64
	depth    int
}

func (n *node) fCost() float64 {
	return float64(n.g) + n.h
}

// ProgressFunc receives a snapshot after each node expansion: the total
// number of nodes expanded so far and the current frontier size. It is
// called synchronously from the search loop, so implementations must
// return quickly (e.g. publish to a websocket broadcaster and return).
type ProgressFunc func(nodesExpanded, frontierSize int)

// engine holds the bookkeeping every search algorithm shares: the node
// arena, tree-visualization lists, expansion/generation counters, and a
// deadline for the timeout probe checked at the top of each expansion.
type engine struct {
	task       *model.Task
	deadline   time.Time
	arena      []node
	treeNodes  []TreeNode
	treeEdges  []TreeEdge
	recorded   map[int]bool
	expanded   int
	generated  int
	onProgress ProgressFunc
}

func newEngine(task *model.Task, timeout time.Duration) *engine {
	return &engine{
		task:     task,
		deadline: time.Now().Add(timeout),
		recorded: make(map[int]bool),
	}
}

func (e *engine) timedOut() bool {
	return time.Now().After(e.deadline)
}

// reportProgress invokes onProgress, if set, with the current expansion
// count and frontier size. A no-op when no callback was supplied.
func (e *engine) reportProgress(frontierSize int) {
	if e.onProgress != nil {
		e.onProgress(e.expanded, frontierSize)
	}
}

// newNode allocates a node in the arena and returns its id.
func (e *engine) newNode(state model.State, action *model.Action, parentID int, g int, h float64) int {
	depth := 0
	if parentID >= 0 {
		depth = e.arena[parentID].depth + 1
	}
	e.arena = append(e.arena, node{
		state:    state,
		action:   action,
		parentID: parentID,
		g:        g,
		h:        h,
		depth:    depth,
	})
	return len(e.arena) - 1
}

// recordNodeOnce appends id to the tree payload the first time it is seen.
func (e *engine) recordNodeOnce(id int, isGoal bool) {
	if e.recorded[id] {
		return
	}
	e.recorded[id] = true
	n := &e.arena[id]

	e.treeNodes = append(e.treeNodes, TreeNode{
		ID:         fmt.Sprintf("n%d", id+1),
		StateHash:  n.state.Hash(),
		Heuristic:  serializeH(n.h),
		Depth:      n.depth,
		GCost:      n.g,
		IsGoal:     isGoal,
		IsExpanded: false,
	})

	if n.parentID >= 0 {
		action := ""
		if n.action != nil {
			action = n.action.Name
		}
		e.treeEdges = append(e.treeEdges, TreeEdge{
			Source: fmt.Sprintf("n%d", n.parentID+1),
			Target: fmt.Sprintf("n%d", id+1),
			Action: action,
		})
	}
}

// markExpanded flips the is_expanded flag for an already-recorded node.
func (e *engine) markExpanded(id int) {
	target := fmt.Sprintf("n%d", id+1)
	for i := range e.treeNodes {
		if e.treeNodes[i].ID == target {
			e.treeNodes[i].IsExpanded = true
			return
		}
	}
}

func (e *engine) tree() Tree {
	return Tree{Nodes: e.treeNodes, Edges: e.treeEdges}
}

// actionSequence walks the parent chain from id back to the root,
// collecting inbound actions, then reverses them into plan order.
func (e *engine) actionSequence(id int) []model.Action {
	var actions []model.Action
	for cur := id; cur >= 0; cur = e.arena[cur].parentID {
		n := &e.arena[cur]
		if n.action != nil {
			actions = append(actions, *n.action)
		}
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
