/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stripslab/planner/internal/heuristic"
	"github.com/stripslab/planner/internal/model"
)

// Algorithm names one of the search strategies dispatched in parallel.
type Algorithm string

const (
	AlgorithmBFS    Algorithm = "bfs"
	AlgorithmAStar  Algorithm = "astar"
	AlgorithmGreedy Algorithm = "greedy"
)

// HeuristicName selects which heuristic.Heuristic backs an A*/greedy run.
// Ignored for BFS.
type HeuristicName string

const (
	HeuristicGoalCount HeuristicName = "goal_count"
	HeuristicAdd       HeuristicName = "h_add"
	HeuristicMax       HeuristicName = "h_max"
)

// Pair names one (algorithm, heuristic) combination to race.
type Pair struct {
	Algorithm Algorithm
	Heuristic HeuristicName
}

func buildHeuristic(task *model.Task, name HeuristicName) heuristic.Heuristic {
	switch name {
	case HeuristicAdd:
		return heuristic.NewHAdd(task)
	case HeuristicMax:
		return heuristic.NewHMax(task)
	default:
		return heuristic.NewGoalCount(task)
	}
}

func runPair(task *model.Task, timeout time.Duration, p Pair) Result {
	switch p.Algorithm {
	case AlgorithmBFS:
		return BFS(task, timeout)
	case AlgorithmGreedy:
		return Greedy(task, timeout, buildHeuristic(task, p.Heuristic))
	default:
		return AStar(task, timeout, buildHeuristic(task, p.Heuristic))
	}
}

// Dispatch races every pair in pairs against the same task and timeout on
// its own goroutine, each polling the same deadline independently via its
// own engine. It waits for all of them to finish (there is no early
// cancellation — a losing goroutine's work is simply discarded) and
// returns the shortest successful plan. Results are stored by pair index,
// not by completion order, so among equal-length plans the one from the
// earliest pair in pairs is kept. The ctx argument is not consulted by
// the workers.
func Dispatch(ctx context.Context, task *model.Task, timeout time.Duration, pairs []Pair) ([]Result, Result, bool) {
	results := make([]Result, len(pairs))

	g, _ := errgroup.WithContext(ctx)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			results[i] = runPair(task, timeout, p)
			return nil
		})
	}
	_ = g.Wait()

	var (
		best    Result
		found   bool
		bestLen int
	)

	for _, r := range results {
		if !r.Success {
			continue
		}
		if !found || r.PlanLength < bestLen {
			best = r
			bestLen = r.PlanLength
			found = true
		}
	}

	return results, best, found
}
