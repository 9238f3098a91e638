/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/stripslab/planner/internal/heuristic"
	"github.com/stripslab/planner/internal/model"
	"github.com/stripslab/planner/internal/search"
)

// BenchmarkRun is one (algorithm, heuristic) pair's repeated-run summary.
type BenchmarkRun struct {
	Algorithm          string  `json:"algorithm"`
	Heuristic          string  `json:"heuristic,omitempty"`
	Repetitions        int     `json:"repetitions"`
	MeanSearchTimeMS   float64 `json:"mean_search_time_ms"`
	StdDevSearchTimeMS float64 `json:"stddev_search_time_ms"`
	MeanNodesExpanded  float64 `json:"mean_nodes_expanded"`
	StdDevNodesExpanded float64 `json:"stddev_nodes_expanded"`
	SuccessCount       int     `json:"success_count"`
}

// runBenchmark repeats one (algorithm, heuristic) search reps times and
// summarizes search_time_ms / nodes_expanded with their sample mean and
// standard deviation. Repeating an already-deterministic search (property
// 9) mainly exercises wall-clock variance, not outcome variance.
func runBenchmark(task *model.Task, timeout time.Duration, algo search.Algorithm, hName search.HeuristicName, reps int) BenchmarkRun {
	times := make([]float64, 0, reps)
	nodes := make([]float64, 0, reps)
	successes := 0

	for i := 0; i < reps; i++ {
		var result search.Result
		switch algo {
		case search.AlgorithmBFS:
			result = search.BFS(task, timeout)
		case search.AlgorithmGreedy:
			result = search.Greedy(task, timeout, buildNamedHeuristic(task, hName))
		default:
			result = search.AStar(task, timeout, buildNamedHeuristic(task, hName))
		}

		times = append(times, result.SearchTimeMS)
		nodes = append(nodes, float64(result.NodesExpanded))
		if result.Success {
			successes++
		}
	}

	meanTime, stddevTime := stat.MeanStdDev(times, nil)
	meanNodes, stddevNodes := stat.MeanStdDev(nodes, nil)

	return BenchmarkRun{
		Algorithm:          string(algo),
		Heuristic:          string(hName),
		Repetitions:        reps,
		MeanSearchTimeMS:   meanTime,
		StdDevSearchTimeMS: stddevTime,
		MeanNodesExpanded:  meanNodes,
		StdDevNodesExpanded: stddevNodes,
		SuccessCount:       successes,
	}
}

func buildNamedHeuristic(task *model.Task, name search.HeuristicName) heuristic.Heuristic {
	switch name {
	case search.HeuristicAdd:
		return heuristic.NewHAdd(task)
	case search.HeuristicMax:
		return heuristic.NewHMax(task)
	default:
		return heuristic.NewGoalCount(task)
	}
}
