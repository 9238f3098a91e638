/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	v "github.com/RussellLuo/validating/v3"
)

var algorithmNames = []string{"bfs", "astar", "greedy"}
var heuristicNames = []string{"goal_count", "h_add", "h_max"}

// PlanRequest is the body of POST /plan. TaskID is optional: a caller that
// wants live progress over /ws/progress should subscribe with a chosen
// TaskID before posting; if left blank, one is generated and returned but
// no subscriber can have been listening for it in time.
type PlanRequest struct {
	DomainText     string `json:"domain"`
	ProblemText    string `json:"problem"`
	Algorithm      string `json:"algorithm"`
	Heuristic      string `json:"heuristic"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	TaskID         string `json:"task_id,omitempty"`
}

func (r PlanRequest) Validation() v.Schema {
	return v.Schema{
		v.F("domain", r.DomainText):   v.Nonzero[string]().Msg("domain text is required"),
		v.F("problem", r.ProblemText): v.Nonzero[string]().Msg("problem text is required"),
		v.F("algorithm", r.Algorithm): v.All(
			v.Nonzero[string]().Msg("algorithm is required"),
			v.In(algorithmNames...).Msg("algorithm must be one of bfs, astar, greedy"),
		),
	}
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	DomainText  string   `json:"domain"`
	ProblemText string   `json:"problem"`
	Plan        []string `json:"plan"`
}

func (r ValidateRequest) Validation() v.Schema {
	return v.Schema{
		v.F("domain", r.DomainText):   v.Nonzero[string]().Msg("domain text is required"),
		v.F("problem", r.ProblemText): v.Nonzero[string]().Msg("problem text is required"),
	}
}

// BenchmarkRequest is the body of POST /benchmarks.
type BenchmarkRequest struct {
	DomainText  string   `json:"domain"`
	ProblemText string   `json:"problem"`
	Algorithms  []string `json:"algorithms"`
	Heuristics  []string `json:"heuristics"`
	Repetitions int      `json:"repetitions"`
}

func (r BenchmarkRequest) Validation() v.Schema {
	return v.Schema{
		v.F("domain", r.DomainText):   v.Nonzero[string]().Msg("domain text is required"),
		v.F("problem", r.ProblemText): v.Nonzero[string]().Msg("problem text is required"),
		v.F("repetitions", r.Repetitions): v.Is(func(n int) bool {
			return n >= 0
		}).Msg("repetitions must be non-negative"),
	}
}

func validHeuristicName(name string) bool {
	if name == "" {
		return true
	}
	for _, h := range heuristicNames {
		if h == name {
			return true
		}
	}
	return false
}
