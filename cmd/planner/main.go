/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Command planner is a standalone CLI around the core parse/ground/search/
// validate pipeline, for driving the planner against local PDDL files
// without standing up the HTTP service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/ff/v3"

	"github.com/stripslab/planner/internal/grounder"
	"github.com/stripslab/planner/internal/heuristic"
	"github.com/stripslab/planner/internal/model"
	"github.com/stripslab/planner/internal/pddl"
	"github.com/stripslab/planner/internal/search"
	"github.com/stripslab/planner/internal/validator"
)

func main() {
	fs := flag.NewFlagSet("planner", flag.ExitOnError)
	var (
		domainPath  = fs.String("domain", "", "path to a PDDL domain file")
		problemPath = fs.String("problem", "", "path to a PDDL problem file")
		planPath    = fs.String("validate-plan", "", "path to a plan text file; when set, validates instead of searching")
		algorithm   = fs.String("algorithm", "astar", "bfs, astar, or greedy")
		heuristicN  = fs.String("heuristic", "h_max", "goal_count, h_add, or h_max")
		timeout     = fs.Duration("timeout", 10*time.Second, "search wall-clock timeout")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("PLANNER")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *domainPath == "" || *problemPath == "" {
		fmt.Fprintln(os.Stderr, "both -domain and -problem are required")
		os.Exit(1)
	}

	task, err := loadTask(*domainPath, *problemPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *planPath != "" {
		runValidate(task, *planPath)
		return
	}

	runSearch(task, *algorithm, *heuristicN, *timeout)
}

func loadTask(domainPath, problemPath string) (*model.Task, error) {
	domainText, err := os.ReadFile(domainPath)
	if err != nil {
		return nil, fmt.Errorf("reading domain file: %w", err)
	}
	problemText, err := os.ReadFile(problemPath)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}

	domain, err := pddl.ParseDomain(string(domainText))
	if err != nil {
		return nil, fmt.Errorf("parsing domain: %w", err)
	}
	problem, err := pddl.ParseProblem(string(problemText))
	if err != nil {
		return nil, fmt.Errorf("parsing problem: %w", err)
	}

	return grounder.Ground(domain, problem)
}

func runSearch(task *model.Task, algorithm, heuristicName string, timeout time.Duration) {
	var result search.Result
	switch algorithm {
	case "bfs":
		result = search.BFS(task, timeout)
	case "greedy":
		result = search.Greedy(task, timeout, buildHeuristic(task, heuristicName))
	default:
		result = search.AStar(task, timeout, buildHeuristic(task, heuristicName))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

func buildHeuristic(task *model.Task, name string) heuristic.Heuristic {
	switch name {
	case "h_add":
		return heuristic.NewHAdd(task)
	case "goal_count":
		return heuristic.NewGoalCount(task)
	default:
		return heuristic.NewHMax(task)
	}
}

func runValidate(task *model.Task, planPath string) {
	text, err := os.ReadFile(planPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	plan := validator.ParsePlanText(string(text))
	result := validator.ValidatePlan(task, plan)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)

	if !result.Valid {
		os.Exit(1)
	}
}
