/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"encoding/json"
	"net/http"
	"time"

	v "github.com/RussellLuo/validating/v3"

	"github.com/gilcrest/diygoapi/errs"

	"github.com/rs/zerolog"

	"github.com/stripslab/planner/internal/grounder"
	"github.com/stripslab/planner/internal/model"
	"github.com/stripslab/planner/internal/pddl"
	"github.com/stripslab/planner/internal/planstore"
	"github.com/stripslab/planner/internal/search"
	"github.com/stripslab/planner/internal/validator"
)

// healthDomainText and healthProblemText are a trivial one-predicate domain/problem run through
// parse -> ground -> BFS on every /health check, mirroring the teacher's
// self-test health check pattern.
const (
	healthDomainText = `(define (domain health)
  (:predicates (ok))
  (:action noop :parameters () :precondition () :effect (ok)))`
	healthProblemText = `(define (problem health-p)
  (:domain health)
  (:objects)
  (:init)
  (:goal (ok)))`
)

func (app *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	domain, err := pddl.ParseDomain(healthDomainText)
	if err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Internal, err))
		return
	}
	problem, err := pddl.ParseProblem(healthProblemText)
	if err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Internal, err))
		return
	}
	task, err := grounder.Ground(domain, problem)
	if err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Internal, err))
		return
	}
	result := search.BFS(task, time.Second)

	writeJSON(w, app.Logger, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": Version,
		"search":  result.Success,
	})
}

func (app *App) planHandler(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.InvalidRequest, err))
		return
	}

	if validationErrs := v.Validate(req.Validation()); len(validationErrs) > 0 {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Validation, validationErrs.Error()))
		return
	}
	if !validHeuristicName(req.Heuristic) {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Validation, "unknown heuristic"))
		return
	}

	task, err := buildTask(req.DomainText, req.ProblemText)
	if err != nil {
		writeError(w, app.Logger, err)
		return
	}

	timeout := app.Cfg.SearchTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	algo := search.Algorithm(req.Algorithm)
	hName := search.HeuristicName(req.Heuristic)

	taskID := req.TaskID
	if taskID == "" {
		taskID = generateTaskID()
	}

	key := planstore.Key(task, algo, hName)
	if cached, err := app.Store.Get(key); err == nil {
		writeJSON(w, app.Logger, http.StatusOK, map[string]any{
			"request_id": generateRequestID(),
			"task_id":    taskID,
			"cached":     true,
			"result":     cached,
		})
		return
	}

	progress := func(nodesExpanded, frontierSize int) {
		app.Progress.Publish(taskID, nodesExpanded, frontierSize)
	}

	result := runSearch(task, timeout, algo, hName, progress)
	if err := app.Store.Put(key, result); err != nil {
		app.Logger.Warn().Err(err).Msg("failed to cache plan result")
	}

	writeJSON(w, app.Logger, http.StatusOK, map[string]any{
		"request_id": generateRequestID(),
		"task_id":    taskID,
		"cached":     false,
		"result":     result,
	})
}

func (app *App) validateHandler(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.InvalidRequest, err))
		return
	}

	if validationErrs := v.Validate(req.Validation()); len(validationErrs) > 0 {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Validation, validationErrs.Error()))
		return
	}

	task, err := buildTask(req.DomainText, req.ProblemText)
	if err != nil {
		writeError(w, app.Logger, err)
		return
	}

	result := validator.ValidatePlan(task, req.Plan)
	writeJSON(w, app.Logger, http.StatusOK, result)
}

func (app *App) benchmarksHandler(w http.ResponseWriter, r *http.Request) {
	var req BenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.InvalidRequest, err))
		return
	}

	if validationErrs := v.Validate(req.Validation()); len(validationErrs) > 0 {
		errs.HTTPErrorResponse(w, app.Logger, errs.E(errs.Validation, validationErrs.Error()))
		return
	}

	task, err := buildTask(req.DomainText, req.ProblemText)
	if err != nil {
		writeError(w, app.Logger, err)
		return
	}

	reps := req.Repetitions
	if reps == 0 {
		reps = 3
	}

	algorithms := req.Algorithms
	if len(algorithms) == 0 {
		algorithms = []string{"bfs", "astar", "greedy"}
	}
	heuristics := req.Heuristics
	if len(heuristics) == 0 {
		heuristics = []string{"goal_count", "h_add", "h_max"}
	}

	var runs []BenchmarkRun
	for _, a := range algorithms {
		algo := search.Algorithm(a)
		if algo == search.AlgorithmBFS {
			runs = append(runs, runBenchmark(task, app.Cfg.SearchTimeout, algo, "", reps))
			continue
		}
		for _, h := range heuristics {
			runs = append(runs, runBenchmark(task, app.Cfg.SearchTimeout, algo, search.HeuristicName(h), reps))
		}
	}

	writeJSON(w, app.Logger, http.StatusOK, map[string]any{
		"request_id": generateRequestID(),
		"runs":       runs,
	})
}

func buildTask(domainText, problemText string) (*model.Task, error) {
	domain, err := pddl.ParseDomain(domainText)
	if err != nil {
		return nil, err
	}
	problem, err := pddl.ParseProblem(problemText)
	if err != nil {
		return nil, err
	}
	return grounder.Ground(domain, problem)
}

func runSearch(task *model.Task, timeout time.Duration, algo search.Algorithm, hName search.HeuristicName, progress search.ProgressFunc) search.Result {
	switch algo {
	case search.AlgorithmBFS:
		return search.BFS(task, timeout, progress)
	case search.AlgorithmGreedy:
		return search.Greedy(task, timeout, buildNamedHeuristic(task, hName), progress)
	default:
		return search.AStar(task, timeout, buildNamedHeuristic(task, hName), progress)
	}
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response body")
	}
}
