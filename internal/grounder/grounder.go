/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package grounder instantiates every action schema in a Domain over the
// object universe of a Problem, producing a fully grounded Task.
package grounder

import (
	"fmt"
	"sort"

	"github.com/stripslab/planner/internal/model"
)

// Ground builds a Task from a parsed Domain and Problem. Every syntactic
// grounding is emitted — applicability is search's concern, not the
// grounder's. Action list order is (schema declaration order) x
// (lexicographic binding order), which fixes downstream tie-breaking.
func Ground(domain *model.Domain, problem *model.Problem) (*model.Task, error) {
	var actions []model.Action

	for _, schemaName := range domain.SchemaOrder {
		schema := domain.Schemas[schemaName]
		grounded, err := groundSchema(domain, problem, schema)
		if err != nil {
			return nil, fmt.Errorf("grounding schema %s: %w", schemaName, err)
		}
		actions = append(actions, grounded...)
	}

	return &model.Task{
		Name:       problem.Name,
		DomainName: domain.Name,
		Objects:    problem.Objects,
		Initial:    model.NewState(problem.Init.Slice()),
		Goal:       problem.Goal,
		Actions:    actions,
	}, nil
}

// groundSchema enumerates the Cartesian product of per-parameter object
// candidates and grounds one Action per binding. Individual bindings that
// fail to ground (a GroundingError) are silently dropped; the run
// continues with the remaining bindings.
func groundSchema(domain *model.Domain, problem *model.Problem, schema model.ActionSchema) ([]model.Action, error) {
	if len(schema.Parameters) == 0 {
		action, err := schema.Ground(map[string]string{})
		if err != nil {
			return nil, nil // empty binding for a zero-arity schema never fails in practice
		}
		return []model.Action{action}, nil
	}

	candidateLists := make([][]string, len(schema.Parameters))
	for i, p := range schema.Parameters {
		candidates := domain.ObjectsOfType(problem.Objects, p.Type)
		sort.Strings(candidates)
		candidateLists[i] = candidates
	}

	var groundings []model.Action
	bindings := cartesianProduct(candidateLists)
	for _, combo := range bindings {
		binding := make(map[string]string, len(schema.Parameters))
		for i, p := range schema.Parameters {
			binding[p.Name] = combo[i]
		}
		action, err := schema.Ground(binding)
		if err != nil {
			// GroundingError for this binding: drop it, keep going.
			continue
		}
		groundings = append(groundings, action)
	}

	return groundings, nil
}

// cartesianProduct enumerates every combination of one element from each
// input list, in lexicographic order of the (already-sorted) input lists.
func cartesianProduct(lists [][]string) [][]string {
	if len(lists) == 0 {
		return [][]string{{}}
	}
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
	}

	result := [][]string{{}}
	for _, list := range lists {
		var next [][]string
		for _, prefix := range result {
			for _, v := range list {
				combo := make([]string, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = v
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
