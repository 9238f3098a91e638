/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package grounder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripslab/planner/internal/model"
	"github.com/stripslab/planner/internal/pddl"
)

const blocksDomainText = `
(define (domain blocksworld)
  (:requirements :strips :typing)
  (:types block)
  (:predicates (clear ?x - block) (on-table ?x - block) (hand-empty) (holding ?x - block) (on ?x - block ?y - block))
  (:action pick-up
    :parameters (?x - block)
    :precondition (and (clear ?x) (on-table ?x) (hand-empty))
    :effect (and (not (on-table ?x)) (not (clear ?x)) (not (hand-empty)) (holding ?x)))
  (:action put-down
    :parameters (?x - block)
    :precondition (holding ?x)
    :effect (and (not (holding ?x)) (clear ?x) (hand-empty) (on-table ?x)))
  (:action stack
    :parameters (?x - block ?y - block)
    :precondition (and (holding ?x) (clear ?y))
    :effect (and (not (holding ?x)) (not (clear ?y)) (clear ?x) (hand-empty) (on ?x ?y))))
`

const blocksProblemText = `
(define (problem two-block-stack)
  (:domain blocksworld)
  (:objects a b - block)
  (:init (clear a) (clear b) (on-table a) (on-table b) (hand-empty))
  (:goal (on a b)))
`

func mustGround(t *testing.T) *model.Task {
	t.Helper()
	d, err := pddl.ParseDomain(blocksDomainText)
	require.NoError(t, err)
	p, err := pddl.ParseProblem(blocksProblemText)
	require.NoError(t, err)
	task, err := Ground(d, p)
	require.NoError(t, err)
	return task
}

func TestGroundProducesNoFreeVariables(t *testing.T) {
	task := mustGround(t)
	for _, a := range task.Actions {
		for atom := range a.Preconditions {
			assert.NotContains(t, atom, "?")
		}
		for atom := range a.Adds {
			assert.NotContains(t, atom, "?")
		}
		for atom := range a.Dels {
			assert.NotContains(t, atom, "?")
		}
	}
}

func TestGroundActionCounts(t *testing.T) {
	task := mustGround(t)

	var pickUps, stacks, putDowns int
	for _, a := range task.Actions {
		switch a.SchemaName {
		case "pick-up":
			pickUps++
		case "put-down":
			putDowns++
		case "stack":
			stacks++
		}
	}
	assert.Equal(t, 2, pickUps)  // pick-up(a), pick-up(b)
	assert.Equal(t, 2, putDowns) // put-down(a), put-down(b)
	assert.Equal(t, 4, stacks)   // stack(a,a) stack(a,b) stack(b,a) stack(b,b)
}

func TestGroundActionNamingAndOrder(t *testing.T) {
	task := mustGround(t)
	names := make([]string, 0, len(task.Actions))
	for _, a := range task.Actions {
		names = append(names, a.Name)
	}
	// Schema-declaration order, then lexicographic binding order.
	assert.Equal(t, []string{
		"pick-up(a)", "pick-up(b)",
		"put-down(a)", "put-down(b)",
		"stack(a,a)", "stack(a,b)", "stack(b,a)", "stack(b,b)",
	}, names)
}

func TestZeroArityAndSingleGrounding(t *testing.T) {
	d, err := pddl.ParseDomain(`(define (domain d) (:predicates (p)) (:action noop :parameters () :precondition () :effect ()))`)
	require.NoError(t, err)
	p, err := pddl.ParseProblem(`(define (problem p) (:domain d) (:init (p)) (:goal (p)))`)
	require.NoError(t, err)

	task, err := Ground(d, p)
	require.NoError(t, err)
	require.Len(t, task.Actions, 1)
	assert.Equal(t, "noop", task.Actions[0].Name)
}

func TestSubtypeGrounding(t *testing.T) {
	domainText := `
(define (domain typed)
  (:types block ball - object)
  (:predicates (clear ?x - object))
  (:action clear-it :parameters (?x - object) :precondition () :effect (clear ?x)))
`
	problemText := `
(define (problem p)
  (:domain typed)
  (:objects a - block c - ball)
  (:init)
  (:goal (clear a)))
`
	d, err := pddl.ParseDomain(domainText)
	require.NoError(t, err)
	p, err := pddl.ParseProblem(problemText)
	require.NoError(t, err)

	task, err := Ground(d, p)
	require.NoError(t, err)
	require.Len(t, task.Actions, 2) // both block and ball objects are subtypes of object
}
