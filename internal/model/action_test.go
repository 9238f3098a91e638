/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSchemaGround(t *testing.T) {
	schema := ActionSchema{
		Name:       "pick-up",
		Parameters: []Param{{Name: "x", Type: "block"}},
		Preconditions: []Literal{
			{Pred: "clear", Args: []string{"x"}},
			{Pred: "on-table", Args: []string{"x"}},
			{Pred: "hand-empty"},
		},
		AddEffects: []Literal{{Pred: "holding", Args: []string{"x"}}},
		DelEffects: []Literal{
			{Pred: "on-table", Args: []string{"x"}},
			{Pred: "clear", Args: []string{"x"}},
			{Pred: "hand-empty"},
		},
	}

	action, err := schema.Ground(map[string]string{"x": "a"})
	require.NoError(t, err)

	assert.Equal(t, "pick-up(a)", action.Name)
	assert.Equal(t, "pick-up", action.SchemaName)
	assert.True(t, action.Preconditions.Has("clear(a)"))
	assert.True(t, action.Preconditions.Has("hand-empty"))
	assert.True(t, action.Adds.Has("holding(a)"))
	assert.True(t, action.Dels.Has("on-table(a)"))
}

func TestActionSchemaGroundMissingBinding(t *testing.T) {
	schema := ActionSchema{Name: "noop", Parameters: []Param{{Name: "x", Type: "object"}}}
	_, err := schema.Ground(map[string]string{})
	assert.Error(t, err)
}

func TestActionApplicableAndApply(t *testing.T) {
	schema := ActionSchema{
		Name:       "pick-up",
		Parameters: []Param{{Name: "x", Type: "block"}},
		Preconditions: []Literal{
			{Pred: "clear", Args: []string{"x"}},
		},
		AddEffects: []Literal{{Pred: "holding", Args: []string{"x"}}},
		DelEffects: []Literal{{Pred: "clear", Args: []string{"x"}}},
	}
	action, err := schema.Ground(map[string]string{"x": "a"})
	require.NoError(t, err)

	s := NewState([]Atom{"clear(a)"})
	require.True(t, action.Applicable(s))

	next := action.Apply(s)
	assert.False(t, next.Contains("clear(a)"))
	assert.True(t, next.Contains("holding(a)"))

	assert.False(t, action.Applicable(next))
}

func TestZeroArityAction(t *testing.T) {
	schema := ActionSchema{Name: "noop"}
	action, err := schema.Ground(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "noop", action.Name)
}
