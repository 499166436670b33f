// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herodex/internal/core/hero"
)

/*
TestEscapeLike verifies that user search text is neutralized before being
embedded in an ILIKE pattern.
*/
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "flash", "flash"},
		{"percent", "100%", `100\%`},
		{"underscore", "mr_fantastic", `mr\_fantastic`},
		{"backslash", `a\b`, `a\\b`},
		{"mixed", `%_\`, `\%\_\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hero.EscapeLike(tt.input))
		})
	}
}

/*
TestFilterConditions_Empty verifies that a vacuous filter produces no SQL
conditions at all, so the query matches every hero.
*/
func TestFilterConditions_Empty(t *testing.T) {
	conditions, args := hero.FilterConditions(hero.Filter{}, 1)

	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

/*
TestFilterConditions_NamePrefix verifies the case-insensitive prefix predicate.
*/
func TestFilterConditions_NamePrefix(t *testing.T) {
	conditions, args := hero.FilterConditions(hero.Filter{Name: "fla"}, 1)

	require.Len(t, conditions, 1)
	assert.Equal(t, "name ILIKE $1", conditions[0])
	assert.Equal(t, []any{"fla%"}, args)
}

/*
TestFilterConditions_NamePrefixEscaped verifies that metacharacters in the
search text never act as wildcards.
*/
func TestFilterConditions_NamePrefixEscaped(t *testing.T) {
	conditions, args := hero.FilterConditions(hero.Filter{Name: "100%_hero"}, 1)

	require.Len(t, conditions, 1)
	assert.Equal(t, []any{`100\%\_hero%`}, args)
}

/*
TestFilterConditions_SingleStat verifies a single lower-bound predicate with
every other stat left unconstrained.
*/
func TestFilterConditions_SingleStat(t *testing.T) {
	filter := hero.Filter{MinStats: map[string]int{"speed": 100}}
	conditions, args := hero.FilterConditions(filter, 1)

	require.Len(t, conditions, 1)
	assert.Equal(t, "speed >= $1", conditions[0])
	assert.Equal(t, []any{100}, args)
}

/*
TestFilterConditions_UnknownStatIgnored verifies that keys outside the six
canonical stats never reach the SQL text.
*/
func TestFilterConditions_UnknownStatIgnored(t *testing.T) {
	filter := hero.Filter{MinStats: map[string]int{
		"speed":    50,
		"charisma": 90,
		"name":     1, // hostile key naming a real column
	}}
	conditions, args := hero.FilterConditions(filter, 1)

	require.Len(t, conditions, 1)
	assert.Equal(t, "speed >= $1", conditions[0])
	assert.Equal(t, []any{50}, args)
}

/*
TestFilterConditions_Combined verifies clause ordering and positional
parameter numbering for a fully populated filter.
*/
func TestFilterConditions_Combined(t *testing.T) {
	filter := hero.Filter{
		Name:   "bat",
		Gender: "Male",
		MinStats: map[string]int{
			"combat":       80,
			"intelligence": 90,
		},
	}

	conditions, args := hero.FilterConditions(filter, 1)

	// Name, gender, then stats in canonical StatKeys order.
	require.Equal(t, []string{
		"name ILIKE $1",
		"gender = $2",
		"intelligence >= $3",
		"combat >= $4",
	}, conditions)
	assert.Equal(t, []any{"bat%", "Male", 90, 80}, args)
}

/*
TestFilterConditions_StartArg verifies that numbering honors a non-1 start,
for embedding into queries that already carry parameters.
*/
func TestFilterConditions_StartArg(t *testing.T) {
	filter := hero.Filter{Gender: "Female"}
	conditions, args := hero.FilterConditions(filter, 5)

	require.Len(t, conditions, 1)
	assert.Equal(t, "gender = $5", conditions[0])
	assert.Equal(t, []any{"Female"}, args)
}

/*
TestFilter_IsZero distinguishes the match-all filter from constrained ones.
*/
func TestFilter_IsZero(t *testing.T) {
	assert.True(t, hero.Filter{}.IsZero())
	assert.True(t, hero.Filter{MinStats: map[string]int{}}.IsZero())
	assert.False(t, hero.Filter{Name: "a"}.IsZero())
	assert.False(t, hero.Filter{MinStats: map[string]int{"power": 1}}.IsZero())
}
