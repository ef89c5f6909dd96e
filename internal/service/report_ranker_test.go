package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rankedItem struct {
	id    string
	score int
	rate  float64
}

func ids(items []rankedItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func TestRankOrdersByKeysAndBreaksTies(t *testing.T) {
	rows := []rankedItem{
		{id: "a", score: 1, rate: 50},
		{id: "b", score: 3, rate: 10},
		{id: "c", score: 3, rate: 90},
		{id: "d", score: 2, rate: 0},
	}
	keys := []orderKey[rankedItem]{
		desc(func(r rankedItem) int { return r.score }),
		desc(func(r rankedItem) float64 { return r.rate }),
	}

	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(rank(rows, keys, 0)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(rows), "input must not be reordered")
}

func TestRankKeepsInputOrderForFullTies(t *testing.T) {
	rows := []rankedItem{{id: "x", score: 1}, {id: "y", score: 1}, {id: "z", score: 1}}
	keys := []orderKey[rankedItem]{desc(func(r rankedItem) int { return r.score })}

	for i := 0; i < 5; i++ {
		assert.Equal(t, []string{"x", "y", "z"}, ids(rank(rows, keys, 0)))
	}
}

func TestRankAscendingAndLimit(t *testing.T) {
	rows := []rankedItem{{id: "b", score: 2}, {id: "a", score: 1}, {id: "c", score: 3}}
	keys := []orderKey[rankedItem]{asc(func(r rankedItem) string { return r.id })}

	assert.Equal(t, []string{"a", "b"}, ids(rank(rows, keys, 2)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(rank(rows, keys, 10)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(rank(rows, keys, -1)))
	assert.Empty(t, rank([]rankedItem{}, keys, 3))
}
