package solver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatches() []MatchResult {
	return []MatchResult{
		{Word: "GONG", Pangram: false},
		{Word: "PANGOLIN", Pangram: true},
		{Word: "GALLON", Pangram: false},
		{Word: "LINGO", Pangram: false},
		{Word: "GAIN", Pangram: false},
	}
}

func TestGroupBuckets(t *testing.T) {
	g := Group(sampleMatches())

	require.Contains(t, g.Result, "G")
	require.Contains(t, g.Result, "P")
	require.Contains(t, g.Result, "L")

	assert.Equal(t, 3, g.Counts["G"])
	assert.Equal(t, 1, g.Counts["P"])
	assert.Equal(t, 1, g.Counts["L"])

	// Words under one (letter, length) bucket come out alphabetically.
	fourG := g.Result["G"][4]
	require.Len(t, fourG, 2)
	assert.Equal(t, "GAIN", fourG[0].Word)
	assert.Equal(t, "GONG", fourG[1].Word)

	assert.Equal(t, "PANGOLIN", g.Result["P"][8][0].Word)
	assert.True(t, g.Result["P"][8][0].Pangram)
}

func TestGroupCountInvariants(t *testing.T) {
	matches := sampleMatches()
	g := Group(matches)

	assert.Equal(t, len(matches), g.Total())
	for letter, byLength := range g.Result {
		bucketTotal := 0
		for _, bucket := range byLength {
			bucketTotal += len(bucket)
		}
		assert.Equal(t, g.Counts[letter], bucketTotal, "count mismatch for letter %s", letter)
	}
}

func TestGroupDeterminism(t *testing.T) {
	forward := sampleMatches()
	backward := make([]MatchResult, len(forward))
	for i, m := range forward {
		backward[len(forward)-1-i] = m
	}

	a, err := json.Marshal(Group(forward))
	require.NoError(t, err)
	b, err := json.Marshal(Group(backward))
	require.NoError(t, err)
	assert.Equal(t, a, b, "grouping must not depend on match order")

	// Repeated calls with identical input are byte-identical too.
	c, err := json.Marshal(Group(forward))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestGroupEmpty(t *testing.T) {
	g := Group(nil)
	assert.True(t, g.IsEmpty())
	assert.Zero(t, g.Total())
}

func TestMatchResultJSON(t *testing.T) {
	data, err := json.Marshal(MatchResult{Word: "PANGOLIN", Pangram: true})
	require.NoError(t, err)
	assert.JSONEq(t, `["PANGOLIN", true]`, string(data))

	var m MatchResult
	require.NoError(t, json.Unmarshal([]byte(`["GALLON", false]`), &m))
	assert.Equal(t, MatchResult{Word: "GALLON", Pangram: false}, m)

	assert.Error(t, json.Unmarshal([]byte(`["GALLON"]`), &m))
}
