package solver

import (
	"slices"
	"strings"
)

// GroupedResult is the presentation-ready aggregation: answers bucketed by
// first letter, then word length, plus a per-first-letter word count.
type GroupedResult struct {
	Result map[string]map[int][]MatchResult `json:"result"`
	Counts map[string]int                   `json:"counts"`
}

// Group sorts matches alphabetically and buckets them by first letter and
// word length. The sort runs on every call, regardless of how the input was
// produced, so identical inputs always yield byte-identical output.
func Group(matches []MatchResult) GroupedResult {
	sorted := slices.Clone(matches)
	slices.SortFunc(sorted, func(a, b MatchResult) int {
		return strings.Compare(a.Word, b.Word)
	})

	out := GroupedResult{
		Result: make(map[string]map[int][]MatchResult),
		Counts: make(map[string]int),
	}
	for _, m := range sorted {
		runes := []rune(m.Word)
		first := string(runes[0])
		byLength, ok := out.Result[first]
		if !ok {
			byLength = make(map[int][]MatchResult)
			out.Result[first] = byLength
		}
		byLength[len(runes)] = append(byLength[len(runes)], m)
		out.Counts[first]++
	}
	return out
}

// Total returns the number of grouped answers across all first letters.
func (g GroupedResult) Total() int {
	total := 0
	for _, n := range g.Counts {
		total += n
	}
	return total
}

// IsEmpty reports whether the grouping holds no answers.
func (g GroupedResult) IsEmpty() bool {
	return len(g.Result) == 0
}
