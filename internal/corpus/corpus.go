// Package corpus loads and serves the candidate word sets the solver matches
// against: a small curated answer list, and a large generic english list
// fetched once and cached locally. A Corpus is frozen after construction;
// reloads swap the whole value atomically via Provider.
package corpus

import (
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.English)

// Corpus is a frozen, deduplicated, lowercase word set. The word slice is
// sorted so that iteration order is stable across processes.
type Corpus struct {
	words []string
	set   map[string]struct{}
}

// New normalizes raw words (trim, lowercase, letters only, length >= 1),
// deduplicates, sorts, and freezes them into a Corpus.
func New(raw []string) *Corpus {
	cleaned := lo.FilterMap(raw, func(w string, _ int) (string, bool) {
		w = lowerCaser.String(strings.TrimSpace(w))
		if w == "" || !isAlphabetic(w) {
			return "", false
		}
		return w, true
	})
	words := lo.Uniq(cleaned)
	slices.Sort(words)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Corpus{words: words, set: set}
}

// Empty returns a valid zero-word Corpus, the degraded state used when a
// source fails to load.
func Empty() *Corpus {
	return &Corpus{set: map[string]struct{}{}}
}

// Words returns the sorted word slice. Callers must not modify it.
func (c *Corpus) Words() []string {
	return c.words
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// IsEmpty reports whether the corpus holds no words.
func (c *Corpus) IsEmpty() bool {
	return len(c.words) == 0
}

// Contains reports whether the corpus holds the given word, case-insensitively.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.set[lowerCaser.String(strings.TrimSpace(word))]
	return ok
}

// isAlphabetic reports whether s consists entirely of letters.
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
