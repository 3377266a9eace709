// Package solver implements the word-matching rules of the seven-letter
// puzzle: a valid answer is at least four letters long, contains the center
// letter, and uses only letters from the pool; a pangram additionally uses
// every pool letter at least once.
package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"buzzkill/internal/corpus"
)

// Puzzle rule constants
const (
	PoolSize      = 7 // distinct letters in a puzzle pool
	MinWordLength = 4 // puzzle rule: no 1-3 letter answers
)

// Validation errors surfaced to the boundary layer before any matching runs.
var (
	ErrEmptyPool           = errors.New("pool must not be empty")
	ErrPoolNotAlphabetic   = errors.New("pool must contain letters only")
	ErrPoolSize            = errors.New("pool must contain exactly 7 distinct letters")
	ErrEmptyCenter         = errors.New("center letter must not be empty")
	ErrCenterSize          = errors.New("center must be a single letter")
	ErrCenterNotAlphabetic = errors.New("center must be a letter")
)

var (
	lowerCaser = cases.Lower(language.English)
	upperCaser = cases.Upper(language.English)
)

// LetterPool holds the distinct puzzle letters, lowercased, in input order.
// Immutable once constructed.
type LetterPool struct {
	letters []rune
	set     map[rune]struct{}
}

// NewLetterPool normalizes raw caller input into a LetterPool. Spaces are
// dropped and duplicate letters collapse into the distinct set; anything
// other than exactly seven distinct letters is rejected.
func NewLetterPool(raw string) (LetterPool, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if trimmed == "" {
		return LetterPool{}, ErrEmptyPool
	}
	set := make(map[rune]struct{}, PoolSize)
	letters := make([]rune, 0, PoolSize)
	for _, r := range lowerCaser.String(trimmed) {
		if !unicode.IsLetter(r) {
			return LetterPool{}, ErrPoolNotAlphabetic
		}
		if _, dup := set[r]; dup {
			continue
		}
		set[r] = struct{}{}
		letters = append(letters, r)
	}
	if len(letters) != PoolSize {
		return LetterPool{}, ErrPoolSize
	}
	return LetterPool{letters: letters, set: set}, nil
}

// Contains reports whether r is one of the pool letters.
func (p LetterPool) Contains(r rune) bool {
	_, ok := p.set[r]
	return ok
}

// Size returns the number of distinct pool letters.
func (p LetterPool) Size() int {
	return len(p.letters)
}

// String returns the distinct pool letters in input order.
func (p LetterPool) String() string {
	return string(p.letters)
}

// NewCenterLetter normalizes raw caller input into the single required letter.
func NewCenterLetter(raw string) (rune, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmptyCenter
	}
	runes := []rune(lowerCaser.String(trimmed))
	if len(runes) != 1 {
		return 0, ErrCenterSize
	}
	if !unicode.IsLetter(runes[0]) {
		return 0, ErrCenterNotAlphabetic
	}
	return runes[0], nil
}

// MatchResult is one accepted answer in canonical uppercase form.
type MatchResult struct {
	Word    string
	Pangram bool
}

// MarshalJSON emits the wire form [WORD, isPangram].
func (m MatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.Word, m.Pangram})
}

// UnmarshalJSON accepts the wire form [WORD, isPangram].
func (m *MatchResult) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("match result must be a [word, pangram] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &m.Word); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &m.Pangram)
}

// Match filters the corpus against the puzzle rules. Output order follows
// corpus iteration order; callers needing determinism go through Group.
// An empty corpus yields an empty slice, not an error.
func Match(pool LetterPool, center rune, c *corpus.Corpus) []MatchResult {
	return lo.FilterMap(c.Words(), func(w string, _ int) (MatchResult, bool) {
		if !isValidAnswer(w, pool, center) {
			return MatchResult{}, false
		}
		return MatchResult{Word: upperCaser.String(w), Pangram: isPangram(w, pool)}, true
	})
}

// isValidAnswer applies the validity predicate to a lowercase corpus word.
func isValidAnswer(word string, pool LetterPool, center rune) bool {
	runes := []rune(word)
	if len(runes) < MinWordLength {
		return false
	}
	hasCenter := false
	for _, r := range runes {
		if !pool.Contains(r) {
			return false
		}
		if r == center {
			hasCenter = true
		}
	}
	return hasCenter
}

// isPangram reports whether word uses every distinct pool letter at least
// once. Only called for words that already passed the validity predicate, so
// every rune is known to be a pool letter.
func isPangram(word string, pool LetterPool) bool {
	seen := make(map[rune]struct{}, PoolSize)
	for _, r := range word {
		seen[r] = struct{}{}
	}
	return len(seen) == pool.Size()
}
