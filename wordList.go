package main

import (
	"fmt"
	"strings"
)

// englishRank lists English letters by typical descending frequency.
const englishRank = "etaoinshrdlcumwfgypbvkjxqz"

// defaultProbes are common English function words. Order matters only
// for readability; the score is a plain sum.
var defaultProbes = []string{"the", "and", "to", "of", "that", "is", "in", "it", "a"}

// wordList scores text by counting whole-word hits of its probe words.
// A wordList is immutable once built and safe for concurrent use.
type wordList struct {
	probes []string // space padded, e.g. " the "
}

var defaultWordList = mustWordList(defaultProbes)

// newWordList builds a scorer from bare lowercase words.
func newWordList(words []string) (*wordList, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: probe list is empty", ErrInvalidConfig)
	}

	wl := &wordList{probes: make([]string, 0, len(words))}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty probe word", ErrInvalidConfig)
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				return nil, fmt.Errorf("%w: probe %q must be lowercase letters only", ErrInvalidConfig, w)
			}
		}
		if seen[w] {
			return nil, fmt.Errorf("%w: duplicate probe %q", ErrInvalidConfig, w)
		}
		seen[w] = true
		wl.probes = append(wl.probes, " "+w+" ")
	}

	return wl, nil
}

func mustWordList(words []string) *wordList {
	wl, err := newWordList(words)
	if err != nil {
		panic(err)
	}
	return wl
}

// score returns the number of probe hits in text. The text is padded with
// a space on each side so words at either end still count. Matches of the
// same probe never overlap; matches of different probes may.
func (wl *wordList) score(text string) int {
	padded := " " + text + " "

	sc := 0
	for _, p := range wl.probes {
		sc += strings.Count(padded, p)
	}
	return sc
}

// words returns the probe words without padding.
func (wl *wordList) words() []string {
	ret := make([]string, len(wl.probes))
	for i, p := range wl.probes {
		ret[i] = strings.TrimSpace(p)
	}
	return ret
}

// validRank reports an error unless rank is a permutation of a-z.
func validRank(rank string) error {
	if len(rank) != nrLetters {
		return fmt.Errorf("%w: english rank must have %d letters, got %d", ErrInvalidConfig, nrLetters, len(rank))
	}
	var used [nrLetters]bool
	for i := 0; i < len(rank); i++ {
		c := rank[i]
		if c < 'a' || c > 'z' {
			return fmt.Errorf("%w: english rank has non-letter %q", ErrInvalidConfig, c)
		}
		if used[c-'a'] {
			return fmt.Errorf("%w: english rank repeats %q", ErrInvalidConfig, c)
		}
		used[c-'a'] = true
	}
	return nil
}
