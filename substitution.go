package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// defaultIterations is the number of swap trials for a substitution search.
const defaultIterations = 30000

// substitutionOptions tunes solveSubstitution. The zero value is not
// usable: Rand must be set. See newSubstitutionOptions.
type substitutionOptions struct {
	Iterations int
	Rank       string // English letters by descending frequency
	Words      *wordList
	Rand       *rand.Rand
}

// newSubstitutionOptions returns the default search with a generator
// seeded from seed.
func newSubstitutionOptions(seed uint64) substitutionOptions {
	return substitutionOptions{
		Iterations: defaultIterations,
		Rank:       englishRank,
		Words:      defaultWordList,
		Rand:       newRand(seed),
	}
}

// newRand returns a deterministic generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// seedKey aligns the cipher letter frequency ranking of text with rank.
// The most frequent cipher letter maps to rank[0], the next to rank[1],
// and so on. Equal counts are ordered by alphabet index.
func seedKey(text string, rank string) keyMap {
	f := letterCounts(text)

	ranked := make([]int, nrLetters)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool { return f[ranked[i]] > f[ranked[j]] })

	var k keyMap
	for i, c := range ranked {
		k[c] = rank[i] - 'a'
	}
	return k
}

// solveSubstitution searches for the key that makes ciphertext look most
// like English. It starts from the frequency-seeded key and then, for
// opts.Iterations rounds, swaps the outputs of two random letters and
// keeps the swap only if the score strictly improves.
//
// This is plain hill climbing with no restarts; the result is the best
// key found, which may be a local optimum.
func solveSubstitution(ciphertext string, opts substitutionOptions) (substitutionResult, error) {
	var res substitutionResult

	if opts.Iterations < 0 {
		return res, fmt.Errorf("substitution: %w: %d", ErrInvalidIterations, opts.Iterations)
	}
	if opts.Rank == "" {
		opts.Rank = englishRank
	}
	if err := validRank(opts.Rank); err != nil {
		return res, fmt.Errorf("substitution: %w", err)
	}
	if opts.Words == nil {
		opts.Words = defaultWordList
	}
	if opts.Rand == nil && opts.Iterations > 0 {
		return res, fmt.Errorf("substitution: no random source")
	}

	ct := normalize(ciphertext)
	if strings.TrimSpace(ct) == "" {
		return res, fmt.Errorf("substitution: %w", ErrEmptyInput)
	}

	best := newKeyCandidate(seedKey(ct, opts.Rank), ct, opts.Words)
	res.seedScore = best.score

	for res.iterations < opts.Iterations {
		res.iterations++

		a := opts.Rand.IntN(nrLetters)
		b := opts.Rand.IntN(nrLetters)
		for a == b {
			b = opts.Rand.IntN(nrLetters)
		}

		trial := newKeyCandidate(best.key.swap(a, b), ct, opts.Words)
		if trial.score > best.score {
			best = trial
			res.accepted++
		}
	}

	res.keyCandidate = best
	return res, nil
}
