package main

import (
	"fmt"
)

// shiftCandidate is one Caesar decoding.
type shiftCandidate struct {
	shift     int
	plaintext string
	score     int
}

func (c shiftCandidate) String() string {
	return fmt.Sprintf("shift %2d  score %d  %s", c.shift, c.score, c.plaintext)
}

// caesarResult holds every shift in order 0..25 and the winner.
type caesarResult struct {
	candidates []shiftCandidate
	best       shiftCandidate
}

// keyCandidate is a substitution key together with what it decodes to.
type keyCandidate struct {
	key       keyMap
	plaintext string
	score     int
}

// newKeyCandidate decodes ciphertext with key and scores the result.
func newKeyCandidate(key keyMap, ciphertext string, wl *wordList) keyCandidate {
	p := key.decode(ciphertext)
	return keyCandidate{key: key, plaintext: p, score: wl.score(p)}
}

func (c keyCandidate) String() string {
	return fmt.Sprintf("score %d  %s", c.score, c.plaintext)
}

// substitutionResult is the best key found by the search plus counters
// describing how it got there.
type substitutionResult struct {
	keyCandidate

	seedScore  int // score of the frequency-seeded key
	iterations int // swap trials performed
	accepted   int // trials that improved the score
}
