package main

import (
	"fmt"
	"strings"
)

// rotate moves a letter back by shift places within its own case band.
// Anything that is not an ASCII letter is returned unchanged.
func rotate(c byte, shift int) byte {
	var base byte
	switch {
	case c >= 'A' && c <= 'Z':
		base = 'A'
	case c >= 'a' && c <= 'z':
		base = 'a'
	default:
		return c
	}

	d := (int(c-base) - shift) % nrLetters
	if d < 0 {
		d += nrLetters
	}
	return base + byte(d)
}

// decodeShift undoes a Caesar shift, preserving case and punctuation.
func decodeShift(text string, shift int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = rotate(text[i], shift)
	}
	return string(out)
}

// encodeShift applies a Caesar shift.
func encodeShift(text string, shift int) string {
	return decodeShift(text, nrLetters-((shift%nrLetters)+nrLetters)%nrLetters)
}

// solveCaesar tries every shift of ciphertext and scores each decoding
// with wl. All 26 candidates are returned in shift order; the best is the
// first one with the highest score. Blank input is rejected, but text
// with no letters (only punctuation) still yields every shift.
func solveCaesar(ciphertext string, wl *wordList) (caesarResult, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return caesarResult{}, fmt.Errorf("caesar: %w", ErrEmptyInput)
	}

	res := caesarResult{candidates: make([]shiftCandidate, 0, nrLetters)}
	for s := 0; s < nrLetters; s++ {
		p := decodeShift(ciphertext, s)
		res.candidates = append(res.candidates, shiftCandidate{shift: s, plaintext: p, score: wl.score(p)})
	}
	res.best = bestShift(res.candidates)

	return res, nil
}
