package main

import (
	"sort"
)

// rankShifts returns the n best candidates by descending score. Equal
// scores keep their shift order, so the first one found stays ahead.
// n < 1 or n > len(cands) returns all of them.
func rankShifts(cands []shiftCandidate, n int) []shiftCandidate {
	set := make([]shiftCandidate, len(cands))
	copy(set, cands)
	sort.SliceStable(set, func(i, j int) bool { return set[i].score > set[j].score })

	if n > 0 && n < len(set) {
		set = set[:n]
	}
	return set
}

// bestShift returns the first candidate with the highest score.
func bestShift(cands []shiftCandidate) shiftCandidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best
}
