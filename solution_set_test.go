package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func shifts(cands []shiftCandidate) []int {
	ret := make([]int, len(cands))
	for i, c := range cands {
		ret[i] = c.shift
	}
	return ret
}

func TestRankShifts(t *testing.T) {
	cands := []shiftCandidate{
		{shift: 0, score: 1},
		{shift: 1, score: 3},
		{shift: 2, score: 3},
		{shift: 3, score: 0},
	}

	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{1, 2, 0, 3}},
		{2, []int{1, 2}},
		{10, []int{1, 2, 0, 3}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, shifts(rankShifts(cands, tt.n))); diff != "" {
			t.Errorf("rankShifts(n=%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3}, shifts(cands), "input must not be reordered")
}

func TestBestShift(t *testing.T) {
	cands := []shiftCandidate{
		{shift: 0, score: 0},
		{shift: 1, score: 2},
		{shift: 2, score: 2},
	}
	assert.Equal(t, 1, bestShift(cands).shift)
	assert.Equal(t, 0, bestShift(cands[:1]).shift)
}
