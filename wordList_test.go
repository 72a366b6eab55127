package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"there", 0},
		{"the cat", 1},
		{"total", 0},
		{"The end", 0},
		{"the cat and the dog", 3},
		{"that is it", 3},
		{"a a a", 2}, // " a " matches never share the padding space
		{"in the", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultWordList.score(tt.text), "score(%q)", tt.text)
	}
}

func TestScore_Deterministic(t *testing.T) {
	text := "it is the end of the world as we know it and i feel fine"
	first := defaultWordList.score(text)
	assert.GreaterOrEqual(t, first, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, defaultWordList.score(text))
	}
}

func TestNewWordList(t *testing.T) {
	wl, err := newWordList([]string{"cat", "dog"})
	require.NoError(t, err)
	assert.Equal(t, 2, wl.score("cat and dog"))
	if diff := cmp.Diff([]string{"cat", "dog"}, wl.words()); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range [][]string{nil, {""}, {"The"}, {"it's"}, {"a", "a"}} {
		_, err := newWordList(bad)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "newWordList(%q) = %v", bad, err)
	}
}

func TestDefaultWordList(t *testing.T) {
	if diff := cmp.Diff(defaultProbes, defaultWordList.words()); diff != "" {
		t.Errorf("default probes mismatch (-want +got):\n%s", diff)
	}
}

func TestValidRank(t *testing.T) {
	assert.NoError(t, validRank(englishRank))
	assert.NoError(t, validRank("abcdefghijklmnopqrstuvwxyz"))

	for _, bad := range []string{"", "abc", "aacdefghijklmnopqrstuvwxyz", "Abcdefghijklmnopqrstuvwxyz"} {
		assert.ErrorIs(t, validRank(bad), ErrInvalidConfig, "validRank(%q)", bad)
	}
}
