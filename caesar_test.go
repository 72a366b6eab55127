package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	assert.Equal(t, byte('A'), rotate('D', 3))
	assert.Equal(t, byte('z'), rotate('a', 1))
	assert.Equal(t, byte('a'), rotate('a', 26))
	assert.Equal(t, byte('!'), rotate('!', 5))
	assert.Equal(t, byte(' '), rotate(' ', 13))
}

func TestSolveCaesar_HelloWorld(t *testing.T) {
	res, err := solveCaesar("Khoor Zruog", defaultWordList)
	require.NoError(t, err)
	require.Len(t, res.candidates, nrLetters)
	assert.Equal(t, "Hello World", res.candidates[3].plaintext)
}

func TestSolveCaesar_RoundTrip(t *testing.T) {
	plain := "The quick brown fox, it JUMPS over the lazy dog... 42 times!"
	for k := 0; k < nrLetters; k++ {
		ct := encodeShift(plain, k)
		res, err := solveCaesar(ct, defaultWordList)
		require.NoError(t, err)
		assert.Equal(t, k, res.candidates[k].shift)
		assert.Equal(t, plain, res.candidates[k].plaintext, "shift %d", k)
	}
}

func TestSolveCaesar_Exhaustive(t *testing.T) {
	for _, ct := range []string{"?!", "Khoor", "1234567890", " ... "} {
		res, err := solveCaesar(ct, defaultWordList)
		require.NoError(t, err)
		require.Len(t, res.candidates, nrLetters)
		for s, c := range res.candidates {
			assert.Equal(t, s, c.shift)
			assert.GreaterOrEqual(t, c.score, 0)
		}
	}
}

func TestSolveCaesar_NoLetters(t *testing.T) {
	res, err := solveCaesar("?!", defaultWordList)
	require.NoError(t, err)
	for _, c := range res.candidates {
		assert.Equal(t, "?!", c.plaintext)
	}
	assert.Equal(t, 0, res.best.shift, "ties keep the first shift")
}

func TestSolveCaesar_PicksBest(t *testing.T) {
	plain := "meet me at the park and bring it to the house"
	res, err := solveCaesar(encodeShift(plain, 7), defaultWordList)
	require.NoError(t, err)

	assert.Equal(t, 7, res.best.shift)
	assert.Equal(t, plain, res.best.plaintext)
	assert.Equal(t, defaultWordList.score(plain), res.best.score)
	for _, c := range res.candidates {
		assert.LessOrEqual(t, c.score, res.best.score)
	}
}

func TestSolveCaesar_Empty(t *testing.T) {
	for _, ct := range []string{"", "   ", " \n\t "} {
		res, err := solveCaesar(ct, defaultWordList)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", ct)
		assert.Empty(t, res.candidates, "no partial result for %q", ct)
	}
}

func TestEncodeShift(t *testing.T) {
	assert.Equal(t, "Khoor Zruog", encodeShift("Hello World", 3))
	assert.Equal(t, "Hello World", encodeShift("Hello World", 0))
	assert.Equal(t, "Hello World", encodeShift("Hello World", 26))
}
