package main

import (
	"strings"
)

const nrLetters = 26

// letterIndex maps an ASCII letter of either case to its alphabet index
// 0-25. Every other byte maps to -1.
var letterIndex = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for x := 0; x < nrLetters; x++ {
		idx['a'+x] = int8(x)
		idx['A'+x] = int8(x)
	}
	return idx
}()

func isLetter(c byte) bool {
	return letterIndex[c] >= 0
}

// normalize lowercases every letter, keeps the space character and drops
// everything else. Nothing is replaced by a space, so "don't" becomes
// "dont" and "a\nb" becomes "ab".
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isLetter(c):
			b.WriteByte('a' + byte(letterIndex[c]))
		case c == ' ':
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// joinLines joins input lines with a single newline between them.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// letterCounts counts the occurrences of each lowercase letter in text.
func letterCounts(text string) [nrLetters]int {
	var f [nrLetters]int
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= 'a' && c <= 'z' {
			f[c-'a']++
		}
	}
	return f
}

// isComment reports whether a cryptogram line should be skipped: its
// first non-blank byte is '#'. Punctuation ahead of the '#' makes it
// ciphertext.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}
