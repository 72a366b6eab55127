package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// keyMap is a substitution key: key[c] is the plaintext letter index for
// cipher letter index c. A valid keyMap is a permutation of 0-25.
type keyMap [nrLetters]byte

// valid reports whether k is a bijection over the alphabet.
func (k keyMap) valid() bool {
	var used [nrLetters]bool
	for _, c := range k {
		if int(c) >= nrLetters || used[c] {
			return false
		}
		used[c] = true
	}
	return true
}

// swap returns a copy of k with the outputs for a and b exchanged.
// Swapping two outputs of a permutation always yields a permutation.
func (k keyMap) swap(a, b int) keyMap {
	k[a], k[b] = k[b], k[a]
	return k
}

// inverse returns the key that undoes k; encoding with a key is decoding
// with its inverse.
func (k keyMap) inverse() keyMap {
	var inv keyMap
	for c, p := range k {
		inv[p] = byte(c)
	}
	return inv
}

// decode applies k to lowercase letters and passes every other byte
// through unchanged.
func (k keyMap) decode(text string) string {
	out := []byte(text)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = 'a' + k[c-'a']
		}
	}
	return string(out)
}

// letters returns the plaintext letters for cipher letters a-z in order.
func (k keyMap) letters() string {
	var b [nrLetters]byte
	for i, p := range k {
		b[i] = 'a' + p
	}
	return string(b[:])
}

func (k keyMap) String() string {
	var ret strings.Builder
	for i, p := range k {
		if i > 0 {
			ret.WriteByte(' ')
		}
		fmt.Fprintf(&ret, "%c=%c", 'a'+i, 'a'+p)
	}
	return ret.String()
}

var rxKey = regexp.MustCompile(`\s*([A-Z]+=[A-Z]+)(?:[ ,]|$)`)

// parseKeyMap reads a full substitution key. Two forms are accepted:
//
//	qwertyuiopasdfghjklzxcvbnm    plaintext letter for each of a..z
//	ABC=THE D=Q, ...              CIPHER=PLAIN pairs covering all 26 letters
//
// Case is ignored. The result must be a permutation.
func parseKeyMap(line string) (keyMap, error) {
	var k keyMap
	up := bytes.ToUpper(bytes.TrimSpace([]byte(line)))

	if len(up) == nrLetters && !bytes.ContainsAny(up, "=, ") {
		for i, c := range up {
			if !isLetter(c) {
				return k, fmt.Errorf("%w: %q is not a letter", ErrInvalidKey, c)
			}
			k[i] = byte(letterIndex[c])
		}
		if !k.valid() {
			return k, fmt.Errorf("%w: %s repeats a letter", ErrInvalidKey, line)
		}
		return k, nil
	}

	mappings := rxKey.FindAllSubmatch(up, -1)
	if len(mappings) == 0 {
		return k, fmt.Errorf("%w: no mappings in %q", ErrInvalidKey, line)
	}

	var set, used [nrLetters]bool
	for _, m := range mappings {
		kv := bytes.SplitN(m[1], []byte("="), 2)
		if len(kv) != 2 || len(kv[0]) != len(kv[1]) {
			return k, fmt.Errorf("%w: mapping %s has unequal sides", ErrInvalidKey, m[1])
		}

		// kv[0] is the encrypted side, kv[1] the decrypted side
		for i, cc := range kv[0] {
			c, p := letterIndex[cc], letterIndex[kv[1][i]]
			if set[c] && k[c] != byte(p) {
				return k, fmt.Errorf("%w: %c mapped twice", ErrInvalidKey, cc)
			}
			if !set[c] && used[p] {
				return k, fmt.Errorf("%w: %c is the target of two letters", ErrInvalidKey, kv[1][i])
			}
			k[c] = byte(p)
			set[c] = true
			used[p] = true
		}
	}

	for c, ok := range set {
		if !ok {
			return k, fmt.Errorf("%w: no mapping for %c", ErrInvalidKey, 'A'+c)
		}
	}
	return k, nil
}
