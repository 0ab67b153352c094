// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

// RandomAlphabet returns the first n letters of the lowercase Latin
// alphabet. It panics if n is outside [1, 26].
func RandomAlphabet(n int) []byte {
	if n < 1 || n > 26 {
		panic("alphabet size must be between 1 and 26")
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(i)
	}
	return b
}

// RandomWords generates cnt random words drawn from alphabet, with lengths
// uniformly distributed in [minLen, maxLen]. It is driven by an explicit
// Rand rather than the global math/rand source, so that stress runs are
// reproducible across Go versions.
func RandomWords(r *Rand, cnt, minLen, maxLen int, alphabet []byte) [][]byte {
	if minLen < 0 || maxLen < minLen {
		panic("invalid length range")
	}
	words := make([][]byte, cnt)
	span := maxLen - minLen + 1
	for i := range words {
		n := minLen
		if span > 1 {
			n += r.Intn(span)
		}
		words[i] = r.Word(n, alphabet)
	}
	return words
}

// TotalLen returns the sum of lengths of words.
func TotalLen(words [][]byte) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}
