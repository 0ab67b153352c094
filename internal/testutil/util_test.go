// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAlphabetBounds(t *testing.T) {
	assert.Panics(t, func() { RandomAlphabet(0) })
	assert.Panics(t, func() { RandomAlphabet(27) })
	assert.Equal(t, []byte("abcde"), RandomAlphabet(5))
}

func TestRandomWordsLengthRange(t *testing.T) {
	r := NewRand(1)
	words := RandomWords(r, 20, 2, 5, RandomAlphabet(4))
	assert.Len(t, words, 20)
	for _, w := range words {
		assert.GreaterOrEqual(t, len(w), 2)
		assert.LessOrEqual(t, len(w), 5)
		for _, c := range w {
			assert.Contains(t, "abcd", string(c))
		}
	}
}

func TestRandomWordsDeterministic(t *testing.T) {
	a := RandomWords(NewRand(42), 10, 1, 3, RandomAlphabet(3))
	b := RandomWords(NewRand(42), 10, 1, 3, RandomAlphabet(3))
	assert.Equal(t, a, b)
}

func TestTotalLen(t *testing.T) {
	words := [][]byte{[]byte("ab"), []byte("cde"), []byte("f")}
	assert.Equal(t, 6, TotalLen(words))
}
