// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsnet/gst/gst"
	"github.com/dsnet/gst/internal/testutil"
)

// TestStressRandomCorpus builds a tree over a large random word corpus and
// checks the structural invariants that must hold regardless of content:
// a bounded node count, a valid SA permutation, and an LCP array of the
// same length as SA that starts with 0.
func TestStressRandomCorpus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}

	r := testutil.NewRand(0)
	alphabet := testutil.RandomAlphabet(8)
	terminators := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	// Only len(terminators) distinct sentinels are available, so the target
	// corpus size is reached with long words rather than many of them.
	const targetTotal = 100000
	numWords := len(terminators)
	minLen, maxLen := targetTotal/numWords, 2*targetTotal/numWords
	words := testutil.RandomWords(r, numWords, minLen, maxLen, alphabet)

	tree, err := gst.Build(words, terminators[:len(words)])
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.LessOrEqual(t, tree.NodeCount(), 2*tree.Length())

	sa := tree.SuffixArray()
	assert.Len(t, sa, tree.Length())
	seen := make([]bool, tree.Length())
	for _, p := range sa {
		assert.False(t, seen[p])
		seen[p] = true
	}
	for _, ok := range seen {
		assert.True(t, ok)
	}

	assert.Equal(t, 0, tree.LCPArray()[0])
	assert.Len(t, tree.LCPArray(), len(sa))
}
