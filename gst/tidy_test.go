// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsnet/gst/gst"
)

// TestTidyFreezesAtOwnSentinel checks that a leaf's post-tidy edge stops at
// its own word's sentinel, never spilling into a different word's text
// that happens to follow it in the concatenated text.
func TestTidyFreezesAtOwnSentinel(t *testing.T) {
	words := [][]byte{[]byte("atcgatcga"), []byte("atcca"), []byte("gaak")}
	terminators := []byte("ABC")
	tree, err := gst.Build(words, terminators)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	text := concatenate(words, terminators)
	wordStarts := make([]int, len(words))
	wordEnds := make([]int, len(words))
	offset := 0
	for i, w := range words {
		wordStarts[i] = offset
		offset += len(w) + 1
		wordEnds[i] = offset
	}

	suffixes := tree.StringSuffixes()
	for rank, start := range tree.SuffixArray() {
		owner := -1
		for i := range words {
			if start >= wordStarts[i] && start < wordEnds[i] {
				owner = i
				break
			}
		}
		if !assert.NotEqual(t, -1, owner, "position %d belongs to no word", start) {
			continue
		}
		want := text[start:wordEnds[owner]]
		assert.Equal(t, want, suffixes[rank], "leaf at %d spilled past word %d's own sentinel", start, owner)
	}
}

func TestTidyLeafRanksArePermutation(t *testing.T) {
	words := [][]byte{[]byte("banana")}
	tree, err := gst.Build(words, []byte("A"))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	seen := make([]bool, tree.Length())
	var walk func(h gst.NodeHandle)
	walk = func(h gst.NodeHandle) {
		if h.IsLeaf() {
			rank, ok := h.SuffixRank()
			if assert.True(t, ok) {
				assert.False(t, seen[rank], "rank %d assigned twice", rank)
				seen[rank] = true
			}
			return
		}
		for _, sym := range h.Children() {
			child, _ := h.Child(sym)
			walk(child)
		}
	}
	walk(tree.Root())

	for r, ok := range seen {
		assert.True(t, ok, "rank %d never assigned", r)
	}
}
