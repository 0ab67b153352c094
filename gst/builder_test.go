// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderNodeCountBound(t *testing.T) {
	b := NewBuilder()
	text := []byte("abcabxabcdA")
	b.ExtendAll(text)
	assert.LessOrEqual(t, b.store.size(), 2*len(text))
}

func TestBuilderRootChildSymbols(t *testing.T) {
	b := NewBuilder()
	b.ExtendAll([]byte("abcabxabcdA"))
	assert.ElementsMatch(t, []byte{'a', 'b', 'c', 'd', 'x', 'A'}, b.store.sortedChildren(rootID))
}

func TestBuilderActivePointAdvancesOnRule3(t *testing.T) {
	b := NewBuilder()
	b.Extend('a')
	trace := b.Extend('a')
	assert.Equal(t, rootID, trace.ActiveNode)
	assert.True(t, trace.HasEdge)
	assert.Equal(t, 1, trace.ActiveLength)
}

func TestBuilderLastPhaseDrainsRemaining(t *testing.T) {
	b := NewBuilder()
	var trace PhaseTrace
	for _, sym := range []byte("aaaA") {
		trace = b.Extend(sym)
	}
	assert.Equal(t, 0, trace.Remaining)
}
