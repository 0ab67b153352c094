// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst

// Builder runs Ukkonen's on-line algorithm over a single concatenated text,
// one symbol (one "phase" in the classic exposition) at a time. All mutable
// per-construction state lives here — including the shared leaf end cell —
// so that two Builders in the same process never alias each other.
type Builder struct {
	store *nodeStore
	text  []byte

	leafEnd      int // shared cell; −1 before the first phase
	activeNode   int
	activeEdge   byte
	activeLength int
	remaining    int
}

// NewBuilder returns a Builder ready to extend an empty text.
func NewBuilder() *Builder {
	return &Builder{
		store:      newNodeStore(),
		leafEnd:    -1,
		activeNode: rootID,
	}
}

// PhaseTrace reports the active point after one phase, for the CLI's
// --walkthrough mode. It is a plain snapshot, not a live view: mutating it
// has no effect on the Builder.
type PhaseTrace struct {
	Phase        int
	Symbol       byte
	ActiveNode   int
	ActiveEdge   byte
	HasEdge      bool
	ActiveLength int
	Remaining    int
}

// Extend appends one symbol to the text under construction and performs
// the corresponding Ukkonen phase. It panics with *InvariantError if the
// node store rejects an operation the builder issues; Build recovers that
// panic at the public boundary.
func (b *Builder) Extend(symbol byte) PhaseTrace {
	b.text = append(b.text, symbol)
	i := len(b.text) - 1

	b.leafEnd = i // Rule 1: every existing leaf edge now implicitly reaches i.
	b.remaining++

	lastNewInternal := -1 // node id awaiting a suffix link, or -1 if none

	for b.remaining > 0 {
		if b.activeLength == 0 {
			b.activeEdge = symbol
		}

		childID, hasChild := b.store.getChild(b.activeNode, b.activeEdge)

		if !hasChild {
			// Rule 2, node-at-node: the active edge doesn't exist yet.
			leaf := b.store.newLeaf(i, b.activeNode, &b.leafEnd)
			b.store.setChild(b.activeNode, b.activeEdge, leaf)
			if lastNewInternal != -1 {
				b.store.setSuffixLink(lastNewInternal, b.activeNode)
				lastNewInternal = -1
			}
		} else {
			edgeLen := b.store.edgeLen(childID)
			if b.activeLength >= edgeLen {
				// Walk-down: the active point has already crossed this
				// whole edge; re-root the extension at childID and retry.
				b.activeNode = childID
				b.activeLength -= edgeLen
				b.activeEdge = b.text[i-b.activeLength]
				continue
			}

			next := b.store.node(childID)
			c := b.store.edgeSymbolAt(b.text, childID, b.activeLength)
			if c == symbol {
				// Rule 3: this suffix is already present on the edge.
				b.activeLength++
				if lastNewInternal != -1 {
					b.store.setSuffixLink(lastNewInternal, b.activeNode)
					lastNewInternal = -1
				}
				break // show-stopper: stop extending for this phase
			}

			// Rule 2, edge-split.
			splitEnd := next.start + b.activeLength
			split := b.store.newInternal(next.start, splitEnd, b.activeNode)
			b.store.replaceChild(b.activeNode, b.activeEdge, split)

			b.store.repointStart(childID, splitEnd)
			b.store.node(childID).parent = split
			b.store.setChild(split, c, childID)

			leaf := b.store.newLeaf(i, split, &b.leafEnd)
			b.store.setChild(split, symbol, leaf)

			if lastNewInternal != -1 {
				b.store.setSuffixLink(lastNewInternal, split)
			}
			lastNewInternal = split
		}

		b.remaining--
		switch {
		case b.activeNode == rootID && b.activeLength > 0:
			b.activeLength--
			b.activeEdge = b.text[i-b.remaining+1]
		case b.activeNode != rootID:
			if link, ok := b.store.suffixLink(b.activeNode); ok {
				b.activeNode = link
			} else {
				b.activeNode = rootID
			}
		}
	}

	hasEdge := b.activeLength > 0
	return PhaseTrace{
		Phase:        i,
		Symbol:       symbol,
		ActiveNode:   b.activeNode,
		ActiveEdge:   b.activeEdge,
		HasEdge:      hasEdge,
		ActiveLength: b.activeLength,
		Remaining:    b.remaining,
	}
}

// ExtendAll runs Extend once per byte of text, in order.
func (b *Builder) ExtendAll(text []byte) {
	for _, sym := range text {
		b.Extend(sym)
	}
}
