// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package gst builds a generalized suffix tree over a set of words using
// Ukkonen's on-line construction, generalized to multiple strings via
// per-word sentinel terminators, and derives the concatenated-text suffix
// array and LCP array from it.
package gst

import (
	"fmt"
	"hash/crc32"

	"github.com/dsnet/golib/hashmerge"
)

// Tree is the result of one construction: a tidied generalized suffix tree
// plus its derived suffix array and LCP array. A Tree is immutable and safe
// for concurrent readers once Build has returned it.
type Tree struct {
	store *nodeStore
	text  []byte

	words       [][]byte
	terminators []byte
	wordStarts  []int
	isSentinel  [256]bool

	sa  []int
	lcp []int
}

// Build constructs the generalized suffix tree for words, assigning each
// words[i] the terminator terminators[i]. It fails with a gst.Error if the
// request is ill-formed, and returns an error wrapping an *InvariantError
// (prefixed with the construction checksum) if the node store rejects an
// operation the builder issued — which would indicate a bug in this
// package, not in the caller.
func Build(words [][]byte, terminators []byte) (tree *Tree, err error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	if len(words) > len(terminators) {
		return nil, ErrTooManyWords
	}
	terminators = terminators[:len(words)]

	var isTerm [256]bool
	for _, t := range terminators {
		if isTerm[t] {
			return nil, ErrDuplicateTerminator
		}
		isTerm[t] = true
	}
	for _, w := range words {
		for _, c := range w {
			if isTerm[c] {
				return nil, ErrOutOfAlphabet
			}
		}
	}

	defer func() {
		errRecover(&err)
		if ie, ok := err.(*InvariantError); ok {
			err = fmt.Errorf("gst: construction checksum %08x: %w", foldChecksum(words, terminators), ie)
		}
	}()

	b := NewBuilder()
	wordStarts := make([]int, len(words))
	for i, w := range words {
		wordStarts[i] = len(b.text)
		b.ExtendAll(w)
		b.Extend(terminators[i])
	}

	t := &Tree{
		store:       b.store,
		text:        b.text,
		words:       words,
		terminators: terminators,
		wordStarts:  wordStarts,
		isSentinel:  isTerm,
	}
	t.tidy()
	return t, nil
}

// SuffixArray returns the positions into the concatenated text, in sorted
// suffix order.
func (t *Tree) SuffixArray() []int { return t.sa }

// LCPArray returns the longest-common-prefix lengths aligned with
// SuffixArray; LCPArray()[0] is always 0.
func (t *Tree) LCPArray() []int { return t.lcp }

// StringSuffixes returns the suffixes of the concatenated text in SA order,
// each truncated at its first sentinel inclusive.
func (t *Tree) StringSuffixes() [][]byte {
	out := make([][]byte, len(t.sa))
	for i, start := range t.sa {
		p := start
		for !t.isSentinel[t.text[p]] {
			p++
		}
		out[i] = t.text[start : p+1]
	}
	return out
}

// Root returns a handle to the tree's root.
func (t *Tree) Root() NodeHandle { return t.handle(rootID) }

// Word returns words[i] as supplied to Build, without its terminator.
func (t *Tree) Word(i int) []byte { return t.words[i] }

// Words returns every word as supplied to Build.
func (t *Tree) Words() [][]byte { return t.words }

// Length returns the length of the concatenated text, words and
// terminators included.
func (t *Tree) Length() int { return len(t.text) }

// NodeCount returns the total number of nodes in the tree, root included.
// It never exceeds 2*Length().
func (t *Tree) NodeCount() int { return t.store.size() }

// Checksum folds a CRC-32 of each word (its terminator included) into one
// combined checksum, the same "per-unit checksum combined into a whole"
// shape bzip2 uses to combine per-block CRCs into a stream CRC. It gives a
// large generated corpus a short fingerprint to tell two failing
// constructions apart in logs without dumping the text.
func (t *Tree) Checksum() uint32 {
	return foldChecksum(t.words, t.terminators)
}

func foldChecksum(words [][]byte, terminators []byte) uint32 {
	var combined uint32
	for i, w := range words {
		unit := append(append([]byte(nil), w...), terminators[i])
		c := crc32.ChecksumIEEE(unit)
		if i == 0 {
			combined = c
			continue
		}
		combined = hashmerge.CombineCRC32(crc32.IEEE, combined, c, int64(len(unit)))
	}
	return combined
}

// NodeHandle is a read-only introspection view over one node of a Tree. It
// never exposes a mutation method: once Build returns, the tree it
// describes is frozen.
type NodeHandle struct {
	tree *Tree
	id   int
}

func (t *Tree) handle(id int) NodeHandle { return NodeHandle{tree: t, id: id} }

// ID returns the node's dense identifier (0 is always the root).
func (h NodeHandle) ID() int { return h.id }

// IsLeaf reports whether the node has never acquired children.
func (h NodeHandle) IsLeaf() bool { return h.tree.store.node(h.id).isLeaf }

// Start returns the index in the concatenated text of the first symbol on
// the edge entering this node. It is meaningless on the root.
func (h NodeHandle) Start() int { return h.tree.store.node(h.id).start }

// End returns the exclusive end index of the edge entering this node.
func (h NodeHandle) End() int { return h.tree.store.edgeEnd(h.id) }

// Label returns the edge label entering this node — empty for the root.
func (h NodeHandle) Label() []byte {
	if h.id == rootID {
		return nil
	}
	return h.tree.text[h.Start():h.End()]
}

// PathLabel returns the full path label from the root to this node.
func (h NodeHandle) PathLabel() []byte {
	var parts [][]byte
	for id := h.id; id != rootID; {
		n := h.tree.store.node(id)
		parts = append(parts, h.tree.text[n.start:h.tree.store.edgeEnd(id)])
		id = n.parent
	}
	var out []byte
	for i := len(parts) - 1; i >= 0; i-- {
		out = append(out, parts[i]...)
	}
	return out
}

// SuffixRank returns the leaf's rank in suffix-array order. It is only
// meaningful on a leaf, and only after tidy has run.
func (h NodeHandle) SuffixRank() (int, bool) {
	n := h.tree.store.node(h.id)
	if !n.isLeaf || n.saRank < 0 {
		return 0, false
	}
	return n.saRank, true
}

// SuffixLink returns the node's installed suffix link, if any.
func (h NodeHandle) SuffixLink() (NodeHandle, bool) {
	link, ok := h.tree.store.suffixLink(h.id)
	if !ok {
		return NodeHandle{}, false
	}
	return h.tree.handle(link), true
}

// Children returns the first symbols of the node's outgoing edges, in
// ascending order.
func (h NodeHandle) Children() []byte {
	return h.tree.store.sortedChildren(h.id)
}

// Child returns the child reached by following sym from this node.
func (h NodeHandle) Child(sym byte) (NodeHandle, bool) {
	id, ok := h.tree.store.getChild(h.id, sym)
	if !ok {
		return NodeHandle{}, false
	}
	return h.tree.handle(id), true
}

// NumChildren returns the number of outgoing edges.
func (h NodeHandle) NumChildren() int {
	return len(h.tree.store.node(h.id).children)
}

func (h NodeHandle) String() string {
	return fmt.Sprintf("node(%d, [%d:%d), leaf=%v)", h.id, h.Start(), h.End(), h.IsLeaf())
}
