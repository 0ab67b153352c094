// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst

// tidy converts the implicit tree Build assembled into an explicit one: it
// freezes every leaf's end at the first sentinel reachable on its own path,
// numbers leaves with their suffix-array rank, and derives SA and LCP
// online in the same depth-first pass.
func (t *Tree) tidy() {
	s := t.store

	sa := make([]int, 0, t.leafCountHint())
	lcp := make([]int, 0, t.leafCountHint())
	pendingDepth := 0

	freeze := func(id int) {
		n := s.node(id)
		p := n.start
		for !t.isSentinel[t.text[p]] {
			p++
		}
		n.end = p + 1
		n.leafEnd = nil
	}

	// recordLeaf is given the leaf's string-depth, which still counts its
	// live edge; the suffix it represents starts parentDepth symbols before
	// the leaf's own edge, since splits advance a leaf's start past the
	// path label of its parent.
	recordLeaf := func(id, depth int) {
		parentDepth := depth - s.edgeLen(id)
		freeze(id)
		n := s.node(id)
		n.saRank = len(sa)
		if len(sa) == 0 {
			lcp = append(lcp, 0)
		} else {
			lcp = append(lcp, pendingDepth)
		}
		sa = append(sa, n.start-parentDepth)
	}

	// visit walks the subtree rooted at id, whose own string-depth (path
	// length from the root) is depth. Visiting a non-first child of the
	// same parent marks depth as the LCA depth for the LCP entry about to
	// be produced by the next leaf reached.
	var visit func(id, depth int)
	visit = func(id, depth int) {
		n := s.node(id)
		if n.isLeaf {
			recordLeaf(id, depth)
			return
		}
		for idx, sym := range s.sortedChildren(id) {
			if idx > 0 {
				pendingDepth = depth
			}
			child, _ := s.getChild(id, sym)
			visit(child, depth+s.edgeLen(child))
		}
	}
	visit(rootID, 0)

	t.sa = sa
	t.lcp = lcp
}

// leafCountHint gives append a reasonable starting capacity: at most one
// leaf per text position.
func (t *Tree) leafCountHint() int { return len(t.text) }
