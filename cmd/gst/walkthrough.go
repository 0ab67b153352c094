// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"

	"github.com/dsnet/gst/gst"
)

// runWalkthrough re-runs the construction one phase at a time, printing the
// active point after each symbol; -d controls verbosity.
func runWalkthrough(words [][]byte, terminators []byte, detail bool) {
	b := gst.NewBuilder()
	for i, w := range words {
		for _, sym := range w {
			trace := b.Extend(sym)
			printTrace(trace, detail)
		}
		trace := b.Extend(terminators[i])
		printTrace(trace, detail)
	}
}

func printTrace(t gst.PhaseTrace, detail bool) {
	fmt.Printf("phase %2d: symbol=%q remaining=%d active_node=%d", t.Phase, t.Symbol, t.Remaining, t.ActiveNode)
	if t.HasEdge {
		fmt.Printf(" active_edge=%q active_length=%d", t.ActiveEdge, t.ActiveLength)
	}
	fmt.Println()
	if detail && t.Remaining == 0 {
		fmt.Println("  -- phase complete, every suffix inserted --")
	}
}
