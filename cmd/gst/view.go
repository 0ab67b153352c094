// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"strings"

	"github.com/dsnet/gst/gst"
)

// render prints tree in the mode named by mode: tree, sa, sfx, or lcp.
func render(tree *gst.Tree, mode string, detail bool) error {
	switch mode {
	case "tree":
		printTree(tree.Root(), 0, detail)
	case "sa":
		fmt.Println(tree.SuffixArray())
	case "sfx":
		for i, s := range tree.StringSuffixes() {
			fmt.Printf("%3d: %s\n", i, s)
		}
	case "lcp":
		fmt.Println(tree.LCPArray())
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
	return nil
}

// printTree walks node depth-first in child-symbol order.
func printTree(node gst.NodeHandle, depth int, detail bool) {
	indent := strings.Repeat("  ", depth)
	if node.ID() == 0 {
		fmt.Printf("%sroot\n", indent)
	} else {
		label := fmt.Sprintf("%s%q", indent, node.Label())
		if detail {
			if rank, ok := node.SuffixRank(); ok {
				label += fmt.Sprintf(" leaf sa_rank=%d", rank)
			} else if link, ok := node.SuffixLink(); ok {
				label += fmt.Sprintf(" -> node %d", link.ID())
			}
		}
		fmt.Println(label)
	}
	for _, sym := range node.Children() {
		child, _ := node.Child(sym)
		printTree(child, depth+1, detail)
	}
}
