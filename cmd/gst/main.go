// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command gst builds a generalized suffix tree over one or more words and
// prints the tree, the suffix array, the LCP array, or the sorted suffixes
// themselves.
//
// Example usage:
//	$ gst -p abac -o sa
//	$ gst -w banana -w bandana -o lcp
//	$ gst -w mississippi -walkthrough
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dsnet/gst/gst"
	"github.com/dsnet/gst/internal/alphabet"
)

const (
	defaultAlphabet    = "abcdefghijklmnopqrstuvwxyz"
	defaultTerminators = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// wordFlag collects repeated -w flags in the order given.
type wordFlag [][]byte

func (f *wordFlag) String() string {
	return fmt.Sprint(*f)
}

func (f *wordFlag) Set(s string) error {
	*f = append(*f, []byte(s))
	return nil
}

func main() {
	var words wordFlag

	alphabetFlag := flag.String("a", defaultAlphabet, "alphabet of symbols allowed in words")
	termFlag := flag.String("t", defaultTerminators, "terminator pool, or a count of how many to take from it")
	presetFlag := flag.String("p", "", "preset input: abac or abab")
	stdinFlag := flag.Bool("i", false, "read one word per line from stdin")
	fileFlag := flag.String("f", "", "read one word per line from a file")
	flag.Var(&words, "w", "a literal word (repeatable)")
	outFlag := flag.String("o", "tree", "output mode: tree, sa, sfx, or lcp")
	walkFlag := flag.Bool("walkthrough", false, "trace Ukkonen's phases instead of printing output")
	displayFlag := flag.Bool("d", false, "show extra detail in the chosen output mode")
	flag.Parse()

	oSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			oSet = true
		}
	})
	if *walkFlag && oSet {
		fmt.Fprintln(os.Stderr, "gst: -o and -walkthrough are mutually exclusive")
		os.Exit(1)
	}

	inputWords, err := resolveWords(*presetFlag, *stdinFlag, *fileFlag, words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}

	set, err := alphabet.New([]byte(*alphabetFlag), []byte(*termFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}
	if err := set.ValidateWords(inputWords); err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}
	terminators, err := resolveTerminators(*termFlag, len(inputWords), set)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}

	if *walkFlag {
		runWalkthrough(inputWords, terminators, *displayFlag)
		return
	}

	tree, err := gst.Build(inputWords, terminators)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}

	if err := render(tree, *outFlag, *displayFlag); err != nil {
		fmt.Fprintln(os.Stderr, "gst:", err)
		os.Exit(1)
	}
}
