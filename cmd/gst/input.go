// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/dsnet/golib/unitconv"

	"github.com/dsnet/gst/internal/alphabet"
)

// presets are the CLI's two canonical demo inputs, named for the -p flag.
var presets = map[string][][]byte{
	"abac": {[]byte("abacababacabacaba")},
	"abab": {[]byte("abaabaab"), []byte("abbaabbab")},
}

// resolveWords picks exactly one input source among -p, -i, -f, and -w, in
// that priority order, and returns the words it names.
func resolveWords(preset string, stdin bool, file string, words [][]byte) ([][]byte, error) {
	switch {
	case preset != "":
		w, ok := presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return w, nil
	case stdin:
		return readWords(os.Stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readWords(f)
	case len(words) > 0:
		return words, nil
	default:
		return nil, fmt.Errorf("no input selected: use one of -p, -i, -f, -w")
	}
}

func readWords(r *os.File) ([][]byte, error) {
	var words [][]byte
	s := bufio.NewScanner(r)
	for s.Scan() {
		if len(s.Bytes()) == 0 {
			continue
		}
		words = append(words, append([]byte(nil), s.Bytes()...))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words read")
	}
	return words, nil
}

// magnitude recognizes a bare magnitude count such as "3" or "2k" (digits,
// an optional fraction, and an optional letter suffix), as opposed to a
// literal string of terminator symbols. A string it matches that
// ParsePrefix then rejects is still treated as a literal pool; a pool made
// only of digits is read as a count.
var magnitude = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[a-zA-Z]*$`)

// resolveTerminators interprets -t as either a literal terminator pool or,
// via dsnet/golib/unitconv.ParsePrefix, a count of how many terminators to
// draw from the default uppercase pool.
func resolveTerminators(raw string, numWords int, set *alphabet.Set) ([]byte, error) {
	if magnitude.MatchString(raw) {
		n, err := unitconv.ParsePrefix(raw, unitconv.AutoParse)
		if err == nil {
			pool := []byte(defaultTerminators)
			if int(n) > len(pool) {
				return nil, fmt.Errorf("terminator count %d exceeds default pool of %d", int(n), len(pool))
			}
			return pool[:int(n)], nil
		}
	}
	return set.Terminators(numWords)
}
