// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet validates words and terminator pools at the input
// boundary, the "alphabet/terminal validation" collaborator named out of
// the core engine's scope.
package alphabet

import "fmt"

// Error is this package's boundary error type, following gst.Error's
// "pkg: message" convention.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

var (
	ErrEmptyAlphabet    error = Error("alphabet is empty")
	ErrEmptyTerminators error = Error("terminator pool is empty")
	ErrOverlap          error = Error("alphabet and terminator pool share a symbol")
	ErrDuplicate        error = Error("terminator pool has a duplicate symbol")
)

// Set is a fixed, validated symbol universe: a word alphabet disjoint
// from a pool of terminator symbols, exactly the precondition gst.Build
// enforces on its own inputs. Validating here lets a caller like the CLI
// reject a bad word with the offending symbol named before any
// construction starts.
type Set struct {
	alphabet      []byte
	terminators   []byte
	inAlphabet    [256]bool
	inTerminators [256]bool
}

// New builds a Set from an alphabet and a terminator pool. Both must be
// non-empty and disjoint, and the terminator pool must not repeat a
// symbol.
func New(alphabet, terminators []byte) (*Set, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(terminators) == 0 {
		return nil, ErrEmptyTerminators
	}
	s := &Set{alphabet: alphabet, terminators: terminators}
	for _, c := range alphabet {
		s.inAlphabet[c] = true
	}
	for _, c := range terminators {
		if s.inAlphabet[c] {
			return nil, ErrOverlap
		}
		if s.inTerminators[c] {
			return nil, ErrDuplicate
		}
		s.inTerminators[c] = true
	}
	return s, nil
}

// ValidateWord reports the first symbol of w that falls outside the
// alphabet, if any.
func (s *Set) ValidateWord(w []byte) error {
	for _, c := range w {
		if !s.inAlphabet[c] {
			return fmt.Errorf("alphabet: symbol %q not in alphabet %q", c, s.alphabet)
		}
	}
	return nil
}

// ValidateWords validates every word in words in order, stopping at the
// first violation.
func (s *Set) ValidateWords(words [][]byte) error {
	for i, w := range words {
		if err := s.ValidateWord(w); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
	}
	return nil
}

// Terminators returns the first n symbols of the terminator pool, in the
// pool's own order, one per word. It fails if the pool is smaller than n.
func (s *Set) Terminators(n int) ([]byte, error) {
	if n > len(s.terminators) {
		return nil, fmt.Errorf("alphabet: need %d terminators, pool has %d", n, len(s.terminators))
	}
	return s.terminators[:n], nil
}

// Alphabet returns the word alphabet as supplied to New.
func (s *Set) Alphabet() []byte { return s.alphabet }

// TerminatorPool returns the terminator pool as supplied to New.
func (s *Set) TerminatorPool() []byte { return s.terminators }
