// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gst

import (
	"fmt"
	"runtime"
)

// Error is the wrapper type for boundary errors specific to this library:
// the caller's request was ill-formed and the engine never started a
// construction.
type Error string

func (e Error) Error() string { return "gst: " + string(e) }

var (
	ErrTooManyWords        error = Error("more words than terminators supplied")
	ErrDuplicateTerminator error = Error("duplicate terminator symbol")
	ErrEmptyInput          error = Error("no words supplied")
	ErrOutOfAlphabet       error = Error("symbol outside the alphabet")
)

// InvariantError reports a structural guard failure inside the node store:
// an attempt to double-write a suffix link, write a child onto a leaf, or
// overwrite an existing child under an edge symbol that wasn't just freed by
// a split. It always indicates a bug in the builder, never a caller mistake.
type InvariantError struct {
	Op     string // operation that was attempted, e.g. "setSuffixLink"
	NodeID int    // node the operation targeted
	Msg    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("gst: invariant violation: node %d: %s: %s", e.NodeID, e.Op, e.Msg)
}

// errRecover turns a panic raised by the node store's structural guards (via
// *InvariantError) into a normal error return at the Build boundary. A
// runtime error or a panic with a non-error value is a genuine bug and is
// re-raised; any other error value is returned as it is.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *InvariantError:
		*err = ex
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
