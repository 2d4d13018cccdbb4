// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import "fmt"

// InvalidInputError reports records that cannot be laid out.
type InvalidInputError struct {
	// Index is the index of the offending record, or -1 if the
	// error is not about a particular record.
	Index int

	// Group is the offending record's group, if any.
	Group string

	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: record %d (group %q): %s", e.Index, e.Group, e.Reason)
}

// AmbiguousOrderError reports a group order that does not totally
// order the groups present in the input.
type AmbiguousOrderError struct {
	// A and B are the groups the order failed to rank. B is empty
	// if the order could not place A at all.
	A, B string

	// Err is the error returned by the order, if any.
	Err error
}

func (e *AmbiguousOrderError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("ambiguous group order: cannot rank %q: %v", e.A, e.Err)
	case e.B == "":
		return fmt.Sprintf("ambiguous group order: cannot rank %q", e.A)
	}
	return fmt.Sprintf("ambiguous group order: %q and %q are not ordered", e.A, e.B)
}

func (e *AmbiguousOrderError) Unwrap() error {
	return e.Err
}
