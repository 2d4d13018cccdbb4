// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// An Order is a total order over group IDs.
//
// Compare returns a negative number if a sorts before b, a positive
// number if a sorts after b, and 0 if the order does not distinguish
// them. Compare must return an error if either ID is outside the
// order's domain, including when a == b.
type Order interface {
	Compare(a, b string) (int, error)
}

// OrderFunc adapts an ordinary comparison function to an Order whose
// domain is every string.
type OrderFunc func(a, b string) int

func (f OrderFunc) Compare(a, b string) (int, error) {
	return f(a, b), nil
}

// NaturalOrder sorts IDs that parse as integers numerically and
// before all other IDs, which are sorted lexicographically.
//
// Distinct IDs with the same integer value, such as "1" and "01", are
// not ordered.
var NaturalOrder Order = OrderFunc(compareNatural)

func compareNatural(a, b string) int {
	an, aerr := strconv.ParseInt(a, 10, 64)
	bn, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		return compareInt(an, bn)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// KaryotypeOrder sorts chromosome names the way they are
// conventionally drawn: autosomes numerically, then X, Y, XY and the
// mitochondrial chromosome, then any other sequence lexicographically.
// A leading "chr" is ignored, so "chr2" and "2" are not ordered with
// respect to each other.
var KaryotypeOrder Order = OrderFunc(compareKaryotype)

// Ranks of the non-numbered chromosomes. These sort after any
// realistic autosome number.
var sexChromRank = map[string]int64{
	"X":  1 << 40,
	"Y":  1<<40 + 1,
	"XY": 1<<40 + 2,
	"M":  1<<40 + 3,
	"MT": 1<<40 + 3,
}

func karyotypeKey(id string) (rank int64, rest string) {
	name := id
	if len(name) > 3 && strings.EqualFold(name[:3], "chr") {
		name = name[3:]
	}
	if n, err := strconv.ParseInt(name, 10, 64); err == nil && n >= 0 {
		return n, ""
	}
	if r, ok := sexChromRank[strings.ToUpper(name)]; ok {
		return r, ""
	}
	// Unplaced contigs, scaffolds, and so on.
	return 1 << 41, name
}

func compareKaryotype(a, b string) int {
	ar, arest := karyotypeKey(a)
	br, brest := karyotypeKey(b)
	if c := compareInt(ar, br); c != 0 {
		return c
	}
	return strings.Compare(arest, brest)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type explicitOrder map[string]int

// ExplicitOrder returns an Order that sorts IDs in the order they
// appear in ids. IDs not in ids are outside its domain. If an ID
// appears more than once, its first position is used.
func ExplicitOrder(ids ...string) Order {
	o := make(explicitOrder, len(ids))
	for i, id := range ids {
		if _, ok := o[id]; !ok {
			o[id] = i
		}
	}
	return o
}

func (o explicitOrder) Compare(a, b string) (int, error) {
	ai, ok := o[a]
	if !ok {
		return 0, fmt.Errorf("group %q not in explicit order", a)
	}
	bi, ok := o[b]
	if !ok {
		return 0, fmt.Errorf("group %q not in explicit order", b)
	}
	return ai - bi, nil
}

// sortGroups sorts ids in place according to order. ids must be
// distinct. It fails if order cannot place every ID or does not
// strictly order every pair of IDs.
func sortGroups(ids []string, order Order) error {
	for _, id := range ids {
		if _, err := order.Compare(id, id); err != nil {
			return &AmbiguousOrderError{A: id, Err: err}
		}
	}

	var sortErr error
	sort.SliceStable(ids, func(i, j int) bool {
		c, err := order.Compare(ids[i], ids[j])
		if err != nil && sortErr == nil {
			sortErr = &AmbiguousOrderError{A: ids[i], B: ids[j], Err: err}
		}
		return c < 0
	})
	if sortErr != nil {
		return sortErr
	}

	// Sorting only consults some pairs, so an order that is not
	// transitive can still leave adjacent IDs increasing. Check
	// every pair.
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			c, err := order.Compare(ids[i], ids[j])
			if err != nil {
				return &AmbiguousOrderError{A: ids[i], B: ids[j], Err: err}
			}
			if c >= 0 {
				return &AmbiguousOrderError{A: ids[i], B: ids[j]}
			}
		}
	}
	return nil
}
