// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assoc

import (
	"fmt"
	"math"
)

// Conventional significance thresholds for genome-wide association
// studies.
const (
	GenomeWide = 5e-8
	Suggestive = 1e-5
)

// A Transform maps a value read from a results file to the value
// plotted.
type Transform func(float64) (float64, error)

// NegLog10 transforms a p-value p to -log10(p). p must be in [0, 1].
// A p-value of 0, which usually means the true p-value underflowed,
// is treated as the smallest positive float64.
func NegLog10(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("p-value %v out of range [0, 1]", p)
	}
	if p == 0 {
		p = math.SmallestNonzeroFloat64
	}
	return math.Abs(math.Log10(p)), nil
}

// TransformFor returns the transform that turns values of the given
// Stat into plot values: NegLog10 for "p" and nil otherwise.
func TransformFor(stat string) Transform {
	if stat == "p" {
		return NegLog10
	}
	return nil
}
