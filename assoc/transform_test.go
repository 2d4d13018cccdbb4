// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assoc

import (
	"math"
	"testing"
)

func TestNegLog10(t *testing.T) {
	for _, test := range []struct {
		p, want float64
	}{
		{1, 0},
		{0.1, 1},
		{1e-8, 8},
		{0, -math.Log10(math.SmallestNonzeroFloat64)},
	} {
		got, err := NegLog10(test.p)
		if err != nil {
			t.Errorf("NegLog10(%v): unexpected error %v", test.p, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-12 || math.Signbit(got) {
			t.Errorf("NegLog10(%v): want %v, got %v", test.p, test.want, got)
		}
	}

	for _, p := range []float64{-0.5, 1.01, math.NaN(), math.Inf(1)} {
		if _, err := NegLog10(p); err == nil {
			t.Errorf("NegLog10(%v) succeeded", p)
		}
	}
}

func TestTransformFor(t *testing.T) {
	if TransformFor("p") == nil {
		t.Errorf("TransformFor(\"p\") is nil")
	}
	if TransformFor("value") != nil {
		t.Errorf("TransformFor(\"value\") is not nil")
	}
}
