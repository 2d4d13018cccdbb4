// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Summary reduces the display coordinates of one group to the
// position of that group's axis tick. display is never empty.
type Summary func(display []int64) float64

func toFloats(xs []int64) []float64 {
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	return fs
}

// Median places a group's tick at the median of its records' display
// coordinates, so the label sits where most of the group's points
// are.
func Median(display []int64) float64 {
	xs := toFloats(display)
	sort.Float64s(xs)
	return stats.Sample{Xs: xs, Sorted: true}.Quantile(0.5)
}

// Mean places a group's tick at the mean display coordinate.
func Mean(display []int64) float64 {
	return stats.Mean(toFloats(display))
}

// Midpoint places a group's tick halfway between its first and last
// display coordinates.
func Midpoint(display []int64) float64 {
	lo, hi := stats.Bounds(toFloats(display))
	return (lo + hi) / 2
}

// SummaryByName returns the summary with the given name: "median",
// "mean", or "midpoint".
func SummaryByName(name string) (Summary, error) {
	switch name {
	case "median":
		return Median, nil
	case "mean":
		return Mean, nil
	case "midpoint":
		return Midpoint, nil
	}
	return nil, fmt.Errorf("unknown tick summary %q", name)
}
