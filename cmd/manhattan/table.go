// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/table"
	"github.com/bioviz/gwasplot/genome"
)

// Column names shared by every table handed to the plot. Layers
// drawn from different tables share scales through these names.
const (
	colX     = "position"
	colY     = "value"
	colGroup = "chromosome"
	colBand  = "band"
	colLabel = "label"
	colLocal = "bp"
)

// layoutTable returns a table with one row per record in l.
//
// The band column alternates between "a" and "b" from one group to
// the next in display order, so adjacent groups can be told apart by
// color.
func layoutTable(l *genome.Layout) *table.Table {
	n := len(l.Records)
	xs := make([]float64, n)
	ys := make([]float64, n)
	groups := make([]string, n)
	bands := make([]string, n)
	labels := make([]string, n)
	locals := make([]int64, n)

	band := make(map[string]string, len(l.Groups))
	for i, g := range l.Groups {
		band[g.Group] = "ab"[i%2 : i%2+1]
	}
	for i, r := range l.Records {
		xs[i] = float64(r.Display)
		ys[i] = r.Value
		groups[i] = r.Group
		bands[i] = band[r.Group]
		labels[i] = r.Label
		locals[i] = r.LocalPosition
	}

	return new(table.Builder).
		Add(colGroup, groups).
		Add(colLocal, locals).
		Add(colX, xs).
		Add(colY, ys).
		Add(colLabel, labels).
		Add(colBand, bands).
		Done()
}

// ticksTable returns a table with one row per group of l giving the
// group's tick position. Every row's y value is y.
func ticksTable(l *genome.Layout, y float64) *table.Table {
	xs := make([]float64, len(l.Groups))
	ys := make([]float64, len(l.Groups))
	groups := make([]string, len(l.Groups))
	for i, g := range l.Groups {
		xs[i] = g.Tick
		ys[i] = y
		groups[i] = g.Group
	}
	return new(table.Builder).
		Add(colGroup, groups).
		Add(colX, xs).
		Add(colY, ys).
		Done()
}

// lineTable returns a two-row table spanning l's display extent at
// height y.
func lineTable(l *genome.Layout, y float64) *table.Table {
	lo, hi := l.Extent()
	return new(table.Builder).
		Add(colX, []float64{float64(lo), float64(hi)}).
		Add(colY, []float64{y, y}).
		Done()
}
