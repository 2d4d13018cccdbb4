// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bioviz/gwasplot/assoc"
	"github.com/bioviz/gwasplot/genome"
	"golang.org/x/sync/errgroup"
)

// loadTables parses each of paths concurrently. The path "-" means
// standard input.
func loadTables(paths []string) ([]*assoc.Table, error) {
	tabs := make([]*assoc.Table, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			tab, err := readTable(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tabs[i] = tab
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tabs, nil
}

func readTable(path string) (*assoc.Table, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	return assoc.Parse(f)
}

// input is the merged contents of all results files.
type input struct {
	records []genome.Record

	// config is the configuration of the first table.
	config []*assoc.Config

	skipped int

	// negLog10 indicates records hold -log10(p).
	negLog10 bool

	yLabel string

	tabs []*assoc.Table
}

// mergeTables concatenates the records of tabs in order. All tables
// must have the same kind of value column. If negLog10 is set,
// p-values are transformed to -log10(p).
func mergeTables(tabs []*assoc.Table, negLog10 bool) (*input, error) {
	in := &input{tabs: tabs}
	if len(tabs) == 0 {
		return in, nil
	}
	stat := tabs[0].Stat
	in.config = tabs[0].Config
	in.negLog10 = negLog10 && stat == "p"
	switch {
	case in.negLog10:
		in.yLabel = "-log10(p)"
	case stat == "p":
		in.yLabel = "p"
	default:
		in.yLabel = "value"
	}

	var transform assoc.Transform
	if in.negLog10 {
		transform = assoc.NegLog10
	}
	for i, tab := range tabs {
		if tab.Stat != stat {
			return nil, fmt.Errorf("input %d has %s column, but input 1 has %s column", i+1, tab.Stat, stat)
		}
		rs, err := tab.Records(transform)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		in.records = append(in.records, rs...)
		in.skipped += tab.Skipped
	}
	return in, nil
}

// threshold returns the significance threshold p-value given by the
// "threshold" configuration key of the first input that has one.
func (in *input) threshold() (float64, bool) {
	for _, tab := range in.tabs {
		if t, ok := tab.Float("threshold"); ok {
			return t, true
		}
	}
	return 0, false
}
