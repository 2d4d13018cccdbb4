// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bioviz/gwasplot/genome"
)

// Print writes l to standard output. See Fprint.
func Print(config []*Config, l *genome.Layout) error {
	return Fprint(os.Stdout, config, l)
}

// Fprint writes the configuration block config followed by a
// tab-separated table of the records in l. The table has the columns
// group, position, display, value, and label, so the output can be
// read back with Parse.
func Fprint(w io.Writer, config []*Config, l *genome.Layout) error {
	bw := bufio.NewWriter(w)
	for _, c := range config {
		if c.RawValue == "" {
			fmt.Fprintf(bw, "%s:\n", c.Key)
		} else {
			fmt.Fprintf(bw, "%s: %s\n", c.Key, c.RawValue)
		}
	}
	fmt.Fprintf(bw, "group\tposition\tdisplay\tvalue\tlabel\n")
	for _, r := range l.Records {
		label := r.Label
		if label == "" {
			label = "."
		}
		fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%s\n", r.Group, r.LocalPosition, r.Display, strconv.FormatFloat(r.Value, 'g', -1, 64), label)
	}
	return bw.Flush()
}

// FprintGroups writes one line per group of l giving its span on the
// display axis and its tick position.
func FprintGroups(w io.Writer, l *genome.Layout) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "group\tcount\tmin\tmax\toffset\tdisplay_min\tdisplay_max\ttick\n")
	for _, g := range l.Groups {
		fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n", g.Group, g.Count, g.MinLocal, g.MaxLocal, g.Offset, g.DisplayMin, g.DisplayMax, strconv.FormatFloat(g.Tick, 'g', -1, 64))
	}
	return bw.Flush()
}
