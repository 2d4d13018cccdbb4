// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command manhattan plots genome-wide association results.
//
// manhattan reads one or more results files (see package assoc for
// the format), lays every chromosome end to end on a single x axis,
// and writes an SVG Manhattan plot of -log10(p) against that axis.
// Each chromosome is labeled at the median of its points and
// alternate chromosomes are drawn in alternate colors. A horizontal
// line marks the significance threshold.
//
// Usage:
//
//	manhattan [flags] [inputs...]
//
// With no inputs, manhattan reads standard input. Flags may also be
// given in the MANHATTANFLAGS environment variable, which is split
// using shell quoting rules and parsed before the command line.
//
// Instead of a plot, -table prints the plot's data table, -tsv prints
// the annotated records in results file format, and -spans prints
// each chromosome's span on the x axis.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/bioviz/gwasplot/assoc"
	"github.com/bioviz/gwasplot/genome"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	log.SetPrefix("manhattan: ")
	log.SetFlags(0)

	fs := flag.NewFlagSet("manhattan", flag.ExitOnError)
	var (
		flagOut       = fs.String("o", "", "write output to `file` (default: stdout)")
		flagTable     = fs.Bool("table", false, "output the plot's data table instead of a plot")
		flagTSV       = fs.Bool("tsv", false, "output annotated records instead of a plot")
		flagSpans     = fs.Bool("spans", false, "output chromosome spans instead of a plot")
		flagOrder     = fs.String("order", "karyotype", "order chromosomes by `order`: natural, karyotype, or list")
		flagGroups    = fs.String("groups", "", "comma-separated chromosome `list` for -order list")
		flagTick      = fs.String("tick", "median", "place chromosome labels at the `stat` of their points: median, mean, or midpoint")
		flagNegLog10  = fs.Bool("neglog10", true, "plot -log10 of p-value columns")
		flagThreshold = fs.Float64("threshold", assoc.GenomeWide, "draw a significance line at p-value `p`; 0 disables")
		flagTitle     = fs.String("title", "", "plot `title` (default: title config key or input names)")
		flagWidth     = fs.Int("width", 1000, "plot `width` in pixels")
		flagHeight    = fs.Int("height", 400, "plot `height` in pixels")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		fs.PrintDefaults()
	}

	args, err := envArgs(os.Getenv("MANHATTANFLAGS"), os.Args[1:])
	if err != nil {
		log.Fatalf("MANHATTANFLAGS: %v", err)
	}
	fs.Parse(args)
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	order, err := parseOrder(*flagOrder, *flagGroups)
	if err != nil {
		log.Print(err)
		fs.Usage()
		os.Exit(2)
	}
	tick, err := genome.SummaryByName(*flagTick)
	if err != nil {
		log.Print(err)
		fs.Usage()
		os.Exit(2)
	}

	// Parse inputs.
	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	tabs, err := loadTables(paths)
	if err != nil {
		log.Fatal(err)
	}
	in, err := mergeTables(tabs, *flagNegLog10)
	if err != nil {
		log.Fatal(err)
	}
	if in.skipped > 0 {
		log.Printf("skipped %d rows with missing values", in.skipped)
	}

	l, err := genome.Normalize(in.records, order, genome.WithTickSummary(tick))
	if err != nil {
		log.Fatal(err)
	}

	opts := plotOptions{
		title:  plotTitle(*flagTitle, in.config, paths),
		yLabel: in.yLabel,
	}
	threshold := *flagThreshold
	if !set["threshold"] {
		if t, ok := in.threshold(); ok {
			threshold = t
		}
	}
	if threshold > 0 && in.negLog10 {
		y, err := assoc.NegLog10(threshold)
		if err != nil {
			log.Fatalf("bad threshold: %v", err)
		}
		opts.threshold = &y
	}

	err = writeOutput(*flagOut, func(w io.Writer) error {
		switch {
		case *flagTSV:
			return assoc.Fprint(w, in.config, l)
		case *flagSpans:
			return assoc.FprintGroups(w, l)
		case *flagTable:
			table.Fprint(w, layoutTable(l))
			return nil
		case *flagOut == "" && terminal.IsTerminal(int(os.Stdout.Fd())):
			log.Print("not writing SVG to a terminal; printing table (use -o to write a plot)")
			table.Fprint(w, layoutTable(l))
			return nil
		}
		return writePlot(w, l, opts, *flagWidth, *flagHeight)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// writeOutput calls write with the file at path, or standard output
// if path is "". The file is closed before writeOutput returns, and
// an error from closing it is returned if write succeeded.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// envArgs returns the arguments in env, split using shell quoting
// rules, followed by args.
func envArgs(env string, args []string) ([]string, error) {
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, err
	}
	return append(words, args...), nil
}

func parseOrder(name, groups string) (genome.Order, error) {
	switch name {
	case "natural":
		return genome.NaturalOrder, nil
	case "karyotype":
		return genome.KaryotypeOrder, nil
	case "list":
		if groups == "" {
			return nil, fmt.Errorf("-order list requires -groups")
		}
		return genome.ExplicitOrder(strings.Split(groups, ",")...), nil
	}
	return nil, fmt.Errorf("unknown order %q", name)
}

func plotTitle(flagTitle string, config []*assoc.Config, paths []string) string {
	if flagTitle != "" {
		return flagTitle
	}
	for _, c := range config {
		if c.Key == "title" && c.RawValue != "" {
			return c.RawValue
		}
	}
	if len(paths) == 1 && paths[0] == "-" {
		return ""
	}
	return strings.Join(paths, " ")
}

func writePlot(w io.Writer, l *genome.Layout, opts plotOptions, width, height int) error {
	p := plot(l, opts)
	if opts.title != "" {
		p.Add(gg.Title(opts.title))
	}
	return p.WriteSVG(w, width, height)
}
