// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bioviz/gwasplot/assoc"
	"github.com/bioviz/gwasplot/genome"
)

func TestEnvArgs(t *testing.T) {
	for _, test := range []struct {
		env  string
		args []string
		want []string
	}{
		{"", []string{"a.txt"}, []string{"a.txt"}},
		{"-order natural -title 'My GWAS'", []string{"-tsv"}, []string{"-order", "natural", "-title", "My GWAS", "-tsv"}},
		{`-groups "1,2,X"`, nil, []string{"-groups", "1,2,X"}},
	} {
		got, err := envArgs(test.env, test.args)
		if err != nil {
			t.Errorf("envArgs(%q): %v", test.env, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) && !(len(got) == 0 && len(test.want) == 0) {
			t.Errorf("envArgs(%q, %q): want %q, got %q", test.env, test.args, test.want, got)
		}
	}
	if _, err := envArgs(`-title "unterminated`, nil); err == nil {
		t.Errorf("envArgs with unterminated quote succeeded")
	}
}

func TestParseOrder(t *testing.T) {
	for _, name := range []string{"natural", "karyotype"} {
		if _, err := parseOrder(name, ""); err != nil {
			t.Errorf("parseOrder(%q): %v", name, err)
		}
	}
	o, err := parseOrder("list", "2,1")
	if err != nil {
		t.Fatal(err)
	}
	if c, err := o.Compare("2", "1"); err != nil || c >= 0 {
		t.Errorf("list order: want 2 before 1, got %d, %v", c, err)
	}
	if _, err := parseOrder("list", ""); err == nil {
		t.Errorf("parseOrder(list) without groups succeeded")
	}
	if _, err := parseOrder("random", ""); err == nil {
		t.Errorf("parseOrder(random) succeeded")
	}
}

func TestPlotTitle(t *testing.T) {
	config := []*assoc.Config{{Key: "title", RawValue: "From file"}}
	for _, test := range []struct {
		flag   string
		config []*assoc.Config
		paths  []string
		want   string
	}{
		{"Flag", config, []string{"a"}, "Flag"},
		{"", config, []string{"a"}, "From file"},
		{"", nil, []string{"a", "b"}, "a b"},
		{"", nil, []string{"-"}, ""},
	} {
		if got := plotTitle(test.flag, test.config, test.paths); got != test.want {
			t.Errorf("plotTitle(%q, %v, %v): want %q, got %q", test.flag, test.config, test.paths, test.want, got)
		}
	}
}

func parseTable(t *testing.T, s string) *assoc.Table {
	tab, err := assoc.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestMergeTables(t *testing.T) {
	a := parseTable(t, "threshold: 1e-6\nCHR BP P\n1 10 0.01\n1 20 NA\n")
	b := parseTable(t, "CHR BP P\n2 5 0.1\n")
	in, err := mergeTables([]*assoc.Table{a, b}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(in.records) != 2 || in.records[0].Group != "1" || in.records[1].Group != "2" {
		t.Fatalf("want records from both tables in order, got %+v", in.records)
	}
	if math.Abs(in.records[0].Value-2) > 1e-12 || math.Abs(in.records[1].Value-1) > 1e-12 {
		t.Errorf("want -log10 values 2 and 1, got %v and %v", in.records[0].Value, in.records[1].Value)
	}
	if in.skipped != 1 || in.yLabel != "-log10(p)" || !in.negLog10 {
		t.Errorf("got skipped %d, yLabel %q, negLog10 %v", in.skipped, in.yLabel, in.negLog10)
	}
	if th, ok := in.threshold(); !ok || th != 1e-6 {
		t.Errorf("threshold: want 1e-6, got %v, %v", th, ok)
	}

	in, err = mergeTables([]*assoc.Table{a}, false)
	if err != nil {
		t.Fatal(err)
	}
	if in.records[0].Value != 0.01 || in.yLabel != "p" {
		t.Errorf("without -neglog10: got value %v, yLabel %q", in.records[0].Value, in.yLabel)
	}

	c := parseTable(t, "CHR BP SCORE\n3 1 4.5\n")
	if _, err := mergeTables([]*assoc.Table{a, c}, true); err == nil {
		t.Errorf("merging p and value tables succeeded")
	}
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, body := range []string{"CHR BP P\n2 5 0.1\n", "CHR BP P\n1 10 0.2\n1 30 0.3\n"} {
		path := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(path, []byte(body), 0666); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	tabs, err := loadTables(paths)
	if err != nil {
		t.Fatal(err)
	}
	if len(tabs) != 2 || len(tabs[0].Rows) != 1 || len(tabs[1].Rows) != 2 {
		t.Errorf("loadTables: got %d tables", len(tabs))
	}

	_, err = loadTables(append(paths, filepath.Join(dir, "missing.txt")))
	if err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("loadTables with missing file: want error naming the file, got %v", err)
	}
}

func testLayout(t *testing.T) *genome.Layout {
	records := []genome.Record{
		{Group: "2", LocalPosition: 5, Value: 3, Label: "rs5"},
		{Group: "1", LocalPosition: 10, Value: 8},
		{Group: "1", LocalPosition: 90, Value: 1},
		{Group: "X", LocalPosition: 7, Value: 2},
	}
	l, err := genome.Normalize(records, genome.KaryotypeOrder)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLayoutTable(t *testing.T) {
	tab := layoutTable(testLayout(t))
	if want, got := []float64{82, 1, 81, 83}, tab.MustColumn(colX); !reflect.DeepEqual(want, got) {
		t.Errorf("x column: want %v, got %v", want, got)
	}
	if want, got := []string{"b", "a", "a", "a"}, tab.MustColumn(colBand); !reflect.DeepEqual(want, got) {
		t.Errorf("band column: want %v, got %v", want, got)
	}
	if want, got := []int64{5, 10, 90, 7}, tab.MustColumn(colLocal); !reflect.DeepEqual(want, got) {
		t.Errorf("bp column: want %v, got %v", want, got)
	}

	ticks := ticksTable(testLayout(t), -1)
	if want, got := []float64{41, 82, 83}, ticks.MustColumn(colX); !reflect.DeepEqual(want, got) {
		t.Errorf("tick column: want %v, got %v", want, got)
	}
	if want, got := []string{"1", "2", "X"}, ticks.MustColumn(colGroup); !reflect.DeepEqual(want, got) {
		t.Errorf("tick labels: want %v, got %v", want, got)
	}

	line := lineTable(testLayout(t), 7.3)
	if want, got := []float64{1, 83}, line.MustColumn(colX); !reflect.DeepEqual(want, got) {
		t.Errorf("line x: want %v, got %v", want, got)
	}
}

func TestWritePlot(t *testing.T) {
	y := 7.3
	var buf bytes.Buffer
	err := writePlot(&buf, testLayout(t), plotOptions{title: "test", yLabel: "-log10(p)", threshold: &y}, 600, 300)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG:\n%s", buf.String())
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tsv")
	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("want file contents %q, got %q", "hello\n", data)
	}

	failed := errors.New("write failed")
	if err := writeOutput(path, func(io.Writer) error { return failed }); err != failed {
		t.Errorf("want write error, got %v", err)
	}

	called := false
	err = writeOutput(filepath.Join(dir, "missing", "out.tsv"), func(io.Writer) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Errorf("writing into a missing directory: got error %v, write called %v", err, called)
	}
}
