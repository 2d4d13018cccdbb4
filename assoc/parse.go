// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assoc reads and writes tables of per-variant association
// results, such as the output of PLINK or a GWAS summary statistics
// file.
//
// A results file consists of an optional configuration block, a
// header line, and one row per variant. Configuration lines have the
// form "key: value", where key starts with a lower case letter and
// contains no upper case letters or spaces. Lines starting with "#"
// and blank lines are ignored. Fields are separated by tabs or
// spaces.
//
// Header fields are matched case-insensitively against the following
// names, and other columns are ignored:
//
//	group:    chr, chrom, chromosome, group
//	position: bp, pos, position
//	p-value:  p, pval, p_value, pvalue
//	value:    value, score
//	label:    snp, rsid, id, label
//
// A table must have a group column, a position column, and either a
// p-value or a value column. If both are present, the p-value column
// is used.
package assoc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bioviz/gwasplot/genome"
)

// Table is a parsed results file.
type Table struct {
	// Config is the configuration block, in file order. If a key
	// appears more than once, only its last value is kept.
	Config []*Config

	// Stat names the kind of number in Row.Value: "p" if the
	// table has a p-value column, otherwise "value".
	Stat string

	Rows []Row

	// Skipped is the number of rows whose value was missing
	// ("NA", "nan", or ".").
	Skipped int
}

// Config is a single key/value configuration pair.
type Config struct {
	Key string

	// Value is RawValue parsed as an int, a float64, or, if
	// neither applies, a string.
	Value interface{}

	// RawValue is the value exactly as written in the file.
	RawValue string
}

// Row is one result line.
type Row struct {
	// Line is the 1-based line number of this row in the input.
	Line int

	Group    string
	Position int64
	Value    float64
	Label    string
}

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

const (
	colGroup = iota
	colPos
	colP
	colValue
	colLabel
	numCols
)

var columnNames = map[string]int{
	"chr": colGroup, "chrom": colGroup, "chromosome": colGroup, "group": colGroup,
	"bp": colPos, "pos": colPos, "position": colPos,
	"p": colP, "pval": colP, "p_value": colP, "pvalue": colP,
	"value": colValue, "score": colValue,
	"snp": colLabel, "rsid": colLabel, "id": colLabel, "label": colLabel,
}

// Parse parses a results file from r.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}
	config := make(map[string]*Config)
	var cols [numCols]int
	haveHeader := false
	valueCol := -1

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if !haveHeader {
			// Configuration lines.
			if m := configRe.FindStringSubmatch(text); m != nil {
				c := config[m[1]]
				if c == nil {
					c = &Config{Key: m[1]}
					config[m[1]] = c
					t.Config = append(t.Config, c)
				}
				c.RawValue = m[2]
				c.Value = parseValue(m[2])
				continue
			}

			// Header line.
			var err error
			cols, err = parseHeader(text)
			if err != nil {
				return nil, &SyntaxError{line, err.Error()}
			}
			if cols[colP] >= 0 {
				t.Stat, valueCol = "p", cols[colP]
			} else {
				t.Stat, valueCol = "value", cols[colValue]
			}
			haveHeader = true
			continue
		}

		row, ok, err := parseRow(text, cols, valueCol)
		if err != nil {
			return nil, &SyntaxError{line, err.Error()}
		}
		if !ok {
			t.Skipped++
			continue
		}
		row.Line = line
		t.Rows = append(t.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, fmt.Errorf("no header line")
	}
	return t, nil
}

func parseHeader(text string) ([numCols]int, error) {
	var cols [numCols]int
	for i := range cols {
		cols[i] = -1
	}
	for i, f := range strings.Fields(text) {
		c, ok := columnNames[strings.ToLower(f)]
		if ok && cols[c] < 0 {
			cols[c] = i
		}
	}
	switch {
	case cols[colGroup] < 0:
		return cols, fmt.Errorf("header has no chromosome column")
	case cols[colPos] < 0:
		return cols, fmt.Errorf("header has no position column")
	case cols[colP] < 0 && cols[colValue] < 0:
		return cols, fmt.Errorf("header has no p-value or value column")
	}
	return cols, nil
}

func parseRow(text string, cols [numCols]int, valueCol int) (row Row, ok bool, err error) {
	f := strings.Fields(text)
	field := func(c int) string {
		if c < 0 || c >= len(f) {
			return ""
		}
		return f[c]
	}
	for _, c := range []int{cols[colGroup], cols[colPos], valueCol} {
		if c >= len(f) {
			return row, false, fmt.Errorf("want at least %d fields, got %d", c+1, len(f))
		}
	}

	row.Group = field(cols[colGroup])
	if row.Label = field(cols[colLabel]); row.Label == "." {
		row.Label = ""
	}
	row.Position, err = strconv.ParseInt(field(cols[colPos]), 10, 64)
	if err != nil {
		return row, false, fmt.Errorf("bad position %q", field(cols[colPos]))
	}

	raw := field(valueCol)
	switch strings.ToLower(raw) {
	case "na", "nan", ".":
		return row, false, nil
	}
	row.Value, err = strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(row.Value) || math.IsInf(row.Value, 0) {
		return row, false, fmt.Errorf("bad value %q", raw)
	}
	return row, true, nil
}

func parseValue(raw string) interface{} {
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return raw
}

// Lookup returns the configuration pair for key, or nil.
func (t *Table) Lookup(key string) *Config {
	for _, c := range t.Config {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Float returns the value of configuration key as a float64.
func (t *Table) Float(key string) (float64, bool) {
	c := t.Lookup(key)
	if c == nil {
		return 0, false
	}
	switch v := c.Value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Records converts the rows of t to genome records, applying
// transform to each value. If transform is nil, values are used as
// is.
func (t *Table) Records(transform Transform) ([]genome.Record, error) {
	rs := make([]genome.Record, len(t.Rows))
	for i, row := range t.Rows {
		v := row.Value
		if transform != nil {
			var err error
			v, err = transform(v)
			if err != nil {
				return nil, &SyntaxError{row.Line, err.Error()}
			}
		}
		rs[i] = genome.Record{
			Group:         row.Group,
			LocalPosition: row.Position,
			Value:         v,
			Label:         row.Label,
		}
	}
	return rs, nil
}
