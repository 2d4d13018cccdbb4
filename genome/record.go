// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

// FirstDisplay is the display coordinate of the first position of the
// first group.
const FirstDisplay = 1

// Record is a single observation at a position within a group, such
// as an association test result for a variant on a chromosome.
type Record struct {
	// Group identifies the category this record belongs to,
	// typically a chromosome name.
	Group string

	// LocalPosition is the record's coordinate within Group, such
	// as a base-pair position. It must be non-negative.
	LocalPosition int64

	// Value is the response plotted against the display
	// coordinate. Normalize does not interpret it.
	Value float64

	// Label is an optional name for the record, such as a variant
	// ID.
	Label string
}

// AnnotatedRecord is a Record placed on the display axis.
type AnnotatedRecord struct {
	Record

	// Display is the record's coordinate on the shared axis.
	Display int64
}

// GroupSpan describes where a group lies on the display axis.
type GroupSpan struct {
	Group string

	// MinLocal and MaxLocal are the smallest and largest local
	// positions of the group's records.
	MinLocal, MaxLocal int64

	// Offset is added to every local position in the group to
	// produce its display coordinate.
	Offset int64

	// DisplayMin and DisplayMax are MinLocal+Offset and
	// MaxLocal+Offset.
	DisplayMin, DisplayMax int64

	// Tick is the summary of the group's display coordinates used
	// to place the group's axis label.
	Tick float64

	// Count is the number of records in the group.
	Count int
}

// Width returns the number of display coordinates the group occupies.
// It is always at least 1.
func (s GroupSpan) Width() int64 {
	return s.DisplayMax - s.DisplayMin + 1
}

// Layout is the result of normalizing a set of records.
type Layout struct {
	// Records holds one entry for each input record, in input
	// order.
	Records []AnnotatedRecord

	// Groups holds one entry per distinct group, in display
	// order.
	Groups []GroupSpan

	index map[string]int
}

// Span returns the span of group and whether group is present in l.
func (l *Layout) Span(group string) (GroupSpan, bool) {
	i, ok := l.index[group]
	if !ok {
		return GroupSpan{}, false
	}
	return l.Groups[i], true
}

// Order returns the group IDs in display order.
func (l *Layout) Order() []string {
	ids := make([]string, len(l.Groups))
	for i, g := range l.Groups {
		ids[i] = g.Group
	}
	return ids
}

// Ticks returns the tick position of every group.
func (l *Layout) Ticks() map[string]float64 {
	ticks := make(map[string]float64, len(l.Groups))
	for _, g := range l.Groups {
		ticks[g.Group] = g.Tick
	}
	return ticks
}

// Extent returns the first and last display coordinates in use.
func (l *Layout) Extent() (lo, hi int64) {
	if len(l.Groups) == 0 {
		return 0, 0
	}
	return l.Groups[0].DisplayMin, l.Groups[len(l.Groups)-1].DisplayMax
}
