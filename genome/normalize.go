// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"math"
)

type options struct {
	tick Summary
}

// An Option configures Normalize.
type Option func(*options)

// WithTickSummary sets the statistic used to compute each group's
// tick position. The default is Median.
func WithTickSummary(s Summary) Option {
	return func(o *options) {
		if s != nil {
			o.tick = s
		}
	}
}

// Normalize assigns every record a coordinate on a single axis shared
// by all groups.
//
// Groups are laid out in the order given by order, or NaturalOrder if
// order is nil, regardless of the order in which they appear in
// records. The first group starts at FirstDisplay and each following
// group starts immediately after the last coordinate of the previous
// one. Within a group, every record is shifted by the same offset, so
// the spacing between a group's records is preserved exactly.
//
// Normalize does not modify records. It returns an
// *InvalidInputError if records is empty or contains a negative
// position and an *AmbiguousOrderError if order does not strictly
// order the groups in records.
func Normalize(records []Record, order Order, opts ...Option) (*Layout, error) {
	if len(records) == 0 {
		return nil, &InvalidInputError{Index: -1, Reason: "no records"}
	}
	if order == nil {
		order = NaturalOrder
	}
	o := options{tick: Median}
	for _, opt := range opts {
		opt(&o)
	}

	// Find the local extent of each group.
	spans := make(map[string]*GroupSpan)
	var ids []string
	for i, r := range records {
		if r.LocalPosition < 0 {
			return nil, &InvalidInputError{Index: i, Group: r.Group, Reason: "negative position"}
		}
		s := spans[r.Group]
		if s == nil {
			s = &GroupSpan{Group: r.Group, MinLocal: r.LocalPosition, MaxLocal: r.LocalPosition}
			spans[r.Group] = s
			ids = append(ids, r.Group)
		} else if r.LocalPosition < s.MinLocal {
			s.MinLocal = r.LocalPosition
		} else if r.LocalPosition > s.MaxLocal {
			s.MaxLocal = r.LocalPosition
		}
		s.Count++
	}

	if err := sortGroups(ids, order); err != nil {
		return nil, err
	}

	// Lay groups end to end.
	l := &Layout{
		Records: make([]AnnotatedRecord, len(records)),
		Groups:  make([]GroupSpan, len(ids)),
		index:   make(map[string]int, len(ids)),
	}
	next := int64(FirstDisplay)
	for i, id := range ids {
		s := spans[id]
		// The last group may end at MaxInt64. Any other group
		// must leave room for the next one to start.
		width := s.MaxLocal - s.MinLocal
		if width > math.MaxInt64-next || (width == math.MaxInt64-next && i < len(ids)-1) {
			return nil, &InvalidInputError{Index: -1, Group: id, Reason: fmt.Sprintf("display coordinates of group %q overflow", id)}
		}
		s.Offset = next - s.MinLocal
		s.DisplayMin = next
		s.DisplayMax = s.MaxLocal + s.Offset
		next = s.DisplayMax + 1
		l.Groups[i] = *s
		l.index[id] = i
	}

	displays := make([][]int64, len(ids))
	for i, r := range records {
		g := l.index[r.Group]
		d := r.LocalPosition + l.Groups[g].Offset
		l.Records[i] = AnnotatedRecord{Record: r, Display: d}
		displays[g] = append(displays[g], d)
	}
	for i := range l.Groups {
		l.Groups[i].Tick = o.tick(displays[i])
	}
	return l, nil
}
