// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genome lays out grouped genomic positions on a single
// continuous axis.
//
// A Manhattan plot draws every chromosome side by side on one x axis.
// Positions are only meaningful within a chromosome, so each
// chromosome (more generally, each group) is shifted by a constant
// offset so that groups follow one another in a caller-chosen order
// with no unused coordinates between them. Normalize computes those
// offsets, the resulting display coordinate of every record, and a
// representative tick position for each group.
//
// Display coordinates start at 1. For adjacent groups A and B, the
// first display coordinate of B is exactly one more than the last
// display coordinate of A, and within a group the display coordinate
// minus the local position is the group's offset.
package genome
