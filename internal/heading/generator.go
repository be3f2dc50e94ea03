// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package heading

import (
	"iter"
	"math/rand/v2"
)

// Generator draws random headings from a random source.
//
// A Generator is not safe for concurrent use, as the underlying random source
// is not.
type Generator struct {
	rand        *rand.Rand
	titleLength int
	appendTitle func([]byte) []byte
}

// New creates a new [Generator] that uses r for all random decisions and
// creates titles with titleLength letters. Negative title lengths are treated
// as 0.
func New(r *rand.Rand, titleLength int) *Generator {
	g := &Generator{
		rand:        r,
		titleLength: max(titleLength, 0),
	}

	g.appendTitle = func(dst []byte) []byte {
		return appendTitle(dst, g.rand, g.titleLength)
	}

	return g
}

// Level returns the heading level for the heading at the given index of a
// sequence.
//
// The first two headings are fixed to level 1 and 2, so the document starts
// with a proper section. For all others the level is drawn uniformly.
func (g *Generator) Level(index int) int {
	switch index {
	case 0:
		return MinLevel
	case 1:
		return MinLevel + 1
	default:
		return MinLevel + g.rand.IntN(MaxLevel-MinLevel+1)
	}
}

// Heading draws the heading for the given index of a sequence.
func (g *Generator) Heading(index int) Heading {
	level := g.Level(index)
	title := appendTitle(make([]byte, 0, g.titleLength), g.rand, g.titleLength)

	return Heading{
		Level: level,
		Title: string(title),
	}
}

// Headings returns a sequence of n headings.
//
// The sequence is drawn lazily while iterating and can only be consumed once
// in a meaningful way: iterating again continues to draw from the random
// source and yields different headings.
func (g *Generator) Headings(n int) iter.Seq[Heading] {
	return g.Range(0, n)
}

// Range returns the headings for the indexes from start up to, but not
// including, end. The level rule is applied to the indexes, so a range
// starting after index 1 never contains the fixed headings.
func (g *Generator) Range(start, end int) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		for idx := start; idx < end; idx++ {
			if !yield(g.Heading(idx)) {
				return
			}
		}
	}
}

// Lines returns a sequence of n serialized headings.
func (g *Generator) Lines(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, MaxLevel+1+g.titleLength+len(separator))

		for idx := range max(n, 0) {
			buf = g.appendHeading(buf[:0], idx)
			if !yield(string(buf)) {
				return
			}
		}
	}
}

// AppendRange appends the serialized headings for the indexes from start up
// to, but not including, end to dst.
func (g *Generator) AppendRange(dst []byte, start, end int) []byte {
	for idx := start; idx < end; idx++ {
		dst = g.appendHeading(dst, idx)
	}

	return dst
}

// appendHeading draws and serializes a heading without allocating a title
// string. Random draws happen in the same order as in [Generator.Heading].
func (g *Generator) appendHeading(dst []byte, index int) []byte {
	return appendLine(dst, g.Level(index), g.appendTitle)
}
