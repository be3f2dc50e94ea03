// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package heading generates random markdown headings.
//
// A [Generator] produces a lazy, single-pass sequence of headings. The first
// heading of a sequence is always a level 1 heading, the second always a
// level 2 heading. This makes the document start with a proper section a
// table of contents can be inserted into. All further headings have a level
// drawn uniformly from 1 to 6 with no regard for proper nesting.
//
// Each heading is serialized as the heading marker, a single space, the
// title and a blank line:
//
//	## dKqPzRtw
//
// The random source is injected, so sequences are reproducible with a seeded
// source created by [NewRand].
package heading
