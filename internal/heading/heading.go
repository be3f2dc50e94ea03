// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package heading

import (
	"errors"
	"fmt"
)

const (
	// MinLevel is the lowest heading level, rendered as "#".
	MinLevel = 1

	// MaxLevel is the highest heading level, rendered as "######".
	MaxLevel = 6

	marker    = '#'
	separator = "\n\n"
)

// ErrInvalidLevel is returned if a heading has a level outside of
// [MinLevel] and [MaxLevel].
var ErrInvalidLevel = errors.New("invalid heading level")

// Heading is a single markdown heading.
type Heading struct {
	Level int
	Title string
}

// Len returns the length of the serialized heading in bytes. Negative
// levels are rendered without marker.
func (h Heading) Len() int {
	return max(h.Level, 0) + 1 + len(h.Title) + len(separator)
}

// AppendText implements [encoding.TextAppender].
func (h Heading) AppendText(b []byte) ([]byte, error) {
	if h.Level < MinLevel || h.Level > MaxLevel {
		return b, fmt.Errorf("%w: %d", ErrInvalidLevel, h.Level)
	}

	return h.appendText(b), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (h Heading) MarshalText() ([]byte, error) {
	b, err := h.AppendText(make([]byte, 0, h.Len()))
	if err != nil {
		return nil, err
	}

	return b, nil
}

// String returns the serialized heading. Headings with invalid levels are
// rendered anyway, so the result is useful for debugging.
func (h Heading) String() string {
	return string(h.appendText(make([]byte, 0, h.Len())))
}

func (h Heading) appendText(b []byte) []byte {
	return appendLine(b, h.Level, func(b []byte) []byte {
		return append(b, h.Title...)
	})
}

// appendLine appends a serialized heading of the given level to dst. The
// title is appended by title, so generated titles can be written in place.
func appendLine(dst []byte, level int, title func([]byte) []byte) []byte {
	for range level {
		dst = append(dst, marker)
	}

	dst = append(dst, ' ')
	dst = title(dst)

	return append(dst, separator...)
}
