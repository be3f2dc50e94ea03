// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sink

import (
	"bufio"
	"io"
	"iter"
)

// BufferSize is the size of the write buffer used by [Write].
const BufferSize = 64 * 1024

// Write writes all lines to dst in order and flushes before returning.
//
// It returns the number of bytes written to dst. On error, data written up to
// that point is left as is.
func Write(dst io.Writer, lines iter.Seq[string]) (int64, error) {
	counter := &countingWriter{w: dst}
	writer := bufio.NewWriterSize(counter, BufferSize)

	for line := range lines {
		_, err := writer.WriteString(line)
		if err != nil {
			return counter.n, &Error{Op: "write", Err: err}
		}
	}

	err := writer.Flush()
	if err != nil {
		return counter.n, &Error{Op: "flush", Err: err}
	}

	return counter.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err //nolint:wrapcheck
}
