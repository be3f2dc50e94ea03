// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sink

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// RenderFunc renders the chunk with the given index.
//
// It is called concurrently for different chunks, so it must not share
// mutable state between calls.
type RenderFunc func(chunk int) ([]byte, error)

// WriteChunks renders the given number of chunks with up to workers
// concurrent calls of render and writes the results to dst in chunk order.
//
// At most workers rendered chunks wait for being written at any time. The
// first error of any render call or write cancels all remaining work and is
// returned. It returns the number of bytes written to dst.
func WriteChunks(
	ctx context.Context,
	dst io.Writer,
	chunks int,
	workers int,
	render RenderFunc,
) (int64, error) {
	var written int64

	// Ordered queue of pending chunk results. Its capacity limits the number
	// of chunks in flight.
	pending := make(chan chan []byte, max(workers, 1))

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(pending)

		for chunk := range chunks {
			result := make(chan []byte, 1)

			select {
			case pending <- result:
			case <-ctx.Done():
				return ctx.Err() //nolint:wrapcheck
			}

			eg.Go(func() error {
				data, err := render(chunk)
				if err != nil {
					return fmt.Errorf("render chunk %d: %w", chunk, err)
				}

				result <- data

				return nil
			})
		}

		return nil
	})

	eg.Go(func() error {
		for result := range pending {
			var data []byte

			select {
			case data = <-result:
			case <-ctx.Done():
				return ctx.Err() //nolint:wrapcheck
			}

			n, err := dst.Write(data)
			written += int64(n)

			if err != nil {
				return &Error{Op: "write", Err: err}
			}
		}

		return nil
	})

	err := eg.Wait()

	return written, err //nolint:wrapcheck
}
