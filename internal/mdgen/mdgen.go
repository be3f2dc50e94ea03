// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mdgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aibor/mdgen/internal/heading"
	"github.com/aibor/mdgen/internal/sink"
)

// Result describes a finished run.
type Result struct {
	Path     string
	Lines    int
	Bytes    int64
	Duration time.Duration
}

// Run generates the document defined by cfg and writes it to the configured
// output file.
//
// Files are not removed on failure, so partially written documents may be
// left behind.
func Run(ctx context.Context, cfg Config) (Result, error) {
	err := cfg.Validate()
	if err != nil {
		return Result{}, err
	}

	if cfg.LineCount > WarnLineCount {
		slog.Warn("Generating a large document may take a while",
			slog.Int("lines", cfg.LineCount),
			slog.Int("threshold", WarnLineCount))
	}

	start := time.Now()

	var n int64
	if cfg.Workers > 1 {
		n, err = writeChunked(ctx, cfg, newRand(cfg.Seed))
	} else {
		n, err = writeSequential(cfg, newRand(cfg.Seed))
	}

	result := Result{
		Path:     cfg.OutputPath,
		Lines:    cfg.LineCount,
		Bytes:    n,
		Duration: time.Since(start),
	}

	if err != nil {
		return result, fmt.Errorf("write %s: %w", cfg.OutputPath, err)
	}

	slog.Debug("Document written",
		slog.String("path", result.Path),
		slog.Int("lines", result.Lines),
		slog.Int64("bytes", result.Bytes),
		slog.Duration("duration", result.Duration))

	return result, nil
}

func newRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return heading.NewRandomRand()
	}

	return heading.NewRand(*seed)
}

func writeSequential(cfg Config, r *rand.Rand) (int64, error) {
	gen := heading.New(r, cfg.TitleLength)

	slog.Debug("Writing document sequentially",
		slog.String("path", cfg.OutputPath))

	return sink.WriteFile( //nolint:wrapcheck
		cfg.OutputPath,
		gen.Lines(cfg.LineCount),
		sink.WithSync(cfg.Sync),
	)
}

// writeChunked renders chunks of the document concurrently. Each chunk has
// its own random source seeded from r in chunk order, so the document only
// depends on the seed and the chunk size, not on the number of workers.
func writeChunked(ctx context.Context, cfg Config, r *rand.Rand) (n int64, err error) {
	chunks := cfg.Chunks()

	seeds := make([]uint64, chunks)
	for idx := range seeds {
		seeds[idx] = r.Uint64()
	}

	render := func(chunk int) ([]byte, error) {
		start := chunk * cfg.ChunkSize
		end := min(start+cfg.ChunkSize, cfg.LineCount)
		size := (end - start) * (heading.MaxLevel + 1 + cfg.TitleLength + 2)

		gen := heading.New(heading.NewRand(seeds[chunk]), cfg.TitleLength)

		return gen.AppendRange(make([]byte, 0, size), start, end), nil
	}

	slog.Debug("Writing document in chunks",
		slog.String("path", cfg.OutputPath),
		slog.Int("chunks", chunks),
		slog.Int("workers", cfg.Workers))

	file, err := sink.Create(cfg.OutputPath, sink.WithSync(cfg.Sync))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return sink.WriteChunks(ctx, file, chunks, cfg.Workers, render) //nolint:wrapcheck
}
