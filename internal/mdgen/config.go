// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mdgen

import (
	"errors"
	"fmt"
)

// Defaults used by [DefaultConfig].
const (
	DefaultLineCount   = 1_000_000
	DefaultTitleLength = 128
	DefaultOutputPath  = "output.md"
	DefaultWorkers     = 1
	DefaultChunkSize   = 64 * 1024

	// WarnLineCount is the line count above which a warning about the run
	// time is printed.
	WarnLineCount = 50_000
)

// ErrInvalidConfig is returned if a [Config] has invalid values.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines the document to generate.
type Config struct {
	// LineCount is the total number of headings to generate.
	LineCount int

	// TitleLength is the number of random letters of each heading title.
	TitleLength int

	// OutputPath is the destination file. It is created or truncated.
	OutputPath string

	// Seed makes the document reproducible. If nil, every run generates a
	// different document.
	Seed *uint64

	// Workers is the number of concurrent chunk renderers. With 1, the
	// document is generated and written line by line.
	Workers int

	// ChunkSize is the number of lines rendered at once if Workers is
	// greater than 1.
	ChunkSize int

	// Sync flushes the output file's data to storage before closing it.
	Sync bool
}

// DefaultConfig returns a [Config] with all defaults set.
func DefaultConfig() Config {
	return Config{
		LineCount:   DefaultLineCount,
		TitleLength: DefaultTitleLength,
		OutputPath:  DefaultOutputPath,
		Workers:     DefaultWorkers,
		ChunkSize:   DefaultChunkSize,
	}
}

// Validate checks the [Config] for invalid values.
func (c Config) Validate() error {
	switch {
	case c.LineCount < 0:
		return fmt.Errorf("%w: negative line count %d", ErrInvalidConfig, c.LineCount)
	case c.TitleLength < 0:
		return fmt.Errorf("%w: negative title length %d", ErrInvalidConfig, c.TitleLength)
	case c.OutputPath == "":
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: less than 1 worker", ErrInvalidConfig)
	case c.ChunkSize < 1:
		return fmt.Errorf("%w: chunk size less than 1", ErrInvalidConfig)
	}

	return nil
}

// Chunks returns the number of chunks the document is split into for
// concurrent rendering.
func (c Config) Chunks() int {
	if c.ChunkSize < 1 {
		return 0
	}

	chunks := c.LineCount / c.ChunkSize
	if c.LineCount%c.ChunkSize > 0 {
		chunks++
	}

	return chunks
}
