// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mdgen_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/aibor/mdgen/internal/mdgen"
	"github.com/aibor/mdgen/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blockRegexp = regexp.MustCompile(`^(#{1,6}) ([a-zA-Z]*)$`)

type block struct {
	level int
	title string
}

// splitBlocks splits a document on its blank line boundaries.
func splitBlocks(t *testing.T, doc string) []block {
	t.Helper()

	if doc == "" {
		return nil
	}

	require.True(t, strings.HasSuffix(doc, "\n\n"), "document ends with blank line")

	parts := strings.Split(strings.TrimSuffix(doc, "\n\n"), "\n\n")
	blocks := make([]block, 0, len(parts))

	for _, part := range parts {
		match := blockRegexp.FindStringSubmatch(part)
		require.NotNil(t, match, "block %q", part)

		blocks = append(blocks, block{level: len(match[1]), title: match[2]})
	}

	return blocks
}

func seed(s uint64) *uint64 {
	return &s
}

func run(t *testing.T, cfg mdgen.Config) string {
	t.Helper()

	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join(t.TempDir(), "output.md")
	}

	result, err := mdgen.Run(t.Context(), cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.OutputPath, result.Path)
	assert.Equal(t, cfg.LineCount, result.Lines)
	assert.EqualValues(t, len(content), result.Bytes)

	return string(content)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		lineCount   int
		titleLength int
		workers     int
		chunkSize   int
	}{
		{
			name:        "empty document",
			titleLength: 3,
		},
		{
			name:        "single heading",
			lineCount:   1,
			titleLength: 3,
		},
		{
			name:        "three short headings",
			lineCount:   3,
			titleLength: 1,
		},
		{
			name:      "empty titles",
			lineCount: 20,
		},
		{
			name:        "sequential",
			lineCount:   5_000,
			titleLength: 32,
		},
		{
			name:        "chunked",
			lineCount:   5_001,
			titleLength: 32,
			workers:     4,
			chunkSize:   100,
		},
		{
			name:        "chunked single chunk",
			lineCount:   2,
			titleLength: 8,
			workers:     4,
			chunkSize:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mdgen.DefaultConfig()
			cfg.OutputPath = ""
			cfg.LineCount = tt.lineCount
			cfg.TitleLength = tt.titleLength

			if tt.workers > 0 {
				cfg.Workers = tt.workers
				cfg.ChunkSize = tt.chunkSize
			}

			blocks := splitBlocks(t, run(t, cfg))
			require.Len(t, blocks, tt.lineCount)

			for idx, b := range blocks {
				switch idx {
				case 0:
					assert.Equal(t, 1, b.level)
				case 1:
					assert.Equal(t, 2, b.level)
				}

				assert.Len(t, b.title, tt.titleLength)
			}
		})
	}
}

func TestRun_Scenarios(t *testing.T) {
	base := func(lines, titleLength int) mdgen.Config {
		cfg := mdgen.DefaultConfig()
		cfg.OutputPath = ""
		cfg.LineCount = lines
		cfg.TitleLength = titleLength

		return cfg
	}

	t.Run("zero lines leaves empty file", func(t *testing.T) {
		assert.Empty(t, run(t, base(0, 128)))
	})

	t.Run("single line", func(t *testing.T) {
		assert.Regexp(t, `^# [a-zA-Z]{3}\n\n$`, run(t, base(1, 3)))
	})

	t.Run("three lines", func(t *testing.T) {
		blocks := splitBlocks(t, run(t, base(3, 1)))

		require.Len(t, blocks, 3)
		assert.Equal(t, 1, blocks[0].level)
		assert.Equal(t, 2, blocks[1].level)
		assert.GreaterOrEqual(t, blocks[2].level, 1)
		assert.LessOrEqual(t, blocks[2].level, 6)
	})

	t.Run("unwritable destination", func(t *testing.T) {
		cfg := base(10, 3)
		cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "output.md")

		_, err := mdgen.Run(t.Context(), cfg)
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.ErrorIs(t, err, &sink.Error{})
		assert.NoFileExists(t, cfg.OutputPath)
	})

	t.Run("unwritable destination chunked", func(t *testing.T) {
		cfg := base(10, 3)
		cfg.Workers = 2
		cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "output.md")

		_, err := mdgen.Run(t.Context(), cfg)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := mdgen.Run(t.Context(), base(-1, 3))
		require.ErrorIs(t, err, mdgen.ErrInvalidConfig)
	})
}

func TestRun_Seeded(t *testing.T) {
	sequential := func(s uint64) string {
		cfg := mdgen.DefaultConfig()
		cfg.OutputPath = ""
		cfg.LineCount = 1_000
		cfg.TitleLength = 12
		cfg.Seed = seed(s)

		return run(t, cfg)
	}

	chunked := func(s uint64, workers int) string {
		cfg := mdgen.DefaultConfig()
		cfg.OutputPath = ""
		cfg.LineCount = 1_000
		cfg.TitleLength = 12
		cfg.ChunkSize = 64
		cfg.Workers = workers
		cfg.Seed = seed(s)

		return run(t, cfg)
	}

	t.Run("sequential", func(t *testing.T) {
		assert.Equal(t, sequential(42), sequential(42))
		assert.NotEqual(t, sequential(42), sequential(43))
	})

	t.Run("chunked independent of workers", func(t *testing.T) {
		expected := chunked(42, 2)

		for _, workers := range []int{3, 4, 8} {
			assert.Equal(t, expected, chunked(42, workers), "workers: %d", workers)
		}

		assert.NotEqual(t, expected, chunked(43, 2))
	})

	t.Run("unseeded runs differ", func(t *testing.T) {
		cfg := mdgen.DefaultConfig()
		cfg.OutputPath = ""
		cfg.LineCount = 10
		cfg.TitleLength = 32

		assert.NotEqual(t, run(t, cfg), run(t, cfg))
	})
}

func TestRun_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.md")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 10_000)), 0o600))

	cfg := mdgen.DefaultConfig()
	cfg.OutputPath = path
	cfg.LineCount = 2
	cfg.TitleLength = 4

	content := run(t, cfg)
	assert.Len(t, splitBlocks(t, content), 2)
}
