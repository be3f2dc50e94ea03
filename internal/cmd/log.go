// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

// setupLogging sets the default logger. Only warnings and errors are logged
// unless debug is set. Timestamps are only added in debug mode, as they are
// not of any use for a short warning.
func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	replaceAttr := func(groups []string, attr slog.Attr) slog.Attr {
		if !debug && len(groups) == 0 && attr.Key == slog.TimeKey {
			return slog.Attr{}
		}

		return attr
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr,
		},
	)))
}
