// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Mdgen generates large markdown documents made of random headings for
// benchmarking table of contents generation.
package main

import (
	"context"
	"os"

	"github.com/aibor/mdgen/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(context.Background(), os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
