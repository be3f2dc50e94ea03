// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mdgen generates large markdown documents made of random headings.
// The documents are used as fixtures for benchmarking table of contents
// generation.
//
// [Run] takes a [Config] and writes the document to the configured output
// file.
package mdgen
