// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sink writes generated documents to their destination.
//
// [Write] streams a sequence of lines in a single buffered pass. [WriteChunks]
// renders chunks of the document concurrently and writes them in order.
package sink
