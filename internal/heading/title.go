// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package heading

import "math/rand/v2"

// Alphabet contains all characters titles are made of.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	letterBits = 6
	letterMask = 1<<letterBits - 1
	// Number of letter indexes a single 64 bit random number provides.
	lettersPerDraw = 64 / letterBits
)

// appendTitle appends n random letters of [Alphabet] to dst.
//
// Letters are drawn by rejection sampling of 6 bit groups, so each letter has
// the same probability and one draw from r yields up to 10 letters.
func appendTitle(dst []byte, r *rand.Rand, n int) []byte {
	var (
		bits      uint64
		remaining int
	)

	for n > 0 {
		if remaining == 0 {
			bits, remaining = r.Uint64(), lettersPerDraw
		}

		idx := bits & letterMask
		bits >>= letterBits
		remaining--

		if idx < uint64(len(Alphabet)) {
			dst = append(dst, Alphabet[idx])
			n--
		}
	}

	return dst
}
