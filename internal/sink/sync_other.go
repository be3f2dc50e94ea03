// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package sink

import "os"

func syncData(file *os.File) error {
	return file.Sync() //nolint:wrapcheck
}
