// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sink

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncData flushes the file's data without forcing a metadata update that is
// not needed for reading the data back.
func syncData(file *os.File) error {
	conn, err := file.SyscallConn()
	if err != nil {
		return err //nolint:wrapcheck
	}

	var syncErr error

	err = conn.Control(func(fd uintptr) {
		syncErr = unix.Fdatasync(int(fd))
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	return syncErr //nolint:wrapcheck
}
