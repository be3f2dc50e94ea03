// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sink

import (
	"errors"
	"iter"
	"os"
)

const fileMode = 0o644

// FileOption configures a [File].
type FileOption func(*File)

// WithSync enables flushing the file's data to storage before it is closed.
func WithSync(enabled bool) FileOption {
	return func(f *File) {
		f.sync = enabled
	}
}

// File is a file sink. Existing files are truncated.
type File struct {
	file *os.File
	path string
	sync bool
}

// Create creates or truncates the file at path and opens it for writing.
func Create(path string, opts ...FileOption) (*File, error) {
	f := &File{path: path}

	for _, opt := range opts {
		opt(f)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return nil, &Error{Op: "create", Path: path, Err: err}
	}

	f.file = file

	return f, nil
}

// Path returns the path of the file.
func (f *File) Path() string {
	return f.path
}

// Write implements [io.Writer].
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p) //nolint:wrapcheck
}

// Close closes the file. If sync is enabled, the file's data is flushed to
// storage first.
func (f *File) Close() error {
	var syncErr error

	if f.sync {
		err := syncData(f.file)
		if err != nil {
			syncErr = &Error{Op: "sync", Path: f.path, Err: err}
		}
	}

	err := f.file.Close()
	if err != nil {
		return errors.Join(syncErr, &Error{Op: "close", Path: f.path, Err: err})
	}

	return syncErr
}

// WriteFile writes all lines to the file at path like [Write] does. The file
// is created or truncated and is closed on all return paths. It returns the
// number of bytes written.
func WriteFile(
	path string,
	lines iter.Seq[string],
	opts ...FileOption,
) (n int64, err error) {
	file, err := Create(path, opts...)
	if err != nil {
		return 0, err
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return Write(file, lines)
}
