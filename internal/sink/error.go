// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sink

import (
	"fmt"
)

// Error wraps any error occurring while writing to a sink.
type Error struct {
	Op   string
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sink %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("sink %s %s: %v", e.Op, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Err
}
