// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrValueOutOfRange = errors.New("value is outside of range")

// LimitedIntValue is a [flag.Value] for non-negative integers with optional
// bounds. A bound of 0 is not checked.
type LimitedIntValue struct {
	Value        *int
	Lower, Upper int
}

func (u *LimitedIntValue) String() string {
	if u.Value == nil {
		return "0"
	}

	return strconv.Itoa(*u.Value)
}

func (u *LimitedIntValue) Set(s string) error {
	value, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	v := int(value)

	if u.Lower > 0 && v < u.Lower {
		return fmt.Errorf("%d < %d: %w", v, u.Lower, ErrValueOutOfRange)
	}

	if u.Upper > 0 && v > u.Upper {
		return fmt.Errorf("%d > %d: %w", v, u.Upper, ErrValueOutOfRange)
	}

	*u.Value = v

	return nil
}

// SeedValue is a [flag.Value] for an optional unsigned 64 bit seed. The
// seed is nil until set.
type SeedValue struct {
	Value **uint64
}

func (s *SeedValue) String() string {
	if s.Value == nil || *s.Value == nil {
		return ""
	}

	return strconv.FormatUint(**s.Value, 10)
}

func (s *SeedValue) Set(str string) error {
	value, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	*s.Value = &value

	return nil
}
