// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. The command has already reported what went wrong
// (per-file failures, checksum mismatches).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// usageError is a bad flag, configuration, or manifest. It exits 2.
type usageError struct {
	err error
}

func usage(format string, args ...any) *usageError {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// ExitCode returns 2.
func (e *usageError) ExitCode() int { return 2 }
