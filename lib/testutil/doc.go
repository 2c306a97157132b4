// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the digest packages.
//
// [DecodeHex] and [DecodeDigest] turn hex literals from published test
// vectors into bytes, failing the test on malformed input so a typo in
// a vector cannot silently pass.
//
// [Pattern] produces deterministic non-repeating-looking input of any
// length, for boundary sweeps where the content matters less than the
// length.
//
// [WriteFile] creates a file under t.TempDir() and returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no internal dependencies.
package testutil
