// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/hex"
	"os"
	"path/filepath"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	TempDir() string
}

// DecodeHex decodes a hex string or fails the test.
func DecodeHex(t TB, s string) []byte {
	t.Helper()
	decoded, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return decoded
}

// DecodeDigest decodes a 64-character hex string into a 32-byte array
// or fails the test.
func DecodeDigest(t TB, s string) [32]byte {
	t.Helper()
	decoded := DecodeHex(t, s)
	if len(decoded) != 32 {
		t.Fatalf("digest %q is %d bytes, want 32", s, len(decoded))
	}
	var digest [32]byte
	copy(digest[:], decoded)
	return digest
}

// Pattern returns length bytes of deterministic content. A prime
// modulus keeps the pattern from lining up with block boundaries.
func Pattern(length int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}

// WriteFile writes content to name inside a fresh temporary directory
// and returns the full path.
func WriteFile(t TB, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", path, err)
	}
	return path
}
