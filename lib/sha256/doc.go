// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sha256 computes SHA-256 digests as defined in FIPS 180-4.
//
// The computation is a straight pipeline over a message that is fully
// available in memory:
//
//   - pad appends the 0x80 marker, zero fill, and the 64-bit big-endian
//     bit length so the result is a whole number of 64-byte blocks
//   - segment reads the padded bytes as blocks of sixteen big-endian
//     32-bit words
//   - compress expands each block into a 64-word message schedule and
//     runs the 64 rounds against the chaining state
//   - serialize writes the final eight state words big-endian
//
// The exported surface is [Sum] plus the [Size] and [BlockSize]
// constants. There is deliberately no incremental (io.Writer) interface:
// callers that hash files map or read them whole first (see lib/mapped).
//
// Sum keeps all of its working state on its own stack and heap
// allocations; the round constant and initial value tables are never
// written. Concurrent calls need no synchronization.
//
// This package has no dependencies on other Bureau packages.
package sha256
