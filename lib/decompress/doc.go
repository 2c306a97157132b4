// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package decompress decodes compressed inputs before they are hashed,
// so that "bureau-sha256sum --decompress" reports the digest of the
// content inside a .zst or .lz4 file rather than of its container.
//
// Supported formats are zstd frames (klauspost/compress) and LZ4
// frames (pierrec/lz4). [Detect] sniffs the frame magic number;
// [Decode] decodes a whole buffer, resolving [Auto] through Detect.
// Decoded output is capped at [MaxDecodedSize] so a small hostile file
// cannot exhaust memory.
package decompress
