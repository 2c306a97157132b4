// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash hashes files and byte slices with lib/sha256 and
// converts digests to and from their text forms.
//
// The API surface:
//
//   - [HashBytes] -- digest of an in-memory message
//   - [HashFile] -- memory-maps a file (see lib/mapped) and hashes its
//     full contents, turning page faults into errors
//   - [HashFileDecoded] -- as HashFile, but hashes the decoded contents
//     of a zstd or LZ4 file (see lib/decompress)
//   - [FormatDigest] and [ParseDigest] -- the canonical lowercase hex
//     form used in manifests and log output
//   - [FormatDigestBase64] and [ParseDigestBase64] -- standard base64,
//     for manifests written with --encoding=base64
//   - [Equal] -- constant-time digest comparison for verification
package binhash
