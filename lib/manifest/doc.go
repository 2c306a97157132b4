// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads and writes checksum manifests: lists of
// (path, SHA-256 digest) pairs.
//
// Three formats are supported:
//
//   - [GNU]: "<digest>  <path>", the coreutils sha256sum layout. A
//     '*' in place of the second space (binary mode) is accepted on
//     read. Paths containing a newline, carriage return, or backslash
//     are escaped and the line is prefixed with a backslash, as
//     coreutils does. CRLF line endings are accepted on read.
//   - [BSD]: "SHA256 (<path>) = <digest>", the tagged layout produced
//     by "sha256sum --tag" and BSD sha256.
//   - [CBOR]: a single CBOR map using Core Deterministic Encoding, with
//     digests as 32-byte byte strings. Same manifest, same bytes.
//
// Text digests are written as lowercase hex or standard base64
// ([Encoding]); on read the encoding is recognized from the field
// length, so a manifest may mix both. The two text layouts are also
// recognized per line, so [Parse] with either GNU or BSD accepts
// both.
package manifest
