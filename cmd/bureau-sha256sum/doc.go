// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-sha256sum computes and verifies SHA-256 checksums using the
// Bureau SHA-256 implementation (lib/sha256) rather than crypto/sha256.
// Its output is line-compatible with coreutils sha256sum, so manifests
// can be checked by either tool.
//
// Each input is hashed whole: regular files are memory-mapped, standard
// input is read to EOF. Independent files are hashed in parallel
// (--workers); output order always matches argument order.
//
// Exit codes:
//
//	0  all inputs hashed (or all checksums matched)
//	1  a file could not be read, or a checksum did not match
//	2  bad arguments, invalid configuration, or a malformed manifest
//
// Configuration is read from --config or BUREAU_DIGEST_CONFIG when set
// (see lib/config); flags given on the command line override it.
package main
