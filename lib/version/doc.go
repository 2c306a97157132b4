// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for
// bureau-sha256sum.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// These default to "unknown" / "0.1.0-dev" when not injected, which
// occurs during development builds and test runs.
//
// [Info] is the one-line form printed by --version. [Full] adds the Go
// toolchain, platform, and the SHA-256 of the running binary as
// computed by this module's own implementation ([SelfDigest]), so a
// release can be checked against its published checksum using nothing
// but itself.
package version
