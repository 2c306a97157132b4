// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for bureau-sha256sum.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]) or the BUREAU_DIGEST_CONFIG environment variable
// (via [Load]). There is no ~/.config discovery and no automatic file
// search. When neither is given, [Load] returns [Default].
//
// Files ending in .json or .jsonc are parsed as JSONC (comments and
// trailing commas allowed); everything else is parsed as YAML. Unknown
// keys are rejected in both, so a misspelled option fails loudly
// instead of being ignored.
//
// Key exports:
//
//   - [Config] -- workers, manifest format, digest encoding,
//     decompression, and log level
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
package config
