// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapped presents a whole file as one contiguous, read-only
// byte slice.
//
// The SHA-256 implementation in lib/sha256 takes the complete message
// up front. Reading a large file into the Go heap just to hash it
// doubles its memory cost, so on Linux and Darwin [Open] memory-maps
// regular files read-only instead. Pipes, character devices, and
// standard input cannot be mapped; they are read to EOF by [ReadAll]
// (and by Open, when it finds a non-regular file). Other platforms
// always read into memory.
//
// A mapping can fault if the underlying file is truncated while it is
// being read. [File.View] runs a function over the data with
// debug.SetPanicOnFault enabled and turns such a fault into an error
// rather than letting SIGBUS kill the process.
package mapped
