// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hashpool hashes many independent inputs in parallel.
//
// A single SHA-256 computation is inherently sequential: each block
// depends on the chaining state left by the previous one. Separate
// messages share nothing but read-only tables, so the only useful
// parallelism is across inputs. [Pool.Run] spreads a list of paths over
// a fixed number of goroutines and returns one [Result] per path, in
// input order regardless of completion order.
//
// Cancellation is checked before each input is started. An input that
// is already being hashed runs to completion.
package hashpool
