// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR encoding configuration for binary
// checksum manifests.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same manifest always encodes to the same bytes, so a CBOR manifest
// can itself be checksummed and signed.
//
// The decoder rejects duplicate map keys. A manifest with two "digest"
// fields in one entry is ambiguous, and picking either one silently
// would let a tampered manifest verify.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types serialized through this package use `cbor` struct tags only.
package codec
