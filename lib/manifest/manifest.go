// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"github.com/bureau-foundation/digest/lib/binhash"
)

// Entry pairs a path with its digest.
type Entry struct {
	Path   string
	Digest binhash.Digest
}

// Manifest is an ordered list of entries. Order is preserved through
// every format.
type Manifest struct {
	Entries []Entry
}

// Add appends an entry.
func (m *Manifest) Add(path string, digest binhash.Digest) {
	m.Entries = append(m.Entries, Entry{Path: path, Digest: digest})
}

// Format selects the manifest layout.
type Format uint8

const (
	GNU Format = iota
	BSD
	CBOR
)

// String returns the name used in flags and configuration.
func (f Format) String() string {
	switch f {
	case GNU:
		return "gnu"
	case BSD:
		return "bsd"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "gnu":
		return GNU, nil
	case "bsd":
		return BSD, nil
	case "cbor":
		return CBOR, nil
	default:
		return GNU, fmt.Errorf("unknown manifest format %q (want gnu, bsd, or cbor)", name)
	}
}

// Encoding selects how digests are written in text manifests.
type Encoding uint8

const (
	Hex Encoding = iota
	Base64
)

// String returns the name used in flags and configuration.
func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("unknown(%d)", e)
	}
}

// ParseEncoding parses an encoding name.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	default:
		return Hex, fmt.Errorf("unknown digest encoding %q (want hex or base64)", name)
	}
}

// FormatDigest renders digest with encoding.
func FormatDigest(digest binhash.Digest, encoding Encoding) string {
	if encoding == Base64 {
		return binhash.FormatDigestBase64(digest)
	}
	return binhash.FormatDigest(digest)
}

// parseDigestField recognizes hex (64 characters) or base64 (44).
func parseDigestField(field string) (binhash.Digest, error) {
	switch len(field) {
	case 64:
		return binhash.ParseDigest(field)
	case 44:
		return binhash.ParseDigestBase64(field)
	default:
		return binhash.Digest{}, fmt.Errorf("digest field is %d characters, want 64 (hex) or 44 (base64)", len(field))
	}
}
