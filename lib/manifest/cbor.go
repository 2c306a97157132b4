// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/digest/lib/codec"
	"github.com/bureau-foundation/digest/lib/sha256"
)

const algorithmSHA256 = "sha256"

// maxDiagnosticLength bounds the CBOR diagnostic notation quoted in
// decode errors.
const maxDiagnosticLength = 120

// cborManifest is the on-wire form. Digests travel as byte slices so
// that a wrong length is detected instead of silently zero-filled.
type cborManifest struct {
	Algorithm string      `cbor:"algorithm"`
	Entries   []cborEntry `cbor:"entries"`
}

type cborEntry struct {
	Path   string `cbor:"path"`
	Digest []byte `cbor:"digest"`
}

func writeCBOR(w io.Writer, m *Manifest) error {
	wire := cborManifest{
		Algorithm: algorithmSHA256,
		Entries:   make([]cborEntry, len(m.Entries)),
	}
	for i, entry := range m.Entries {
		digest := entry.Digest
		wire.Entries[i] = cborEntry{Path: entry.Path, Digest: digest[:]}
	}

	data, err := codec.Marshal(wire)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func parseCBOR(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var wire cborManifest
	if err := codec.Unmarshal(data, &wire); err != nil {
		// Well-formed CBOR of the wrong shape is easier to fix when
		// the error shows what was actually there.
		if diagnostic, diagnoseErr := codec.Diagnose(data); diagnoseErr == nil {
			if len(diagnostic) > maxDiagnosticLength {
				diagnostic = diagnostic[:maxDiagnosticLength] + "..."
			}
			return nil, fmt.Errorf("decoding manifest %s: %w", diagnostic, err)
		}
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if wire.Algorithm != algorithmSHA256 {
		return nil, fmt.Errorf("manifest algorithm is %q, want %q", wire.Algorithm, algorithmSHA256)
	}

	manifest := &Manifest{Entries: make([]Entry, len(wire.Entries))}
	for i, entry := range wire.Entries {
		if len(entry.Digest) != sha256.Size {
			return nil, fmt.Errorf("entry %d (%s): digest is %d bytes, want %d", i, entry.Path, len(entry.Digest), sha256.Size)
		}
		if entry.Path == "" {
			return nil, fmt.Errorf("entry %d: empty path", i)
		}
		manifest.Entries[i].Path = entry.Path
		copy(manifest.Entries[i].Digest[:], entry.Digest)
	}
	return manifest, nil
}
