// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"io"
	"os"
)

// Write serializes m to w. encoding is ignored for CBOR, which always
// stores raw digest bytes.
func Write(w io.Writer, m *Manifest, format Format, encoding Encoding) error {
	switch format {
	case GNU, BSD:
		return writeText(w, m, format, encoding)
	case CBOR:
		return writeCBOR(w, m)
	default:
		return fmt.Errorf("unsupported manifest format: %s", format)
	}
}

// Parse reads a manifest from r. GNU and BSD both accept either text
// layout line by line.
func Parse(r io.Reader, format Format) (*Manifest, error) {
	switch format {
	case GNU, BSD:
		return parseText(r)
	case CBOR:
		return parseCBOR(r)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
}

// ReadFile parses the manifest at path.
func ReadFile(path string, format Format) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer file.Close()

	manifest, err := Parse(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, nil
}
