// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !linux

package mapped

import (
	"fmt"
	"os"
)

// Open reads the file at path into memory.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{name: path, data: data}, nil
}

// Close releases the contents. It is safe to call more than once.
func (f *File) Close() error {
	f.data = nil
	return nil
}
