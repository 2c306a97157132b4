// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package mapped

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path read-only. Empty files and non-regular
// files are not mapped; the latter are read to EOF instead.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// The mapping stays valid after the descriptor is closed.
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return ReadAll(path, file)
	}

	size := info.Size()
	if size == 0 {
		return &File{name: path}, nil
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%s is %d bytes, too large to map", path, size)
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}
	return &File{name: path, data: data, mapped: true}, nil
}

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	if !f.mapped || f.data == nil {
		f.data = nil
		return nil
	}
	data := f.data
	f.data = nil
	f.mapped = false
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("unmapping %s: %w", f.name, err)
	}
	return nil
}
