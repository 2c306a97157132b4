// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mapped

import (
	"fmt"
	"io"
	"runtime/debug"
)

// File is a read-only view of a file's full contents. The zero value
// is an empty file.
type File struct {
	name   string
	data   []byte
	mapped bool
}

// ReadAll reads r to EOF and returns the contents as a heap-backed
// File. name is used only in error messages.
func ReadAll(name string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &File{name: name, data: data}, nil
}

// Bytes returns the file contents. The slice is invalid after Close
// and must not be written to.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the size of the contents in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// Mapped reports whether the contents are backed by a memory mapping.
func (f *File) Mapped() bool {
	return f.mapped
}

// View calls fn with the file contents. A page fault while fn runs
// (the file shrank under the mapping, or the disk returned an I/O
// error) is reported as an error. Any other panic raised by fn
// propagates unchanged.
func (f *File) View(fn func(data []byte)) (err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		recovered := recover()
		if recovered == nil {
			return
		}
		// Memory faults surface as runtime errors carrying the
		// faulting address.
		fault, ok := recovered.(interface{ Addr() uintptr })
		if !ok {
			panic(recovered)
		}
		err = fmt.Errorf("page fault reading %s at %#x: %v", f.name, fault.Addr(), recovered)
	}()
	fn(f.data)
	return nil
}
