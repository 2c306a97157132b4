// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha256

import "encoding/binary"

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the length of one compression block in bytes.
	BlockSize = 64
)

// Sum returns the SHA-256 digest of message. The message is not
// modified.
func Sum(message []byte) [Size]byte {
	state := initialState
	blocks := segment(pad(message))
	for i := range blocks {
		compress(&state, &blocks[i])
	}
	return serialize(&state)
}

// serialize writes the eight state words big-endian, word 0 first.
func serialize(state *[8]uint32) [Size]byte {
	var digest [Size]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}
	return digest
}
