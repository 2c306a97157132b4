// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha256

import (
	"encoding/binary"
	"fmt"
)

// block is one 512-bit compression input as sixteen big-endian words.
type block [16]uint32

// segment splits a padded message into blocks. The input length must
// be a multiple of BlockSize; anything else means pad is broken, and
// hashing must stop rather than return a digest of the wrong bytes.
func segment(padded []byte) []block {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: padded message is %d bytes, not a multiple of %d", len(padded), BlockSize))
	}

	blocks := make([]block, len(padded)/BlockSize)
	for i := range blocks {
		chunk := padded[i*BlockSize : (i+1)*BlockSize]
		for j := range blocks[i] {
			blocks[i][j] = binary.BigEndian.Uint32(chunk[j*4:])
		}
	}
	return blocks
}
