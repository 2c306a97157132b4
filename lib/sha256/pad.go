// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha256

import "encoding/binary"

const (
	blockBits = BlockSize * 8

	// lengthFieldBytes is the size of the trailing big-endian bit
	// count.
	lengthFieldBytes = 8

	// freeBitsInLastBlock is what remains of a block after the 64-bit
	// length field and the single marker bit.
	freeBitsInLastBlock = blockBits - lengthFieldBytes*8 - 1
)

// pad returns a new buffer holding message followed by a single 1 bit,
// the minimum zero fill, and the message bit length as a 64-bit
// big-endian integer. The result is always a multiple of BlockSize
// bytes. When the message leaves fewer than 65 free bits in its last
// block, the padding spills into an extra block.
//
// Messages of 2^61 bytes or more overflow the length field; that is
// outside what FIPS 180-4 defines and is not checked.
func pad(message []byte) []byte {
	bitLength := uint64(len(message)) * 8
	remainder := bitLength % blockBits

	var zeroBits uint64
	if remainder <= freeBitsInLastBlock {
		zeroBits = freeBitsInLastBlock - remainder
	} else {
		zeroBits = blockBits - remainder + freeBitsInLastBlock
	}

	// The message is byte aligned, so the marker bit plus the zero
	// fill is always a whole number of bytes.
	markerAndFill := int((1 + zeroBits) / 8)

	padded := make([]byte, len(message)+markerAndFill+lengthFieldBytes)
	copy(padded, message)
	padded[len(message)] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-lengthFieldBytes:], bitLength)
	return padded
}
