// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sha256

import "math/bits"

// Word functions from FIPS 180-4 section 4.1.2. All arithmetic on
// uint32 wraps modulo 2^32, which is exactly what the standard
// requires.

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// ch selects bits from y where x is set and from z where it is not.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj is the bitwise majority of its three inputs.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}
