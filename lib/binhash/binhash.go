// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/bureau-foundation/digest/lib/decompress"
	"github.com/bureau-foundation/digest/lib/mapped"
	"github.com/bureau-foundation/digest/lib/sha256"
)

// Digest is a SHA-256 digest.
type Digest = [sha256.Size]byte

// HashBytes returns the SHA-256 digest of data.
func HashBytes(data []byte) Digest {
	return sha256.Sum(data)
}

// HashFile computes the SHA-256 digest of the file at path. The file is
// memory-mapped rather than read, so its contents never pass through
// the Go heap.
func HashFile(path string) (Digest, error) {
	return HashFileDecoded(path, decompress.None)
}

// HashFileDecoded computes the SHA-256 digest of the file at path after
// decoding it with compression. With decompress.Auto, files without a
// recognized magic number are hashed as-is.
func HashFileDecoded(path string, compression decompress.Compression) (Digest, error) {
	file, err := mapped.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	return hashView(path, file, compression)
}

// HashMapped hashes an already opened file. The caller keeps ownership
// of file.
func HashMapped(file *mapped.File, name string, compression decompress.Compression) (Digest, error) {
	return hashView(name, file, compression)
}

func hashView(name string, file *mapped.File, compression decompress.Compression) (Digest, error) {
	var digest Digest
	var decodeErr error
	err := file.View(func(data []byte) {
		message, err := decompress.Decode(data, compression)
		if err != nil {
			decodeErr = err
			return
		}
		digest = sha256.Sum(message)
	})
	if err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", name, err)
	}
	if decodeErr != nil {
		return Digest{}, fmt.Errorf("decoding %s: %w", name, decodeErr)
	}
	return digest, nil
}

// FormatDigest returns the lowercase hex encoding of a digest.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a 64-character hex digest, in either case.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing hash digest: %w", err)
	}
	if len(decoded) != sha256.Size {
		return digest, fmt.Errorf("hash digest is %d bytes, want %d", len(decoded), sha256.Size)
	}
	copy(digest[:], decoded)
	return digest, nil
}

// FormatDigestBase64 returns the standard (padded) base64 encoding of
// a digest.
func FormatDigestBase64(digest Digest) string {
	return base64.StdEncoding.EncodeToString(digest[:])
}

// ParseDigestBase64 parses a standard base64 digest.
func ParseDigestBase64(encoded string) (Digest, error) {
	var digest Digest
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return digest, fmt.Errorf("parsing base64 digest: %w", err)
	}
	if len(decoded) != sha256.Size {
		return digest, fmt.Errorf("hash digest is %d bytes, want %d", len(decoded), sha256.Size)
	}
	copy(digest[:], decoded)
	return digest, nil
}

// Equal reports whether two digests match, in time independent of
// where they differ.
func Equal(a, b Digest) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
