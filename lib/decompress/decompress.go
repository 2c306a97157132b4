// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decompress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how an input is encoded.
type Compression uint8

const (
	// None passes the input through unchanged.
	None Compression = iota

	// Auto selects zstd, LZ4, or None from the input's magic number.
	Auto

	// Zstd is a zstd frame (RFC 8878).
	Zstd

	// LZ4 is an LZ4 frame (not a raw block).
	LZ4
)

// MaxDecodedSize bounds the output of Decode.
const MaxDecodedSize = 4 << 30

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the name used in flags and configuration.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Auto:
		return "auto"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// ParseCompression parses a compression name.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "":
		return None, nil
	case "auto":
		return Auto, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("unknown compression %q (want none, auto, zstd, or lz4)", name)
	}
}

// Detect returns the compression indicated by the leading magic
// number of data, or None if it matches nothing known.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// zstdDecoder is shared across calls; DecodeAll is safe for concurrent
// use.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(MaxDecodedSize),
	)
	if err != nil {
		panic("decompress: zstd decoder initialization failed: " + err.Error())
	}
}

// Decode returns the decoded contents of data. For None (and for Auto
// when no magic number matches) data itself is returned without
// copying.
func Decode(data []byte, compression Compression) ([]byte, error) {
	if compression == Auto {
		compression = Detect(data)
	}

	switch compression {
	case None:
		return data, nil
	case Zstd:
		return decodeZstd(data)
	case LZ4:
		return decodeLZ4(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}

func decodeZstd(data []byte) ([]byte, error) {
	decoded, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return decoded, nil
}

func decodeLZ4(data []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(data))
	decoded, err := io.ReadAll(io.LimitReader(reader, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("lz4 decode: %w", err)
	}
	if int64(len(decoded)) > MaxDecodedSize {
		return nil, fmt.Errorf("lz4 decode: output exceeds %d bytes", MaxDecodedSize)
	}
	return decoded, nil
}
