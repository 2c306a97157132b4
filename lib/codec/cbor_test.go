// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

type sampleEntry struct {
	Path   string `cbor:"path"`
	Digest []byte `cbor:"digest"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleEntry{Path: "bin/tool", Digest: []byte{0xde, 0xad, 0xbe, 0xef}}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Path != original.Path || !bytes.Equal(decoded.Digest, original.Digest) {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(map[string]int{"zeta": 1, "alpha": 2, "mid": 3})
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(map[string]int{"mid": 3, "alpha": 2, "zeta": 1})
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("encoding depends on map insertion order:\n  %x\n  %x", first, second)
	}
}

func TestUnmarshalRejectsDuplicateKeys(t *testing.T) {
	// {"path": "a", "path": "b"}
	data := []byte{0xa2, 0x64, 'p', 'a', 't', 'h', 0x61, 'a', 0x64, 'p', 'a', 't', 'h', 0x61, 'b'}

	var decoded sampleEntry
	err := Unmarshal(data, &decoded)
	if err == nil {
		t.Fatal("Unmarshal should reject duplicate map keys")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(sampleEntry{Path: "x", Digest: []byte{0x01}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"path": "x"`) {
		t.Errorf("Diagnose = %s", diagnostic)
	}
}
