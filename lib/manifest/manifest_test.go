// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/digest/lib/binhash"
	"github.com/bureau-foundation/digest/lib/testutil"
)

const helloHex = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func sampleManifest() *Manifest {
	manifest := &Manifest{}
	manifest.Add("hello.txt", binhash.HashBytes([]byte("hello")))
	manifest.Add("dir/abc", binhash.HashBytes([]byte("abc")))
	manifest.Add("with space.bin", binhash.HashBytes(nil))
	manifest.Add("odd\\name\nwith newline", binhash.HashBytes([]byte("odd")))
	return manifest
}

func TestFormatLineGNU(t *testing.T) {
	entry := Entry{Path: "hello.txt", Digest: testutil.DecodeDigest(t, helloHex)}
	want := helloHex + "  hello.txt"
	if got := FormatLine(entry, GNU, Hex); got != want {
		t.Errorf("FormatLine(GNU) = %q, want %q", got, want)
	}
}

func TestFormatLineBSD(t *testing.T) {
	entry := Entry{Path: "hello.txt", Digest: testutil.DecodeDigest(t, helloHex)}
	want := "SHA256 (hello.txt) = " + helloHex
	if got := FormatLine(entry, BSD, Hex); got != want {
		t.Errorf("FormatLine(BSD) = %q, want %q", got, want)
	}
}

func TestFormatLineEscapesPath(t *testing.T) {
	entry := Entry{Path: "a\\b\nc", Digest: testutil.DecodeDigest(t, helloHex)}
	want := `\` + helloHex + `  a\\b\nc`
	if got := FormatLine(entry, GNU, Hex); got != want {
		t.Errorf("FormatLine = %q, want %q", got, want)
	}
}

func TestCarriageReturnInPath(t *testing.T) {
	entry := Entry{Path: "trailing\r", Digest: testutil.DecodeDigest(t, helloHex)}
	line := FormatLine(entry, GNU, Hex)
	if want := `\` + helloHex + `  trailing\r`; line != want {
		t.Fatalf("FormatLine = %q, want %q", line, want)
	}

	parsed, err := Parse(strings.NewReader(line+"\n"), GNU)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := parsed.Entries[0].Path; got != "trailing\r" {
		t.Errorf("path = %q, want %q", got, "trailing\r")
	}

	// The same file written with CRLF line endings.
	parsed, err = Parse(strings.NewReader(line+"\r\n"), GNU)
	if err != nil {
		t.Fatalf("Parse(CRLF): %v", err)
	}
	if got := parsed.Entries[0].Path; got != "trailing\r" {
		t.Errorf("CRLF path = %q, want %q", got, "trailing\r")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		format   Format
		encoding Encoding
	}{
		{GNU, Hex},
		{GNU, Base64},
		{BSD, Hex},
		{BSD, Base64},
		{CBOR, Hex},
	}

	original := sampleManifest()
	for _, test := range tests {
		t.Run(test.format.String()+"/"+test.encoding.String(), func(t *testing.T) {
			var buffer bytes.Buffer
			if err := Write(&buffer, original, test.format, test.encoding); err != nil {
				t.Fatalf("Write: %v", err)
			}

			parsed, err := Parse(&buffer, test.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(parsed.Entries) != len(original.Entries) {
				t.Fatalf("parsed %d entries, want %d", len(parsed.Entries), len(original.Entries))
			}
			for i := range original.Entries {
				if parsed.Entries[i] != original.Entries[i] {
					t.Errorf("entry %d = %+v, want %+v", i, parsed.Entries[i], original.Entries[i])
				}
			}
		})
	}
}

func TestCBORDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := Write(&first, sampleManifest(), CBOR, Hex); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := Write(&second, sampleManifest(), CBOR, Hex); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("CBOR encoding is not deterministic")
	}
}

func TestParseCoreutilsOutput(t *testing.T) {
	input := helloHex + "  hello.txt\n" +
		helloHex + " *binary.bin\r\n" +
		"\n" +
		"SHA256 (tagged.txt) = " + strings.ToUpper(helloHex) + "\n"

	manifest, err := Parse(strings.NewReader(input), GNU)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantPaths := []string{"hello.txt", "binary.bin", "tagged.txt"}
	if len(manifest.Entries) != len(wantPaths) {
		t.Fatalf("parsed %d entries, want %d", len(manifest.Entries), len(wantPaths))
	}
	want := testutil.DecodeDigest(t, helloHex)
	for i, path := range wantPaths {
		if manifest.Entries[i].Path != path {
			t.Errorf("entry %d path = %q, want %q", i, manifest.Entries[i].Path, path)
		}
		if manifest.Entries[i].Digest != want {
			t.Errorf("entry %d digest = %x, want %x", i, manifest.Entries[i].Digest, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no separator", helloHex + "\n", "line 1"},
		{"bad mode", helloHex + " -path\n", "mode character"},
		{"short digest", "abcd  path\n", "want 64 (hex) or 44 (base64)"},
		{"bad hex", strings.Repeat("z", 64) + "  path\n", "parsing hash digest"},
		{"empty path", helloHex + "  \n", "empty path"},
		{"tagged missing", "SHA256 (path " + helloHex + "\n", "missing"},
		{"second line", helloHex + "  ok\nbroken\n", "line 2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input), GNU)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", test.input)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q should contain %q", err, test.want)
			}
		})
	}
}

func TestParseCBORErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("not cbor"), CBOR); err == nil {
		t.Error("Parse(CBOR) should fail on garbage input")
	}

	// A well-formed array where a map is expected: the error quotes
	// the decoded content.
	_, err := Parse(bytes.NewReader([]byte{0x82, 0x01, 0x02}), CBOR)
	if err == nil {
		t.Fatal("Parse(CBOR) should fail on an array")
	}
	if !strings.Contains(err.Error(), "[1, 2]") {
		t.Errorf("error %q should contain the diagnostic notation [1, 2]", err)
	}
}

func TestParseFormatAndEncoding(t *testing.T) {
	for _, format := range []Format{GNU, BSD, CBOR} {
		parsed, err := ParseFormat(format.String())
		if err != nil || parsed != format {
			t.Errorf("ParseFormat(%q) = %v, %v", format.String(), parsed, err)
		}
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}

	for _, encoding := range []Encoding{Hex, Base64} {
		parsed, err := ParseEncoding(encoding.String())
		if err != nil || parsed != encoding {
			t.Errorf("ParseEncoding(%q) = %v, %v", encoding.String(), parsed, err)
		}
	}
	if _, err := ParseEncoding("base32"); err == nil {
		t.Error("ParseEncoding(base32) should fail")
	}
}

func TestReadFile(t *testing.T) {
	path := testutil.WriteFile(t, "SHA256SUMS", []byte(helloHex+"  hello.txt\n"))
	manifest, err := ReadFile(path, GNU)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(manifest.Entries) != 1 || manifest.Entries[0].Path != "hello.txt" {
		t.Errorf("ReadFile = %+v", manifest.Entries)
	}
}
