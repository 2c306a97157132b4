// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mapped

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bureau-foundation/digest/lib/testutil"
)

func TestOpen(t *testing.T) {
	content := testutil.Pattern(10_000)
	path := testutil.WriteFile(t, "data", content)

	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	if !bytes.Equal(file.Bytes(), content) {
		t.Fatal("mapped contents differ from file contents")
	}
	if file.Len() != len(content) {
		t.Errorf("Len = %d, want %d", file.Len(), len(content))
	}
	if (runtime.GOOS == "linux" || runtime.GOOS == "darwin") && !file.Mapped() {
		t.Error("regular file should be memory-mapped")
	}
}

func TestOpenEmpty(t *testing.T) {
	path := testutil.WriteFile(t, "empty", nil)

	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open(empty): %v", err)
	}
	defer file.Close()

	if file.Len() != 0 {
		t.Errorf("Len = %d, want 0", file.Len())
	}
	if file.Mapped() {
		t.Error("empty file should not be mapped")
	}
}

func TestOpenNonexistent(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Open should fail for a nonexistent file")
	}
}

func TestCloseIdempotent(t *testing.T) {
	path := testutil.WriteFile(t, "data", []byte("close twice"))
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if file.Bytes() != nil {
		t.Error("Bytes should be nil after Close")
	}
}

func TestReadAll(t *testing.T) {
	file, err := ReadAll("stdin", strings.NewReader("piped input"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	defer file.Close()

	if string(file.Bytes()) != "piped input" {
		t.Errorf("Bytes = %q, want %q", file.Bytes(), "piped input")
	}
	if file.Mapped() {
		t.Error("ReadAll result should not be mapped")
	}
}

func TestView(t *testing.T) {
	path := testutil.WriteFile(t, "data", []byte("view me"))
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	var seen string
	if err := file.View(func(data []byte) { seen = string(data) }); err != nil {
		t.Fatalf("View: %v", err)
	}
	if seen != "view me" {
		t.Errorf("View saw %q, want %q", seen, "view me")
	}
}

func TestViewPropagatesOtherPanics(t *testing.T) {
	path := testutil.WriteFile(t, "data", testutil.Pattern(65))
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	const message = "sha256: padded message is 65 bytes, not a multiple of 64"
	defer func() {
		recovered := recover()
		if recovered != message {
			t.Errorf("recovered %v, want %q", recovered, message)
		}
	}()
	err = file.View(func([]byte) { panic(message) })
	t.Fatalf("View returned %v instead of panicking", err)
}
