// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bureau-foundation/digest/lib/binhash"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns detailed version information including the Go version
// and the digest of the running binary. A failure to hash the binary
// is reported inline rather than as an error.
func Full() string {
	selfDigest, _, err := SelfDigest()
	if err != nil {
		selfDigest = "unavailable: " + err.Error()
	}
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  Binary SHA-256: %s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH, selfDigest)
}

// Fprint writes "<name> <Info()>" to w.
func Fprint(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, Info())
}

// SelfDigest returns the SHA-256 hex digest and absolute filesystem
// path of the currently running binary. On Linux os.Executable reads
// /proc/self/exe, which keeps pointing at the original binary even if
// it has been replaced on disk since the process started.
func SelfDigest() (digest string, binaryPath string, err error) {
	executable, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("resolving own executable path: %w", err)
	}
	sum, err := binhash.HashFile(executable)
	if err != nil {
		return "", "", fmt.Errorf("hashing own binary at %s: %w", executable, err)
	}
	return binhash.FormatDigest(sum), executable, nil
}
