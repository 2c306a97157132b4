// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/digest/lib/binhash"
	"github.com/bureau-foundation/digest/lib/hashpool"
	"github.com/bureau-foundation/digest/lib/manifest"
	"github.com/bureau-foundation/digest/lib/mapped"
)

// stdinName is the FILE argument that means standard input.
const stdinName = "-"

type command struct {
	options
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Standard input is read once; every "-" input sees the same
	// contents regardless of which pool goroutine gets there first.
	stdinOnce sync.Once
	stdinFile *mapped.File
	stdinErr  error
}

func (c *command) readStdin() (*mapped.File, error) {
	c.stdinOnce.Do(func() {
		c.stdinFile, c.stdinErr = mapped.ReadAll("standard input", c.stdin)
	})
	return c.stdinFile, c.stdinErr
}

// hashInput opens one input whole and hashes it. It runs on pool
// goroutines.
func (c *command) hashInput(path string) (binhash.Digest, int64, error) {
	var file *mapped.File
	var err error
	if path == stdinName {
		file, err = c.readStdin()
	} else {
		file, err = mapped.Open(path)
		if err == nil {
			defer file.Close()
		}
	}
	if err != nil {
		return binhash.Digest{}, 0, err
	}
	c.logger.Debug("opened", "path", path, "mapped", file.Mapped())

	digest, err := binhash.HashMapped(file, path, c.compression)
	if err != nil {
		return binhash.Digest{}, 0, err
	}
	return digest, int64(file.Len()), nil
}

func (c *command) pool() *hashpool.Pool {
	return &hashpool.Pool{Workers: c.workers, Hash: c.hashInput}
}

// hash prints a manifest for the inputs.
func (c *command) hash(ctx context.Context) error {
	if c.stringInput != nil {
		result := manifest.Manifest{}
		result.Add(strconv.Quote(*c.stringInput), binhash.HashBytes([]byte(*c.stringInput)))
		return manifest.Write(c.stdout, &result, c.format, c.encoding)
	}

	results := c.pool().Run(ctx, c.inputs)

	output := manifest.Manifest{}
	failed := 0
	var totalBytes int64
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(c.stderr, "%s: %v\n", programName, result.Err)
			continue
		}
		totalBytes += result.Size
		c.logger.Debug("hashed",
			"path", result.Path,
			"size", humanize.IBytes(uint64(result.Size)),
			"digest", binhash.FormatDigest(result.Digest),
		)
		output.Add(result.Path, result.Digest)
	}

	if err := manifest.Write(c.stdout, &output, c.format, c.encoding); err != nil {
		return err
	}

	c.logger.Debug("hashing complete",
		"files", len(output.Entries),
		"failed", failed,
		"total", humanize.IBytes(uint64(totalBytes)),
		"workers", c.workers,
	)
	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

// verify reads every manifest named on the command line and checks
// each listed file against its recorded digest.
func (c *command) verify(ctx context.Context) error {
	var expected []manifest.Entry
	for _, input := range c.inputs {
		var parsed *manifest.Manifest
		var err error
		if input == stdinName {
			parsed, err = manifest.Parse(c.stdin, c.format)
		} else {
			parsed, err = manifest.ReadFile(input, c.format)
		}
		if err != nil {
			return usage("%v", err)
		}
		if len(parsed.Entries) == 0 {
			return usage("%s: no properly formatted SHA256 checksum lines found", input)
		}
		expected = append(expected, parsed.Entries...)
	}

	paths := make([]string, len(expected))
	for i, entry := range expected {
		paths[i] = entry.Path
	}
	results := c.pool().Run(ctx, paths)

	mismatched, unreadable := 0, 0
	for i, result := range results {
		switch {
		case result.Err != nil:
			unreadable++
			fmt.Fprintf(c.stderr, "%s: %v\n", programName, result.Err)
			fmt.Fprintf(c.stdout, "%s: FAILED open or read\n", result.Path)
		case !binhash.Equal(result.Digest, expected[i].Digest):
			mismatched++
			c.logger.Debug("checksum mismatch",
				"path", result.Path,
				"expected", binhash.FormatDigest(expected[i].Digest),
				"actual", binhash.FormatDigest(result.Digest),
			)
			fmt.Fprintf(c.stdout, "%s: FAILED\n", result.Path)
		default:
			if !c.quiet {
				fmt.Fprintf(c.stdout, "%s: OK\n", result.Path)
			}
		}
	}

	if unreadable > 0 {
		fmt.Fprintf(c.stderr, "%s: WARNING: %d %s could not be read\n",
			programName, unreadable, plural(unreadable, "listed file", "listed files"))
	}
	if mismatched > 0 {
		fmt.Fprintf(c.stderr, "%s: WARNING: %d computed %s did NOT match\n",
			programName, mismatched, plural(mismatched, "checksum", "checksums"))
	}
	c.logger.Debug("verification complete",
		"files", len(results),
		"mismatched", mismatched,
		"unreadable", unreadable,
	)
	if unreadable > 0 || mismatched > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func plural(count int, singular, pluralForm string) string {
	if count == 1 {
		return singular
	}
	return pluralForm
}
