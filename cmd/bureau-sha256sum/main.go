// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/digest/lib/config"
	"github.com/bureau-foundation/digest/lib/decompress"
	"github.com/bureau-foundation/digest/lib/manifest"
	"github.com/bureau-foundation/digest/lib/version"
)

const programName = "bureau-sha256sum"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps the error returned by run to a process exit code,
// printing it unless it is an ExitError whose output was already
// written.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// options is the resolved configuration for one invocation.
type options struct {
	check       bool
	quiet       bool
	stringInput *string
	workers     int
	format      manifest.Format
	encoding    manifest.Encoding
	compression decompress.Compression
	inputs      []string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		configPath  string
		check       bool
		quiet       bool
		verbose     bool
		help        bool
		stringInput string
		workers     int
		format      string
		encoding    string
		compression string
	)

	flagSet := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVarP(&check, "check", "c", false, "read checksum manifests from the FILEs and verify them")
	flagSet.StringVar(&format, "format", "", "manifest format: gnu, bsd, or cbor")
	flagSet.StringVar(&encoding, "encoding", "", "digest text encoding: hex or base64")
	flagSet.StringVar(&compression, "decompress", "", "decode inputs before hashing: none, auto, zstd, or lz4")
	flagSet.IntVarP(&workers, "workers", "j", 0, "number of files hashed in parallel")
	flagSet.StringVar(&configPath, "config", "", "configuration file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&stringInput, "string", "", "hash the given string instead of files")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "with --check, print only failures")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each file at debug level")
	flagSet.BoolVarP(&help, "help", "h", false, "show help")

	// Handle --version before flag parsing to match other Bureau binaries.
	for _, argument := range args {
		if argument == "--version" {
			if hasVerbose(args) {
				fmt.Fprintf(stdout, "%s %s\n", programName, version.Full())
			} else {
				version.Fprint(stdout, programName)
			}
			return nil
		}
	}

	if err := flagSet.Parse(args); err != nil {
		return usage("%v", err)
	}
	if help {
		printHelp(flagSet, stdout)
		return nil
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return usage("%v", err)
	}

	// Flags given explicitly win over the config file.
	if flagSet.Changed("workers") {
		cfg.Workers = workers
	}
	if flagSet.Changed("format") {
		cfg.Format = format
	}
	if flagSet.Changed("encoding") {
		cfg.Encoding = encoding
	}
	if flagSet.Changed("decompress") {
		cfg.Decompress = compression
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return usage("invalid configuration: %v", err)
	}

	opts := options{
		check:  check,
		quiet:  quiet,
		inputs: flagSet.Args(),
	}
	opts.workers = cfg.Workers
	opts.format, _ = cfg.ManifestFormat()
	opts.encoding, _ = cfg.DigestEncoding()
	opts.compression, _ = cfg.Compression()
	level, _ := cfg.Level()

	if flagSet.Changed("string") {
		if check {
			return usage("--string cannot be combined with --check")
		}
		if len(opts.inputs) > 0 {
			return usage("--string does not take FILE arguments")
		}
		opts.stringInput = &stringInput
	}
	if len(opts.inputs) == 0 {
		opts.inputs = []string{"-"}
	}

	logger := newLogger(stderr, level).With("command", programName)

	cmd := &command{
		options: opts,
		logger:  logger,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}
	if check {
		return cmd.verify(ctx)
	}
	return cmd.hash(ctx)
}

func hasVerbose(args []string) bool {
	for _, argument := range args {
		if argument == "-v" || argument == "--verbose" {
			return true
		}
	}
	return false
}

// newLogger writes text records when stderr is a terminal and JSON
// records otherwise, so piped output stays machine-parseable.
func newLogger(stderr io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if file, ok := stderr.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return slog.New(slog.NewTextHandler(stderr, options))
	}
	return slog.New(slog.NewJSONHandler(stderr, options))
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `Compute or verify SHA-256 checksums.

With no FILE, or when FILE is -, read standard input.

Usage:
  %s [flags] [FILE...]
  %s --check [flags] [MANIFEST...]

Flags:
%s
Exit status is 0 on success, 1 if any file could not be read or any
checksum did not match, and 2 for usage or configuration errors.
`, programName, programName, flagSet.FlagUsages())
}
