// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/digest/lib/decompress"
	"github.com/bureau-foundation/digest/lib/manifest"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "BUREAU_DIGEST_CONFIG"

// MaxWorkers bounds the workers setting.
const MaxWorkers = 256

// Config is the configuration for bureau-sha256sum.
type Config struct {
	// Workers is the number of files hashed concurrently.
	// Default: number of CPUs.
	Workers int `yaml:"workers" json:"workers"`

	// Format is the manifest layout: "gnu", "bsd", or "cbor".
	// Default: gnu
	Format string `yaml:"format" json:"format"`

	// Encoding is the digest text encoding: "hex" or "base64".
	// Default: hex
	Encoding string `yaml:"encoding" json:"encoding"`

	// Decompress selects input decoding: "none", "auto", "zstd", or
	// "lz4". Default: none
	Decompress string `yaml:"decompress" json:"decompress"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: info
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:    min(runtime.NumCPU(), MaxWorkers),
		Format:     manifest.GNU.String(),
		Encoding:   manifest.Hex.String(),
		Decompress: decompress.None.String(),
		LogLevel:   "info",
	}
}

// Load loads the file named by BUREAU_DIGEST_CONFIG, or returns the
// defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Keys absent
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		return decoder.Decode(c)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// ManifestFormat returns the parsed Format setting.
func (c *Config) ManifestFormat() (manifest.Format, error) {
	return manifest.ParseFormat(c.Format)
}

// DigestEncoding returns the parsed Encoding setting.
func (c *Config) DigestEncoding() (manifest.Encoding, error) {
	return manifest.ParseEncoding(c.Encoding)
}

// Compression returns the parsed Decompress setting.
func (c *Config) Compression() (decompress.Compression, error) {
	return decompress.ParseCompression(c.Decompress)
}

// Level returns the parsed LogLevel setting.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 1 || c.Workers > MaxWorkers {
		errs = append(errs, fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers))
	}
	if _, err := c.ManifestFormat(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.DigestEncoding(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Compression(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
