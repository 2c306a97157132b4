// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bsdTag = "SHA256 ("

// maxLineLength bounds a single manifest line. Paths longer than this
// are not something any filesystem produces.
const maxLineLength = 1 << 20

var (
	pathEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	pathUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// FormatLine renders a single text manifest line without the trailing
// newline.
func FormatLine(entry Entry, format Format, encoding Encoding) string {
	path := entry.Path
	prefix := ""
	if strings.ContainsAny(path, "\\\n\r") {
		path = pathEscaper.Replace(path)
		prefix = `\`
	}

	digest := FormatDigest(entry.Digest, encoding)
	if format == BSD {
		return prefix + bsdTag + path + ") = " + digest
	}
	return prefix + digest + "  " + path
}

func writeText(w io.Writer, m *Manifest, format Format, encoding Encoding) error {
	buffered := bufio.NewWriter(w)
	for _, entry := range m.Entries {
		if _, err := buffered.WriteString(FormatLine(entry, format, encoding)); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func parseText(r io.Reader) (*Manifest, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	manifest := &Manifest{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Carriage returns in paths are always escaped, so a raw one
		// at the end of a line is a CRLF terminator.
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		manifest.Entries = append(manifest.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return manifest, nil
}

// ParseLine parses one GNU or BSD manifest line.
func ParseLine(line string) (Entry, error) {
	escaped := strings.HasPrefix(line, `\`)
	if escaped {
		line = line[1:]
	}

	var digestField, path string
	if strings.HasPrefix(line, bsdTag) {
		separator := strings.LastIndex(line, ") = ")
		if separator < len(bsdTag) {
			return Entry{}, errors.New(`malformed tagged line: missing ") = "`)
		}
		path = line[len(bsdTag):separator]
		digestField = line[separator+len(") = "):]
	} else {
		space := strings.IndexByte(line, ' ')
		if space < 0 || space+1 >= len(line) {
			return Entry{}, errors.New("malformed line: want \"<digest>  <path>\"")
		}
		if mode := line[space+1]; mode != ' ' && mode != '*' {
			return Entry{}, fmt.Errorf("malformed line: unexpected mode character %q", mode)
		}
		digestField = line[:space]
		path = line[space+2:]
	}

	if path == "" {
		return Entry{}, errors.New("malformed line: empty path")
	}
	if escaped {
		path = pathUnescaper.Replace(path)
	}

	digest, err := parseDigestField(digestField)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Path: path, Digest: digest}, nil
}
