package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options controls script decoding.
type Options struct {
	// Encoding applies when the input has no byte order mark.
	// One of EncodingUTF8 (default), EncodingLatin1, EncodingWindows1252.
	Encoding string
}

// NewReader wraps r so that it yields UTF-8. A UTF-8 or UTF-16 BOM selects
// the encoding; otherwise opts.Encoding is used.
func NewReader(r io.Reader, opts Options) (io.Reader, error) {
	var fallback transform.Transformer
	switch strings.ToLower(opts.Encoding) {
	case "", EncodingUTF8, "utf8":
		fallback = unicode.UTF8.NewDecoder()
	case EncodingLatin1, "iso-8859-1":
		fallback = charmap.ISO8859_1.NewDecoder()
	case EncodingWindows1252, "cp1252":
		fallback = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("script: unsupported encoding %q", opts.Encoding)
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback)), nil
}

// Parse reads every command from r. It stops at the first syntax error and
// returns it as a *ParseError.
func Parse(r io.Reader, opts Options) ([]Command, error) {
	dec, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(dec)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var cmds []Command
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		cmd, err := ParseLine(text)
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			return nil, &ParseError{Line: line, Text: strings.TrimSpace(text), Err: err}
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning script: %w", err)
	}
	return cmds, nil
}
