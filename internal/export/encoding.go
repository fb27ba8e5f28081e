// Package export writes CSV files in the encodings spreadsheet users ask for:
// UTF-8 with a byte order mark (what Excel needs to detect UTF-8), plain
// UTF-8, and Shift_JIS for older Japanese Excel installs.
package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding selects the byte encoding of an output file.
type Encoding int

const (
	// UTF8BOM is UTF-8 prefixed with a byte order mark.
	UTF8BOM Encoding = iota
	// UTF8 is UTF-8 without a byte order mark.
	UTF8
	// ShiftJIS is the legacy Japanese encoding. Characters outside its
	// repertoire are reported and replaced, never fatal.
	ShiftJIS
)

var encodingNames = map[string]Encoding{
	"utf-8-sig": UTF8BOM,
	"utf8-sig":  UTF8BOM,
	"utf8bom":   UTF8BOM,
	"utf-8-bom": UTF8BOM,
	"bom":       UTF8BOM,
	"utf-8":     UTF8,
	"utf8":      UTF8,
	"shift_jis": ShiftJIS,
	"shift-jis": ShiftJIS,
	"shiftjis":  ShiftJIS,
	"sjis":      ShiftJIS,
	"cp932":     ShiftJIS,
}

// ParseEncoding resolves a user-supplied encoding name (case-insensitive).
func ParseEncoding(name string) (Encoding, error) {
	if enc, ok := encodingNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return enc, nil
	}
	return 0, fmt.Errorf("unknown encoding %q (valid: utf-8-sig, utf-8, shift_jis)", name)
}

func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8-sig"
	case UTF8:
		return "utf-8"
	case ShiftJIS:
		return "shift_jis"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Legacy reports whether the encoding cannot represent all of Unicode.
func (e Encoding) Legacy() bool {
	return e == ShiftJIS
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF8BOM:
		return unicode.UTF8BOM
	case ShiftJIS:
		return japanese.ShiftJIS
	default:
		return encoding.Nop
	}
}

// NewWriter returns a writer that encodes UTF-8 input as e. The caller must
// Close it to flush buffered output; closing does not close w.
func (e Encoding) NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, e.codec().NewEncoder())
}

// NewReader returns a reader that decodes e into UTF-8. For the UTF-8
// encodings a leading byte order mark is dropped if present.
func (e Encoding) NewReader(r io.Reader) io.Reader {
	if e == ShiftJIS {
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}
	return StripBOM(r)
}

// StripBOM drops a leading UTF-8 byte order mark from r. Input without a
// BOM passes through unchanged.
func StripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// unrepresentable returns the runes of s that e cannot encode.
func (e Encoding) unrepresentable(s string) []rune {
	if !e.Legacy() {
		return nil
	}
	enc := e.codec().NewEncoder()
	if _, err := enc.String(s); err == nil {
		return nil
	}

	var bad []rune
	for _, r := range s {
		if _, err := enc.String(string(r)); err != nil {
			bad = append(bad, r)
		}
	}
	return bad
}

// replaceUnrepresentable substitutes '?' for every rune in bad.
func replaceUnrepresentable(s string, bad []rune) string {
	set := make(map[rune]struct{}, len(bad))
	for _, r := range bad {
		set[r] = struct{}{}
	}
	return strings.Map(func(r rune) rune {
		if _, ok := set[r]; ok {
			return '?'
		}
		return r
	}, s)
}
