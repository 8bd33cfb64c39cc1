package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedEncoding is returned for encoding names the loader does
	// not know.
	ErrUnsupportedEncoding = errors.New("unsupported dictionary encoding")
	// ErrUnsupportedFormat is returned for unknown line formats.
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")
)

// Format tells the loader how to read popularity from a line.
type Format int

const (
	// FormatRanked holds one word per line, most popular first. A word's
	// popularity is its negated line number.
	FormatRanked Format = iota
	// FormatScored holds "word score" per line.
	FormatScored
)

func (f Format) String() string {
	switch f {
	case FormatRanked:
		return "ranked"
	case FormatScored:
		return "scored"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a config value to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ranked":
		return FormatRanked, nil
	case "scored":
		return FormatScored, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ParseEncoding maps a config value to a text encoding. UTF-8 needs no
// decoding and yields nil.
func ParseEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// ValidateTextFile checks that filename is a non-empty regular file with a
// .txt extension or none at all.
func ValidateTextFile(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", filename)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s: %w", filename, ErrEmptyDictionary)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case "", ".txt":
		return nil
	default:
		return fmt.Errorf("file %s has invalid extension %s (expected .txt)", filename, ext)
	}
}
