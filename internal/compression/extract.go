// Package compression transparently decompresses catalog and calibration files.
package compression

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes caps the decompressed size of a single input.
const DefaultMaxBytes int64 = 256 * 1024 * 1024

// Format identifies a supported compression format.
type Format string

const (
	// FormatNone means the data is used as-is.
	FormatNone Format = "none"
	// FormatGzip is RFC 1952 gzip (.gz).
	FormatGzip Format = "gzip"
	// FormatXz is xz/LZMA2 (.xz).
	FormatXz Format = "xz"
	// FormatBzip2 is bzip2 (.bz2).
	FormatBzip2 Format = "bzip2"
)

// DetectFormat determines the compression format from a file name or URL.
// Query strings are ignored.
func DetectFormat(name string) Format {
	if idx := strings.IndexByte(name, '?'); idx != -1 {
		name = name[:idx]
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".xz":
		return FormatXz
	case ".bz2":
		return FormatBzip2
	default:
		return FormatNone
	}
}

// TrimExt returns name without its compression extension, e.g.
// "catalog.json.xz" becomes "catalog.json".
func TrimExt(name string) string {
	if DetectFormat(name) == FormatNone {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Decompress decodes data according to the extension of name.
// Uncompressed data is returned unchanged. maxBytes <= 0 uses DefaultMaxBytes.
func Decompress(data []byte, name string, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	switch format := DetectFormat(name); format {
	case FormatGzip:
		return decompressGz(data, maxBytes)
	case FormatXz:
		return decompressXz(data, maxBytes)
	case FormatBzip2:
		return decompressBz2(data, maxBytes)
	case FormatNone:
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}
