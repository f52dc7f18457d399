package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/colorsful/colorsful/internal/security"
	"github.com/ulikunitz/xz"
)

// decompressGz decompresses gzipped data.
func decompressGz(data []byte, maxBytes int64) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	return readLimited(gzr, maxBytes, "gzip")
}

// decompressXz decompresses xz-compressed data.
func decompressXz(data []byte, maxBytes int64) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	return readLimited(xzr, maxBytes, "xz")
}

// decompressBz2 decompresses bzip2-compressed data.
func decompressBz2(data []byte, maxBytes int64) ([]byte, error) {
	return readLimited(bzip2.NewReader(bytes.NewReader(data)), maxBytes, "bzip2")
}

func readLimited(r io.Reader, maxBytes int64, format string) ([]byte, error) {
	out, err := io.ReadAll(security.NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s data: %w", format, err)
	}
	return out, nil
}
