package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/etf/errs"
)

// CompressionType identifies the container compression of a term dump file.
// It applies to whole files, never to terms inside a payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard frames.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 streams.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frames.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompressionType, name)
	}
}
