package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/format"
)

// Compressor compresses a whole dump file.
//
// The returned slice is newly allocated and owned by the caller, except for
// the no-op codec which returns its input. The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a whole dump file produced by the matching Compressor.
//
// It returns an error if the input is corrupted or uses another format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	s2Magic   = []byte{0xff, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}

// Detect returns the compression type identified by the magic bytes at the
// start of data, or CompressionNone if there are none.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}
