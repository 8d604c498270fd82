package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor writes and reads the framed S2 stream format, which starts
// with a stream identifier and carries per-block CRCs.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an S2 (or Snappy framed) stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := s2.NewReader(bytes.NewReader(data), s2.ReaderMaxBlockSize(4<<20))
	out, err := io.ReadAll(io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if len(out) > maxDecompressedSize {
		return nil, fmt.Errorf("s2 decompression failed: output exceeds %d bytes", maxDecompressedSize)
	}

	return out, nil
}
