package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4ReaderPool pools frame readers; Reset rebinds them to a new source.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4Compressor writes and reads LZ4 frames.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into one LZ4 frame with a content checksum.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(w)

	w.Reset(&buf)
	if err := w.Apply(lz4.ChecksumOption(true), lz4.ConcurrencyOption(1)); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an LZ4 frame.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(r)

	r.Reset(bytes.NewReader(data))
	out, err := io.ReadAll(io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if len(out) > maxDecompressedSize {
		return nil, fmt.Errorf("lz4 decompression failed: output exceeds %d bytes", maxDecompressedSize)
	}

	return out, nil
}
