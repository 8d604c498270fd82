package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/etf/endian"
)

// Hasher accumulates a 64-bit xxHash digest over a sequence of typed fields.
//
// Variable-length fields are written with a length prefix so that adjacent
// fields cannot run into each other ("ab"+"c" and "a"+"bc" hash differently).
type Hasher struct {
	d       *xxhash.Digest
	scratch []byte
}

// NewHasher creates an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{
		d:       xxhash.New(),
		scratch: make([]byte, 0, 9),
	}
}

// WriteKind writes a one-byte discriminator.
func (h *Hasher) WriteKind(kind byte) {
	h.scratch = append(h.scratch[:0], kind)
	_, _ = h.d.Write(h.scratch)
}

// WriteUint64 writes a fixed-width integer.
func (h *Hasher) WriteUint64(v uint64) {
	h.scratch = endian.Wire().AppendUint64(h.scratch[:0], v)
	_, _ = h.d.Write(h.scratch)
}

// WriteBytes writes a length-prefixed byte slice.
func (h *Hasher) WriteBytes(b []byte) {
	h.WriteUint64(uint64(len(b)))
	_, _ = h.d.Write(b)
}

// WriteString writes a length-prefixed string.
func (h *Hasher) WriteString(s string) {
	h.WriteUint64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

// Sum64 returns the digest of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// Reset clears the digest so the Hasher can be reused.
func (h *Hasher) Reset() {
	h.d.Reset()
}

// Pair mixes two digests into one, order-sensitively.
func Pair(a, b uint64) uint64 {
	var buf [16]byte
	engine := endian.Wire()
	engine.PutUint64(buf[:8], a)
	engine.PutUint64(buf[8:], b)

	return xxhash.Sum64(buf[:])
}
