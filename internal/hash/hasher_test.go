package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Deterministic(t *testing.T) {
	sum := func() uint64 {
		h := NewHasher()
		h.WriteKind(1)
		h.WriteString("error")
		h.WriteUint64(42)

		return h.Sum64()
	}

	require.Equal(t, sum(), sum())
}

func TestHasher_LengthPrefix(t *testing.T) {
	a := NewHasher()
	a.WriteString("ab")
	a.WriteString("c")

	b := NewHasher()
	b.WriteString("a")
	b.WriteString("bc")

	assert.NotEqual(t, a.Sum64(), b.Sum64())
}

func TestHasher_BytesMatchString(t *testing.T) {
	a := NewHasher()
	a.WriteBytes([]byte("payload"))

	b := NewHasher()
	b.WriteString("payload")

	assert.Equal(t, a.Sum64(), b.Sum64())
}

func TestHasher_Reset(t *testing.T) {
	h := NewHasher()
	empty := h.Sum64()
	assert.Equal(t, xxhash.Sum64(nil), empty)

	h.WriteKind(7)
	require.NotEqual(t, empty, h.Sum64())

	h.Reset()
	assert.Equal(t, empty, h.Sum64())
}

func TestPair(t *testing.T) {
	assert.Equal(t, Pair(1, 2), Pair(1, 2))
	assert.NotEqual(t, Pair(1, 2), Pair(2, 1))
}
