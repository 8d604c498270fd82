package term

import (
	"bytes"

	"github.com/arloliu/etf/internal/hash"
)

// Equal reports whether a and b are the same value.
//
// Sequences are compared element by element. Mappings are equal when they
// hold equal keys with equal values, regardless of pair order. Two nil
// values are equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Text:
		y, ok := b.(Text)
		return ok && bytes.Equal(x, y)
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case Sequence:
		y, ok := b.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}

		return true
	case *Mapping:
		y, ok := b.(*Mapping)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for k, v := range x.All() {
			other, found := y.Get(k)
			if !found || !Equal(v, other) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Fingerprint returns a 64-bit digest of v such that Equal values have equal
// fingerprints. Mapping fingerprints do not depend on pair order.
func Fingerprint(v Value) uint64 {
	h := hash.NewHasher()
	writeFingerprint(h, v)

	return h.Sum64()
}

func writeFingerprint(h *hash.Hasher, v Value) {
	if v == nil {
		h.WriteKind(0)
		return
	}

	h.WriteKind(byte(v.Kind()))

	switch x := v.(type) {
	case Integer:
		h.WriteUint64(uint64(x)) //nolint:gosec
	case Text:
		h.WriteBytes(x)
	case Boolean:
		if x {
			h.WriteKind(1)
		} else {
			h.WriteKind(0)
		}
	case Unit:
	case Symbol:
		h.WriteString(string(x))
	case Sequence:
		h.WriteUint64(uint64(len(x)))
		for _, elem := range x {
			writeFingerprint(h, elem)
		}
	case *Mapping:
		// Summing per-pair digests makes the result independent of order.
		var acc uint64
		for k, val := range x.All() {
			acc += hash.Pair(Fingerprint(k), Fingerprint(val))
		}
		h.WriteUint64(uint64(x.Len()))
		h.WriteUint64(acc)
	}
}
