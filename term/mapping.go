package term

import (
	"iter"
	"strings"

	"github.com/arloliu/etf/internal/collision"
)

// Pair is one key/value entry of a Mapping.
type Pair struct {
	Key   Value
	Value Value
}

// Mapping is a collection of key/value pairs with unique keys.
//
// Keys are compared with Equal. Pairs keep their insertion order, which is
// the order the encoder emits them in; setting an existing key replaces its
// value in place. The zero value is an empty mapping ready to use.
//
// Note: Mapping is NOT safe for concurrent mutation.
type Mapping struct {
	pairs []Pair
	keys  *collision.Tracker
}

// NewMapping creates a mapping holding pairs. Later pairs win over earlier
// pairs with an equal key.
func NewMapping(pairs ...Pair) *Mapping {
	m := &Mapping{
		pairs: make([]Pair, 0, len(pairs)),
		keys:  collision.NewTracker(len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

func (*Mapping) Kind() Kind { return KindMapping }

func (*Mapping) isValue() {}

// Len returns the number of pairs.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.pairs)
}

// Set stores value under key, replacing the value of an equal existing key.
func (m *Mapping) Set(key, value Value) {
	if m.keys == nil {
		m.keys = collision.NewTracker(0)
	}

	fp := Fingerprint(key)
	if slot, ok := m.lookup(fp, key); ok {
		m.pairs[slot].Value = value
		return
	}

	m.keys.Track(fp, len(m.pairs))
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored under a key equal to key.
func (m *Mapping) Get(key Value) (Value, bool) {
	if m.Len() == 0 {
		return nil, false
	}

	slot, ok := m.lookup(Fingerprint(key), key)
	if !ok {
		return nil, false
	}

	return m.pairs[slot].Value, true
}

func (m *Mapping) lookup(fp uint64, key Value) (int, bool) {
	return m.keys.Lookup(fp, func(slot int) bool {
		return Equal(m.pairs[slot].Key, key)
	})
}

// All yields the pairs in insertion order.
func (m *Mapping) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the pairs in insertion order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}

	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)

	return out
}

func (m *Mapping) String() string {
	var sb strings.Builder
	sb.WriteString("#{")
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(display(k))
		sb.WriteString(" => ")
		sb.WriteString(display(v))
		i++
	}
	sb.WriteByte('}')

	return sb.String()
}
