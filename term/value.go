package term

import (
	"fmt"
	"strings"
)

// Kind names the variant of a Value.
type Kind uint8

const (
	KindInteger  Kind = 0x1 // KindInteger represents a signed whole number.
	KindText     Kind = 0x2 // KindText represents an opaque byte string.
	KindBoolean  Kind = 0x3 // KindBoolean represents true or false.
	KindUnit     Kind = 0x4 // KindUnit represents the absence of a value.
	KindSymbol   Kind = 0x5 // KindSymbol represents a named atom.
	KindSequence Kind = 0x6 // KindSequence represents an ordered list.
	KindMapping  Kind = 0x7 // KindMapping represents a key/value collection.
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	case KindUnit:
		return "Unit"
	case KindSymbol:
		return "Symbol"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Value is a decoded term. The set of implementations is closed: only the
// types in this package satisfy it.
type Value interface {
	fmt.Stringer
	Kind() Kind
	isValue()
}

// Integer is a signed whole number. Only the int32 range can be encoded.
type Integer int64

// Text is an opaque byte string. Its bytes are never validated as UTF-8.
type Text []byte

// Boolean is true or false, carried on the wire as the atoms true and false.
type Boolean bool

// Unit is the absence of a value, carried on the wire as the atom nil.
type Unit struct{}

// Symbol is an atom other than true, false and nil.
type Symbol string

// Sequence is an ordered list of values.
type Sequence []Value

var (
	_ Value = Integer(0)
	_ Value = Text(nil)
	_ Value = Boolean(false)
	_ Value = Unit{}
	_ Value = Symbol("")
	_ Value = Sequence(nil)
	_ Value = (*Mapping)(nil)
)

func (Integer) Kind() Kind  { return KindInteger }
func (Text) Kind() Kind     { return KindText }
func (Boolean) Kind() Kind  { return KindBoolean }
func (Unit) Kind() Kind     { return KindUnit }
func (Symbol) Kind() Kind   { return KindSymbol }
func (Sequence) Kind() Kind { return KindSequence }

func (Integer) isValue()  {}
func (Text) isValue()     {}
func (Boolean) isValue()  {}
func (Unit) isValue()     {}
func (Symbol) isValue()   {}
func (Sequence) isValue() {}

func (i Integer) String() string {
	return fmt.Sprintf("%d", int64(i))
}

func (t Text) String() string {
	return fmt.Sprintf("<<%q>>", []byte(t))
}

func (b Boolean) String() string {
	if b {
		return AtomTrue
	}

	return AtomFalse
}

func (Unit) String() string {
	return AtomNil
}

// String renders the symbol as an atom, quoting names that are not plain
// lowercase identifiers.
func (s Symbol) String() string {
	if isPlainAtom(string(s)) {
		return string(s)
	}

	return "'" + strings.ReplaceAll(string(s), "'", `\'`) + "'"
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(display(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

func display(v Value) string {
	if v == nil {
		return "<nil>"
	}

	return v.String()
}

func isPlainAtom(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '@':
		default:
			return false
		}
	}

	return true
}
