// Package term defines the in-memory values exchanged by the etf codec.
//
// A Value is one of seven cases:
//
//	Integer   signed whole number (int32 range on the wire)
//	Text      opaque byte string
//	Boolean   true / false
//	Unit      absence of value (the atom nil)
//	Symbol    any other atom
//	Sequence  ordered list of values
//	*Mapping  key/value pairs with unique keys
//
// The set is closed. Code that needs to handle every case switches on the
// concrete type:
//
//	switch v := value.(type) {
//	case term.Integer:
//	case term.Text:
//	case term.Boolean:
//	case term.Unit:
//	case term.Symbol:
//	case term.Sequence:
//	case *term.Mapping:
//	}
//
// Values are plain data. A decoded tree shares nothing with the buffer it was
// decoded from and has no cycles.
package term
