// Package codec encodes and decodes the supported subset of the Erlang
// external term format.
//
// # Wire Format
//
// A payload is the version marker 131 followed by exactly one term. Every
// multi-byte field is big-endian.
//
//	97  SMALL_INTEGER_EXT  [UInt8]                     Integer 0..255
//	98  INTEGER_EXT        [Int32]                     Integer
//	100 ATOM_EXT           [UInt16:Len, Len:Name]      Symbol, Boolean, Unit
//	106 NIL_EXT            []                          empty Sequence
//	108 LIST_EXT           [UInt32:N, N terms, NIL_EXT] Sequence
//	109 BINARY_EXT         [UInt32:Len, Len:Data]      Text
//	116 MAP_EXT            [UInt32:N, N*(key, value)]  Mapping
//
// Every other tag, including floats, tuples, bignums, pids and compressed
// terms, fails with an *errs.TagError naming the byte.
//
// # Basic Usage
//
//	payload, err := codec.Encode(term.NewMapping(
//	    term.Pair{Key: term.Text("error"), Value: term.Unit{}},
//	))
//
//	value, err := codec.Decode(payload, codec.WithMaxDepth(64))
//
// # Decoding Strategy
//
// Decoding is two-phase and applied uniformly to every term. The measure
// phase looks at the tag byte and length field to compute how many bytes the
// term occupies; for lists and maps it measures each child in turn. The
// materialize phase then builds the value from exactly that slice.
//
// Cursor ownership: each measure call and each materialize routine owns a
// local cursor that starts at 0 in the slice it was handed and never leaves
// the call. A parent advances its own cursor by the size each child's measure
// reported and hands the child the sub-slice at that cursor; a child never
// sees or moves its parent's cursor. The absolute offset passed alongside a
// slice exists only for error messages.
//
// Composite terms are walked more than once: once when the enclosing term is
// measured and again when each child is materialized.
//
// # Thread Safety
//
// Encode, Decode and a configured *Decoder are safe for concurrent use as
// long as callers do not share a value tree or buffer being mutated.
package codec
