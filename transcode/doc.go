// Package transcode converts decoded terms to and from other data models.
//
// The codec only works with term.Value. This package bridges it to plain Go
// values and to the text and binary formats used when inspecting or
// authoring payloads:
//
//   - FromNative / ToNative: Go values built from any, map and slice types
//   - FromJSON / ToJSON: JSON, with comments and trailing commas accepted on input
//   - FromYAML / ToYAML: YAML documents
//   - FromCBOR / ToCBOR: CBOR with Core Deterministic Encoding
//   - WriteTree: an indented, human-readable rendering
//
// # Mapping Rules
//
//	Go / JSON / YAML         term.Value
//	string, []byte           Text
//	bool                     Boolean
//	nil / null               Unit
//	integer kinds            Integer
//	[]any                    Sequence
//	map[string]any, map[any]any  Mapping (keys sorted by rendering)
//
// Floating point numbers have no term counterpart and are rejected with an
// *errs.ValueError. Integers outside int64 fail with errs.ErrIntegerOutOfRange;
// the encoder still enforces the narrower int32 range.
//
// JSON and YAML cannot tell a Symbol from Text, so both export as strings and
// import as Text. CBOR keeps them apart: Text travels as a byte string and
// Symbol as a text string, which makes ToCBOR and FromCBOR lossless.
package transcode
