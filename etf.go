// Package etf encodes and decodes a subset of the Erlang external term format.
//
// The supported subset covers the terms a JSON-like document needs: small and
// 32-bit integers, atoms, binaries, proper lists and maps. Decoded terms are
// represented by the closed term.Value variant set.
//
// # Core Features
//
//   - Byte-exact encoding of term.Value trees, version marker included
//   - Two-phase decoding that validates a term's extent before building it
//   - Typed errors for unsupported tags, versions and value shapes
//   - Optional nesting depth limit and strict trailing-data check
//   - Conversion from plain Go values (maps, slices, strings, integers)
//
// # Basic Usage
//
// Encoding a term:
//
//	import (
//	    "github.com/arloliu/etf"
//	    "github.com/arloliu/etf/term"
//	)
//
//	payload, _ := etf.Encode(term.NewMapping(
//	    term.Pair{Key: term.Text("error"), Value: term.Unit{}},
//	))
//	// payload == []byte{131, 116, 0, 0, 0, 1, 109, 0, 0, 0, 5, 'e', 'r', 'r', 'o', 'r', 100, 0, 3, 'n', 'i', 'l'}
//
// Decoding a payload:
//
//	value, err := etf.Decode(payload, codec.WithMaxDepth(64))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(value) // #{<<"error">> => nil}
//
// Encoding plain Go values:
//
//	payload, err := etf.Marshal(map[string]any{"ids": []any{1, 2, 3}})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// transcode packages. For reusable decoders and streaming output, use the
// codec package directly.
//
//   - term: the decoded value model
//   - codec: encoder and decoder
//   - errs: error sentinels and typed errors
//   - transcode: JSON, YAML, CBOR and Go value conversion
//   - compress: dump file compression used by cmd/etfdump
package etf

import (
	"github.com/arloliu/etf/codec"
	"github.com/arloliu/etf/term"
	"github.com/arloliu/etf/transcode"
)

// Encode serializes a term into a payload starting with the version marker.
//
// Parameters:
//   - v: The term to encode
//
// Returns:
//   - []byte: The encoded payload, owned by the caller
//   - error: An *errs.ValueError for unsupported shapes, or
//     errs.ErrIntegerOutOfRange, errs.ErrNameTooLong, errs.ErrLengthOverflow
func Encode(v term.Value) ([]byte, error) {
	return codec.Encode(v)
}

// Decode parses a payload into a term.
//
// The payload must start with the version marker 131. Bytes after the root
// term are ignored unless codec.WithStrictTrailing is given.
//
// Parameters:
//   - data: The payload; it is not retained
//   - opts: Optional decoder configuration (see codec.DecoderOption)
//
// Returns:
//   - term.Value: The decoded term
//   - error: An error wrapping errs.ErrMalformedInput, an *errs.TagError,
//     errs.ErrMaxDepthExceeded, or an invalid option error
//
// Example:
//
//	value, err := etf.Decode(payload,
//	    codec.WithMaxDepth(32),
//	    codec.WithStrictTrailing(),
//	)
func Decode(data []byte, opts ...codec.DecoderOption) (term.Value, error) {
	return codec.Decode(data, opts...)
}

// Marshal converts a plain Go value with transcode.FromNative and encodes it.
//
// Returns an *errs.ValueError for Go types without a term counterpart,
// floats included.
func Marshal(v any) ([]byte, error) {
	value, err := transcode.FromNative(v)
	if err != nil {
		return nil, err
	}

	return codec.Encode(value)
}

// Unmarshal decodes a payload and converts the result with transcode.ToNative.
func Unmarshal(data []byte, opts ...codec.DecoderOption) (any, error) {
	value, err := codec.Decode(data, opts...)
	if err != nil {
		return nil, err
	}

	return transcode.ToNative(value), nil
}
