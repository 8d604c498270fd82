// Package errs defines the errors returned by the etf codec.
//
// Decode-side structural failures all wrap ErrMalformedInput, so callers that
// only care whether the input was well formed can test a single sentinel:
//
//	if errors.Is(err, errs.ErrMalformedInput) {
//	    // reject the source
//	}
//
// Errors that carry data (the offending tag byte, the rejected value shape)
// are exposed as typed errors and can be inspected with errors.As.
package errs

import (
	"errors"
	"fmt"
)

// Decode errors.
var (
	ErrMalformedInput     = errors.New("malformed input")
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported format version", ErrMalformedInput)
	ErrTruncatedInput     = fmt.Errorf("%w: truncated input", ErrMalformedInput)
	ErrImproperList       = fmt.Errorf("%w: list tail is not NIL_EXT", ErrMalformedInput)
	ErrTrailingData       = fmt.Errorf("%w: trailing data after root term", ErrMalformedInput)
	ErrUnsupportedTag     = errors.New("unsupported tag")
	ErrMaxDepthExceeded   = errors.New("maximum nesting depth exceeded")
)

// Encode errors.
var (
	ErrUnsupportedValue  = errors.New("unsupported value")
	ErrIntegerOutOfRange = errors.New("integer out of range")
	ErrNameTooLong       = errors.New("symbol name too long")
	ErrLengthOverflow    = errors.New("length exceeds 32-bit limit")
)

// Configuration errors.
var (
	ErrInvalidMaxDepth        = errors.New("invalid max depth")
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

// VersionError reports a root term whose first byte is not the format
// version marker.
type VersionError struct {
	Got  byte
	Want byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported format version %d (want %d)", e.Got, e.Want)
}

func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// TagError reports a term starting with a tag byte the decoder does not handle.
type TagError struct {
	// Tag is the offending byte.
	Tag byte
	// Name is the tag's name in the external term format, or UNKNOWN(0xNN).
	Name string
	// Offset is the absolute position of the tag in the decoded buffer.
	Offset int
}

func (e *TagError) Error() string {
	return fmt.Sprintf("unsupported tag %d (%s) at offset %d", e.Tag, e.Name, e.Offset)
}

func (e *TagError) Unwrap() error {
	return ErrUnsupportedTag
}

// ValueError reports an encode request for a value shape outside the
// supported set.
type ValueError struct {
	Shape string
}

func (e *ValueError) Error() string {
	return "unsupported value of shape " + e.Shape
}

func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}
