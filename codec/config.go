package codec

import (
	"fmt"

	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/internal/options"
)

// DecoderConfig holds the settings of a Decoder. The zero value decodes with
// no depth limit and ignores trailing bytes.
type DecoderConfig struct {
	maxDepth       int
	strictTrailing bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// Validate implements options.Validator.
func (c *DecoderConfig) Validate() error {
	if c.maxDepth < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, c.maxDepth)
	}

	return nil
}

// MaxDepth returns the configured nesting limit; 0 means unlimited.
func (c *DecoderConfig) MaxDepth() int {
	return c.maxDepth
}

// StrictTrailing reports whether trailing bytes after the root term are rejected.
func (c *DecoderConfig) StrictTrailing() bool {
	return c.strictTrailing
}

// WithMaxDepth limits how deeply lists and maps may nest. A root list counts
// as depth 1. Decoding deeper input fails with errs.ErrMaxDepthExceeded.
// Zero disables the limit.
//
// Recursion depth follows the input, so callers decoding untrusted data
// should set a limit.
func WithMaxDepth(depth int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.maxDepth = depth
	})
}

// WithStrictTrailing makes Decode fail with errs.ErrTrailingData when bytes
// follow the root term. By default they are ignored and never parsed.
func WithStrictTrailing() DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.strictTrailing = true
	})
}
