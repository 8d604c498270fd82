package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/etf/codec"
	"github.com/arloliu/etf/compress"
	"github.com/arloliu/etf/format"
	"github.com/arloliu/etf/term"
	"github.com/arloliu/etf/transcode"
)

// decodeDump turns a dump file into its rendering in opts.format.
func decodeDump(logger *zap.Logger, data []byte, opts options) ([]byte, error) {
	ct := compress.Detect(data)
	if opts.compression != compressionAuto {
		parsed, err := format.ParseCompressionType(opts.compression)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
		ct = parsed
	}

	payload, err := decompress(ct, data)
	if err != nil {
		return nil, err
	}
	logger.Debug("payload ready",
		zap.Stringer("compression", ct),
		zap.Int("compressed_bytes", len(data)),
		zap.Int("payload_bytes", len(payload)),
	)

	decodeOpts := []codec.DecoderOption{codec.WithMaxDepth(opts.maxDepth)}
	if opts.strict {
		decodeOpts = append(decodeOpts, codec.WithStrictTrailing())
	}

	dec, err := codec.NewDecoder(decodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	value, err := dec.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	if size, err := dec.Measure(payload[1:]); err == nil && size+1 < len(payload) {
		logger.Warn("ignoring trailing bytes", zap.Int("trailing_bytes", len(payload)-size-1))
	}

	return render(value, opts.format)
}

// encodeDump parses a document in opts.format and returns the encoded,
// optionally compressed, payload.
func encodeDump(logger *zap.Logger, data []byte, opts options) ([]byte, error) {
	value, err := parse(data, opts.format)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}

	ct := format.CompressionNone
	if opts.compression != compressionAuto {
		ct, err = format.ParseCompressionType(opts.compression)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
	}

	c, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	out, err := c.Compress(payload)
	if err != nil {
		return nil, err
	}
	logger.Debug("payload encoded",
		zap.Stringer("kind", value.Kind()),
		zap.Stringer("compression", ct),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("output_bytes", len(out)),
	)

	return out, nil
}

func decompress(ct format.CompressionType, data []byte) ([]byte, error) {
	c, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	out, err := c.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s input: %w", ct, err)
	}

	return out, nil
}

func render(value term.Value, outputFormat string) ([]byte, error) {
	switch outputFormat {
	case formatJSON:
		return transcode.ToJSON(value)
	case formatYAML:
		return transcode.ToYAML(value)
	case formatCBOR:
		data, err := transcode.ToCBOR(value)
		if err != nil {
			return nil, err
		}

		return []byte(hex.EncodeToString(data) + "\n"), nil
	default:
		var buf bytes.Buffer
		if err := transcode.WriteTree(&buf, value); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}
}

func parse(data []byte, inputFormat string) (term.Value, error) {
	switch inputFormat {
	case formatJSON:
		return transcode.FromJSON(data)
	case formatYAML:
		return transcode.FromYAML(data)
	case formatCBOR:
		raw, err := hex.DecodeString(string(bytes.TrimSpace(data)))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}

		return transcode.FromCBOR(raw)
	default:
		return nil, fmt.Errorf("%w: --encode does not accept format %q", errUsage, inputFormat)
	}
}
