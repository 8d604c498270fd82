package codec

import (
	"fmt"

	"github.com/arloliu/etf/endian"
	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/format"
	"github.com/arloliu/etf/internal/options"
	"github.com/arloliu/etf/term"
)

// materializer builds the value of a term from exactly the bytes measure
// reported for it.
type materializer func(d *Decoder, buf []byte, base, depth int) (term.Value, error)

// Decoder decodes external term format payloads.
//
// A Decoder holds only its immutable configuration and is safe for
// concurrent use. The zero value is not usable; create one with NewDecoder.
type Decoder struct {
	cfg    DecoderConfig
	engine endian.EndianEngine
}

// NewDecoder creates a Decoder.
//
// Parameters:
//   - opts: Optional configuration (see WithMaxDepth, WithStrictTrailing)
//
// Returns:
//   - *Decoder: The decoder
//   - error: errs.ErrInvalidMaxDepth for a negative depth limit
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{engine: endian.Wire()}
	if err := options.Apply(&d.cfg, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes one payload with a Decoder built from opts.
func Decode(data []byte, opts ...DecoderOption) (term.Value, error) {
	d, err := NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode(data)
}

// Config returns a copy of the decoder's configuration.
func (d *Decoder) Config() DecoderConfig {
	return d.cfg
}

// Decode validates the version marker of data and decodes the root term.
//
// Returns:
//   - term.Value: The decoded value tree; it does not alias data
//   - error: errs.ErrMalformedInput for empty input, *errs.VersionError,
//     *errs.TagError, errs.ErrTruncatedInput, errs.ErrImproperList,
//     errs.ErrMaxDepthExceeded or errs.ErrTrailingData
func (d *Decoder) Decode(data []byte) (term.Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", errs.ErrMalformedInput)
	}
	if data[0] != format.Version {
		return nil, &errs.VersionError{Got: data[0], Want: format.Version}
	}

	body := data[1:]
	size, build, err := d.measure(body, 1, 0)
	if err != nil {
		return nil, err
	}

	if d.cfg.strictTrailing && size != len(body) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", errs.ErrTrailingData, len(body)-size, 1+size)
	}

	return build(d, body[:size], 1, 0)
}

// Measure returns the total encoded size of the term at the start of buf,
// which must not include the version marker. Bytes after the term are not
// inspected.
func (d *Decoder) Measure(buf []byte) (int, error) {
	size, _, err := d.measure(buf, 0, 0)
	return size, err
}

// measure computes the number of bytes the term at the start of buf occupies
// without building it, and returns the routine that builds it.
//
// base is the absolute offset of buf[0] in the caller's input and is used for
// error messages only. depth is the number of enclosing lists and maps.
// measure keeps its cursor local: for lists and maps it walks the children to
// find where the term ends, then discards everything but the total.
func (d *Decoder) measure(buf []byte, base, depth int) (int, materializer, error) {
	if len(buf) == 0 {
		return 0, nil, fmt.Errorf("%w: missing term at offset %d", errs.ErrTruncatedInput, base)
	}

	tag := format.Tag(buf[0])
	info, ok := tag.Info()
	if !ok {
		return 0, nil, &errs.TagError{Tag: buf[0], Name: tag.String(), Offset: base}
	}

	header := info.HeaderSize()
	if len(buf) < header+info.Fixed {
		return 0, nil, truncated(tag, base, uint64(header+info.Fixed), len(buf))
	}

	build := materializerFor(tag)

	switch info.Length {
	case format.LengthNone:
		return info.Overhead(), build, nil

	case format.LengthBytes:
		n := d.readField(buf[1:header])
		if n > uint64(len(buf)-header) {
			return 0, nil, truncated(tag, base, uint64(header)+n, len(buf))
		}

		return header + int(n), build, nil

	default:
		if d.cfg.maxDepth > 0 && depth >= d.cfg.maxDepth {
			return 0, nil, fmt.Errorf("%w: %s at offset %d exceeds depth %d",
				errs.ErrMaxDepthExceeded, tag, base, d.cfg.maxDepth)
		}

		children := d.readField(buf[1:header])
		if info.Length == format.LengthPairs {
			children *= 2
		}

		cursor := header
		for i := uint64(0); i < children; i++ {
			n, _, err := d.measure(buf[cursor:], base+cursor, depth+1)
			if err != nil {
				return 0, nil, err
			}
			cursor += n
		}

		if info.Terminated {
			if cursor >= len(buf) {
				return 0, nil, fmt.Errorf("%w: %s at offset %d has no tail", errs.ErrTruncatedInput, tag, base)
			}
			if format.Tag(buf[cursor]) != format.TagNil {
				return 0, nil, fmt.Errorf("%w: found %s at offset %d", errs.ErrImproperList, format.Tag(buf[cursor]), base+cursor)
			}
			cursor++
		}

		return cursor, build, nil
	}
}

// readField reads a 2- or 4-byte big-endian length field.
func (d *Decoder) readField(field []byte) uint64 {
	if len(field) == 2 {
		return uint64(d.engine.Uint16(field))
	}

	return uint64(d.engine.Uint32(field))
}

// child measures and materializes the term at the start of buf, returning
// the value and the number of bytes it consumed.
func (d *Decoder) child(buf []byte, base, depth int) (term.Value, int, error) {
	n, build, err := d.measure(buf, base, depth)
	if err != nil {
		return nil, 0, err
	}

	v, err := build(d, buf[:n], base, depth)
	if err != nil {
		return nil, 0, err
	}

	return v, n, nil
}

func materializerFor(tag format.Tag) materializer {
	switch tag {
	case format.TagSmallInteger:
		return materializeSmallInteger
	case format.TagInteger:
		return materializeInteger
	case format.TagAtom:
		return materializeAtom
	case format.TagNil:
		return materializeNil
	case format.TagList:
		return materializeList
	case format.TagBinary:
		return materializeBinary
	case format.TagMap:
		return materializeMap
	default:
		return nil
	}
}

func materializeSmallInteger(_ *Decoder, buf []byte, _, _ int) (term.Value, error) {
	return term.Integer(buf[1]), nil
}

func materializeInteger(d *Decoder, buf []byte, _, _ int) (term.Value, error) {
	return term.Integer(int32(d.engine.Uint32(buf[1:5]))), nil //nolint:gosec
}

func materializeAtom(_ *Decoder, buf []byte, _, _ int) (term.Value, error) {
	return term.FromAtom(buf[3:]), nil
}

func materializeNil(_ *Decoder, _ []byte, _, _ int) (term.Value, error) {
	return term.Sequence{}, nil
}

func materializeBinary(_ *Decoder, buf []byte, _, _ int) (term.Value, error) {
	text := make(term.Text, len(buf)-5)
	copy(text, buf[5:])

	return text, nil
}

// materializeList builds a LIST_EXT term. Each child is re-measured to find
// its slice; the tail byte was validated by measure.
func materializeList(d *Decoder, buf []byte, base, depth int) (term.Value, error) {
	count := int(d.engine.Uint32(buf[1:5]))
	seq := make(term.Sequence, 0, count)

	cursor := 5
	for range count {
		v, n, err := d.child(buf[cursor:], base+cursor, depth+1)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
		cursor += n
	}

	return seq, nil
}

// materializeMap builds a MAP_EXT term from alternating keys and values.
// A repeated key keeps the last value.
func materializeMap(d *Decoder, buf []byte, base, depth int) (term.Value, error) {
	count := int(d.engine.Uint32(buf[1:5]))
	m := term.NewMapping()

	cursor := 5
	for range count {
		key, n, err := d.child(buf[cursor:], base+cursor, depth+1)
		if err != nil {
			return nil, err
		}
		cursor += n

		value, n, err := d.child(buf[cursor:], base+cursor, depth+1)
		if err != nil {
			return nil, err
		}
		cursor += n

		m.Set(key, value)
	}

	return m, nil
}

func truncated(tag format.Tag, base int, need uint64, have int) error {
	return fmt.Errorf("%w: %s at offset %d needs %d bytes, %d remain",
		errs.ErrTruncatedInput, tag, base, need, have)
}
