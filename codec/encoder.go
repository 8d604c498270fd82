package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/etf/endian"
	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/format"
	"github.com/arloliu/etf/internal/pool"
	"github.com/arloliu/etf/term"
)

// Encode encodes v as a complete payload: the version marker followed by
// one term.
//
// Returns:
//   - []byte: Newly allocated payload owned by the caller
//   - error: *errs.ValueError, errs.ErrIntegerOutOfRange, errs.ErrNameTooLong
//     or errs.ErrLengthOverflow; no partial output is returned
func Encode(v term.Value) ([]byte, error) {
	bb := pool.GetTermBuffer()
	defer pool.PutTermBuffer(bb)

	if err := encodePayload(bb, v); err != nil {
		return nil, err
	}

	return bb.Clone(), nil
}

// Append encodes v as a complete payload and appends it to dst. On error dst
// is returned unchanged.
func Append(dst []byte, v term.Value) ([]byte, error) {
	bb := pool.GetTermBuffer()
	defer pool.PutTermBuffer(bb)

	if err := encodePayload(bb, v); err != nil {
		return dst, err
	}

	return append(dst, bb.Bytes()...), nil
}

// EncodeTo encodes v as a complete payload and writes it to w. Nothing is
// written if encoding fails.
func EncodeTo(w io.Writer, v term.Value) (int64, error) {
	bb := pool.GetTermBuffer()
	defer pool.PutTermBuffer(bb)

	if err := encodePayload(bb, v); err != nil {
		return 0, err
	}

	return bb.WriteTo(w)
}

func encodePayload(bb *pool.ByteBuffer, v term.Value) error {
	bb.MustWriteByte(format.Version)
	return encodeValue(bb, endian.Wire(), v)
}

func encodeValue(bb *pool.ByteBuffer, engine endian.EndianEngine, v term.Value) error {
	switch x := v.(type) {
	case term.Integer:
		return encodeInteger(bb, engine, int64(x))
	case term.Text:
		return encodeBinary(bb, engine, x)
	case term.Boolean:
		encodeAtom(bb, engine, x.String())
		return nil
	case term.Unit:
		encodeAtom(bb, engine, term.AtomNil)
		return nil
	case term.Symbol:
		return encodeSymbol(bb, engine, x)
	case term.Sequence:
		return encodeList(bb, engine, x)
	case *term.Mapping:
		return encodeMap(bb, engine, x)
	case nil:
		return &errs.ValueError{Shape: "<nil>"}
	default:
		return &errs.ValueError{Shape: fmt.Sprintf("%T", v)}
	}
}

// encodeInteger picks the smallest integer tag that holds n.
func encodeInteger(bb *pool.ByteBuffer, engine endian.EndianEngine, n int64) error {
	switch {
	case n >= 0 && n <= math.MaxUint8:
		bb.MustWriteByte(byte(format.TagSmallInteger))
		bb.MustWriteByte(byte(n))
	case n >= math.MinInt32 && n <= math.MaxInt32:
		bb.MustWriteByte(byte(format.TagInteger))
		bb.B = engine.AppendUint32(bb.B, uint32(int32(n))) //nolint:gosec
	default:
		return fmt.Errorf("%w: %d is outside [%d, %d]", errs.ErrIntegerOutOfRange, n, math.MinInt32, math.MaxInt32)
	}

	return nil
}

func encodeBinary(bb *pool.ByteBuffer, engine endian.EndianEngine, text term.Text) error {
	if uint64(len(text)) > format.MaxLength {
		return fmt.Errorf("%w: binary of %d bytes", errs.ErrLengthOverflow, len(text))
	}

	bb.Grow(5 + len(text))
	bb.MustWriteByte(byte(format.TagBinary))
	bb.B = engine.AppendUint32(bb.B, uint32(len(text))) //nolint:gosec
	bb.MustWrite(text)

	return nil
}

func encodeSymbol(bb *pool.ByteBuffer, engine endian.EndianEngine, s term.Symbol) error {
	if term.IsReserved(string(s)) {
		return &errs.ValueError{Shape: fmt.Sprintf("Symbol(%q) with a reserved atom name", string(s))}
	}
	if len(s) > format.MaxAtomLength {
		return fmt.Errorf("%w: %d bytes (max %d)", errs.ErrNameTooLong, len(s), format.MaxAtomLength)
	}
	encodeAtom(bb, engine, string(s))

	return nil
}

// encodeAtom writes an ATOM_EXT term; name must fit the 16-bit length.
func encodeAtom(bb *pool.ByteBuffer, engine endian.EndianEngine, name string) {
	bb.Grow(3 + len(name))
	bb.MustWriteByte(byte(format.TagAtom))
	bb.B = engine.AppendUint16(bb.B, uint16(len(name))) //nolint:gosec
	bb.MustWriteString(name)
}

func encodeList(bb *pool.ByteBuffer, engine endian.EndianEngine, seq term.Sequence) error {
	if len(seq) == 0 {
		bb.MustWriteByte(byte(format.TagNil))
		return nil
	}
	if uint64(len(seq)) > format.MaxLength {
		return fmt.Errorf("%w: list of %d elements", errs.ErrLengthOverflow, len(seq))
	}

	bb.MustWriteByte(byte(format.TagList))
	bb.B = engine.AppendUint32(bb.B, uint32(len(seq))) //nolint:gosec
	for _, elem := range seq {
		if err := encodeValue(bb, engine, elem); err != nil {
			return err
		}
	}
	bb.MustWriteByte(byte(format.TagNil))

	return nil
}

func encodeMap(bb *pool.ByteBuffer, engine endian.EndianEngine, m *term.Mapping) error {
	if uint64(m.Len()) > format.MaxLength {
		return fmt.Errorf("%w: map of %d pairs", errs.ErrLengthOverflow, m.Len())
	}

	bb.MustWriteByte(byte(format.TagMap))
	bb.B = engine.AppendUint32(bb.B, uint32(m.Len())) //nolint:gosec
	for k, v := range m.All() {
		if err := encodeValue(bb, engine, k); err != nil {
			return err
		}
		if err := encodeValue(bb, engine, v); err != nil {
			return err
		}
	}

	return nil
}
