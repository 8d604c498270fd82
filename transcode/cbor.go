package transcode

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/term"
)

// cborEncMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys and shortest integer forms, so equal terms export to identical bytes.
var cborEncMode cbor.EncMode

// cborDecMode decodes untyped items into map[any]any with byte string keys
// kept as cbor.ByteString, which is the only way to keep Text keys hashable.
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transcode: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType:   reflect.TypeOf(map[any]any(nil)),
		MapKeyByteString: cbor.MapKeyByteStringAllowed,
	}.DecMode()
	if err != nil {
		panic("transcode: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToCBOR encodes v as a single CBOR data item.
//
// Text becomes a byte string and Symbol a text string. Mapping keys that
// are Sequences or Mappings are not hashable in Go and are exported as
// their rendering.
func ToCBOR(v term.Value) ([]byte, error) {
	data, err := cborEncMode.Marshal(toCBORItem(v))
	if err != nil {
		return nil, fmt.Errorf("cbor export failed: %w", err)
	}

	return data, nil
}

// FromCBOR decodes a single CBOR data item into a term.Value.
//
// Byte strings become Text and text strings become atoms, so the reserved
// names true, false and nil resolve to Boolean and Unit. Floats, tags and
// integers outside int64 are rejected.
func FromCBOR(data []byte) (term.Value, error) {
	var item any
	if err := cborDecMode.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cbor import failed: %w", err)
	}

	return fromCBORItem(item)
}

func toCBORItem(v term.Value) any {
	switch x := v.(type) {
	case term.Integer:
		return int64(x)
	case term.Text:
		return []byte(x)
	case term.Boolean:
		return bool(x)
	case term.Symbol:
		return string(x)
	case term.Sequence:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = toCBORItem(item)
		}

		return out
	case *term.Mapping:
		out := make(map[any]any, x.Len())
		for k, val := range x.All() {
			out[toCBORKey(k)] = toCBORItem(val)
		}

		return out
	default:
		return nil
	}
}

func toCBORKey(k term.Value) any {
	switch x := k.(type) {
	case term.Text:
		return cbor.ByteString(x)
	case term.Sequence, *term.Mapping:
		return x.String()
	default:
		return toCBORItem(k)
	}
}

func fromCBORItem(item any) (term.Value, error) {
	switch x := item.(type) {
	case nil:
		return term.Unit{}, nil
	case bool:
		return term.Boolean(x), nil
	case string:
		return term.FromAtom([]byte(x)), nil
	case []byte:
		return term.Text(x), nil
	case cbor.ByteString:
		return term.Text(x), nil
	case int64:
		return term.Integer(x), nil
	case uint64:
		return fromUnsigned(x)
	case []any:
		return fromSlice(x, fromCBORItem)
	case map[any]any:
		return fromAnyMap(x, fromCBORItem)
	default:
		return nil, &errs.ValueError{Shape: fmt.Sprintf("cbor %T", item)}
	}
}
