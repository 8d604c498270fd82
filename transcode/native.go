package transcode

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/term"
)

// FromNative converts a Go value into a term.Value.
//
// Values that already are a term.Value are returned unchanged. See the
// package documentation for the conversion table.
func FromNative(v any) (term.Value, error) {
	switch x := v.(type) {
	case nil:
		return term.Unit{}, nil
	case term.Value:
		return x, nil
	case string:
		return term.Text(x), nil
	case []byte:
		return term.Text(slices.Clone(x)), nil
	case bool:
		return term.Boolean(x), nil
	case int:
		return term.Integer(x), nil
	case int8:
		return term.Integer(x), nil
	case int16:
		return term.Integer(x), nil
	case int32:
		return term.Integer(x), nil
	case int64:
		return term.Integer(x), nil
	case uint:
		return fromUnsigned(uint64(x))
	case uint8:
		return term.Integer(x), nil
	case uint16:
		return term.Integer(x), nil
	case uint32:
		return term.Integer(x), nil
	case uint64:
		return fromUnsigned(x)
	case json.Number:
		return fromNumber(x)
	case []any:
		return fromSlice(x, FromNative)
	case map[string]any:
		pairs := make([]term.Pair, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := FromNative(x[k])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, term.Pair{Key: term.Text(k), Value: val})
		}

		return term.NewMapping(pairs...), nil
	case map[any]any:
		return fromAnyMap(x, FromNative)
	default:
		return nil, &errs.ValueError{Shape: fmt.Sprintf("%T", v)}
	}
}

// ToNative converts a term.Value into plain Go values.
//
// Integer becomes int64, Text and Symbol become string, Boolean becomes
// bool, Unit becomes nil, Sequence becomes []any and Mapping becomes
// map[string]any. Mapping keys that are Text or Symbol use their content;
// other keys use their rendering, so 1 and <<"1">> map to "1" and <<"1">>.
func ToNative(v term.Value) any {
	switch x := v.(type) {
	case term.Integer:
		return int64(x)
	case term.Text:
		return string(x)
	case term.Boolean:
		return bool(x)
	case term.Unit:
		return nil
	case term.Symbol:
		return string(x)
	case term.Sequence:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = ToNative(item)
		}

		return out
	case *term.Mapping:
		out := make(map[string]any, x.Len())
		for k, val := range x.All() {
			out[keyString(k)] = ToNative(val)
		}

		return out
	default:
		return nil
	}
}

func keyString(k term.Value) string {
	switch x := k.(type) {
	case term.Text:
		return string(x)
	case term.Symbol:
		return string(x)
	case nil:
		return "<nil>"
	default:
		return x.String()
	}
}

func fromUnsigned(n uint64) (term.Value, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errs.ErrIntegerOutOfRange, n)
	}

	return term.Integer(n), nil
}

func fromNumber(n json.Number) (term.Value, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err == nil {
		return term.Integer(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %s", errs.ErrIntegerOutOfRange, n)
	}

	return nil, &errs.ValueError{Shape: "number " + n.String()}
}

func fromSlice(items []any, conv func(any) (term.Value, error)) (term.Value, error) {
	seq := make(term.Sequence, len(items))
	for i, item := range items {
		val, err := conv(item)
		if err != nil {
			return nil, err
		}
		seq[i] = val
	}

	return seq, nil
}

// fromAnyMap converts keys and values with conv. Pairs are ordered by the
// rendering of their converted keys so the result does not depend on Go map
// iteration order.
func fromAnyMap(m map[any]any, conv func(any) (term.Value, error)) (term.Value, error) {
	pairs := make([]term.Pair, 0, len(m))
	for k, v := range m {
		key, err := conv(k)
		if err != nil {
			return nil, err
		}
		val, err := conv(v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, term.Pair{Key: key, Value: val})
	}

	slices.SortFunc(pairs, func(a, b term.Pair) int {
		return cmp.Compare(a.Key.String(), b.Key.String())
	})

	return term.NewMapping(pairs...), nil
}
