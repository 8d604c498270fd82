package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/etf/errs"
	"github.com/arloliu/etf/term"
)

func payload(parts ...[]byte) []byte {
	out := []byte{131}
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func TestDecode_Scalars(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want term.Value
	}{
		{"small integer", payload([]byte{97, 1}), term.Integer(1)},
		{"small integer max", payload([]byte{97, 255}), term.Integer(255)},
		{"integer", payload([]byte{98, 0, 0, 1, 0}), term.Integer(256)},
		{"negative integer", payload([]byte{98, 0xff, 0xff, 0xff, 0x00}), term.Integer(-256)},
		{"min integer", payload([]byte{98, 0x80, 0, 0, 0}), term.Integer(-2147483648)},
		{"binary", payload([]byte{109, 0, 0, 0, 5}, []byte("Hello")), term.Text("Hello")},
		{"empty binary", payload([]byte{109, 0, 0, 0, 0}), term.Text{}},
		{"atom true", payload([]byte{100, 0, 4}, []byte("true")), term.Boolean(true)},
		{"atom false", payload([]byte{100, 0, 5}, []byte("false")), term.Boolean(false)},
		{"atom nil", payload([]byte{100, 0, 3}, []byte("nil")), term.Unit{}},
		{"atom ok", payload([]byte{100, 0, 2}, []byte("ok")), term.Symbol("ok")},
		{"empty atom", payload([]byte{100, 0, 0}), term.Symbol("")},
		{"nil ext", payload([]byte{106}), term.Sequence{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Composites(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		data := payload([]byte{108, 0, 0, 0, 2, 97, 1, 109, 0, 0, 0, 1, 'a', 106})

		got, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, term.Sequence{term.Integer(1), term.Text("a")}, got)
	})

	t.Run("map with atom key", func(t *testing.T) {
		// {'error': None} from the reference implementation.
		data := []byte{
			0x83, 0x74, 0x00, 0x00, 0x00, 0x01,
			0x64, 0x00, 0x05, 'e', 'r', 'r', 'o', 'r',
			0x64, 0x00, 0x03, 'n', 'i', 'l',
		}

		got, err := Decode(data)
		require.NoError(t, err)

		m, ok := got.(*term.Mapping)
		require.True(t, ok)
		require.Equal(t, 1, m.Len())
		v, found := m.Get(term.Symbol("error"))
		require.True(t, found)
		require.Equal(t, term.Unit{}, v)
	})

	t.Run("nested map", func(t *testing.T) {
		data := payload(
			[]byte{116, 0, 0, 0, 1},
			[]byte{109, 0, 0, 0, 3}, []byte("foo"),
			[]byte{116, 0, 0, 0, 1},
			[]byte{109, 0, 0, 0, 3}, []byte("bar"),
			[]byte{98, 0x00, 0x00, 0x13, 0x4a},
		)

		got, err := Decode(data)
		require.NoError(t, err)

		want := term.NewMapping(term.Pair{
			Key:   term.Text("foo"),
			Value: term.NewMapping(term.Pair{Key: term.Text("bar"), Value: term.Integer(4938)}),
		})
		require.True(t, term.Equal(want, got), "got %s", got)
	})

	t.Run("list of lists", func(t *testing.T) {
		data := payload([]byte{108, 0, 0, 0, 2, 106, 108, 0, 0, 0, 1, 106, 106, 106})

		got, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, term.Sequence{term.Sequence{}, term.Sequence{term.Sequence{}}}, got)
	})

	t.Run("duplicate keys keep last value", func(t *testing.T) {
		data := payload(
			[]byte{116, 0, 0, 0, 2},
			[]byte{109, 0, 0, 0, 1, 'a'}, []byte{97, 1},
			[]byte{109, 0, 0, 0, 1, 'a'}, []byte{97, 2},
		)

		got, err := Decode(data)
		require.NoError(t, err)

		m := got.(*term.Mapping)
		require.Equal(t, 1, m.Len())
		v, _ := m.Get(term.Text("a"))
		require.Equal(t, term.Integer(2), v)
	})
}

func TestDecode_VersionGate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Decode(nil)
		require.ErrorIs(t, err, errs.ErrMalformedInput)
		require.NotErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	for _, data := range [][]byte{
		{130, 97, 1},
		{0},
		{97, 1},
		{0x84, 106},
	} {
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
		require.ErrorIs(t, err, errs.ErrMalformedInput)

		var verr *errs.VersionError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, data[0], verr.Got)
		require.Equal(t, byte(131), verr.Want)
	}
}

func TestDecode_UnsupportedTag(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		tag    byte
		offset int
		label  string
	}{
		{"small tuple at root", payload([]byte{104, 0}), 104, 1, "SMALL_TUPLE_EXT"},
		{"float", payload([]byte{70, 0, 0, 0, 0, 0, 0, 0, 0}), 70, 1, "NEW_FLOAT_EXT"},
		{"compressed", payload([]byte{80, 0, 0, 0, 1}), 80, 1, "COMPRESSED"},
		{"unknown", payload([]byte{0xff}), 0xff, 1, "UNKNOWN(0xff)"},
		{"nested in list", payload([]byte{108, 0, 0, 0, 2, 97, 1, 103}), 103, 8, "PID_EXT"},
		{"map value", payload([]byte{116, 0, 0, 0, 1, 97, 1, 110, 1, 0, 1}), 110, 8, "SMALL_BIG_EXT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrUnsupportedTag)

			var tagErr *errs.TagError
			require.True(t, errors.As(err, &tagErr))
			require.Equal(t, tt.tag, tagErr.Tag)
			require.Equal(t, tt.offset, tagErr.Offset)
			require.Equal(t, tt.label, tagErr.Name)
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"version only", []byte{131}},
		{"small integer without payload", payload([]byte{97})},
		{"short integer", payload([]byte{98, 0, 0})},
		{"short atom header", payload([]byte{100, 0})},
		{"short atom name", payload([]byte{100, 0, 5, 'f', 'a'})},
		{"short binary header", payload([]byte{109, 0, 0})},
		{"binary length past end", payload([]byte{109, 0, 0, 0, 10, 'a', 'b', 'c'})},
		{"huge binary length", payload([]byte{109, 0xff, 0xff, 0xff, 0xff})},
		{"list missing element", payload([]byte{108, 0, 0, 0, 2, 97, 1})},
		{"list missing tail", payload([]byte{108, 0, 0, 0, 1, 97, 1})},
		{"huge list count", payload([]byte{108, 0xff, 0xff, 0xff, 0xff, 106})},
		{"map missing value", payload([]byte{116, 0, 0, 0, 1, 97, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrTruncatedInput)
			require.ErrorIs(t, err, errs.ErrMalformedInput)
		})
	}
}

func TestDecode_EveryPrefixIsTruncated(t *testing.T) {
	data, err := Encode(nestedFixture())
	require.NoError(t, err)

	for i := 1; i < len(data); i++ {
		_, err := Decode(data[:i])
		require.ErrorIs(t, err, errs.ErrTruncatedInput, "prefix of %d bytes", i)
	}
}

func TestDecode_ImproperList(t *testing.T) {
	_, err := Decode(payload([]byte{108, 0, 0, 0, 1, 97, 1, 97, 2}))

	require.ErrorIs(t, err, errs.ErrImproperList)
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}

func TestDecode_TrailingData(t *testing.T) {
	data := payload([]byte{97, 7}, []byte{0xde, 0xad})

	got, err := Decode(data)
	require.NoError(t, err, "trailing bytes are ignored by default")
	require.Equal(t, term.Integer(7), got)

	_, err = Decode(data, WithStrictTrailing())
	require.ErrorIs(t, err, errs.ErrTrailingData)

	got, err = Decode(payload([]byte{97, 7}), WithStrictTrailing())
	require.NoError(t, err)
	require.Equal(t, term.Integer(7), got)
}

func TestDecode_MaxDepth(t *testing.T) {
	// [[[1]]]
	data := payload(
		[]byte{108, 0, 0, 0, 1},
		[]byte{108, 0, 0, 0, 1},
		[]byte{108, 0, 0, 0, 1, 97, 1, 106},
		[]byte{106},
		[]byte{106},
	)

	_, err := Decode(data)
	require.NoError(t, err)

	_, err = Decode(data, WithMaxDepth(3))
	require.NoError(t, err)

	_, err = Decode(data, WithMaxDepth(2))
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	_, err = Decode(payload([]byte{106}), WithMaxDepth(1))
	require.NoError(t, err, "NIL_EXT does not nest")

	_, err = Decode(data, WithMaxDepth(-1))
	require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	data := payload([]byte{109, 0, 0, 0, 3}, []byte("abc"))

	got, err := Decode(data)
	require.NoError(t, err)

	data[6] = 'X'
	require.Equal(t, term.Text("abc"), got)
}

func TestNewDecoder(t *testing.T) {
	d, err := NewDecoder(WithMaxDepth(8), WithStrictTrailing())
	require.NoError(t, err)

	cfg := d.Config()
	require.Equal(t, 8, cfg.MaxDepth())
	require.True(t, cfg.StrictTrailing())

	_, err = NewDecoder(WithMaxDepth(-2))
	require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)
}

func TestDecoder_Measure(t *testing.T) {
	d, err := NewDecoder()
	require.NoError(t, err)

	tests := []struct {
		name string
		buf  []byte
		size int
	}{
		{"small integer", []byte{97, 1, 0xff}, 2},
		{"integer", []byte{98, 0, 0, 1, 0}, 5},
		{"atom", []byte{100, 0, 2, 'o', 'k', 97}, 5},
		{"nil", []byte{106, 106}, 1},
		{"binary", []byte{109, 0, 0, 0, 2, 'h', 'i'}, 7},
		{"list", []byte{108, 0, 0, 0, 2, 97, 1, 97, 2, 106, 97}, 10},
		{"map", []byte{116, 0, 0, 0, 1, 97, 1, 106}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := d.Measure(tt.buf)
			require.NoError(t, err)
			require.Equal(t, tt.size, size)
		})
	}

	_, err = d.Measure(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestDecoder_ConcurrentUse(t *testing.T) {
	d, err := NewDecoder(WithMaxDepth(16))
	require.NoError(t, err)

	data, err := Encode(nestedFixture())
	require.NoError(t, err)

	done := make(chan error, 8)
	for range 8 {
		go func() {
			for range 50 {
				v, err := d.Decode(data)
				if err != nil {
					done <- err
					return
				}
				if !term.Equal(v, nestedFixture()) {
					done <- errors.New("decoded value differs")
					return
				}
			}
			done <- nil
		}()
	}

	for range 8 {
		require.NoError(t, <-done)
	}
}
