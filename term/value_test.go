package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{Integer(1), KindInteger, "Integer"},
		{Text("x"), KindText, "Text"},
		{Boolean(true), KindBoolean, "Boolean"},
		{Unit{}, KindUnit, "Unit"},
		{Symbol("ok"), KindSymbol, "Symbol"},
		{Sequence{}, KindSequence, "Sequence"},
		{NewMapping(), KindMapping, "Mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.value.Kind())
			require.Equal(t, tt.name, tt.kind.String())
		})
	}

	require.Equal(t, "Unknown", Kind(0).String())
}

func TestString(t *testing.T) {
	m := NewMapping(
		Pair{Key: Text("error"), Value: Unit{}},
		Pair{Key: Symbol("ok"), Value: Sequence{Integer(1), Boolean(false)}},
	)

	tests := []struct {
		value Value
		want  string
	}{
		{Integer(-256), "-256"},
		{Text("hello"), `<<"hello">>`},
		{Text{0x00, 0xff}, `<<"\x00\xff">>`},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{Unit{}, "nil"},
		{Symbol("my_key"), "my_key"},
		{Symbol("Hello World"), "'Hello World'"},
		{Symbol("it's"), `'it\'s'`},
		{Symbol(""), "''"},
		{Sequence{}, "[]"},
		{Sequence{Integer(1), Text("a"), nil}, `[1,<<"a">>,<nil>]`},
		{m, `#{<<"error">> => nil,ok => [1,false]}`},
		{NewMapping(), "#{}"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.value.String())
	}
}

func TestFromAtom(t *testing.T) {
	require.Equal(t, Boolean(true), FromAtom([]byte("true")))
	require.Equal(t, Boolean(false), FromAtom([]byte("false")))
	require.Equal(t, Unit{}, FromAtom([]byte("nil")))
	require.Equal(t, Symbol("ok"), FromAtom([]byte("ok")))
	require.Equal(t, Symbol("True"), FromAtom([]byte("True")))
	require.Equal(t, Symbol(""), FromAtom(nil))
}

func TestAtomName(t *testing.T) {
	for v, want := range map[Value]string{
		Boolean(true):   "true",
		Boolean(false):  "false",
		Unit{}:          "nil",
		Symbol("error"): "error",
	} {
		got, ok := AtomName(v)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := AtomName(Integer(1))
	require.False(t, ok)
	_, ok = AtomName(Text("true"))
	require.False(t, ok)
}

func TestIsReserved(t *testing.T) {
	require.True(t, IsReserved("true"))
	require.True(t, IsReserved("false"))
	require.True(t, IsReserved("nil"))
	require.False(t, IsReserved("ok"))
	require.False(t, IsReserved("NIL"))
}
