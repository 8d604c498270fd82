package format

import "fmt"

// Version is the format-version marker that prefixes every top-level payload.
const Version byte = 131

// Tag identifies the type and header shape of an encoded term.
type Tag uint8

// Tags handled by the codec.
const (
	TagSmallInteger Tag = 97  // [UInt8:Int]
	TagInteger      Tag = 98  // [Int32:Int]
	TagAtom         Tag = 100 // [UInt16:Len, Len:AtomName]
	TagNil          Tag = 106 // empty list
	TagList         Tag = 108 // [UInt32:Len, Elements, Tail]
	TagBinary       Tag = 109 // [UInt32:Len, Len:Data]
	TagMap          Tag = 116 // [UInt32:Arity, Arity*(Key, Value)]
)

// Tags of the external term format that the codec recognizes by name only.
// Decoding any of them fails with an unsupported tag error.
const (
	TagNewFloat     Tag = 70
	TagBitBinary    Tag = 77
	TagCompressed   Tag = 80
	TagFloat        Tag = 99
	TagReference    Tag = 101
	TagPort         Tag = 102
	TagPid          Tag = 103
	TagSmallTuple   Tag = 104
	TagLargeTuple   Tag = 105
	TagString       Tag = 107
	TagSmallBig     Tag = 110
	TagLargeBig     Tag = 111
	TagNewFun       Tag = 112
	TagExport       Tag = 113
	TagNewReference Tag = 114
	TagSmallAtom    Tag = 115
	TagFun          Tag = 117
)

// LengthKind describes what the field following a tag byte counts.
type LengthKind uint8

const (
	// LengthNone means the tag has no length field.
	LengthNone LengthKind = iota
	// LengthBytes means the field counts raw payload bytes.
	LengthBytes
	// LengthTerms means the field counts child terms.
	LengthTerms
	// LengthPairs means the field counts (key, value) pairs of child terms.
	LengthPairs
)

// TagInfo is the header shape of a supported tag.
type TagInfo struct {
	Name string
	// FieldSize is the width of the length or count field in bytes (0, 2 or 4).
	FieldSize int
	// Fixed is the size of the fixed payload for tags with no length field.
	Fixed int
	// Length describes what the length field counts.
	Length LengthKind
	// Terminated reports whether a NIL_EXT tail byte follows the children.
	Terminated bool
}

// HeaderSize returns the number of bytes before the payload: the tag byte
// plus the length field.
func (i TagInfo) HeaderSize() int {
	return 1 + i.FieldSize
}

// Overhead returns the bytes a term occupies besides its payload or children.
func (i TagInfo) Overhead() int {
	n := i.HeaderSize() + i.Fixed
	if i.Terminated {
		n++
	}

	return n
}

var supported = map[Tag]TagInfo{
	TagSmallInteger: {Name: "SMALL_INTEGER_EXT", Fixed: 1},
	TagInteger:      {Name: "INTEGER_EXT", Fixed: 4},
	TagAtom:         {Name: "ATOM_EXT", FieldSize: 2, Length: LengthBytes},
	TagNil:          {Name: "NIL_EXT"},
	TagList:         {Name: "LIST_EXT", FieldSize: 4, Length: LengthTerms, Terminated: true},
	TagBinary:       {Name: "BINARY_EXT", FieldSize: 4, Length: LengthBytes},
	TagMap:          {Name: "MAP_EXT", FieldSize: 4, Length: LengthPairs},
}

var unsupportedNames = map[Tag]string{
	TagNewFloat:     "NEW_FLOAT_EXT",
	TagBitBinary:    "BIT_BINARY_EXT",
	TagCompressed:   "COMPRESSED",
	TagFloat:        "FLOAT_EXT",
	TagReference:    "REFERENCE_EXT",
	TagPort:         "PORT_EXT",
	TagPid:          "PID_EXT",
	TagSmallTuple:   "SMALL_TUPLE_EXT",
	TagLargeTuple:   "LARGE_TUPLE_EXT",
	TagString:       "STRING_EXT",
	TagSmallBig:     "SMALL_BIG_EXT",
	TagLargeBig:     "LARGE_BIG_EXT",
	TagNewFun:       "NEW_FUN_EXT",
	TagExport:       "EXPORT_EXT",
	TagNewReference: "NEW_REFERENCE_EXT",
	TagSmallAtom:    "SMALL_ATOM_EXT",
	TagFun:          "FUN_EXT",
}

// Info returns the header shape of t and whether the codec supports it.
func (t Tag) Info() (TagInfo, bool) {
	info, ok := supported[t]
	return info, ok
}

// Supported reports whether the codec can decode terms starting with t.
func (t Tag) Supported() bool {
	_, ok := supported[t]
	return ok
}

func (t Tag) String() string {
	if info, ok := supported[t]; ok {
		return info.Name
	}
	if name, ok := unsupportedNames[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
}

// Size limits imposed by the width of the length fields.
const (
	MaxAtomLength = 1<<16 - 1 // MaxAtomLength is the longest atom name in bytes.
	MaxLength     = 1<<32 - 1 // MaxLength is the largest binary length or collection count.
)
