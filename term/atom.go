package term

// Reserved atom names with dedicated decoded forms.
const (
	AtomTrue  = "true"
	AtomFalse = "false"
	AtomNil   = "nil"
)

// FromAtom resolves a decoded atom name. The reserved names are matched
// first, in order; every other name becomes a Symbol.
func FromAtom(name []byte) Value {
	switch string(name) {
	case AtomTrue:
		return Boolean(true)
	case AtomFalse:
		return Boolean(false)
	case AtomNil:
		return Unit{}
	default:
		return Symbol(name)
	}
}

// AtomName returns the atom name v is carried as on the wire. It reports
// false for values that are not atoms.
func AtomName(v Value) (string, bool) {
	switch x := v.(type) {
	case Boolean:
		return x.String(), true
	case Unit:
		return AtomNil, true
	case Symbol:
		return string(x), true
	default:
		return "", false
	}
}

// IsReserved reports whether name is one of the reserved atom names.
// A Symbol with a reserved name cannot round-trip.
func IsReserved(name string) bool {
	return name == AtomTrue || name == AtomFalse || name == AtomNil
}
