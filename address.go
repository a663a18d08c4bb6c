package gpr

import "strconv"

// AddressKind discriminates the two payloads an Address can carry.
type AddressKind int

const (
	AddressInteger AddressKind = iota
	AddressFloat
)

func (k AddressKind) String() string {
	if k == AddressFloat {
		return "float"
	}
	return "integer"
}

// Address is the numeric payload of a G-code word. It carries either an
// integer or a float64, never both; which one is fixed by the word letter
// (see addressKindForLetter), not by the shape of the source text. An
// Address is immutable once constructed.
type Address struct {
	kind   AddressKind
	intVal int
	fltVal float64
}

// IntAddress returns an integer-valued address.
func IntAddress(v int) Address { return Address{kind: AddressInteger, intVal: v} }

// FloatAddress returns a float-valued address.
func FloatAddress(v float64) Address { return Address{kind: AddressFloat, fltVal: v} }

func (a Address) Kind() AddressKind { return a.kind }

// Int returns the integer payload. It panics when the address holds a
// float; callers that cannot know the kind must check Kind first.
func (a Address) Int() int {
	if a.kind != AddressInteger {
		panic("gpr: Int called on " + a.kind.String() + " address")
	}
	return a.intVal
}

// Float returns the float payload. It panics when the address holds an
// integer.
func (a Address) Float() float64 {
	if a.kind != AddressFloat {
		panic("gpr: Float called on " + a.kind.String() + " address")
	}
	return a.fltVal
}

// Equal reports whether two addresses have the same kind and value.
func (a Address) Equal(b Address) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == AddressFloat {
		return a.fltVal == b.fltVal
	}
	return a.intVal == b.intVal
}

func (a Address) String() string {
	if a.kind == AddressFloat {
		return strconv.FormatFloat(a.fltVal, 'g', -1, 64)
	}
	return strconv.Itoa(a.intVal)
}

// addressKindForLetter maps a word letter to the kind of value it takes.
// The table is fixed and case-insensitive: axis, arc-offset, feed, radius
// and spindle words take floats; modal and program-control words take
// integers. The second result is false for letters outside both tables.
func addressKindForLetter(c byte) (AddressKind, bool) {
	switch c {
	case 'X', 'Y', 'Z', 'A', 'B', 'C', 'U', 'V', 'W',
		'I', 'J', 'K', 'F', 'R', 'Q', 'S', 'E',
		'x', 'y', 'z', 'a', 'b', 'c', 'u', 'v', 'w',
		'i', 'j', 'k', 'f', 'r', 'q', 's', 'e':
		return AddressFloat, true
	case 'G', 'H', 'M', 'N', 'O', 'T', 'P', 'D', 'L',
		'g', 'h', 'm', 'n', 'o', 't', 'p', 'd', 'l':
		return AddressInteger, true
	default:
		return 0, false
	}
}
