package typing

import "strings"

// PrimType is the type of a literal or of a declared name.  LC has exactly
// four value types; None marks tokens that carry no type of their own.
type PrimType int

// Enumeration of primitive types
const (
	None PrimType = iota
	Int
	String
	Boolean
	Byte
)

var primTypeNames = []string{
	None:    "none",
	Int:     "int",
	String:  "string",
	Boolean: "boolean",
	Byte:    "byte",
}

func (pt PrimType) String() string {
	if pt < None || pt > Byte {
		return "unknown"
	}

	return primTypeNames[pt]
}

// FromKeyword converts a type keyword (`int`, `string`, `boolean` or `byte`,
// compared case-insensitively) into its type.  The boolean is false for
// anything that is not a type keyword.
func FromKeyword(kw string) (PrimType, bool) {
	switch strings.ToLower(kw) {
	case "int":
		return Int, true
	case "string":
		return String, true
	case "boolean":
		return Boolean, true
	case "byte":
		return Byte, true
	}

	return None, false
}

// IsScalar reports whether values of the type fit in a register: everything
// but strings, which live in fixed buffers.
func (pt PrimType) IsScalar() bool {
	return pt == Int || pt == Boolean || pt == Byte
}

// IsNarrow reports whether the type is stored in a single byte.
func (pt PrimType) IsNarrow() bool {
	return pt == Boolean || pt == Byte
}
