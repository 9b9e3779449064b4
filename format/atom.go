package format

// AtomType enumerates the primitive encodings a schema field can use.
//
// The set is closed: every AtomType has a fixed byte width, a short code used
// by the type description grammar and a verbose name used in help output.
type AtomType uint8

const (
	AtomInvalid  AtomType = iota // AtomInvalid is the sentinel for an unknown type.
	AtomBoolean                  // AtomBoolean is one byte restricted to 0 and 1.
	AtomSInt8                    // AtomSInt8 is a signed 8-bit integer.
	AtomUInt8                    // AtomUInt8 is an unsigned 8-bit integer.
	AtomBitmap8                  // AtomBitmap8 is an 8-bit flag set.
	AtomSInt16                   // AtomSInt16 is a signed 16-bit integer.
	AtomUInt16                   // AtomUInt16 is an unsigned 16-bit integer.
	AtomBitmap16                 // AtomBitmap16 is a 16-bit flag set.
	AtomSInt32                   // AtomSInt32 is a signed 32-bit integer.
	AtomUInt32                   // AtomUInt32 is an unsigned 32-bit integer.
	AtomBitmap32                 // AtomBitmap32 is a 32-bit flag set.
	AtomSInt64                   // AtomSInt64 is a signed 64-bit integer.
	AtomUInt64                   // AtomUInt64 is an unsigned 64-bit integer.
	AtomBitmap64                 // AtomBitmap64 is a 64-bit flag set.

	atomMax
)

type atomInfo struct {
	size    int
	code    string
	verbose string
}

var atomTable = [atomMax]atomInfo{
	AtomInvalid:  {0, "<invalid>", "<invalid>"},
	AtomBoolean:  {1, "B", "boolean"},
	AtomSInt8:    {1, "S1", "signed 8-bit integer"},
	AtomUInt8:    {1, "U1", "unsigned 8-bit integer"},
	AtomBitmap8:  {1, "M1", "unsigned 8-bit bitmap"},
	AtomSInt16:   {2, "S2", "signed 16-bit integer"},
	AtomUInt16:   {2, "U2", "unsigned 16-bit integer"},
	AtomBitmap16: {2, "M2", "unsigned 16-bit bitmap"},
	AtomSInt32:   {4, "S4", "signed 32-bit integer"},
	AtomUInt32:   {4, "U4", "unsigned 32-bit integer"},
	AtomBitmap32: {4, "M4", "unsigned 32-bit bitmap"},
	AtomSInt64:   {8, "S8", "signed 64-bit integer"},
	AtomUInt64:   {8, "U8", "unsigned 64-bit integer"},
	AtomBitmap64: {8, "M8", "unsigned 64-bit bitmap"},
}

func (t AtomType) info() atomInfo {
	if t >= atomMax {
		return atomTable[AtomInvalid]
	}

	return atomTable[t]
}

// Size returns the number of bytes occupied by t, or zero if t is invalid.
func (t AtomType) Size() int {
	return t.info().size
}

// Code returns the short code of t as used in type descriptions, e.g. "S2".
func (t AtomType) Code() string {
	return t.info().code
}

// Verbose returns a human readable name such as "signed 16-bit integer".
func (t AtomType) Verbose() string {
	return t.info().verbose
}

func (t AtomType) String() string {
	return t.Code()
}

// IsValid reports whether t is one of the catalog types.
func (t AtomType) IsValid() bool {
	return t > AtomInvalid && t < atomMax
}

// IsSigned reports whether values of t are interpreted as two's complement.
func (t AtomType) IsSigned() bool {
	switch t {
	case AtomSInt8, AtomSInt16, AtomSInt32, AtomSInt64:
		return true
	default:
		return false
	}
}

// IsBitmap reports whether t is a flag set.
func (t AtomType) IsBitmap() bool {
	switch t {
	case AtomBitmap8, AtomBitmap16, AtomBitmap32, AtomBitmap64:
		return true
	default:
		return false
	}
}

// IsBoolean reports whether t is AtomBoolean.
func (t AtomType) IsBoolean() bool {
	return t == AtomBoolean
}

// AtomTypes returns all valid atomic types in catalog order.
func AtomTypes() []AtomType {
	types := make([]AtomType, 0, atomMax-1)
	for t := AtomBoolean; t < atomMax; t++ {
		types = append(types, t)
	}

	return types
}

// ParseAtomCode recognizes an atomic type code at the start of s.
//
// Matching is case-insensitive. It returns the type and the number of bytes
// consumed, or AtomInvalid and zero when s does not start with a known code.
func ParseAtomCode(s string) (AtomType, int) {
	if len(s) == 0 {
		return AtomInvalid, 0
	}

	lead := s[0] | 0x20 // ASCII lower case
	if lead == 'b' {
		return AtomBoolean, 1
	}

	if len(s) < 2 {
		return AtomInvalid, 0
	}

	var base AtomType
	switch lead {
	case 's':
		base = AtomSInt8
	case 'u':
		base = AtomUInt8
	case 'm':
		base = AtomBitmap8
	default:
		return AtomInvalid, 0
	}

	// each width step adds one signed/unsigned/bitmap triple
	var step AtomType
	switch s[1] {
	case '1':
		step = 0
	case '2':
		step = 1
	case '4':
		step = 2
	case '8':
		step = 3
	default:
		return AtomInvalid, 0
	}

	return base + 3*step, 2
}
