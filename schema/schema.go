package schema

import (
	"fmt"
	"strings"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/internal/hash"
)

// InvalidIndex is returned by index and offset lookups that fail.
const InvalidIndex = -1

// DefaultFieldName is the name given to the anonymous field of a single-field schema.
const DefaultFieldName = "value"

// Field is one named, typed slot of a Schema.
type Field struct {
	Name string
	Type format.AtomType
}

// Schema is an immutable, ordered list of fixed-width fields describing a
// packed binary record. Fields are laid out in declaration order without
// padding.
//
// A Schema is safe for concurrent use and is shared read-only by any number
// of values.
type Schema struct {
	fields      []Field
	offsets     []int
	size        int
	singleByte  bool
	fingerprint uint64
}

// New creates a Schema from fields.
//
// Returns an error if fields is empty, a name is empty or contains characters
// other than letters, digits and '-', a type is invalid, or two names are
// equal under case folding.
func New(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errs.ErrEmptySchema
	}

	for i, f := range fields {
		if !isValidName(f.Name) {
			return nil, fmt.Errorf("%w: %q at index %d", errs.ErrInvalidFieldName, f.Name, i)
		}
		if !f.Type.IsValid() {
			return nil, fmt.Errorf("%w: field %q has type %d", errs.ErrUnknownAtomType, f.Name, uint8(f.Type))
		}
		for j := range i {
			if strings.EqualFold(fields[j].Name, f.Name) {
				return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateFieldName, f.Name)
			}
		}
	}

	return build(append([]Field(nil), fields...)), nil
}

// NewWithNamesAndTypes creates a Schema from parallel name and type slices.
func NewWithNamesAndTypes(names []string, types []format.AtomType) (*Schema, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%w: %d names, %d types", errs.ErrFieldCountMismatch, len(names), len(types))
	}

	fields := make([]Field, len(names))
	for i := range names {
		fields[i] = Field{Name: names[i], Type: types[i]}
	}

	return New(fields...)
}

// build computes the cached layout of fields, which must already be validated.
func build(fields []Field) *Schema {
	s := &Schema{
		fields:     fields,
		offsets:    make([]int, len(fields)),
		singleByte: true,
	}

	types := make([]byte, len(fields))
	for i, f := range fields {
		s.offsets[i] = s.size
		s.size += f.Type.Size()
		if f.Type.Size() != 1 {
			s.singleByte = false
		}
		types[i] = byte(f.Type)
	}
	s.fingerprint = hash.Bytes(types)

	return s
}

// FieldCount returns the number of fields.
func (s *Schema) FieldCount() int {
	return len(s.fields)
}

// Field returns the field at index i.
func (s *Schema) Field(i int) (Field, bool) {
	if i < 0 || i >= len(s.fields) {
		return Field{}, false
	}

	return s.fields[i], true
}

// Fields returns a copy of the field list.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// FieldName returns the name of the field at index i, or "" if i is out of range.
func (s *Schema) FieldName(i int) string {
	f, _ := s.Field(i)
	return f.Name
}

// FieldType returns the type of the field at index i, or format.AtomInvalid if i is out of range.
func (s *Schema) FieldType(i int) format.AtomType {
	f, _ := s.Field(i)
	return f.Type
}

// IndexOf returns the index of the field named name under a case-insensitive
// comparison, or InvalidIndex.
func (s *Schema) IndexOf(name string) int {
	for i, f := range s.fields {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}

	return InvalidIndex
}

// ByteSize returns the number of bytes occupied by a record of this schema.
func (s *Schema) ByteSize() int {
	return s.size
}

// OffsetAt returns the byte offset of the field at index i, or InvalidIndex.
func (s *Schema) OffsetAt(i int) int {
	if i < 0 || i >= len(s.offsets) {
		return InvalidIndex
	}

	return s.offsets[i]
}

// OffsetOf returns the byte offset of the field named name, or InvalidIndex.
func (s *Schema) OffsetOf(name string) int {
	return s.OffsetAt(s.IndexOf(name))
}

// IsSingleByte reports whether every field is one byte wide, in which case
// records never need byte swapping.
func (s *Schema) IsSingleByte() bool {
	return s.singleByte
}

// Equal reports whether s and other describe the same layout: the same number
// of fields with the same atomic types in the same order. Field names are
// ignored.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if len(s.fields) != len(other.fields) || s.size != other.size {
		return false
	}
	for i := range s.fields {
		if s.fields[i].Type != other.fields[i].Type {
			return false
		}
	}

	return true
}

// Fingerprint returns a 64-bit hash of the field types. Structurally equal
// schemas have equal fingerprints.
func (s *Schema) Fingerprint() uint64 {
	return s.fingerprint
}

// Signature returns the canonical type description, which Parse accepts.
//
// Example: "{S2 pan;S2 tilt}", or "{S2}" for an anonymous single field.
func (s *Schema) Signature() string {
	var b strings.Builder
	b.WriteByte('{')
	if len(s.fields) == 1 && s.fields[0].Name == DefaultFieldName {
		b.WriteString(s.fields[0].Type.Code())
	} else {
		for i, f := range s.fields {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(f.Type.Code())
			b.WriteByte(' ')
			b.WriteString(f.Name)
		}
	}
	b.WriteByte('}')

	return b.String()
}

func (s *Schema) String() string {
	return s.Signature()
}

// Summary returns a human description of the layout for help output.
//
// Example: "single value, signed 16-bit integer" or
// "(signed 32-bit integer pan; signed 32-bit integer tilt)".
func (s *Schema) Summary() string {
	if len(s.fields) == 1 {
		return "single value, " + s.fields[0].Type.Verbose()
	}

	var b strings.Builder
	b.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Type.Verbose())
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteByte(')')

	return b.String()
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}

	return true
}
