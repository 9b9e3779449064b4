// Package errs defines the sentinel errors returned by uvcval packages.
//
// Call sites wrap these values with additional context using fmt.Errorf and
// the %w verb, so callers should test for them with errors.Is:
//
//	s, err := schema.Parse("{S2 pan; S2 pan}")
//	if errors.Is(err, errs.ErrDuplicateFieldName) {
//	    // handle the duplicate name
//	}
package errs

import "errors"

// Schema definition errors.
var (
	// ErrMissingOpenBrace indicates a multi-field type description that does not start with '{'.
	ErrMissingOpenBrace = errors.New("type description must begin with '{'")
	// ErrUnknownAtomType indicates an unrecognized atomic type code.
	ErrUnknownAtomType = errors.New("unknown atomic type")
	// ErrUnexpectedEnd indicates a type description that ended before a field was complete.
	ErrUnexpectedEnd = errors.New("unexpected end of type description")
	// ErrDuplicateFieldName indicates two fields whose names are equal under case folding.
	ErrDuplicateFieldName = errors.New("duplicate field name")
	// ErrEmptySchema indicates a schema with no fields.
	ErrEmptySchema = errors.New("schema must have at least one field")
	// ErrInvalidFieldName indicates a field name that is empty or contains illegal characters.
	ErrInvalidFieldName = errors.New("invalid field name")
	// ErrFieldCountMismatch indicates differing numbers of field names and field types.
	ErrFieldCountMismatch = errors.New("field names and types differ in length")
	// ErrNilSchema indicates a nil schema was supplied.
	ErrNilSchema = errors.New("nil schema")
)

// Byte order errors.
var (
	// ErrBufferSizeMismatch indicates a buffer whose length differs from the schema byte size.
	ErrBufferSizeMismatch = errors.New("buffer size does not match schema")
)

// Value parsing errors.
var (
	// ErrInvalidLiteral indicates text that is neither a keyword, a boolean word nor an integer.
	ErrInvalidLiteral = errors.New("invalid literal")
	// ErrMissingCompanion indicates a default/minimum/maximum keyword without the matching companion buffer.
	ErrMissingCompanion = errors.New("companion value not available")
	// ErrMalformedRecord indicates broken brace or separator structure.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownField indicates a named component that does not match any field.
	ErrUnknownField = errors.New("unknown field")
	// ErrTooManyComponents indicates more positional components than schema fields.
	ErrTooManyComponents = errors.New("too many components")
)

// Value errors.
var (
	// ErrSchemaMismatch indicates two values whose schemas are not structurally equal.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrFieldIndexOutOfRange indicates a field index outside the schema.
	ErrFieldIndexOutOfRange = errors.New("field index out of range")
	// ErrNilValue indicates a nil value was supplied.
	ErrNilValue = errors.New("nil value")
)

// Snapshot errors.
var (
	ErrInvalidEntryName   = errors.New("invalid entry name")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrNoEntriesAdded     = errors.New("no entries added")
	ErrEncoderFinished    = errors.New("encoder already finished")
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrInvalidPayload     = errors.New("invalid snapshot payload")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrHashCollision      = errors.New("entry name hash collision")
)

// Catalog errors.
var (
	// ErrDuplicateControl indicates two controls whose names are equal under case folding.
	ErrDuplicateControl = errors.New("duplicate control")
	// ErrInvalidControl indicates a control definition with a missing name or bad type signature.
	ErrInvalidControl = errors.New("invalid control definition")
)
