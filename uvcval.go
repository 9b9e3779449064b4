// Package uvcval parses, formats and converts the structured values carried
// by USB Video Class (UVC) control requests.
//
// A UVC control payload is a fixed-size record of little-endian integer and
// boolean fields. uvcval describes such a record with a compact type
// description, converts it between host and wire byte order, reads it from
// and writes it to a small text grammar, and stores sets of values as
// snapshots.
//
// # Core Features
//
//   - Type descriptions such as "{S2}" or "{S4 pan; S4 tilt}" compiled to schemas
//   - Text scanning with the "default", "minimum" and "maximum" keywords
//   - Explicit host/wire byte order tracking on every value
//   - The standard processing unit and camera terminal control catalog
//   - Snapshots with optional compression (None, Zstd, S2, LZ4) and CRC32 checksums
//
// # Basic Usage
//
// Parsing a value and producing its wire bytes:
//
//	v, err := uvcval.ParseValue("{S4 pan; S4 tilt}", "{pan=3600, tilt=-3600}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	payload := v.WireBytes() // ready for SET_CUR
//
// Formatting a GET_CUR response:
//
//	s := uvcval.MustParseSchema("{S4 pan; S4 tilt}")
//	v, _ := value.FromWire(s, response)
//	fmt.Println(v) // {pan=3600,tilt=-3600}
//
// Saving a profile:
//
//	enc, _ := uvcval.NewSnapshotEncoder(snapshot.WithCompression(format.CompressionZstd))
//	_ = enc.Add("pan-tilt-abs", v)
//	blob, _ := enc.Finish()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the schema,
// value, uvc and snapshot packages. For fine-grained control, use those
// packages directly.
package uvcval

import (
	"github.com/arloliu/uvcval/internal/hash"
	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/snapshot"
	"github.com/arloliu/uvcval/uvc"
	"github.com/arloliu/uvcval/value"
)

// ParseSchema compiles a type description.
//
// Parameters:
//   - desc: A type description, e.g. "{U2}", "U2" or "{S1 zoom;U1 digital-zoom;U1 speed}"
//
// Returns:
//   - *schema.Schema: The compiled schema.
//   - error: An error wrapping one of the errs schema errors if desc is malformed.
func ParseSchema(desc string) (*schema.Schema, error) {
	return schema.Parse(desc)
}

// MustParseSchema is like ParseSchema but panics on error.
func MustParseSchema(desc string) *schema.Schema {
	return schema.MustParse(desc)
}

// NewValue creates a zero value for a type description, in host order.
//
// Example:
//
//	v, err := uvcval.NewValue("{S2}")
func NewValue(desc string, opts ...value.Option) (*value.Value, error) {
	s, err := schema.Parse(desc)
	if err != nil {
		return nil, err
	}

	return value.New(s, opts...)
}

// ParseValue creates a value for a type description and scans text into it.
//
// Parameters:
//   - desc: The type description
//   - text: The value text, e.g. "-30", "yes" or "{pan=3600}"
//   - opts: Scanner options such as schema.WithDefault
//
// Returns:
//   - *value.Value: The scanned value in host order.
//   - error: A schema error for desc, or a scanner error for text.
func ParseValue(desc, text string, opts ...schema.ScanOption) (*value.Value, error) {
	v, err := NewValue(desc)
	if err != nil {
		return nil, err
	}
	if err := v.Scan(text, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// LookupControl returns a control of the standard catalog, ignoring case.
func LookupControl(name string) (*uvc.Control, bool) {
	return uvc.DefaultCatalog().Lookup(name)
}

// ControlID returns the 64-bit identifier snapshots and catalogs use to look
// up name. Identifiers ignore case.
func ControlID(name string) uint64 {
	return hash.NameID(name)
}

// NewSnapshotEncoder creates a snapshot encoder.
//
// The default encoder stores the payload uncompressed; pass
// snapshot.WithCompression to change that.
func NewSnapshotEncoder(opts ...snapshot.EncoderOption) (*snapshot.Encoder, error) {
	return snapshot.NewEncoder(opts...)
}

// DecodeSnapshot parses a snapshot produced by a snapshot encoder. Decoded
// values are in host order.
func DecodeSnapshot(data []byte, opts ...value.Option) (*snapshot.Snapshot, error) {
	return snapshot.Decode(data, opts...)
}
