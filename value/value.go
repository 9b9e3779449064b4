// Package value provides Value, a byte buffer laid out by a schema that
// remembers whether it currently holds host or wire byte order.
package value

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/internal/options"
	"github.com/arloliu/uvcval/schema"
)

type config struct {
	host endian.EndianEngine
}

// Option configures a Value.
type Option = options.Option[*config]

// WithHostEngine sets the byte order the Value treats as host order.
// The native order is used by default; a big-endian engine simulates a
// big-endian host.
func WithHostEngine(engine endian.EndianEngine) Option {
	return options.New(func(c *config) error {
		if engine == nil {
			return errors.New("nil host engine")
		}
		c.host = engine

		return nil
	})
}

// Value is a record conforming to a Schema.
//
// The buffer is owned by the Value, is exactly Schema().ByteSize() bytes long
// and never changes length. A Value is not safe for concurrent mutation.
type Value struct {
	schema *schema.Schema
	codec  schema.ByteOrderCodec
	buf    []byte
	wire   bool
}

// New creates a zero-filled Value in host order.
func New(s *schema.Schema, opts ...Option) (*Value, error) {
	if s == nil {
		return nil, errs.ErrNilSchema
	}

	cfg := config{host: endian.NativeEngine()}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Value{
		schema: s,
		codec:  schema.NewByteOrderCodec(cfg.host),
		buf:    make([]byte, s.ByteSize()),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(s *schema.Schema, opts ...Option) *Value {
	v, err := New(s, opts...)
	if err != nil {
		panic(fmt.Sprintf("value.MustNew: %v", err))
	}

	return v
}

// FromWire creates a Value from bytes received in wire order and converts it
// to host order. wire is copied.
func FromWire(s *schema.Schema, wire []byte, opts ...Option) (*Value, error) {
	v, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	if len(wire) != len(v.buf) {
		return nil, fmt.Errorf("%w: got %d bytes, schema %s needs %d",
			errs.ErrBufferSizeMismatch, len(wire), s.Signature(), len(v.buf))
	}

	copy(v.buf, wire)
	v.wire = true
	v.ToHostOrder()

	return v, nil
}

// Schema returns the schema of v.
func (v *Value) Schema() *schema.Schema {
	return v.schema
}

// Bytes returns the underlying buffer in its current byte order.
// Writes through the returned slice modify v.
func (v *Value) Bytes() []byte {
	return v.buf
}

// ByteSize returns the length of the buffer.
func (v *Value) ByteSize() int {
	return len(v.buf)
}

// FieldAt returns the bytes of the field at index i, or nil if i is out of range.
func (v *Value) FieldAt(i int) []byte {
	off := v.schema.OffsetAt(i)
	if off == schema.InvalidIndex {
		return nil
	}

	return v.buf[off : off+v.schema.FieldType(i).Size() : off+v.schema.FieldType(i).Size()]
}

// Field returns the bytes of the named field, or nil if there is no such field.
func (v *Value) Field(name string) []byte {
	return v.FieldAt(v.schema.IndexOf(name))
}

// OffsetAt returns the byte offset of the field at index i, or schema.InvalidIndex.
func (v *Value) OffsetAt(i int) int {
	return v.schema.OffsetAt(i)
}

// OffsetOf returns the byte offset of the named field, or schema.InvalidIndex.
func (v *Value) OffsetOf(name string) int {
	return v.schema.OffsetOf(name)
}

// IsWireOrder reports whether the buffer currently holds wire byte order.
func (v *Value) IsWireOrder() bool {
	return v.wire
}

// ToWireOrder converts the buffer from host to wire order.
//
// It reports whether a conversion happened; a Value already in wire order
// is left untouched and false is returned.
func (v *Value) ToWireOrder() bool {
	if v.wire {
		return false
	}
	_ = v.codec.HostToWire(v.schema, v.buf)
	v.wire = true

	return true
}

// ToHostOrder converts the buffer from wire to host order.
//
// It reports whether a conversion happened; a Value already in host order
// is left untouched and false is returned.
func (v *Value) ToHostOrder() bool {
	if !v.wire {
		return false
	}
	_ = v.codec.WireToHost(v.schema, v.buf)
	v.wire = false

	return true
}

// WireBytes returns a copy of the buffer in wire order without changing v.
func (v *Value) WireBytes() []byte {
	out := bytes.Clone(v.buf)
	if !v.wire {
		_ = v.codec.HostToWire(v.schema, out)
	}

	return out
}

// HostBytes returns a copy of the buffer in host order without changing v.
func (v *Value) HostBytes() []byte {
	out := bytes.Clone(v.buf)
	if v.wire {
		_ = v.codec.WireToHost(v.schema, out)
	}

	return out
}

// CopyFrom copies the bytes and byte order state of other into v.
//
// Returns errs.ErrSchemaMismatch, leaving v untouched, unless both schemas
// are structurally equal.
func (v *Value) CopyFrom(other *Value) error {
	if other == nil || !v.schema.Equal(other.schema) {
		return fmt.Errorf("%w: cannot copy %s into %s", errs.ErrSchemaMismatch, signature(other), v.schema.Signature())
	}
	if v == other {
		return nil
	}

	copy(v.buf, other.buf)
	v.wire = other.wire

	return nil
}

// String renders v as text. The result is correct in either byte order.
func (v *Value) String() string {
	return v.schema.FormatOrder(v.buf, v.engine())
}

// Scan parses text into v. A Value in wire order is first converted to host
// order. Companion buffers passed through opts must be in host order.
//
// On error the buffer contents are undefined.
func (v *Value) Scan(text string, opts ...schema.ScanOption) error {
	v.ToHostOrder()

	scanOpts := make([]schema.ScanOption, 0, len(opts)+1)
	scanOpts = append(scanOpts, schema.WithByteOrder(v.codec.Host()))
	scanOpts = append(scanOpts, opts...)

	return v.schema.Scan(text, v.buf, scanOpts...)
}

// Equal reports whether v and other have structurally equal schemas and the
// same contents. Values in different byte orders are compared in host order.
func (v *Value) Equal(other *Value) bool {
	if other == nil || !v.schema.Equal(other.schema) {
		return false
	}
	if v.wire == other.wire {
		return bytes.Equal(v.buf, other.buf)
	}

	return bytes.Equal(v.HostBytes(), other.HostBytes())
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	return &Value{
		schema: v.schema,
		codec:  v.codec,
		buf:    bytes.Clone(v.buf),
		wire:   v.wire,
	}
}

// Reset zeroes the buffer and returns v to host order.
func (v *Value) Reset() {
	clear(v.buf)
	v.wire = false
}

// Int returns field i sign-extended for signed types.
func (v *Value) Int(i int) (int64, error) {
	t, b, err := v.field(i)
	if err != nil {
		return 0, err
	}

	return schema.LoadInt(v.engine(), t, b), nil
}

// Uint returns the raw bits of field i zero-extended to 64 bits.
func (v *Value) Uint(i int) (uint64, error) {
	t, b, err := v.field(i)
	if err != nil {
		return 0, err
	}

	return schema.LoadUint(v.engine(), t, b), nil
}

// Bool reports whether field i is non-zero.
func (v *Value) Bool(i int) (bool, error) {
	u, err := v.Uint(i)
	return u != 0, err
}

// SetInt stores x into field i, truncated to the field width.
func (v *Value) SetInt(i int, x int64) error {
	return v.SetUint(i, uint64(x))
}

// SetUint stores x into field i, truncated to the field width.
func (v *Value) SetUint(i int, x uint64) error {
	t, b, err := v.field(i)
	if err != nil {
		return err
	}
	if t == format.AtomBoolean && x != 0 {
		x = 1
	}
	schema.StoreUint(v.engine(), t, b, x)

	return nil
}

// SetBool stores 1 or 0 into field i.
func (v *Value) SetBool(i int, x bool) error {
	if x {
		return v.SetUint(i, 1)
	}

	return v.SetUint(i, 0)
}

func (v *Value) field(i int) (format.AtomType, []byte, error) {
	b := v.FieldAt(i)
	if b == nil {
		return format.AtomInvalid, nil, fmt.Errorf("%w: %d of %d", errs.ErrFieldIndexOutOfRange, i, v.schema.FieldCount())
	}

	return v.schema.FieldType(i), b, nil
}

// engine returns the byte order the buffer is currently in.
func (v *Value) engine() endian.EndianEngine {
	if v.wire {
		return endian.WireEngine()
	}

	return v.codec.Host()
}

func signature(v *Value) string {
	if v == nil {
		return "<nil>"
	}

	return v.schema.Signature()
}
