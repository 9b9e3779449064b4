package schema

import (
	"fmt"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
)

// ByteOrderCodec converts records between host byte order and the
// little-endian wire order used by USB control transfers.
//
// Only fields wider than one byte are touched. When the host is itself
// little-endian, or the schema has only one-byte fields, conversion is a
// no-op and is skipped entirely.
//
// The zero value is not usable; create codecs with NativeCodec or NewByteOrderCodec.
type ByteOrderCodec struct {
	host endian.EndianEngine
}

// NativeCodec returns a codec for the byte order of the running host.
func NativeCodec() ByteOrderCodec {
	return ByteOrderCodec{host: endian.NativeEngine()}
}

// NewByteOrderCodec returns a codec that treats host as the host byte order.
// A nil host selects the native order.
//
// Passing endian.GetBigEndianEngine() simulates a big-endian host.
func NewByteOrderCodec(host endian.EndianEngine) ByteOrderCodec {
	if host == nil {
		host = endian.NativeEngine()
	}

	return ByteOrderCodec{host: host}
}

// Host returns the host byte order of the codec.
func (c ByteOrderCodec) Host() endian.EndianEngine {
	if c.host == nil {
		return endian.NativeEngine()
	}

	return c.host
}

// IsNoOp reports whether the host order equals the wire order.
func (c ByteOrderCodec) IsNoOp() bool {
	return endian.IsWireOrder(c.Host())
}

// NeedsSwap reports whether converting a record of s changes any bytes.
func (c ByteOrderCodec) NeedsSwap(s *Schema) bool {
	return !c.IsNoOp() && !s.IsSingleByte()
}

// HostToWire rewrites every multi-byte field of buf from host to wire order in place.
//
// Returns errs.ErrBufferSizeMismatch if len(buf) differs from s.ByteSize().
func (c ByteOrderCodec) HostToWire(s *Schema, buf []byte) error {
	return c.convert(s, buf, c.Host(), endian.WireEngine())
}

// WireToHost rewrites every multi-byte field of buf from wire to host order in place.
//
// Returns errs.ErrBufferSizeMismatch if len(buf) differs from s.ByteSize().
func (c ByteOrderCodec) WireToHost(s *Schema, buf []byte) error {
	return c.convert(s, buf, endian.WireEngine(), c.Host())
}

func (c ByteOrderCodec) convert(s *Schema, buf []byte, from, to endian.EndianEngine) error {
	if s == nil {
		return errs.ErrNilSchema
	}
	if len(buf) != s.size {
		return fmt.Errorf("%w: buffer has %d bytes, schema %s needs %d",
			errs.ErrBufferSizeMismatch, len(buf), s.Signature(), s.size)
	}
	if !c.NeedsSwap(s) {
		return nil
	}

	for i, f := range s.fields {
		field := buf[s.offsets[i] : s.offsets[i]+f.Type.Size()]
		switch f.Type.Size() {
		case 2:
			to.PutUint16(field, from.Uint16(field))
		case 4:
			to.PutUint32(field, from.Uint32(field))
		case 8:
			to.PutUint64(field, from.Uint64(field))
		}
	}

	return nil
}

// LoadUint reads the field bytes b of type t in engine order and returns the
// raw bits zero-extended to 64 bits.
func LoadUint(engine endian.EndianEngine, t format.AtomType, b []byte) uint64 {
	switch t.Size() {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(engine.Uint16(b))
	case 4:
		return uint64(engine.Uint32(b))
	case 8:
		return engine.Uint64(b)
	default:
		return 0
	}
}

// LoadInt reads the field bytes b of type t and sign-extends signed types.
// Unsigned and bitmap types are returned as their unsigned value reinterpreted.
func LoadInt(engine endian.EndianEngine, t format.AtomType, b []byte) int64 {
	raw := LoadUint(engine, t, b)
	switch t {
	case format.AtomSInt8:
		return int64(int8(raw))
	case format.AtomSInt16:
		return int64(int16(raw))
	case format.AtomSInt32:
		return int64(int32(raw))
	default:
		return int64(raw)
	}
}

// StoreUint writes v truncated to the width of t into b in engine order.
func StoreUint(engine endian.EndianEngine, t format.AtomType, b []byte, v uint64) {
	switch t.Size() {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v))
	case 4:
		engine.PutUint32(b, uint32(v))
	case 8:
		engine.PutUint64(b, v)
	}
}
