package schema

import (
	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/internal/pool"
)

// Format renders buf, a record of this schema in native byte order, as text.
//
// A single-field record renders as a bare value; a multi-field record as
// "{name=value,...}" in declaration order. Booleans render as true/false and
// all integer and bitmap types as decimal. The output is accepted by Scan.
//
// Returns "" if len(buf) differs from ByteSize().
func (s *Schema) Format(buf []byte) string {
	return s.FormatOrder(buf, endian.NativeEngine())
}

// FormatOrder is like Format but reads multi-byte fields in engine order.
func (s *Schema) FormatOrder(buf []byte, engine endian.EndianEngine) string {
	if len(buf) != s.size {
		return ""
	}

	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	if len(s.fields) == 1 {
		appendField(bb, engine, s.fields[0].Type, buf)
		return bb.String()
	}

	_ = bb.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			_ = bb.WriteByte(',')
		}
		_, _ = bb.WriteString(f.Name)
		_ = bb.WriteByte('=')
		off := s.offsets[i]
		appendField(bb, engine, f.Type, buf[off:off+f.Type.Size()])
	}
	_ = bb.WriteByte('}')

	return bb.String()
}

func appendField(bb *pool.ByteBuffer, engine endian.EndianEngine, t format.AtomType, b []byte) {
	switch {
	case t.IsBoolean():
		if b[0] != 0 {
			_, _ = bb.WriteString("true")
		} else {
			_, _ = bb.WriteString("false")
		}
	case t.IsSigned():
		bb.AppendInt(LoadInt(engine, t, b))
	default:
		bb.AppendUint(LoadUint(engine, t, b))
	}
}
