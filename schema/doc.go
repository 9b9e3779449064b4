// Package schema compiles textual type descriptions into immutable record
// layouts and converts records between bytes and text.
//
// # Type Descriptions
//
// A type description lists typed fields inside braces:
//
//	{S4 pan; S4 tilt}
//	{S1 zoom; U1 digital-zoom; U1 speed}
//	{U2}
//	U2
//
// Type codes are B (boolean), S1/U1/M1, S2/U2/M2, S4/U4/M4 and S8/U8/M8 for
// signed, unsigned and bitmap fields of 1, 2, 4 and 8 bytes. Fields are packed
// in declaration order without padding.
//
// # Byte Order
//
// Records are manipulated in host byte order. ByteOrderCodec converts them to
// and from the little-endian wire order expected by USB control transfers:
//
//	codec := schema.NativeCodec()
//	_ = codec.HostToWire(s, buf) // before handing buf to a transport
//	_ = codec.WireToHost(s, buf) // after receiving buf
//
// # Text
//
// Scan parses bare literals ("-300", "yes", "0x1f"), positional records
// ("{100,200}") and named records ("{pan=100,tilt=200}"). The keywords
// "default", "minimum" and "maximum" copy bytes from companion buffers
// supplied with WithDefault, WithMinimum and WithMaximum. Format renders the
// canonical text form, which Scan accepts.
package schema
