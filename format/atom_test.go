package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomType_Catalog(t *testing.T) {
	tests := []struct {
		typ     AtomType
		size    int
		code    string
		verbose string
		signed  bool
		bitmap  bool
	}{
		{AtomBoolean, 1, "B", "boolean", false, false},
		{AtomSInt8, 1, "S1", "signed 8-bit integer", true, false},
		{AtomUInt8, 1, "U1", "unsigned 8-bit integer", false, false},
		{AtomBitmap8, 1, "M1", "unsigned 8-bit bitmap", false, true},
		{AtomSInt16, 2, "S2", "signed 16-bit integer", true, false},
		{AtomUInt16, 2, "U2", "unsigned 16-bit integer", false, false},
		{AtomBitmap16, 2, "M2", "unsigned 16-bit bitmap", false, true},
		{AtomSInt32, 4, "S4", "signed 32-bit integer", true, false},
		{AtomUInt32, 4, "U4", "unsigned 32-bit integer", false, false},
		{AtomBitmap32, 4, "M4", "unsigned 32-bit bitmap", false, true},
		{AtomSInt64, 8, "S8", "signed 64-bit integer", true, false},
		{AtomUInt64, 8, "U8", "unsigned 64-bit integer", false, false},
		{AtomBitmap64, 8, "M8", "unsigned 64-bit bitmap", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			require.True(t, tt.typ.IsValid())
			require.Equal(t, tt.size, tt.typ.Size())
			require.Equal(t, tt.code, tt.typ.Code())
			require.Equal(t, tt.code, tt.typ.String())
			require.Equal(t, tt.verbose, tt.typ.Verbose())
			require.Equal(t, tt.signed, tt.typ.IsSigned())
			require.Equal(t, tt.bitmap, tt.typ.IsBitmap())
			require.Equal(t, tt.typ == AtomBoolean, tt.typ.IsBoolean())
		})
	}
}

func TestAtomType_Invalid(t *testing.T) {
	for _, typ := range []AtomType{AtomInvalid, atomMax, 200} {
		require.False(t, typ.IsValid())
		require.Equal(t, 0, typ.Size())
		require.Equal(t, "<invalid>", typ.Code())
		require.Equal(t, "<invalid>", typ.Verbose())
	}
}

func TestAtomTypes(t *testing.T) {
	types := AtomTypes()
	require.Len(t, types, 13)
	require.Equal(t, AtomBoolean, types[0])
	require.Equal(t, AtomBitmap64, types[len(types)-1])
}

func TestParseAtomCode(t *testing.T) {
	for _, typ := range AtomTypes() {
		for _, code := range []string{typ.Code(), strings.ToLower(typ.Code())} {
			got, n := ParseAtomCode(code + " name")
			require.Equal(t, typ, got, code)
			require.Equal(t, len(code), n)
		}
	}

	invalid := []string{"", "x", "s", "S3", "U9", "q1", "1"}
	for _, code := range invalid {
		got, n := ParseAtomCode(code)
		require.Equal(t, AtomInvalid, got, "code %q", code)
		require.Zero(t, n)
	}
}

func TestCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.True(t, c.IsValid())
		parsed, ok := ParseCompressionType(c.String())
		require.True(t, ok)
		require.Equal(t, c, parsed)
	}

	require.False(t, CompressionType(0).IsValid())
	require.Equal(t, "Unknown", CompressionType(9).String())

	_, ok := ParseCompressionType("gzip")
	require.False(t, ok)
}
