package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc   string
		fields []Field
	}{
		{"{S2}", []Field{{"value", format.AtomSInt16}}},
		{"S2", []Field{{"value", format.AtomSInt16}}},
		{"  u4\t", []Field{{"value", format.AtomUInt32}}},
		{"{ b }", []Field{{"value", format.AtomBoolean}}},
		{"{U2 value}", []Field{{"value", format.AtomUInt16}}},
		{"{m8 Flags}", []Field{{"flags", format.AtomBitmap64}}},
		{
			"{S4 pan; S4 tilt}",
			[]Field{{"pan", format.AtomSInt32}, {"tilt", format.AtomSInt32}},
		},
		{
			"{S1 zoom;U1 digital-zoom;U1 speed}",
			[]Field{{"zoom", format.AtomSInt8}, {"digital-zoom", format.AtomUInt8}, {"speed", format.AtomUInt8}},
		},
		{
			"\n{ S1 pan\n U1 pan-speed ; S1 tilt;U1 tilt-speed; }",
			[]Field{
				{"pan", format.AtomSInt8}, {"pan-speed", format.AtomUInt8},
				{"tilt", format.AtomSInt8}, {"tilt-speed", format.AtomUInt8},
			},
		},
		{"{S2 a;;; S2 b}", []Field{{"a", format.AtomSInt16}, {"b", format.AtomSInt16}}},
		{"{U1 a} trailing text", []Field{{"a", format.AtomUInt8}}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			s, err := Parse(tt.desc)
			require.NoError(t, err)
			require.Equal(t, tt.fields, s.Fields())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		desc string
		err  error
	}{
		{"", errs.ErrUnexpectedEnd},
		{"   ", errs.ErrUnexpectedEnd},
		{"pan", errs.ErrMissingOpenBrace},
		{"S2 pan", errs.ErrMissingOpenBrace},
		{"(S2)", errs.ErrMissingOpenBrace},
		{"{X2 a}", errs.ErrUnknownAtomType},
		{"{S3 a}", errs.ErrUnknownAtomType},
		{"{S2a}", errs.ErrUnknownAtomType},
		{"{S2 pan tilt}", errs.ErrUnknownAtomType},
		{"{", errs.ErrUnexpectedEnd},
		{"{S2", errs.ErrUnexpectedEnd},
		{"{S2 a", errs.ErrUnexpectedEnd},
		{"{S2 a;", errs.ErrUnexpectedEnd},
		{"{S2 a; U2 A}", errs.ErrDuplicateFieldName},
		{"{S2 speed; U1 speed}", errs.ErrDuplicateFieldName},
		{"{}", errs.ErrEmptySchema},
		{"{ ; }", errs.ErrEmptySchema},
		{"{S2 a; U2}", errs.ErrInvalidFieldName},
		{"{S2 a!}", errs.ErrInvalidFieldName},
		{"{S2 _a}", errs.ErrInvalidFieldName},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			s, err := Parse(tt.desc)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, s)
		})
	}
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { MustParse("{S2}") })
	require.Panics(t, func() { MustParse("{S2 a; S2 a}") })
}
