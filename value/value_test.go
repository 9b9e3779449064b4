package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/schema"
)

var bigEndianHost = WithHostEngine(endian.GetBigEndianEngine())

func TestNew(t *testing.T) {
	s := schema.MustParse("{S4 pan;S4 tilt}")
	v, err := New(s)
	require.NoError(t, err)
	require.Same(t, s, v.Schema())
	require.Equal(t, 8, v.ByteSize())
	require.Equal(t, make([]byte, 8), v.Bytes())
	require.False(t, v.IsWireOrder())
	require.Equal(t, "{pan=0,tilt=0}", v.String())

	_, err = New(nil)
	require.ErrorIs(t, err, errs.ErrNilSchema)

	_, err = New(s, WithHostEngine(nil))
	require.Error(t, err)

	require.Panics(t, func() { MustNew(nil) })
}

func TestValue_Fields(t *testing.T) {
	v := MustNew(schema.MustParse("{S1 zoom;U1 digital-zoom;U2 speed}"))

	require.Len(t, v.FieldAt(0), 1)
	require.Len(t, v.Field("SPEED"), 2)
	require.Nil(t, v.FieldAt(3))
	require.Nil(t, v.FieldAt(-1))
	require.Nil(t, v.Field("pan"))

	require.Equal(t, 2, v.OffsetOf("speed"))
	require.Equal(t, 1, v.OffsetAt(1))
	require.Equal(t, schema.InvalidIndex, v.OffsetOf("pan"))
	require.Equal(t, schema.InvalidIndex, v.OffsetAt(9))

	v.Field("digital-zoom")[0] = 7
	require.Equal(t, byte(7), v.Bytes()[1])

	// field slices cannot grow into the next field
	zoom := v.FieldAt(0)
	zoom = append(zoom, 0xaa)
	require.Equal(t, byte(7), v.Bytes()[1])
	require.Len(t, zoom, 2)
}

func TestValue_TypedAccess(t *testing.T) {
	v := MustNew(schema.MustParse("{B on;S2 level;U4 exposure}"))

	require.NoError(t, v.SetBool(0, true))
	require.NoError(t, v.SetInt(1, -300))
	require.NoError(t, v.SetUint(2, 1<<33+5))

	on, err := v.Bool(0)
	require.NoError(t, err)
	require.True(t, on)

	level, err := v.Int(1)
	require.NoError(t, err)
	require.Equal(t, int64(-300), level)

	exposure, err := v.Uint(2)
	require.NoError(t, err)
	require.Equal(t, uint64(5), exposure)

	require.NoError(t, v.SetUint(0, 9))
	require.Equal(t, byte(1), v.Bytes()[0])

	_, err = v.Int(3)
	require.ErrorIs(t, err, errs.ErrFieldIndexOutOfRange)
	require.ErrorIs(t, v.SetInt(-1, 0), errs.ErrFieldIndexOutOfRange)

	require.Equal(t, "{on=true,level=-300,exposure=5}", v.String())
}

func TestValue_ByteOrderToggle(t *testing.T) {
	// a 4-byte value on a simulated big-endian host survives a round trip
	// through wire order
	v := MustNew(schema.MustParse("{U4}"), bigEndianHost)
	copy(v.Bytes(), []byte{0x01, 0x02, 0x03, 0x04})

	require.True(t, v.ToWireOrder())
	require.True(t, v.IsWireOrder())
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, v.Bytes())

	require.False(t, v.ToWireOrder())
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, v.Bytes())

	require.True(t, v.ToHostOrder())
	require.False(t, v.IsWireOrder())
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, v.Bytes())

	require.False(t, v.ToHostOrder())
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, v.Bytes())
}

func TestValue_ByteOrderToggle_Native(t *testing.T) {
	v := MustNew(schema.MustParse("{S2 pan;S2 tilt}"))
	require.NoError(t, v.Scan("{100,-200}"))
	orig := v.HostBytes()

	require.True(t, v.ToWireOrder())
	require.Equal(t, []byte{100, 0, 0x38, 0xff}, v.Bytes())
	require.True(t, v.ToHostOrder())
	require.Equal(t, orig, v.Bytes())
}

func TestValue_WireBytes(t *testing.T) {
	v := MustNew(schema.MustParse("{U2 a;U1 b}"), bigEndianHost)
	require.NoError(t, v.Scan("{0x0102,3}"))
	require.Equal(t, []byte{0x01, 0x02, 0x03}, v.Bytes())

	require.Equal(t, []byte{0x02, 0x01, 0x03}, v.WireBytes())
	require.False(t, v.IsWireOrder())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, v.Bytes())

	v.ToWireOrder()
	require.Equal(t, []byte{0x02, 0x01, 0x03}, v.WireBytes())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, v.HostBytes())
}

func TestFromWire(t *testing.T) {
	s := schema.MustParse("{S2 pan;S2 tilt}")

	v, err := FromWire(s, []byte{0xd4, 0xfe, 0x2c, 0x01}, bigEndianHost)
	require.NoError(t, err)
	require.False(t, v.IsWireOrder())
	require.Equal(t, []byte{0xfe, 0xd4, 0x01, 0x2c}, v.Bytes())
	require.Equal(t, "{pan=-300,tilt=300}", v.String())

	native, err := FromWire(s, []byte{0xd4, 0xfe, 0x2c, 0x01})
	require.NoError(t, err)
	require.Equal(t, "{pan=-300,tilt=300}", native.String())

	_, err = FromWire(s, []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrBufferSizeMismatch)
	_, err = FromWire(nil, nil)
	require.ErrorIs(t, err, errs.ErrNilSchema)
}

func TestValue_StringInWireOrder(t *testing.T) {
	for name, opts := range map[string][]Option{"native": nil, "big-endian": {bigEndianHost}} {
		t.Run(name, func(t *testing.T) {
			v := MustNew(schema.MustParse("{S4 pan;S4 tilt}"), opts...)
			require.NoError(t, v.Scan("{-3600,7200}"))

			v.ToWireOrder()
			require.Equal(t, "{pan=-3600,tilt=7200}", v.String())

			n, err := v.Int(0)
			require.NoError(t, err)
			require.Equal(t, int64(-3600), n)
		})
	}
}

func TestValue_ScanFromWireOrder(t *testing.T) {
	v := MustNew(schema.MustParse("{U2 a;U2 b}"), bigEndianHost)
	require.NoError(t, v.Scan("{1,2}"))
	v.ToWireOrder()

	require.NoError(t, v.Scan("{b=5}"))
	require.False(t, v.IsWireOrder())
	require.Equal(t, "{a=1,b=5}", v.String())
	require.Equal(t, []byte{0, 1, 0, 5}, v.Bytes())
}

func TestValue_ScanKeywords(t *testing.T) {
	s := schema.MustParse("{S2 pan;S2 tilt}")
	def := MustNew(s, bigEndianHost)
	require.NoError(t, def.Scan("{10,20}"))

	v := MustNew(s, bigEndianHost)
	require.NoError(t, v.Scan("{pan=default,tilt=-1}", schema.WithDefault(def.HostBytes())))
	require.Equal(t, "{pan=10,tilt=-1}", v.String())

	require.ErrorIs(t, v.Scan("default"), errs.ErrMissingCompanion)
}

func TestValue_CopyFrom(t *testing.T) {
	src := MustNew(schema.MustParse("{S2 pan;U1 speed}"))
	require.NoError(t, src.Scan("{-5,10}"))
	src.ToWireOrder()

	dst := MustNew(schema.MustParse("{S2 x;U1 y}"))
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.Bytes(), dst.Bytes())
	require.True(t, dst.IsWireOrder())
	require.Equal(t, "{x=-5,y=10}", dst.String())

	// storage is not shared
	dst.Bytes()[2] = 99
	require.Equal(t, byte(10), src.Bytes()[2])

	require.NoError(t, dst.CopyFrom(dst))
}

func TestValue_CopyFrom_Mismatch(t *testing.T) {
	unsigned := MustNew(schema.MustParse("{U2}"))
	signed := MustNew(schema.MustParse("{S2}"))
	require.NoError(t, signed.Scan("-7"))
	before := signed.HostBytes()

	require.ErrorIs(t, signed.CopyFrom(unsigned), errs.ErrSchemaMismatch)
	require.Equal(t, before, signed.Bytes())

	require.ErrorIs(t, signed.CopyFrom(nil), errs.ErrSchemaMismatch)
	require.ErrorIs(t, signed.CopyFrom(MustNew(schema.MustParse("{U1 a;U1 b}"))), errs.ErrSchemaMismatch)
}

func TestValue_Equal(t *testing.T) {
	s := schema.MustParse("{S2 pan;S2 tilt}")
	a := MustNew(s, bigEndianHost)
	b := MustNew(schema.MustParse("{S2 x;S2 y}"), bigEndianHost)
	require.NoError(t, a.Scan("{1,2}"))
	require.NoError(t, b.Scan("{1,2}"))

	require.True(t, a.Equal(b))

	b.ToWireOrder()
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetInt(1, 3))
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(nil))
	require.False(t, MustNew(schema.MustParse("{U2}")).Equal(MustNew(schema.MustParse("{S2}"))))
}

func TestValue_CloneReset(t *testing.T) {
	v := MustNew(schema.MustParse("{U4}"), bigEndianHost)
	require.NoError(t, v.Scan("0x01020304"))
	v.ToWireOrder()

	c := v.Clone()
	require.True(t, c.IsWireOrder())
	require.True(t, c.Equal(v))
	c.Bytes()[0] = 0
	require.False(t, c.Equal(v))

	v.Reset()
	require.False(t, v.IsWireOrder())
	require.Equal(t, []byte{0, 0, 0, 0}, v.Bytes())
	require.Equal(t, "0", v.String())
}

func TestValue_Scenarios(t *testing.T) {
	t.Run("signed single value", func(t *testing.T) {
		v := MustNew(schema.MustParse("{S2}"))
		require.NoError(t, v.Scan("-300"))
		require.Equal(t, "-300", v.String())
	})

	t.Run("named record", func(t *testing.T) {
		v := MustNew(schema.MustParse("{S1 pan;U1 speed}"))
		require.NoError(t, v.Scan("{pan=-5,speed=10}"))
		require.Equal(t, "{pan=-5,speed=10}", v.String())
	})

	t.Run("boolean word", func(t *testing.T) {
		v := MustNew(schema.MustParse("{B}"))
		require.NoError(t, v.Scan("yes"))
		require.Equal(t, []byte{1}, v.Bytes())
		require.Equal(t, "true", v.String())
	})

	t.Run("positional equals named", func(t *testing.T) {
		s := schema.MustParse("{S2 pan;S2 tilt}")
		a, b := MustNew(s), MustNew(s)
		require.NoError(t, a.Scan("{100,200}"))
		require.NoError(t, b.Scan("{pan=100,tilt=200}"))
		require.True(t, a.Equal(b))
	})

	t.Run("copy across signedness fails", func(t *testing.T) {
		dst := MustNew(schema.MustParse("{S2}"))
		require.ErrorIs(t, dst.CopyFrom(MustNew(schema.MustParse("{U2}"))), errs.ErrSchemaMismatch)
	})
}
