package schema

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
)

func TestByteOrderCodec_NoOp(t *testing.T) {
	require.Equal(t, endian.IsNativeLittleEndian(), NativeCodec().IsNoOp())
	require.True(t, NewByteOrderCodec(endian.GetLittleEndianEngine()).IsNoOp())
	require.False(t, NewByteOrderCodec(endian.GetBigEndianEngine()).IsNoOp())
	require.Equal(t, endian.NativeEngine(), NewByteOrderCodec(nil).Host())
	require.Equal(t, endian.NativeEngine(), ByteOrderCodec{}.Host())
}

func TestByteOrderCodec_BigEndianHost(t *testing.T) {
	codec := NewByteOrderCodec(endian.GetBigEndianEngine())
	s := MustParse("{B on; U4 exposure; S2 level; U1 speed; M8 flags}")

	buf := []byte{
		0x01,
		0x01, 0x02, 0x03, 0x04,
		0xfe, 0x0c,
		0x7f,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	want := []byte{
		0x01,
		0x04, 0x03, 0x02, 0x01,
		0x0c, 0xfe,
		0x7f,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	orig := bytes.Clone(buf)

	require.True(t, codec.NeedsSwap(s))
	require.NoError(t, codec.HostToWire(s, buf))
	require.Equal(t, want, buf)

	require.NoError(t, codec.WireToHost(s, buf))
	require.Equal(t, orig, buf)
}

func TestByteOrderCodec_LittleEndianHost(t *testing.T) {
	codec := NewByteOrderCodec(endian.GetLittleEndianEngine())
	s := MustParse("{U4 exposure; S2 level}")

	buf := []byte{1, 2, 3, 4, 5, 6}
	require.False(t, codec.NeedsSwap(s))
	require.NoError(t, codec.HostToWire(s, buf))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf)
	require.NoError(t, codec.WireToHost(s, buf))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf)
}

func TestByteOrderCodec_SingleByteSchema(t *testing.T) {
	codec := NewByteOrderCodec(endian.GetBigEndianEngine())
	s := MustParse("{S1 pan;U1 pan-speed;S1 tilt;U1 tilt-speed}")

	buf := []byte{0xff, 0x01, 0x02, 0x03}
	require.False(t, codec.NeedsSwap(s))
	require.NoError(t, codec.HostToWire(s, buf))
	require.Equal(t, []byte{0xff, 0x01, 0x02, 0x03}, buf)
}

func TestByteOrderCodec_Involution(t *testing.T) {
	descs := []string{"{U4}", "{S2 pan;S2 tilt}", "{S1 zoom;U1 digital-zoom;U1 speed}", "{U8 a;B b;M2 c;S4 d}"}
	codecs := map[string]ByteOrderCodec{
		"native":     NativeCodec(),
		"big-endian": NewByteOrderCodec(endian.GetBigEndianEngine()),
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for name, codec := range codecs {
		for _, desc := range descs {
			t.Run(name+"/"+desc, func(t *testing.T) {
				s := MustParse(desc)
				for range 32 {
					buf := make([]byte, s.ByteSize())
					for i := range buf {
						buf[i] = byte(rng.UintN(256))
					}
					orig := bytes.Clone(buf)

					require.NoError(t, codec.HostToWire(s, buf))
					require.NoError(t, codec.WireToHost(s, buf))
					require.Equal(t, orig, buf)

					require.NoError(t, codec.WireToHost(s, buf))
					require.NoError(t, codec.HostToWire(s, buf))
					require.Equal(t, orig, buf)
				}
			})
		}
	}
}

func TestByteOrderCodec_Errors(t *testing.T) {
	codec := NativeCodec()
	s := MustParse("{U4}")

	require.ErrorIs(t, codec.HostToWire(s, make([]byte, 3)), errs.ErrBufferSizeMismatch)
	require.ErrorIs(t, codec.WireToHost(s, make([]byte, 5)), errs.ErrBufferSizeMismatch)
	require.ErrorIs(t, codec.HostToWire(nil, nil), errs.ErrNilSchema)
}

func TestLoadStore(t *testing.T) {
	be := endian.GetBigEndianEngine()
	le := endian.GetLittleEndianEngine()

	b := make([]byte, 2)
	StoreUint(be, format.AtomSInt16, b, uint64(0xfed4)) // -300
	require.Equal(t, []byte{0xfe, 0xd4}, b)
	require.Equal(t, int64(-300), LoadInt(be, format.AtomSInt16, b))
	require.Equal(t, uint64(0xfed4), LoadUint(be, format.AtomSInt16, b))
	require.Equal(t, int64(0xd4fe), LoadInt(le, format.AtomUInt16, b))

	b1 := make([]byte, 1)
	StoreUint(le, format.AtomSInt8, b1, 0x1ff)
	require.Equal(t, int64(-1), LoadInt(le, format.AtomSInt8, b1))
	require.Equal(t, uint64(0xff), LoadUint(le, format.AtomBitmap8, b1))

	b4 := make([]byte, 4)
	StoreUint(le, format.AtomSInt32, b4, 0x80000000)
	require.Equal(t, int64(-2147483648), LoadInt(le, format.AtomSInt32, b4))

	b8 := make([]byte, 8)
	StoreUint(be, format.AtomUInt64, b8, 1<<63)
	require.Equal(t, uint64(1<<63), LoadUint(be, format.AtomUInt64, b8))
	require.Equal(t, byte(0x80), b8[0])
}
