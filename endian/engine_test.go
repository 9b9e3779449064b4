package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestNativeEngine(t *testing.T) {
	require.Equal(t, CheckEndianness(), NativeEngine())

	for range 10 {
		require.Equal(t, NativeEngine(), NativeEngine())
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian)
	require.True(t, littleEndian || bigEndian)
}

func TestWireEngine(t *testing.T) {
	engine := WireEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b, "wire order puts LSB first")
}

func TestIsWireOrder(t *testing.T) {
	require.True(t, IsWireOrder(GetLittleEndianEngine()))
	require.True(t, IsWireOrder(WireEngine()))
	require.False(t, IsWireOrder(GetBigEndianEngine()))
	require.Equal(t, IsNativeLittleEndian(), IsWireOrder(NativeEngine()))
}

func TestEndianEngines(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var v16 uint16 = 0x0102
	little16 := make([]byte, 2)
	big16 := make([]byte, 2)
	littleEngine.PutUint16(little16, v16)
	bigEngine.PutUint16(big16, v16)
	require.Equal(t, []byte{0x02, 0x01}, little16)
	require.Equal(t, []byte{0x01, 0x02}, big16)

	var v64 uint64 = 0x0102030405060708
	little64 := littleEngine.AppendUint64(nil, v64)
	big64 := bigEngine.AppendUint64(nil, v64)
	require.NotEqual(t, little64, big64)
	require.Equal(t, v64, littleEngine.Uint64(little64))
	require.Equal(t, v64, bigEngine.Uint64(big64))
}
