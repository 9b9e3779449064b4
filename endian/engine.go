// Package endian provides byte order utilities for structured UVC values.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into a
// single EndianEngine and names the two orders the engine cares about:
//
//   - the host order, detected at runtime with NativeEngine (or injected, which
//     lets tests simulate a big-endian host on little-endian hardware)
//   - the wire order, which for USB control transfers is always little-endian
//
// Basic usage:
//
//	host := endian.NativeEngine()
//	if endian.IsWireOrder(host) {
//	    // host and wire layouts are identical, no swapping needed
//	}
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() EndianEngine {
	// 0x0100 is 256. On a big-endian host the MSB (0x01) is stored first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

var native = CheckEndianness()

// NativeEngine returns the engine matching the byte order of the running host.
//
// The result is computed once at package initialization.
func NativeEngine() EndianEngine {
	return native
}

// WireEngine returns the engine for the USB wire order (little-endian).
func WireEngine() EndianEngine {
	return binary.LittleEndian
}

// IsWireOrder reports whether engine lays out integers in wire order.
func IsWireOrder(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return native == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return native == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
