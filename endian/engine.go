// Package endian provides byte order utilities for the fixedstr codecs.
//
// It combines the ByteOrder and AppendByteOrder interfaces from Go's
// standard encoding/binary package into a single EndianEngine interface,
// which the codec packages accept wherever a byte-order parameter belongs
// to the wire contract.
//
// Two codecs consume this package in different ways:
//
//   - binio takes an EndianEngine on every call because the fixed-width
//     stream contract carries an explicit byte-order parameter. The string
//     payload itself is opaque bytes, so the engine is deliberately unused
//     there; it exists to keep call sites uniform with multi-byte fields
//     read from the same stream.
//   - archive uses the engine for real: blob headers store multi-byte
//     count and offset fields, and the header flag records which order
//     they were written in.
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

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so any existing
// code holding a binary.ByteOrder value interoperates directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Inspect the first byte at the lowest memory address.
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
