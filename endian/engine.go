// Package endian selects the byte order used for multi-byte header fields of
// packed columns.
//
// Packed codes are single bytes and have no byte order; only header fields
// (counts, log bounds, checksums) depend on it. Little-endian is the default and
// matches every platform the format is normally produced on. Big-endian exists
// for interoperability with readers that insist on network order.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so encoders
// can append fields directly to an output buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(logMax))
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness returns the host byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	// the first byte in memory is 0x01 only on big-endian hosts
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

// PutFloat64 stores the IEEE 754 bits of v into b[:8].
func PutFloat64(engine EndianEngine, b []byte, v float64) {
	engine.PutUint64(b, math.Float64bits(v))
}

// Float64 reads an IEEE 754 value from b[:8].
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
