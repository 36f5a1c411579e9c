// Package endian provides the byte order used by the raw fixed-width writer and
// the lesqlite payload.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so a
// single value can both put into a scratch array and append to a slice.
// Little-endian is the canonical order of every fixed-width value written by
// this module; the big-endian engine exists for interoperability tests.
//
//	engine := endian.GetLittleEndianEngine()
//	var tmp [8]byte
//	n := endian.PutSized(engine, tmp[:], 0x0102, 2) // tmp[:2] == {0x02, 0x01}
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// PutSized stores the low size bytes of v into dst in the engine's byte order.
//
// Parameters:
//   - engine: Byte order to use
//   - dst: Destination, at least size bytes long
//   - v: Value whose low size bytes are stored
//   - size: 1, 2, 4 or 8
//
// Returns:
//   - int: size
//
// Panics if size is not one of the supported widths.
func PutSized(engine EndianEngine, dst []byte, v uint64, size int) int {
	switch size {
	case 1:
		dst[0] = byte(v)
	case 2:
		engine.PutUint16(dst, uint16(v)) //nolint:gosec
	case 4:
		engine.PutUint32(dst, uint32(v)) //nolint:gosec
	case 8:
		engine.PutUint64(dst, v)
	default:
		panic("endian: unsupported size")
	}

	return size
}

// Sized reads a size-byte value from src in the engine's byte order.
//
// Panics if size is not 1, 2, 4 or 8.
func Sized(engine EndianEngine, src []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(engine.Uint16(src))
	case 4:
		return uint64(engine.Uint32(src))
	case 8:
		return engine.Uint64(src)
	default:
		panic("endian: unsupported size")
	}
}
