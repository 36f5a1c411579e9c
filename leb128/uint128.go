package leb128

import (
	"math/bits"

	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
)

// SizeUint128 returns the number of bytes v occupies once encoded.
func SizeUint128(v uint128.Uint128) int {
	if v.Hi != 0 {
		return (64 + bits.Len64(v.Hi) + 6) / 7
	}

	return Size(v.Lo)
}

// EncodeUint128Reference is EncodeReference for 128-bit values.
func EncodeUint128Reference(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
	var sink buffer.ByteWise

	start := pos
	for {
		b := byte(v.Lo) & payloadMask
		v = v.Rsh(7)

		if v.IsZero() {
			sink.PutByte(buf, pos, b)
			return pos + 1 - start
		}

		sink.PutByte(buf, pos, b|continuation)
		pos++
	}
}

// EncodeUint128Fixed is EncodeFixed for 128-bit values.
func EncodeUint128Fixed(buf *buffer.Buffer, pos int, v uint128.Uint128, w buffer.Writer) int {
	var encoded [MaxLen128]byte

	for i := 0; i < MaxLen128; i++ {
		encoded[i] = byte(v.Lo) & payloadMask
		v = v.Rsh(7)

		if v.IsZero() {
			n := i + 1
			flush(w, buf, pos, encoded[:n])

			return n
		}

		encoded[i] |= continuation
	}

	panic("leb128: value exceeds width bound")
}

// EncodeUint128Callback is EncodeCallback for 128-bit values.
func EncodeUint128Callback(v uint128.Uint128, emit func(b byte)) int {
	for n := 1; n <= MaxLen128; n++ {
		b := byte(v.Lo) & payloadMask
		v = v.Rsh(7)

		if v.IsZero() {
			emit(b)
			return n
		}

		emit(b | continuation)
	}

	panic("leb128: value exceeds width bound")
}

// EncodeUint128WithSink is EncodeWithSink for 128-bit values.
func EncodeUint128WithSink(buf *buffer.Buffer, pos int, v uint128.Uint128, w buffer.Writer) int {
	return EncodeUint128Callback(v, func(b byte) {
		w.PutByte(buf, pos, b)
		pos++
	})
}

// EncodeUint128Reserved is EncodeReserved for 128-bit values.
func EncodeUint128Reserved(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
	win := buf.Reserve(pos, MaxLen128)
	dst := win.Bytes()

	n := 0
	for {
		b := byte(v.Lo) & payloadMask
		v = v.Rsh(7)

		if v.IsZero() {
			dst[n] = b
			n++

			break
		}

		dst[n] = b | continuation
		n++
	}

	win.Commit(n)

	return n
}

// DecodeUint128Reference is DecodeReference for 128-bit values.
func DecodeUint128Reference(data []byte, pos int) (uint128.Uint128, int) {
	var result uint128.Uint128
	var shift uint

	start := pos
	for {
		b := data[pos]
		pos++
		result = result.Or(group(b, shift))

		if b&continuation == 0 {
			return result, pos - start
		}

		shift += 7
	}
}

// DecodeUint128Fixed is DecodeFixed for 128-bit values.
func DecodeUint128Fixed(data []byte, pos int) (uint128.Uint128, int) {
	var result uint128.Uint128
	var shift uint

	for i := 0; i < MaxLen128; i++ {
		b := data[pos+i]
		result = result.Or(group(b, shift))

		if b&continuation == 0 {
			return result, i + 1
		}

		shift += 7
	}

	panic("leb128: unterminated encoding")
}

// DecodeUint128Windowed is DecodeWindowed for 128-bit values.
func DecodeUint128Windowed(data []byte, pos int) (uint128.Uint128, int) {
	end := min(pos+MaxLen128, len(data))
	window := data[pos:end]

	var result uint128.Uint128
	var shift uint

	for i, b := range window {
		result = result.Or(group(b, shift))

		if b < continuation {
			return result, i + 1
		}

		shift += 7
	}

	panic("leb128: encoding overruns input")
}

// DecodeUint128Branchless is DecodeBranchless for 128-bit values.
func DecodeUint128Branchless(data []byte, pos int) (uint128.Uint128, int) {
	var result uint128.Uint128
	var shift uint

	start := pos
	for i := 0; i < MaxLen128; i++ {
		b := data[pos]
		result = result.Or(group(b, shift))

		adv := b >> 7
		pos += int(adv)
		shift += 7 * uint(adv)
	}

	return result, pos + 1 - start
}

// group places the payload bits of b at shift.
func group(b byte, shift uint) uint128.Uint128 {
	return uint128.From64(uint64(b & payloadMask)).Lsh(shift)
}
