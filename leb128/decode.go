package leb128

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// DecodeReference decodes a value starting at pos with an unbounded loop that
// stops at the first byte whose continuation bit is clear.
//
// Reading past the end of data is a contract violation and panics. Encodings
// of values wider than T produce an unspecified result.
//
// Parameters:
//   - data: Encoded bytes
//   - pos: Position of the first byte of the value
//
// Returns:
//   - T: Decoded value
//   - int: Number of bytes consumed
func DecodeReference[T constraints.Unsigned](data []byte, pos int) (T, int) {
	var result T
	var shift uint

	start := pos
	for {
		b := data[pos]
		pos++
		result |= T(b&payloadMask) << shift

		if b&continuation == 0 {
			return result, pos - start
		}

		shift += 7
	}
}

// DecodeFixed decodes a value starting at pos, reading at most MaxLen[T]()
// bytes and accumulating directly in T.
//
// Panics if no terminating byte is found within the bound.
func DecodeFixed[T constraints.Unsigned](data []byte, pos int) (T, int) {
	var result T
	var shift uint

	limit := MaxLen[T]()
	for i := 0; i < limit; i++ {
		b := data[pos+i]
		result |= T(b&payloadMask) << shift

		if b&continuation == 0 {
			return result, i + 1
		}

		shift += 7
	}

	panic("leb128: unterminated encoding")
}

// DecodeFixedWide is DecodeFixed with a 128-bit accumulator that is narrowed
// to T once the terminating byte has been read.
//
// For encodings produced for T it returns exactly what DecodeFixed returns.
func DecodeFixedWide[T constraints.Unsigned](data []byte, pos int) (T, int) {
	var acc uint128.Uint128
	var shift uint

	limit := MaxLen[T]()
	for i := 0; i < limit; i++ {
		b := data[pos+i]
		acc = acc.Or(group(b, shift))

		if b&continuation == 0 {
			return T(acc.Lo), i + 1
		}

		shift += 7
	}

	panic("leb128: unterminated encoding")
}

// DecodeWindowed decodes through a window data[pos:pos+k], k <= MaxLen[T](),
// sliced once up front so the loop itself carries no bounds checks.
//
// When the window ends before a terminating byte the input was malformed or
// truncated, and DecodeWindowed panics after the loop.
func DecodeWindowed[T constraints.Unsigned](data []byte, pos int) (T, int) {
	end := min(pos+MaxLen[T](), len(data))
	window := data[pos:end]

	var result T
	var shift uint

	for i, b := range window {
		result |= T(b&payloadMask) << shift

		if b < continuation {
			return result, i + 1
		}

		shift += 7
	}

	panic("leb128: encoding overruns input")
}

// DecodeBranchless decodes with a fixed iteration count of MaxLen[T]() and no
// conditional exit. The continuation bit, as adv = b >> 7, advances the read
// position and the shift; once the terminating byte is reached adv is zero
// and the remaining iterations re-read it, which leaves the result unchanged.
// The terminating byte itself is counted after the loop.
//
// Correct only for well-formed encodings no longer than MaxLen[T]().
func DecodeBranchless[T constraints.Unsigned](data []byte, pos int) (T, int) {
	var result T
	var shift uint

	start := pos
	limit := MaxLen[T]()
	for i := 0; i < limit; i++ {
		b := data[pos]
		result |= T(b&payloadMask) << shift

		adv := b >> 7
		pos += int(adv)
		shift += 7 * uint(adv)
	}

	return result, pos + 1 - start
}
