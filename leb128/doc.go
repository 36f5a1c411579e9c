// Package leb128 encodes and decodes unsigned integers in the LEB128 variable-length format.
//
// Each encoded byte carries seven bits of the value, least significant group
// first. The high bit (0x80) is set on every byte except the last. An unsigned
// integer of N bits therefore needs at most ceil(N/7) bytes:
//
//	uint8   2 bytes
//	uint16  3 bytes
//	uint32  5 bytes
//	uint64 10 bytes
//	uint128 19 bytes
//
// # Positioned Writes
//
// Every encoder writes into a *buffer.Buffer at an explicit position. Bytes that
// fall below the current length overwrite existing content, the rest are
// appended. Writing at a position past the current length panics. Encoding the
// same value twice at the same position leaves the buffer unchanged, which lets
// callers patch length prefixes in place.
//
// # Strategies
//
// Several encoders and decoders produce identical bytes and values but differ in
// how they reach them:
//
//   - EncodeReference: one positioned byte write per group
//   - EncodeFixed: groups staged in a stack array, one flush through a buffer.Writer
//   - EncodeCallback / EncodeWithSink: groups pushed to a per-byte callback
//   - EncodeReserved: capacity reserved up front, groups stored through a bounds-known window
//
//   - DecodeReference: unbounded loop until the terminator
//   - DecodeFixed: loop bounded by the width's maximum length
//   - DecodeFixedWide: as DecodeFixed but accumulating into 128 bits
//   - DecodeWindowed: iterates a pre-sliced window of at most the maximum length
//   - DecodeBranchless: advances position and shift arithmetically from the continuation bit
//
// Encoder and Decoder bind a strategy once through functional options:
//
//	enc, err := leb128.NewEncoder[uint64](
//	    leb128.WithEncoderStrategy(format.EncoderFixed),
//	    leb128.WithWriterStrategy(format.WriterSkewed),
//	)
//	if err != nil {
//	    return err
//	}
//
//	buf := buffer.NewDefault()
//	enc.Append(buf, 300) // buf.B == {0xAC, 0x02}
//
//	dec, _ := leb128.NewDecoder[uint64]()
//	v, n := dec.Decode(buf.B, 0) // v == 300, n == 2
//
// # 128-bit Values
//
// Values wider than 64 bits use lukechampine.com/uint128 and the *Uint128
// function family. The encoding is identical: the low 64 bits of a uint128
// encode to the same bytes as the equivalent uint64.
//
// # Malformed Input
//
// Decoders trust their input. An encoding that runs off the end of the data or
// exceeds the width's maximum length panics instead of returning an error.
package leb128
