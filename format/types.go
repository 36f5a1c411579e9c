package format

import "strings"

type (
	WriterStrategy  uint8
	EncoderStrategy uint8
	DecoderStrategy uint8
	Width           uint8
	CompressionType uint8
)

const (
	WriterByteWise  WriterStrategy = 0x1 // WriterByteWise writes one byte per step, branching on overwrite vs append.
	WriterSplitCopy WriterStrategy = 0x2 // WriterSplitCopy copies the overlapping prefix and appends the rest.
	WriterSkewed    WriterStrategy = 0x3 // WriterSkewed appends directly when writing at the end of the buffer.

	EncoderReference EncoderStrategy = 0x1 // EncoderReference is the unbounded one-byte-per-iteration loop.
	EncoderFixed     EncoderStrategy = 0x2 // EncoderFixed is bounded by the width's maximum length and flushes once.
	EncoderCallback  EncoderStrategy = 0x3 // EncoderCallback emits bytes through an injected sink.
	EncoderReserved  EncoderStrategy = 0x4 // EncoderReserved writes into a window reserved ahead of time.

	DecoderReference  DecoderStrategy = 0x1 // DecoderReference is the unbounded read loop.
	DecoderFixed      DecoderStrategy = 0x2 // DecoderFixed is bounded and accumulates in the target width.
	DecoderFixedWide  DecoderStrategy = 0x3 // DecoderFixedWide is bounded and accumulates in 128 bits.
	DecoderWindowed   DecoderStrategy = 0x4 // DecoderWindowed reads through a pre-sliced bounded window.
	DecoderBranchless DecoderStrategy = 0x5 // DecoderBranchless advances using the continuation bit arithmetically.

	WidthU8    Width = 0x1 // WidthU8 is the 8-bit unsigned width.
	WidthU16   Width = 0x2 // WidthU16 is the 16-bit unsigned width.
	WidthU32   Width = 0x3 // WidthU32 is the 32-bit unsigned width.
	WidthU64   Width = 0x4 // WidthU64 is the 64-bit unsigned width.
	WidthU128  Width = 0x5 // WidthU128 is the 128-bit unsigned width.
	WidthUsize Width = 0x6 // WidthUsize is the platform pointer-sized unsigned width.
	WidthI8    Width = 0x7 // WidthI8 is the 8-bit signed width.
	WidthI16   Width = 0x8 // WidthI16 is the 16-bit signed width.
	WidthI32   Width = 0x9 // WidthI32 is the 32-bit signed width.
	WidthI64   Width = 0xA // WidthI64 is the 64-bit signed width.
	WidthI128  Width = 0xB // WidthI128 is the 128-bit signed width.
	WidthIsize Width = 0xC // WidthIsize is the platform pointer-sized signed width.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// WriterStrategies lists every positioned writer strategy.
var WriterStrategies = []WriterStrategy{WriterByteWise, WriterSplitCopy, WriterSkewed}

// EncoderStrategies lists every LEB128 encoder strategy.
var EncoderStrategies = []EncoderStrategy{EncoderReference, EncoderFixed, EncoderCallback, EncoderReserved}

// DecoderStrategies lists every LEB128 decoder strategy.
var DecoderStrategies = []DecoderStrategy{
	DecoderReference, DecoderFixed, DecoderFixedWide, DecoderWindowed, DecoderBranchless,
}

func (s WriterStrategy) String() string {
	switch s {
	case WriterByteWise:
		return "ByteWise"
	case WriterSplitCopy:
		return "SplitCopy"
	case WriterSkewed:
		return "Skewed"
	default:
		return "Unknown"
	}
}

func (s EncoderStrategy) String() string {
	switch s {
	case EncoderReference:
		return "Reference"
	case EncoderFixed:
		return "Fixed"
	case EncoderCallback:
		return "Callback"
	case EncoderReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

func (s DecoderStrategy) String() string {
	switch s {
	case DecoderReference:
		return "Reference"
	case DecoderFixed:
		return "Fixed"
	case DecoderFixedWide:
		return "FixedWide"
	case DecoderWindowed:
		return "Windowed"
	case DecoderBranchless:
		return "Branchless"
	default:
		return "Unknown"
	}
}

// String returns the fixture tag of the width, e.g. "u32" or "isize".
func (w Width) String() string {
	switch w {
	case WidthU8:
		return "u8"
	case WidthU16:
		return "u16"
	case WidthU32:
		return "u32"
	case WidthU64:
		return "u64"
	case WidthU128:
		return "u128"
	case WidthUsize:
		return "usize"
	case WidthI8:
		return "i8"
	case WidthI16:
		return "i16"
	case WidthI32:
		return "i32"
	case WidthI64:
		return "i64"
	case WidthI128:
		return "i128"
	case WidthIsize:
		return "isize"
	default:
		return "unknown"
	}
}

// Signed reports whether the width is one of the signed integer widths.
func (w Width) Signed() bool {
	return w >= WidthI8 && w <= WidthIsize
}

// ParseWidth maps a fixture tag back to its Width.
func ParseWidth(tag string) (Width, bool) {
	for w := WidthU8; w <= WidthIsize; w++ {
		if w.String() == tag {
			return w, true
		}
	}

	return 0, false
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name such as "zstd" to its CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}

	return 0, false
}
