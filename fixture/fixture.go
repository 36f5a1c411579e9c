// Package fixture loads integer test vectors from text files.
//
// Each non-blank line holds a type tag and a hexadecimal value separated by a
// single space:
//
//	u32 12c
//	i8 -80
//	u128 ffffffffffffffffffffffffffffffff
//
// Tags are u8, u16, u32, u64, u128, usize, i8, i16, i32, i64, i128 and isize.
// Values carry no 0x prefix. Signed values may start with '-' and must fit the
// signed range of their width. Lines starting with '#' are comments.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/format"
)

var (
	// ErrUnknownTag is returned for a line whose type tag is not recognised.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrMalformedLine is returned for a line that is not "<tag> <hex>" or
	// whose value does not fit its width.
	ErrMalformedLine = errors.New("malformed fixture line")
)

// Value is one fixture entry.
//
// Bits holds the value as an unsigned bit pattern of the entry's width.
// Signed values are stored in two's complement, truncated to the width.
type Value struct {
	Width format.Width
	Bits  uint128.Uint128
}

// Set is the content of one fixture file.
type Set struct {
	Name   string
	Values []Value
}

// Load reads the fixture file at path. The set is named after the file.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &Set{Name: name, Values: values}, nil
}

// Parse reads fixture lines from r.
//
// Returns:
//   - []Value: Entries in file order
//   - error: ErrUnknownTag or ErrMalformedLine wrapped with the 1-based line
//     number, or the reader's error
func Parse(r io.Reader) ([]Value, error) {
	var values []Value

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	return values, nil
}

func parseLine(line string) (Value, error) {
	tag, hex, ok := strings.Cut(line, " ")
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	width, ok := format.ParseWidth(tag)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}

	b, err := parseBits(width, hex)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s %q: %w", ErrMalformedLine, tag, hex, err)
	}

	return Value{Width: width, Bits: b}, nil
}

// BitSize returns the number of bits of a width.
func BitSize(w format.Width) int {
	switch w {
	case format.WidthU8, format.WidthI8:
		return 8
	case format.WidthU16, format.WidthI16:
		return 16
	case format.WidthU32, format.WidthI32:
		return 32
	case format.WidthU64, format.WidthI64:
		return 64
	case format.WidthU128, format.WidthI128:
		return 128
	case format.WidthUsize, format.WidthIsize:
		return bits.UintSize
	default:
		return 0
	}
}

func parseBits(w format.Width, hex string) (uint128.Uint128, error) {
	size := BitSize(w)

	if size == 128 {
		return parse128(hex, w.Signed())
	}

	if w.Signed() {
		n, err := strconv.ParseInt(hex, 16, size)
		if err != nil {
			return uint128.Zero, err
		}

		return uint128.From64(uint64(n) & mask(size)), nil
	}

	n, err := strconv.ParseUint(hex, 16, size)
	if err != nil {
		return uint128.Zero, err
	}

	return uint128.From64(n), nil
}

func parse128(hex string, signed bool) (uint128.Uint128, error) {
	neg := false
	switch {
	case strings.HasPrefix(hex, "-"):
		if !signed {
			return uint128.Zero, strconv.ErrSyntax
		}
		neg = true
		hex = hex[1:]
	case strings.HasPrefix(hex, "+"):
		hex = hex[1:]
	}

	if hex == "" {
		return uint128.Zero, strconv.ErrSyntax
	}

	hex = strings.TrimLeft(hex, "0")
	if len(hex) > 32 {
		return uint128.Zero, strconv.ErrRange
	}

	split := max(len(hex)-16, 0)

	var hi, lo uint64
	var err error
	if split > 0 {
		if hi, err = strconv.ParseUint(hex[:split], 16, 64); err != nil {
			return uint128.Zero, err
		}
	}
	if split < len(hex) {
		if lo, err = strconv.ParseUint(hex[split:], 16, 64); err != nil {
			return uint128.Zero, err
		}
	}

	mag := uint128.New(lo, hi)
	if !signed {
		return mag, nil
	}

	// The signed range is [-2^127, 2^127-1].
	limit := uint128.New(0, 1<<63)
	if neg {
		if mag.Cmp(limit) > 0 {
			return uint128.Zero, strconv.ErrRange
		}

		return mag.Xor(uint128.Max).AddWrap64(1), nil
	}

	if mag.Cmp(limit) >= 0 {
		return uint128.Zero, strconv.ErrRange
	}

	return mag, nil
}

func mask(size int) uint64 {
	return ^uint64(0) >> (64 - uint(size))
}

// Widths returns the widths present in values, in first-seen order.
func Widths(values []Value) []format.Width {
	var seen [format.WidthIsize + 1]bool
	var widths []format.Width

	for _, v := range values {
		if !seen[v.Width] {
			seen[v.Width] = true
			widths = append(widths, v.Width)
		}
	}

	return widths
}

// Count returns the number of values of width w.
func Count(values []Value, w format.Width) int {
	n := 0
	for _, v := range values {
		if v.Width == w {
			n++
		}
	}

	return n
}

// Select returns the low bits of every value of width w converted to T.
//
// T must be at least as wide as w; signed widths convert to the matching
// signed type through their two's complement pattern.
func Select[T constraints.Integer](values []Value, w format.Width) []T {
	out := make([]T, 0, Count(values, w))
	for _, v := range values {
		if v.Width == w {
			out = append(out, T(v.Bits.Lo))
		}
	}

	return out
}

// Uint8s returns the u8 entries of values.
func Uint8s(values []Value) []uint8 { return Select[uint8](values, format.WidthU8) }

// Uint16s returns the u16 entries of values.
func Uint16s(values []Value) []uint16 { return Select[uint16](values, format.WidthU16) }

// Uint32s returns the u32 entries of values.
func Uint32s(values []Value) []uint32 { return Select[uint32](values, format.WidthU32) }

// Uint64s returns the u64 entries of values.
func Uint64s(values []Value) []uint64 { return Select[uint64](values, format.WidthU64) }

// Uints returns the usize entries of values.
func Uints(values []Value) []uint { return Select[uint](values, format.WidthUsize) }

// Uint128s returns the u128 entries of values.
func Uint128s(values []Value) []uint128.Uint128 {
	out := make([]uint128.Uint128, 0, Count(values, format.WidthU128))
	for _, v := range values {
		if v.Width == format.WidthU128 {
			out = append(out, v.Bits)
		}
	}

	return out
}
