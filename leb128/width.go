package leb128

import (
	"math/bits"
	"unsafe"

	"github.com/dennwc/varint"
	"golang.org/x/exp/constraints"
)

// Maximum encoded lengths, ceil(bits/7), per unsigned width.
const (
	MaxLen8    = varint.MaxLen8
	MaxLen16   = varint.MaxLen16
	MaxLen32   = varint.MaxLen32
	MaxLen64   = varint.MaxLen64
	MaxLen128  = 19
	MaxLenUint = (bits.UintSize + 6) / 7
)

// maxLenBySize maps sizeof(T) in bytes to the maximum encoded length.
var maxLenBySize = [17]int{
	1:  MaxLen8,
	2:  MaxLen16,
	4:  MaxLen32,
	8:  MaxLen64,
	16: MaxLen128,
}

// MaxLen returns the maximum number of bytes an encoded T can occupy.
func MaxLen[T constraints.Unsigned]() int {
	var zero T
	return maxLenBySize[unsafe.Sizeof(zero)]
}

// Size returns the number of bytes v occupies once encoded,
// max(1, ceil(bitlen(v)/7)).
func Size[T constraints.Unsigned](v T) int {
	n := (bits.Len64(uint64(v)) + 6) / 7
	if n == 0 {
		return 1
	}

	return n
}
