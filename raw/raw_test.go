package raw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/endian"
	"github.com/arloliu/leb128/format"
)

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Size[uint8]())
	assert.Equal(t, 2, Size[int16]())
	assert.Equal(t, 4, Size[uint32]())
	assert.Equal(t, 8, Size[int64]())
	assert.Equal(t, 8, Size[uint64]())
}

func TestPut_LittleEndian(t *testing.T) {
	for _, strategy := range format.WriterStrategies {
		t.Run(strategy.String(), func(t *testing.T) {
			w := NewLittleEndianWriter(buffer.MustWriter(strategy))
			buf := buffer.New(0)

			pos := 0
			pos += Put(w, buf, pos, uint8(0xAB))
			pos += Put(w, buf, pos, uint16(0x0102))
			pos += Put(w, buf, pos, uint32(0x01020304))
			pos += Put(w, buf, pos, int8(-1))
			pos += Put(w, buf, pos, int16(-2))

			require.Equal(t, 1+2+4+1+2, pos)
			require.Equal(t, []byte{
				0xAB,
				0x02, 0x01,
				0x04, 0x03, 0x02, 0x01,
				0xFF,
				0xFE, 0xFF,
			}, buf.B)
		})
	}
}

func TestPut_BigEndian(t *testing.T) {
	w := NewWriter(endian.GetBigEndianEngine(), buffer.Skewed{})
	buf := buffer.New(0)

	n := Put(w, buf, 0, uint32(0x01020304))

	require.Equal(t, 4, n)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf.B)
	require.Equal(t, endian.GetBigEndianEngine(), w.Engine())
}

func TestPut_Overwrite(t *testing.T) {
	w := NewLittleEndianWriter(buffer.SplitCopy{})
	buf := buffer.Wrap([]byte{0, 0, 0, 0, 0, 0})

	n := Put(w, buf, 2, uint64(math.MaxUint64))

	require.Equal(t, 8, n)
	require.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, buf.B)
}

func TestPutUint128(t *testing.T) {
	v := uint128.New(0x0807060504030201, 0x100F0E0D0C0B0A09)

	t.Run("little endian", func(t *testing.T) {
		buf := buffer.New(0)
		n := NewLittleEndianWriter(buffer.Skewed{}).PutUint128(buf, 0, v)

		require.Equal(t, Uint128Size, n)
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, buf.B)
	})

	t.Run("big endian", func(t *testing.T) {
		buf := buffer.New(0)
		n := NewWriter(endian.GetBigEndianEngine(), buffer.Skewed{}).PutUint128(buf, 0, v)

		require.Equal(t, Uint128Size, n)
		require.Equal(t, []byte{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, buf.B)
	})
}

func TestPutShifted_MatchesPut(t *testing.T) {
	w := NewLittleEndianWriter(buffer.SplitCopy{})

	check := func(t *testing.T, bulk, shifted *buffer.Buffer) {
		t.Helper()
		assert.Equal(t, bulk.B, shifted.B)
	}

	t.Run("uint16", func(t *testing.T) {
		bulk, shifted := buffer.New(0), buffer.New(0)
		Put(w, bulk, 0, uint16(0xBEEF))
		PutShifted(shifted, 0, uint16(0xBEEF))
		check(t, bulk, shifted)
	})

	t.Run("int32", func(t *testing.T) {
		bulk, shifted := buffer.New(0), buffer.New(0)
		Put(w, bulk, 0, int32(math.MinInt32))
		PutShifted(shifted, 0, int32(math.MinInt32))
		check(t, bulk, shifted)
	})

	t.Run("uint64 overwrite", func(t *testing.T) {
		bulk := buffer.Wrap([]byte{9, 9, 9})
		shifted := buffer.Wrap([]byte{9, 9, 9})
		Put(w, bulk, 1, uint64(0x0102030405060708))
		PutShifted(shifted, 1, uint64(0x0102030405060708))
		check(t, bulk, shifted)
	})

	t.Run("uint", func(t *testing.T) {
		bulk, shifted := buffer.New(0), buffer.New(0)
		n1 := Put(w, bulk, 0, uint(12345))
		n2 := PutShifted(shifted, 0, uint(12345))
		assert.Equal(t, n1, n2)
		check(t, bulk, shifted)
	})

	t.Run("uint128", func(t *testing.T) {
		v := uint128.New(0xDEADBEEF, 0xCAFEBABE)
		bulk, shifted := buffer.New(0), buffer.New(0)
		w.PutUint128(bulk, 0, v)
		PutShiftedUint128(shifted, 0, v)
		check(t, bulk, shifted)
	})
}

func BenchmarkPut(b *testing.B) {
	values := make([]uint32, 1024)
	for i := range values {
		values[i] = uint32(i) * 2654435761 //nolint:gosec
	}

	for _, strategy := range format.WriterStrategies {
		w := NewLittleEndianWriter(buffer.MustWriter(strategy))
		b.Run(strategy.String(), func(b *testing.B) {
			buf := buffer.New(4 * len(values))
			for b.Loop() {
				buf.Reset()
				pos := 0
				for _, v := range values {
					pos += Put(w, buf, pos, v)
				}
			}
		})
	}

	b.Run("Shifted", func(b *testing.B) {
		buf := buffer.New(4 * len(values))
		for b.Loop() {
			buf.Reset()
			pos := 0
			for _, v := range values {
				pos += PutShifted(buf, pos, v)
			}
		}
	})
}
