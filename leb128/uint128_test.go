package leb128

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/format"
)

func uint128Encoders() map[string]encodeFunc128 {
	m := map[string]encodeFunc128{
		"Reference": EncodeUint128Reference,
		"Reserved":  EncodeUint128Reserved,
	}

	for _, ws := range format.WriterStrategies {
		w := buffer.MustWriter(ws)
		m["Fixed/"+ws.String()] = func(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
			return EncodeUint128Fixed(buf, pos, v, w)
		}
		m["Callback/"+ws.String()] = func(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
			return EncodeUint128WithSink(buf, pos, v, w)
		}
	}

	return m
}

type (
	encodeFunc128 func(buf *buffer.Buffer, pos int, v uint128.Uint128) int
	decodeFunc128 func(data []byte, pos int) (uint128.Uint128, int)
)

func uint128Decoders() map[string]decodeFunc128 {
	return map[string]decodeFunc128{
		"Reference":  DecodeUint128Reference,
		"Fixed":      DecodeUint128Fixed,
		"Windowed":   DecodeUint128Windowed,
		"Branchless": DecodeUint128Branchless,
	}
}

func uint128Values() []uint128.Uint128 {
	values := []uint128.Uint128{
		uint128.Zero,
		uint128.From64(1),
		uint128.From64(127),
		uint128.From64(128),
		uint128.From64(math.MaxUint64),
		uint128.New(0, 1),
		uint128.New(0, 1<<63),
		uint128.New(math.MaxUint64, math.MaxUint64),
	}

	for k := uint(7); k < 128; k += 7 {
		p := uint128.From64(1).Lsh(k)
		values = append(values, p, p.Sub64(1))
	}

	rng := rand.New(rand.NewSource(7))
	for range 100 {
		values = append(values, uint128.New(rng.Uint64(), rng.Uint64()>>uint(rng.Intn(64))))
	}

	return values
}

func TestSizeUint128(t *testing.T) {
	require.Equal(t, 1, SizeUint128(uint128.Zero))
	require.Equal(t, 2, SizeUint128(uint128.From64(128)))
	require.Equal(t, 10, SizeUint128(uint128.From64(math.MaxUint64)))
	require.Equal(t, 10, SizeUint128(uint128.New(0, 1)))
	require.Equal(t, 19, SizeUint128(uint128.New(math.MaxUint64, math.MaxUint64)))
	require.Equal(t, 19, SizeUint128(uint128.New(0, 1<<63)))
}

func TestUint128_RoundTrip(t *testing.T) {
	encs := uint128Encoders()
	decs := uint128Decoders()

	for _, v := range uint128Values() {
		var reference []byte

		for encName, enc := range encs {
			buf := buffer.New(0)
			n := enc(buf, 0, v)
			require.Equal(t, SizeUint128(v), n, "%s(%s)", encName, v)
			require.Len(t, buf.B, n)

			if reference == nil {
				reference = buf.B
			}
			require.Equal(t, reference, buf.B, "%s(%s) disagrees", encName, v)

			for decName, dec := range decs {
				dv, read := dec(buf.B, 0)
				require.True(t, v.Equals(dv), "%s->%s(%s) = %s", encName, decName, v, dv)
				require.Equal(t, n, read)
			}
		}
	}
}

func TestUint128_MatchesUint64Encoding(t *testing.T) {
	for _, v := range testValues[uint64]() {
		buf := buffer.New(0)
		EncodeUint128Fixed(buf, 0, uint128.From64(v), buffer.Skewed{})

		require.Equal(t, binary.AppendUvarint(nil, v), buf.B)
	}
}

func TestUint128_MaxValue(t *testing.T) {
	maxV := uint128.New(math.MaxUint64, math.MaxUint64)

	buf := buffer.New(0)
	n := EncodeUint128Reserved(buf, 0, maxV)

	require.Equal(t, MaxLen128, n)
	for i := 0; i < n-1; i++ {
		require.Equal(t, byte(0xFF), buf.B[i])
	}
	require.Equal(t, byte(0x03), buf.B[n-1])
}

func TestUint128_Overwrite(t *testing.T) {
	v := uint128.New(0, 1)

	for name, enc := range uint128Encoders() {
		t.Run(name, func(t *testing.T) {
			appended := buffer.New(0)
			enc(appended, 0, v)

			overwritten := buffer.Wrap(append([]byte{}, appended.B...))
			enc(overwritten, 0, v)

			require.Equal(t, appended.B, overwritten.B)
		})
	}
}

func TestUint128Callback(t *testing.T) {
	var got []byte

	n := EncodeUint128Callback(uint128.From64(300), func(b byte) { got = append(got, b) })

	require.Equal(t, 2, n)
	require.Equal(t, []byte{0xAC, 0x02}, got)
}

func TestUint128_Truncated(t *testing.T) {
	truncated := []byte{0x80}

	require.Panics(t, func() { DecodeUint128Reference(truncated, 0) })
	require.Panics(t, func() { DecodeUint128Fixed(truncated, 0) })
	require.PanicsWithValue(t, "leb128: encoding overruns input", func() {
		DecodeUint128Windowed(truncated, 0)
	})
}
