package lesqlite

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/format"
)

func TestEncode_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"below C1", 184, []byte{0xB8}},
		{"C1", 185, []byte{185, 0x00}},
		{"C1 plus 256", 185 + 256, []byte{186, 0x00}},
		{"largest two byte", MaxTwoByte, []byte{248, 0xFF}},
		{"first tagged", MaxTwoByte + 1, []byte{249, 0xB9, 0x40}},
		{"largest 16 bit", math.MaxUint16, []byte{249, 0xFF, 0xFF}},
		{"three payload bytes", 1 << 16, []byte{250, 0x00, 0x00, 0x01}},
		{"largest 32 bit", math.MaxUint32, []byte{251, 0xFF, 0xFF, 0xFF, 0xFF}},
		{
			"largest 64 bit", math.MaxUint64,
			[]byte{255, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, ws := range format.WriterStrategies {
				buf := buffer.New(0)
				n := Encode(buf, 0, tt.value, buffer.MustWriter(ws))

				require.Equal(t, tt.expected, buf.B, "writer %s", ws)
				require.Equal(t, len(tt.expected), n)
				require.Equal(t, n, Size(tt.value))
			}
		})
	}
}

func TestMaxTwoByte(t *testing.T) {
	require.Equal(t, 16568, MaxTwoByte)
}

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 184, 185, 186, 440, 441, MaxTwoByte, MaxTwoByte + 1, math.MaxUint64}
	for k := 8; k < 64; k += 8 {
		values = append(values, 1<<k-1, 1<<k)
	}

	rng := rand.New(rand.NewSource(42))
	for range 500 {
		values = append(values, rng.Uint64()>>uint(rng.Intn(64)))
	}

	buf := buffer.NewDefault()
	for _, v := range values {
		Encode(buf, buf.Len(), v, buffer.Skewed{})
	}

	pos := 0
	for _, want := range values {
		got, n := Decode(buf.B, pos)
		require.Equal(t, want, got)
		require.Equal(t, Size(want), n)
		pos += n
	}
	require.Equal(t, buf.Len(), pos)
}

func TestEncode_Overwrite(t *testing.T) {
	buf := buffer.Wrap([]byte{0xAA, 0xAA, 0xAA, 0xAA})

	n := Encode(buf, 1, 70000, buffer.SplitCopy{})

	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xAA, 250, 0x70, 0x11, 0x01}, buf.B)
}

func TestEncode_PositionBeyondLength(t *testing.T) {
	buf := buffer.Wrap([]byte{0x01})

	require.Panics(t, func() { Encode(buf, 2, 7, buffer.Skewed{}) })
	require.Panics(t, func() { Encode(buf, 3, 70000, buffer.ByteWise{}) })
}

func TestDecode_Truncated(t *testing.T) {
	require.Panics(t, func() { Decode([]byte{200}, 0) })
	require.Panics(t, func() { Decode([]byte{251, 0x01, 0x02}, 0) })
}

func TestDecode_AtOffset(t *testing.T) {
	data := []byte{0xFF, 185, 0x02, 0x05}

	v, n := Decode(data, 1)
	require.Equal(t, uint64(187), v)
	require.Equal(t, 2, n)

	v, n = Decode(data, 3)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 1, n)
}

func TestDecode_EveryPayloadLength(t *testing.T) {
	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d bytes", n), func(t *testing.T) {
			// Highest value with an n-byte payload, followed by a trailing byte
			// that must not be read.
			want := uint64(math.MaxUint64) >> uint(64-8*n)
			data := []byte{byte(C2 + n - 2)}
			for i := 0; i < n; i++ {
				data = append(data, byte(want>>(8*i)))
			}
			data = append(data, 0x7E)

			v, consumed := Decode(data, 0)
			require.Equal(t, want, v)
			require.Equal(t, 1+n, consumed)
			require.Equal(t, 1+n, Size(v))
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint64, 1024)
	for i := range values {
		values[i] = rng.Uint64() >> uint(rng.Intn(64))
	}

	buf := buffer.New(len(values) * MaxLen)

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		for _, v := range values {
			Encode(buf, buf.Len(), v, buffer.Skewed{})
		}
	}
}
