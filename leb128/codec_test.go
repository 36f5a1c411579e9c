package leb128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/format"
)

func TestNewEncoder_Defaults(t *testing.T) {
	enc, err := NewEncoder[uint32]()

	require.NoError(t, err)
	require.Equal(t, format.EncoderFixed, enc.Strategy())
	require.Equal(t, format.WriterSkewed, enc.WriterStrategy())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder[uint32](WithEncoderStrategy(0))
	require.ErrorIs(t, err, ErrInvalidStrategy)

	_, err = NewEncoder[uint32](WithEncoderStrategy(99))
	require.ErrorIs(t, err, ErrInvalidStrategy)

	_, err = NewEncoder[uint32](WithWriterStrategy(0))
	require.ErrorIs(t, err, buffer.ErrInvalidWriterStrategy)

	_, err = NewUint128Encoder(WithEncoderStrategy(42))
	require.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestNewDecoder_InvalidOptions(t *testing.T) {
	_, err := NewDecoder[uint64](WithDecoderStrategy(0))
	require.ErrorIs(t, err, ErrInvalidStrategy)

	_, err = NewUint128Decoder(WithDecoderStrategy(77))
	require.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestEncoderDecoder_AllStrategies(t *testing.T) {
	values := testValues[uint64]()

	for _, es := range format.EncoderStrategies {
		for _, ws := range format.WriterStrategies {
			enc, err := NewEncoder[uint64](WithEncoderStrategy(es), WithWriterStrategy(ws))
			require.NoError(t, err)
			require.Equal(t, es, enc.Strategy())
			require.Equal(t, ws, enc.WriterStrategy())

			buf := buffer.NewDefault()
			for _, v := range values {
				enc.Append(buf, v)
			}

			for _, ds := range format.DecoderStrategies {
				dec, err := NewDecoder[uint64](WithDecoderStrategy(ds))
				require.NoError(t, err)
				require.Equal(t, ds, dec.Strategy())

				pos := 0
				for _, want := range values {
					got, n := dec.Decode(buf.B, pos)
					require.Equal(t, want, got, "%s/%s -> %s", es, ws, ds)
					pos += n
				}
				require.Equal(t, buf.Len(), pos)
			}
		}
	}
}

func TestEncoder_EncodeAtPosition(t *testing.T) {
	enc, err := NewEncoder[uint16](WithEncoderStrategy(format.EncoderReserved))
	require.NoError(t, err)

	buf := buffer.Wrap([]byte{0x00, 0x00, 0x00, 0x7F})
	n := enc.Encode(buf, 1, 300)

	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x00, 0xAC, 0x02, 0x7F}, buf.B)
}

func TestUint128EncoderDecoder_AllStrategies(t *testing.T) {
	values := []uint128.Uint128{
		uint128.Zero,
		uint128.From64(300),
		uint128.From64(math.MaxUint64),
		uint128.New(0, 1),
		uint128.New(math.MaxUint64, math.MaxUint64),
	}

	for _, es := range format.EncoderStrategies {
		enc, err := NewUint128Encoder(WithEncoderStrategy(es))
		require.NoError(t, err)
		require.Equal(t, es, enc.Strategy())

		buf := buffer.NewDefault()
		for _, v := range values {
			enc.Encode(buf, buf.Len(), v)
		}

		for _, ds := range format.DecoderStrategies {
			dec, err := NewUint128Decoder(WithDecoderStrategy(ds))
			require.NoError(t, err)
			require.Equal(t, ds, dec.Strategy())

			pos := 0
			for _, want := range values {
				got, n := dec.Decode(buf.B, pos)
				require.True(t, want.Equals(got), "%s -> %s: want %s got %s", es, ds, want, got)
				pos += n
			}
			require.Equal(t, buf.Len(), pos)
		}
	}
}

func TestEncoder_SharedAcrossWidths(t *testing.T) {
	enc8, err := NewEncoder[uint8]()
	require.NoError(t, err)
	enc32, err := NewEncoder[uint32]()
	require.NoError(t, err)

	buf := buffer.NewDefault()
	enc8.Append(buf, math.MaxUint8)
	enc32.Append(buf, math.MaxUint32)

	require.Equal(t, []byte{0xFF, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, buf.B)
}
