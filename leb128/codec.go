package leb128

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/format"
	"github.com/arloliu/leb128/internal/options"
)

// ErrInvalidStrategy is returned when an encoder or decoder strategy is not recognised.
var ErrInvalidStrategy = errors.New("invalid strategy")

// EncoderConfig holds the strategy selection of an Encoder.
type EncoderConfig struct {
	strategy format.EncoderStrategy
	writer   format.WriterStrategy
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithEncoderStrategy selects the encoding loop. The default is format.EncoderFixed.
func WithEncoderStrategy(strategy format.EncoderStrategy) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch strategy {
		case format.EncoderReference, format.EncoderFixed, format.EncoderCallback, format.EncoderReserved:
			c.strategy = strategy
			return nil
		default:
			return fmt.Errorf("%w: encoder %s", ErrInvalidStrategy, strategy)
		}
	})
}

// WithWriterStrategy selects the positioned writer used by the Fixed and
// Callback strategies. The default is format.WriterSkewed.
//
// Reference always writes byte by byte and Reserved writes through a reserved
// window, so neither consults the writer.
func WithWriterStrategy(strategy format.WriterStrategy) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if _, err := buffer.NewWriter(strategy); err != nil {
			return err
		}
		c.writer = strategy

		return nil
	})
}

var defaultEncoderOptions = []EncoderOption{
	WithEncoderStrategy(format.EncoderFixed),
	WithWriterStrategy(format.WriterSkewed),
}

// Encoder encodes values of one unsigned width with a fixed strategy.
//
// The strategy is resolved once at construction; Encode is a single indirect
// call. An Encoder holds no buffer and is safe to share.
type Encoder[T constraints.Unsigned] struct {
	cfg    EncoderConfig
	encode func(buf *buffer.Buffer, pos int, v T) int
}

// NewEncoder creates an encoder for T.
//
// Parameters:
//   - opts: WithEncoderStrategy, WithWriterStrategy
//
// Returns:
//   - *Encoder[T]: Configured encoder
//   - error: ErrInvalidStrategy or buffer.ErrInvalidWriterStrategy
//
// Example:
//
//	enc, _ := leb128.NewEncoder[uint32](leb128.WithEncoderStrategy(format.EncoderReserved))
//	buf := buffer.NewDefault()
//	n := enc.Encode(buf, 0, 300) // buf.B == {0xAC, 0x02}, n == 2
func NewEncoder[T constraints.Unsigned](opts ...EncoderOption) (*Encoder[T], error) {
	cfg, err := options.Build(&EncoderConfig{}, defaultEncoderOptions, opts...)
	if err != nil {
		return nil, err
	}

	w := buffer.MustWriter(cfg.writer)

	e := &Encoder[T]{cfg: *cfg}
	switch cfg.strategy {
	case format.EncoderReference:
		e.encode = EncodeReference[T]
	case format.EncoderFixed:
		e.encode = func(buf *buffer.Buffer, pos int, v T) int {
			return EncodeFixed(buf, pos, v, w)
		}
	case format.EncoderCallback:
		e.encode = func(buf *buffer.Buffer, pos int, v T) int {
			return EncodeWithSink(buf, pos, v, w)
		}
	case format.EncoderReserved:
		e.encode = EncodeReserved[T]
	}

	return e, nil
}

// Encode writes v at pos and returns the number of bytes written.
func (e *Encoder[T]) Encode(buf *buffer.Buffer, pos int, v T) int {
	return e.encode(buf, pos, v)
}

// Append encodes v at the end of buf.
func (e *Encoder[T]) Append(buf *buffer.Buffer, v T) int {
	return e.encode(buf, buf.Len(), v)
}

// Strategy returns the configured encoding strategy.
func (e *Encoder[T]) Strategy() format.EncoderStrategy {
	return e.cfg.strategy
}

// WriterStrategy returns the configured positioned writer strategy.
func (e *Encoder[T]) WriterStrategy() format.WriterStrategy {
	return e.cfg.writer
}

// DecoderConfig holds the strategy selection of a Decoder.
type DecoderConfig struct {
	strategy format.DecoderStrategy
}

// DecoderOption represents a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderStrategy selects the decoding loop. The default is format.DecoderFixed.
func WithDecoderStrategy(strategy format.DecoderStrategy) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		switch strategy {
		case format.DecoderReference, format.DecoderFixed, format.DecoderFixedWide,
			format.DecoderWindowed, format.DecoderBranchless:
			c.strategy = strategy
			return nil
		default:
			return fmt.Errorf("%w: decoder %s", ErrInvalidStrategy, strategy)
		}
	})
}

var defaultDecoderOptions = []DecoderOption{
	WithDecoderStrategy(format.DecoderFixed),
}

// Decoder decodes values of one unsigned width with a fixed strategy.
type Decoder[T constraints.Unsigned] struct {
	cfg    DecoderConfig
	decode func(data []byte, pos int) (T, int)
}

// NewDecoder creates a decoder for T.
//
// Parameters:
//   - opts: WithDecoderStrategy
//
// Returns:
//   - *Decoder[T]: Configured decoder
//   - error: ErrInvalidStrategy for unknown strategies
func NewDecoder[T constraints.Unsigned](opts ...DecoderOption) (*Decoder[T], error) {
	cfg, err := options.Build(&DecoderConfig{}, defaultDecoderOptions, opts...)
	if err != nil {
		return nil, err
	}

	d := &Decoder[T]{cfg: *cfg}
	switch cfg.strategy {
	case format.DecoderReference:
		d.decode = DecodeReference[T]
	case format.DecoderFixed:
		d.decode = DecodeFixed[T]
	case format.DecoderFixedWide:
		d.decode = DecodeFixedWide[T]
	case format.DecoderWindowed:
		d.decode = DecodeWindowed[T]
	case format.DecoderBranchless:
		d.decode = DecodeBranchless[T]
	}

	return d, nil
}

// Decode reads the value starting at pos and returns it with the number of
// bytes consumed.
func (d *Decoder[T]) Decode(data []byte, pos int) (T, int) {
	return d.decode(data, pos)
}

// Strategy returns the configured decoding strategy.
func (d *Decoder[T]) Strategy() format.DecoderStrategy {
	return d.cfg.strategy
}

// Uint128Encoder is Encoder for 128-bit values.
type Uint128Encoder struct {
	cfg    EncoderConfig
	encode func(buf *buffer.Buffer, pos int, v uint128.Uint128) int
}

// NewUint128Encoder creates a 128-bit encoder. Options match NewEncoder.
func NewUint128Encoder(opts ...EncoderOption) (*Uint128Encoder, error) {
	cfg, err := options.Build(&EncoderConfig{}, defaultEncoderOptions, opts...)
	if err != nil {
		return nil, err
	}

	w := buffer.MustWriter(cfg.writer)

	e := &Uint128Encoder{cfg: *cfg}
	switch cfg.strategy {
	case format.EncoderReference:
		e.encode = EncodeUint128Reference
	case format.EncoderFixed:
		e.encode = func(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
			return EncodeUint128Fixed(buf, pos, v, w)
		}
	case format.EncoderCallback:
		e.encode = func(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
			return EncodeUint128WithSink(buf, pos, v, w)
		}
	case format.EncoderReserved:
		e.encode = EncodeUint128Reserved
	}

	return e, nil
}

// Encode writes v at pos and returns the number of bytes written.
func (e *Uint128Encoder) Encode(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
	return e.encode(buf, pos, v)
}

// Strategy returns the configured encoding strategy.
func (e *Uint128Encoder) Strategy() format.EncoderStrategy {
	return e.cfg.strategy
}

// Uint128Decoder is Decoder for 128-bit values.
//
// DecoderFixed and DecoderFixedWide are the same loop at this width.
type Uint128Decoder struct {
	cfg    DecoderConfig
	decode func(data []byte, pos int) (uint128.Uint128, int)
}

// NewUint128Decoder creates a 128-bit decoder. Options match NewDecoder.
func NewUint128Decoder(opts ...DecoderOption) (*Uint128Decoder, error) {
	cfg, err := options.Build(&DecoderConfig{}, defaultDecoderOptions, opts...)
	if err != nil {
		return nil, err
	}

	d := &Uint128Decoder{cfg: *cfg}
	switch cfg.strategy {
	case format.DecoderReference:
		d.decode = DecodeUint128Reference
	case format.DecoderFixed, format.DecoderFixedWide:
		d.decode = DecodeUint128Fixed
	case format.DecoderWindowed:
		d.decode = DecodeUint128Windowed
	case format.DecoderBranchless:
		d.decode = DecodeUint128Branchless
	}

	return d, nil
}

// Decode reads the value starting at pos and returns it with the number of
// bytes consumed.
func (d *Uint128Decoder) Decode(data []byte, pos int) (uint128.Uint128, int) {
	return d.decode(data, pos)
}

// Strategy returns the configured decoding strategy.
func (d *Uint128Decoder) Strategy() format.DecoderStrategy {
	return d.cfg.strategy
}
