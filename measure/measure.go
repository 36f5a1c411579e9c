// Package measure runs fixture data through every codec strategy and reports
// encoded sizes.
//
// For each fixture set and each width present in it, a Runner:
//
//   - writes the values as raw little-endian integers
//   - encodes them as a LEB128 stream with every encoder and writer strategy and
//     checks that all streams hash to the same xxHash64 digest
//   - decodes the stream with every decoder strategy and compares the values
//   - encodes them with lesqlite (widths up to 64 bits) and group varint (u32)
//   - compresses the raw and LEB128 streams with the configured codec
//
// Signed widths only get the raw columns: the varint codecs are unsigned.
package measure

import (
	"errors"
	"fmt"

	"github.com/dgryski/go-groupvarint"
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/compress"
	"github.com/arloliu/leb128/fixture"
	"github.com/arloliu/leb128/format"
	"github.com/arloliu/leb128/internal/hash"
	"github.com/arloliu/leb128/internal/options"
	"github.com/arloliu/leb128/internal/pool"
	"github.com/arloliu/leb128/leb128"
	"github.com/arloliu/leb128/lesqlite"
	"github.com/arloliu/leb128/raw"
)

var (
	// ErrStrategyMismatch is returned when two encoder strategies disagree on a stream.
	ErrStrategyMismatch = errors.New("encoder strategies disagree")

	// ErrDecodeMismatch is returned when a decoder does not read back the encoded values.
	ErrDecodeMismatch = errors.New("decoded value differs from input")
)

// groupSize is the largest group varint block: one selector byte and four
// four-byte values.
const groupSize = 17

// Runner measures fixture sets.
type Runner struct {
	cfg Config
	raw *raw.Writer
}

// NewRunner creates a Runner.
//
// Parameters:
//   - opts: WithWriterStrategies, WithCompression, WithVerify
//
// Returns:
//   - *Runner: Configured runner
//   - error: Invalid writer strategy or compression type
func NewRunner(opts ...Option) (*Runner, error) {
	cfg, err := options.Build(&Config{}, defaultOptions, opts...)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg: *cfg,
		raw: raw.NewLittleEndianWriter(buffer.Skewed{}),
	}, nil
}

// Config returns a description of the runner's settings.
func (r *Runner) Config() string {
	return r.cfg.String()
}

// Run measures every set and returns one row per set and width.
func (r *Runner) Run(sets ...*fixture.Set) (*Report, error) {
	report := &Report{Compression: r.cfg.compression}

	for _, set := range sets {
		for _, w := range fixture.Widths(set.Values) {
			row, err := r.measureWidth(set.Values, w)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", set.Name, w, err)
			}
			row.Set = set.Name
			report.Rows = append(report.Rows, row)
		}
	}

	return report, nil
}

func (r *Runner) measureWidth(values []fixture.Value, w format.Width) (Row, error) {
	switch w {
	case format.WidthU8:
		return measureUnsigned(r, w, fixture.Uint8s(values))
	case format.WidthU16:
		return measureUnsigned(r, w, fixture.Uint16s(values))
	case format.WidthU32:
		u32 := fixture.Uint32s(values)
		row, err := measureUnsigned(r, w, u32)
		if err != nil {
			return row, err
		}
		row.GroupVarintBytes, err = r.groupVarintSize(u32)

		return row, err
	case format.WidthU64:
		return measureUnsigned(r, w, fixture.Uint64s(values))
	case format.WidthUsize:
		return measureUnsigned(r, w, fixture.Uints(values))
	case format.WidthU128:
		return r.measureUint128(fixture.Uint128s(values))
	case format.WidthI8:
		return measureSigned(r, w, fixture.Select[int8](values, w))
	case format.WidthI16:
		return measureSigned(r, w, fixture.Select[int16](values, w))
	case format.WidthI32:
		return measureSigned(r, w, fixture.Select[int32](values, w))
	case format.WidthI64:
		return measureSigned(r, w, fixture.Select[int64](values, w))
	case format.WidthIsize:
		return measureSigned(r, w, fixture.Select[int](values, w))
	case format.WidthI128:
		return r.measureInt128(values)
	default:
		return Row{}, fmt.Errorf("unsupported width %s", w)
	}
}

func measureUnsigned[T constraints.Unsigned](r *Runner, w format.Width, values []T) (Row, error) {
	row := Row{Width: w, Count: len(values)}

	rawBuf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(rawBuf)
	for _, v := range values {
		raw.Put(r.raw, rawBuf, rawBuf.Len(), v)
	}
	row.RawBytes = rawBuf.Len()

	stream := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(stream)

	ref, err := leb128.NewEncoder[T](leb128.WithEncoderStrategy(format.EncoderReference))
	if err != nil {
		return row, err
	}
	for _, v := range values {
		ref.Append(stream, v)
	}
	row.LEB128Bytes = stream.Len()
	row.Digest = hash.Sum(stream.Bytes())

	if r.cfg.verify {
		if err := verifyShifted(values, rawBuf.Bytes()); err != nil {
			return row, err
		}
		if err := verifyEncoders(r, values, row.Digest); err != nil {
			return row, err
		}
		if err := verifyDecoders(stream.Bytes(), values); err != nil {
			return row, err
		}
	}

	if raw.Size[T]() <= 8 {
		row.LesqliteBytes, err = r.lesqliteSize(toUint64(values))
		if err != nil {
			return row, err
		}
	}

	if err := r.compress(&row, rawBuf.Bytes(), stream.Bytes()); err != nil {
		return row, err
	}

	return row, nil
}

func verifyEncoders[T constraints.Unsigned](r *Runner, values []T, digest uint64) error {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	for _, es := range format.EncoderStrategies {
		for _, ws := range r.cfg.writers {
			enc, err := leb128.NewEncoder[T](leb128.WithEncoderStrategy(es), leb128.WithWriterStrategy(ws))
			if err != nil {
				return err
			}

			buf.Reset()
			for _, v := range values {
				enc.Append(buf, v)
			}

			if got := hash.Sum(buf.Bytes()); got != digest {
				return fmt.Errorf("%w: %s/%s digest %016x, want %016x", ErrStrategyMismatch, es, ws, got, digest)
			}
		}
	}

	return nil
}

func verifyDecoders[T constraints.Unsigned](stream []byte, values []T) error {
	decoded, cleanup := pool.GetUint64Slice(len(values))
	defer cleanup()

	for _, ds := range format.DecoderStrategies {
		dec, err := leb128.NewDecoder[T](leb128.WithDecoderStrategy(ds))
		if err != nil {
			return err
		}

		pos := 0
		for i := range values {
			v, n := dec.Decode(stream, pos)
			decoded[i] = uint64(v)
			pos += n
		}

		for i, want := range values {
			if decoded[i] != uint64(want) {
				return fmt.Errorf("%w: %s at index %d: got %d, want %d", ErrDecodeMismatch, ds, i, decoded[i], want)
			}
		}
		if pos != len(stream) {
			return fmt.Errorf("%w: %s consumed %d of %d bytes", ErrDecodeMismatch, ds, pos, len(stream))
		}
	}

	return nil
}

func (r *Runner) measureUint128(values []uint128.Uint128) (Row, error) {
	row := Row{Width: format.WidthU128, Count: len(values)}

	rawBuf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(rawBuf)
	for _, v := range values {
		r.raw.PutUint128(rawBuf, rawBuf.Len(), v)
	}
	row.RawBytes = rawBuf.Len()

	stream := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(stream)
	for _, v := range values {
		leb128.EncodeUint128Reference(stream, stream.Len(), v)
	}
	row.LEB128Bytes = stream.Len()
	row.Digest = hash.Sum(stream.Bytes())

	if r.cfg.verify {
		if err := r.verifyUint128(values, stream.Bytes(), row.Digest); err != nil {
			return row, err
		}
		if err := verifyShiftedUint128(values, rawBuf.Bytes()); err != nil {
			return row, err
		}
	}

	if err := r.compress(&row, rawBuf.Bytes(), stream.Bytes()); err != nil {
		return row, err
	}

	return row, nil
}

func (r *Runner) verifyUint128(values []uint128.Uint128, stream []byte, digest uint64) error {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	for _, es := range format.EncoderStrategies {
		for _, ws := range r.cfg.writers {
			enc, err := leb128.NewUint128Encoder(leb128.WithEncoderStrategy(es), leb128.WithWriterStrategy(ws))
			if err != nil {
				return err
			}

			buf.Reset()
			for _, v := range values {
				enc.Encode(buf, buf.Len(), v)
			}

			if got := hash.Sum(buf.Bytes()); got != digest {
				return fmt.Errorf("%w: %s/%s digest %016x, want %016x", ErrStrategyMismatch, es, ws, got, digest)
			}
		}
	}

	for _, ds := range format.DecoderStrategies {
		dec, err := leb128.NewUint128Decoder(leb128.WithDecoderStrategy(ds))
		if err != nil {
			return err
		}

		pos := 0
		for i, want := range values {
			v, n := dec.Decode(stream, pos)
			if !v.Equals(want) {
				return fmt.Errorf("%w: %s at index %d: got %s, want %s", ErrDecodeMismatch, ds, i, v, want)
			}
			pos += n
		}
	}

	return nil
}

func verifyShiftedUint128(values []uint128.Uint128, rawStream []byte) error {
	shifted := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(shifted)

	for _, v := range values {
		raw.PutShiftedUint128(shifted, shifted.Len(), v)
	}

	if hash.Sum(shifted.Bytes()) != hash.Sum(rawStream) {
		return fmt.Errorf("%w: raw shifted and bulk writes differ", ErrStrategyMismatch)
	}

	return nil
}

// verifyShifted rewrites values with raw.PutShifted and compares the result
// against the bulk raw stream.
func verifyShifted[T constraints.Integer](values []T, rawStream []byte) error {
	shifted := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(shifted)

	for _, v := range values {
		raw.PutShifted(shifted, shifted.Len(), v)
	}

	if hash.Sum(shifted.Bytes()) != hash.Sum(rawStream) {
		return fmt.Errorf("%w: raw shifted and bulk writes differ", ErrStrategyMismatch)
	}

	return nil
}

func measureSigned[T constraints.Signed](r *Runner, w format.Width, values []T) (Row, error) {
	row := Row{Width: w, Count: len(values)}

	rawBuf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(rawBuf)
	for _, v := range values {
		raw.Put(r.raw, rawBuf, rawBuf.Len(), v)
	}
	row.RawBytes = rawBuf.Len()

	if r.cfg.verify {
		if err := verifyShifted(values, rawBuf.Bytes()); err != nil {
			return row, err
		}
	}

	if err := r.compress(&row, rawBuf.Bytes(), nil); err != nil {
		return row, err
	}

	return row, nil
}

func (r *Runner) measureInt128(values []fixture.Value) (Row, error) {
	row := Row{Width: format.WidthI128}

	rawBuf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(rawBuf)
	for _, v := range values {
		if v.Width != format.WidthI128 {
			continue
		}
		r.raw.PutUint128(rawBuf, rawBuf.Len(), v.Bits)
		row.Count++
	}
	row.RawBytes = rawBuf.Len()

	if err := r.compress(&row, rawBuf.Bytes(), nil); err != nil {
		return row, err
	}

	return row, nil
}

func (r *Runner) lesqliteSize(values []uint64) (int, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	w := buffer.MustWriter(r.cfg.writers[0])
	for _, v := range values {
		lesqlite.Encode(buf, buf.Len(), v, w)
	}

	if r.cfg.verify {
		pos := 0
		for i, want := range values {
			v, n := lesqlite.Decode(buf.Bytes(), pos)
			if v != want {
				return 0, fmt.Errorf("%w: lesqlite at index %d: got %d, want %d", ErrDecodeMismatch, i, v, want)
			}
			pos += n
		}
	}

	return buf.Len(), nil
}

// groupVarintSize encodes values in groups of four, padding the last group
// with zeros.
func (r *Runner) groupVarintSize(values []uint32) (int, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	w := buffer.MustWriter(r.cfg.writers[0])

	var group [4]uint32
	var block [groupSize]byte
	for i := 0; i < len(values); i += 4 {
		group = [4]uint32{}
		copy(group[:], values[i:])

		groupvarint.Encode4(block[:], group[:])
		n := groupvarint.BytesUsed[block[0]]
		w.Put(buf, buf.Len(), block[:n])
	}

	if r.cfg.verify {
		decoded, cleanup := pool.GetUint32Slice(4)
		defer cleanup()

		src := buf.Bytes()
		for i := 0; i < len(values); i += 4 {
			// Decode4 may read a full block; pad the tail copy.
			var padded [groupSize]byte
			copy(padded[:], src)
			groupvarint.Decode4(decoded, padded[:])

			for j := 0; j < 4 && i+j < len(values); j++ {
				if decoded[j] != values[i+j] {
					return 0, fmt.Errorf("%w: group varint at index %d", ErrDecodeMismatch, i+j)
				}
			}
			src = src[groupvarint.BytesUsed[src[0]]:]
		}
	}

	return buf.Len(), nil
}

func (r *Runner) compress(row *Row, rawStream, lebStream []byte) error {
	stats, err := compress.Measure(r.cfg.compression, rawStream)
	if err != nil {
		return err
	}
	row.RawCompressedBytes = stats.CompressedSize

	if lebStream == nil {
		return nil
	}

	stats, err = compress.Measure(r.cfg.compression, lebStream)
	if err != nil {
		return err
	}
	row.LEB128CompressedBytes = stats.CompressedSize

	return nil
}

func toUint64[T constraints.Unsigned](values []T) []uint64 {
	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = uint64(v)
	}

	return out
}
