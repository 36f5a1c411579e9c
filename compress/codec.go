package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/leb128/format"
)

// Compressor compresses an encoded integer stream.
//
// Memory management:
//   - Returned slice is owned by the caller (NoOp returns the input itself)
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Returns an error if the data is corrupted or was produced by a different
// algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression of an encoded stream.
type Stats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the codec registered for compressionType and
// reports the resulting size.
//
// Parameters:
//   - compressionType: Algorithm to apply
//   - data: Encoded stream
//
// Returns:
//   - Stats: Sizes and timing of the compression
//   - error: Unsupported compression type or compression failure
func Measure(compressionType format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return Stats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
