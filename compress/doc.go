// Package compress provides general-purpose compression codecs applied to
// encoded integer streams.
//
// Variable-length encodings remove the leading zero bytes of each value but
// leave redundancy between values. Compressing the encoded stream shows how
// much of that redundancy a general-purpose algorithm can still recover, and
// lets LEB128 and lesqlite streams be compared after compression as well as
// before.
//
// Supported algorithms:
//   - None: No compression, returns the input unchanged
//   - Zstd: Best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: Balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: Fast block compression (pierrec/lz4/v4)
//
// Usage:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(buf.Bytes())
//
// Or, when only the size matters:
//
//	stats, err := compress.Measure(format.CompressionS2, buf.Bytes())
//	fmt.Printf("%.2f%% saved\n", stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
