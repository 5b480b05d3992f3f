// Package compress provides the payload codecs applied to packed code columns.
//
// A packed column stores one signed byte per value. Physics observables packed
// over a fixed log range tend to cluster around a few codes, so a general-purpose
// compressor applied to the column payload often shrinks it further. Compression
// is optional and chosen per column through format.CompressionType.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, pure Go klauspost/compress by
//     default, valyala/gozstd when built with the cgo_zstd tag
//   - S2 (format.CompressionS2): klauspost/compress/s2, balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format, fastest decompression
//
// Usage:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "codes")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally where the underlying library benefits.
package compress
