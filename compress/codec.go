package compress

import (
	"fmt"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
)

// Compressor compresses a packed code payload.
//
// The returned slice is owned by the caller. The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// DecompressSize is used when the decompressed size is known up front, as it is
// for a column whose header stores the code count. It allocates exactly size
// bytes and fails with errs.ErrInvalidPayloadLength when the payload decodes to
// any other length.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both directions for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size over original size, 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec returns a new codec for the compression type. The target names the
// payload in the error message.
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

// GetCodec returns the shared codec instance for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Measure compresses data with the given type and reports the resulting sizes.
func Measure(compressionType format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return Stats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
	}, nil
}

func checkSize(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: expected %d decompressed bytes, got %d", errs.ErrInvalidPayloadLength, want, got)
	}

	return nil
}
