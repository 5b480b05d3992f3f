// Package logintpack stores floating point observables as signed 8-bit
// logarithmic codes.
//
// A value x is mapped to one of 2·base-1 codes by placing ln|x| inside a
// calibrated natural-log range [LogMin, LogMax]: the code magnitude is the
// bucket index, the sign is the sign of x. Values outside the range saturate,
// so every finite input and both infinities have a code. The relative error is
// bounded by the bucket width, which makes the format suited to quantities
// spanning several decades (momenta, widths, fractions) where a fixed relative
// precision is enough.
//
// # Core Features
//
//   - Three encode families: ceil and floor with open decoding, and closed
//     rounding that reproduces both range endpoints exactly
//   - Pure, allocation free codec functions safe for concurrent use
//   - Self-describing columns with xxHash64 checksums
//   - Optional compression (None, Zstd, S2, LZ4)
//   - Named column sets with hash-based lookup
//
// # Basic Usage
//
// Packing a single value:
//
//	r := logint.NewRange(0.5, 1000)
//	code := logint.EncodeCeil(42.0, r.LogMin, r.LogMax, 128)
//	v := logint.DecodeOpen(code, r.LogMin, r.LogMax, 128)
//
// Packing a column of values:
//
//	data, _ := logintpack.Pack(logint.NewRange(0.5, 1000), pts)
//	values, _ := logintpack.Unpack(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column and
// logint packages, simplifying the most common use cases. For fine-grained
// control, use those packages directly.
package logintpack

import (
	"github.com/arloliu/logintpack/column"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/internal/hash"
	"github.com/arloliu/logintpack/logint"
)

var defaultColumnOptions = []column.EncoderOption{
	column.WithLittleEndian(),
	column.WithBase(logint.DefaultBase),
	column.WithRounding(format.RoundingCeil),
	column.WithCompression(format.CompressionNone),
}

// NewEncoder creates a column encoder for values calibrated to r.
//
// Default configuration:
//   - Byte order: little-endian
//   - Base: 128 (codes in [-127, 127])
//   - Rounding: ceil
//   - Compression: none
//
// The given options are applied after the defaults.
func NewEncoder(r logint.Range, opts ...column.EncoderOption) (*column.Encoder, error) {
	allOpts := make([]column.EncoderOption, 0, len(defaultColumnOptions)+len(opts))
	allOpts = append(allOpts, defaultColumnOptions...)
	allOpts = append(allOpts, opts...)

	return column.NewEncoder(r, allOpts...)
}

// NewDecoder verifies an encoded column and returns a decoder for it.
func NewDecoder(data []byte) (*column.Decoder, error) {
	return column.NewDecoder(data)
}

// NewSetEncoder creates an encoder for a set of named columns.
func NewSetEncoder(opts ...column.SetOption) (*column.SetEncoder, error) {
	return column.NewSetEncoder(opts...)
}

// NewSetDecoder parses an encoded column set.
func NewSetDecoder(data []byte) (*column.SetDecoder, error) {
	return column.NewSetDecoder(data)
}

// Pack encodes values into a single column.
func Pack(r logint.Range, values []float64, opts ...column.EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(r, opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.AddValues(values); err != nil {
		return nil, err
	}

	col, err := enc.Finish()
	if err != nil {
		return nil, err
	}

	return col.Bytes(), nil
}

// Unpack decodes every value of an encoded column.
func Unpack(data []byte) ([]float64, error) {
	dec, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Values(), nil
}

// ColumnID returns the 64-bit id a column set uses for name.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
