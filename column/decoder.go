package column

import (
	"fmt"
	"iter"

	"github.com/arloliu/logintpack/compress"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/internal/hash"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

// Decoder reads values back from an encoded column.
//
// When the column is uncompressed the decoder reads the codes in place, so the
// input slice must not be modified while the decoder is in use. A Decoder is
// read-only and safe for concurrent use.
type Decoder struct {
	header section.ColumnHeader
	codec  logint.Codec
	codes  []byte
}

// NewDecoder parses and validates the header, decompresses the payload to the
// declared code count and verifies the checksum.
//
// Returns:
//   - *Decoder: decoder over the verified codes
//   - error: header errors (including ErrInvalidBase and ErrInvalidRange),
//     ErrInvalidPayloadLength, ErrChecksumMismatch or a decompression error
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseColumnHeader(data)
	if err != nil {
		return nil, err
	}

	end := section.ColumnHeaderSize + int(header.PayloadSize)
	if len(data) < end {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, got %d",
			errs.ErrInvalidPayloadLength, header.PayloadSize, len(data)-section.ColumnHeaderSize)
	}

	payloadCodec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}

	codes, err := payloadCodec.DecompressSize(data[section.ColumnHeaderSize:end], int(header.Count))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %d codes: %w", header.Count, err)
	}

	if sum := hash.Checksum(codes); sum != header.Checksum {
		return nil, fmt.Errorf("%w: stored %#x, computed %#x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	return &Decoder{
		header: header,
		codec:  header.Codec(),
		codes:  codes,
	}, nil
}

// Len returns the number of values.
func (d *Decoder) Len() int {
	return len(d.codes)
}

// Header returns a copy of the column header.
func (d *Decoder) Header() section.ColumnHeader {
	return d.header
}

// Codec returns the codec used to unpack the values.
func (d *Decoder) Codec() logint.Codec {
	return d.codec
}

// Code returns the raw code at index i.
func (d *Decoder) Code(i int) (int8, bool) {
	if i < 0 || i >= len(d.codes) {
		return 0, false
	}

	return int8(d.codes[i]), true
}

// At returns the unpacked value at index i.
func (d *Decoder) At(i int) (float64, bool) {
	code, ok := d.Code(i)
	if !ok {
		return 0, false
	}

	return d.codec.Decode(code), true
}

// All iterates over index and unpacked value pairs.
func (d *Decoder) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, b := range d.codes {
			if !yield(i, d.codec.Decode(int8(b))) {
				return
			}
		}
	}
}

// Codes returns a copy of the raw codes.
func (d *Decoder) Codes() []int8 {
	out := make([]int8, len(d.codes))
	for i, b := range d.codes {
		out[i] = int8(b)
	}

	return out
}

// Values returns all unpacked values.
func (d *Decoder) Values() []float64 {
	out := make([]float64, len(d.codes))
	for i, b := range d.codes {
		out[i] = d.codec.Decode(int8(b))
	}

	return out
}
