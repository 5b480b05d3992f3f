package section

import (
	"fmt"

	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/logint"
)

// ColumnHeader is the fixed-size header in front of a packed column payload.
type ColumnHeader struct {
	// Flag holds options, rounding and compression.
	Flag ColumnFlag // byte offset 0-3
	// Base is the configured base, stored as given; readers clamp it with logint.EffectiveBase.
	Base uint8 // byte offset 4, 5-7 reserved
	// Count is the number of codes in the column.
	Count uint32 // byte offset 8-11
	// PayloadSize is the size of the payload after compression.
	PayloadSize uint32 // byte offset 12-15
	// LogMin is the lower natural-log bound of the range.
	LogMin float64 // byte offset 16-23
	// LogMax is the upper natural-log bound of the range.
	LogMax float64 // byte offset 24-31
	// Checksum is the xxHash64 of the uncompressed codes.
	Checksum uint64 // byte offset 32-39
}

// NewColumnHeader creates a header for the given codec parameters. Count,
// PayloadSize and Checksum are filled in when the encoder finishes.
func NewColumnHeader(r logint.Range, base uint8) *ColumnHeader {
	return &ColumnHeader{
		Flag:   NewColumnFlag(),
		Base:   base,
		LogMin: r.LogMin,
		LogMax: r.LogMax,
	}
}

// Range returns the log range stored in the header.
func (h ColumnHeader) Range() logint.Range {
	return logint.Range{LogMin: h.LogMin, LogMax: h.LogMax}
}

// Codec returns the codec that decodes the column.
func (h ColumnHeader) Codec() logint.Codec {
	return logint.New(h.Range(), h.Base, h.Flag.RoundingPolicy())
}

// Bytes serializes the header.
func (h *ColumnHeader) Bytes() []byte {
	b := make([]byte, ColumnHeaderSize)
	h.put(b)

	return b
}

// AppendTo appends the serialized header to dst.
func (h *ColumnHeader) AppendTo(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, ColumnHeaderSize)...)
	h.put(dst[start:])

	return dst
}

func (h *ColumnHeader) put(b []byte) {
	engine := h.Flag.EndianEngine()

	// options are always little-endian so readers can find the byte order
	endian.GetLittleEndianEngine().PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.Rounding
	b[3] = h.Flag.Compression
	b[4] = h.Base
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadSize)
	endian.PutFloat64(engine, b[16:24], h.LogMin)
	endian.PutFloat64(engine, b[24:32], h.LogMax)
	engine.PutUint64(b[32:40], h.Checksum)
}

// Validate checks the flag and the codec parameters. The checksum covers only
// the codes, so a corrupted base or range is caught here.
func (h ColumnHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if logint.EffectiveBase(h.Base) < 2 {
		return fmt.Errorf("%w: stored base %d", errs.ErrInvalidBase, h.Base)
	}

	return h.Range().Validate()
}

// Parse parses the header from exactly ColumnHeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidHeaderFlags,
//     ErrInvalidBase or ErrInvalidRange
func (h *ColumnHeader) Parse(data []byte) error {
	if len(data) != ColumnHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = endian.GetLittleEndianEngine().Uint16(data[0:2])
	h.Flag.Rounding = data[2]
	h.Flag.Compression = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.EndianEngine()
	h.Base = data[4]
	h.Count = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.LogMin = endian.Float64(engine, data[16:24])
	h.LogMax = endian.Float64(engine, data[24:32])
	h.Checksum = engine.Uint64(data[32:40])

	return h.Validate()
}

// ParseColumnHeader parses a ColumnHeader from the start of data.
func ParseColumnHeader(data []byte) (ColumnHeader, error) {
	if len(data) < ColumnHeaderSize {
		return ColumnHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ColumnHeader{}
	if err := h.Parse(data[:ColumnHeaderSize]); err != nil {
		return ColumnHeader{}, err
	}

	return h, nil
}
