package section

import (
	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
)

// ColumnFlag holds the packed option bits and the codec selectors of a column.
type ColumnFlag struct {
	// Options packs the endianness bit (bit 1) and the magic number (bits 4-15).
	// Bits 0, 2 and 3 are reserved and must be zero.
	Options uint16
	// Rounding is the format.Rounding used to produce the codes.
	Rounding uint8
	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewColumnFlag returns a little-endian flag with ceil rounding and no compression.
func NewColumnFlag() ColumnFlag {
	return ColumnFlag{
		Options:     MagicColumnV1Opt,
		Rounding:    uint8(format.RoundingCeil),
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether multi-byte fields are little-endian.
func (f ColumnFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether multi-byte fields are big-endian.
func (f ColumnFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian selects little-endian byte order.
func (f *ColumnFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (f *ColumnFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// MagicNumber returns bits 4-15 of the options.
func (f ColumnFlag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// RoundingPolicy returns the stored rounding as a format.Rounding.
func (f ColumnFlag) RoundingPolicy() format.Rounding {
	return format.Rounding(f.Rounding)
}

// SetRounding stores the rounding policy.
func (f *ColumnFlag) SetRounding(r format.Rounding) {
	f.Rounding = uint8(r)
}

// CompressionType returns the stored compression as a format.CompressionType.
func (f ColumnFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression stores the compression type.
func (f *ColumnFlag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// Validate checks the magic number, the reserved option bits and both selectors.
func (f ColumnFlag) Validate() error {
	if f.MagicNumber() != MagicColumnV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedOptionsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.RoundingPolicy().IsValid() || !f.CompressionType().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// EndianEngine returns the engine matching the endianness bit.
func (f ColumnFlag) EndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
