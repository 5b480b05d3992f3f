package section

import (
	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
)

// SetHeader is the fixed-size header of a column set.
type SetHeader struct {
	// Options packs the endianness bit and the magic number, like ColumnFlag.Options.
	Options uint16 // byte offset 0-1, 2-3 reserved
	// ColumnCount is the number of columns in the set.
	ColumnCount uint32 // byte offset 4-7
	// NamesOffset is the offset of the names payload, right after the index.
	NamesOffset uint32 // byte offset 8-11
	// DataOffset is the offset of the first column, right after the names payload.
	DataOffset uint32 // byte offset 12-15
}

// NewSetHeader returns a little-endian set header.
func NewSetHeader() *SetHeader {
	return &SetHeader{Options: MagicSetV1Opt}
}

// IsLittleEndian returns whether multi-byte fields are little-endian.
func (h *SetHeader) IsLittleEndian() bool {
	return (h.Options & EndiannessMask) == 0
}

// WithBigEndian selects big-endian byte order.
func (h *SetHeader) WithBigEndian() {
	h.Options |= EndiannessMask
}

// WithLittleEndian selects little-endian byte order.
func (h *SetHeader) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// EndianEngine returns the engine matching the endianness bit.
func (h *SetHeader) EndianEngine() endian.EndianEngine {
	if h.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Bytes serializes the header.
func (h *SetHeader) Bytes() []byte {
	b := make([]byte, SetHeaderSize)
	engine := h.EndianEngine()

	endian.GetLittleEndianEngine().PutUint16(b[0:2], h.Options)
	engine.PutUint32(b[4:8], h.ColumnCount)
	engine.PutUint32(b[8:12], h.NamesOffset)
	engine.PutUint32(b[12:16], h.DataOffset)

	return b
}

// ParseSetHeader parses a SetHeader from the start of data.
func ParseSetHeader(data []byte) (SetHeader, error) {
	if len(data) < SetHeaderSize {
		return SetHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SetHeader{Options: endian.GetLittleEndianEngine().Uint16(data[0:2])}
	if h.Options&MagicNumberMask != MagicSetV1Opt {
		return SetHeader{}, errs.ErrInvalidMagicNumber
	}

	engine := h.EndianEngine()
	h.ColumnCount = engine.Uint32(data[4:8])
	h.NamesOffset = engine.Uint32(data[8:12])
	h.DataOffset = engine.Uint32(data[12:16])

	return h, nil
}
