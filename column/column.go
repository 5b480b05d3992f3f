package column

import (
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

// Column is an encoded packed column. It is immutable once created.
type Column struct {
	header section.ColumnHeader
	data   []byte
}

// ParseColumn wraps data as a Column after checking its header. The payload is
// verified only when a Decoder is created.
func ParseColumn(data []byte) (Column, error) {
	header, err := section.ParseColumnHeader(data)
	if err != nil {
		return Column{}, err
	}

	return Column{header: header, data: data}, nil
}

// Bytes returns the encoded column. The caller must not modify it.
func (c Column) Bytes() []byte {
	return c.data
}

// Size returns the encoded size in bytes, header included.
func (c Column) Size() int {
	return len(c.data)
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	return int(c.header.Count)
}

// Header returns a copy of the column header.
func (c Column) Header() section.ColumnHeader {
	return c.header
}

// Codec returns the codec the column was packed with.
func (c Column) Codec() logint.Codec {
	return c.header.Codec()
}

// Decoder verifies the column and returns a decoder for it.
func (c Column) Decoder() (*Decoder, error) {
	return NewDecoder(c.data)
}
