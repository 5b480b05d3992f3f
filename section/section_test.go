package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/logint"
)

func TestNewColumnFlag(t *testing.T) {
	f := NewColumnFlag()

	require.NoError(t, f.Validate())
	require.True(t, f.IsLittleEndian())
	require.Equal(t, uint16(MagicColumnV1Opt), f.MagicNumber())
	require.Equal(t, format.RoundingCeil, f.RoundingPolicy())
	require.Equal(t, format.CompressionNone, f.CompressionType())

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), f.EndianEngine())
	require.Equal(t, uint16(MagicColumnV1Opt), f.MagicNumber())

	f.WithLittleEndian()
	require.True(t, f.IsLittleEndian())
}

func TestColumnFlag_Validate(t *testing.T) {
	f := NewColumnFlag()
	f.SetRounding(format.Rounding(7))
	require.ErrorIs(t, f.Validate(), errs.ErrInvalidHeaderFlags)

	f = NewColumnFlag()
	f.SetCompression(format.CompressionType(0))
	require.ErrorIs(t, f.Validate(), errs.ErrInvalidHeaderFlags)

	f = NewColumnFlag()
	f.Options = 0x1230
	require.ErrorIs(t, f.Validate(), errs.ErrInvalidMagicNumber)

	for _, bit := range []uint16{0x0001, 0x0004, 0x0008} {
		f = NewColumnFlag()
		f.Options |= bit
		require.ErrorIs(t, f.Validate(), errs.ErrInvalidHeaderFlags, "bit %#04x", bit)
	}
}

func TestColumnHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := NewColumnHeader(logint.Range{LogMin: math.Log(1e-3), LogMax: 0}, 200)
		h.Flag.SetRounding(format.RoundingClosed)
		h.Flag.SetCompression(format.CompressionLZ4)
		if bigEndian {
			h.Flag.WithBigEndian()
		}
		h.Count = 12345
		h.PayloadSize = 678
		h.Checksum = 0xDEADBEEFCAFEF00D

		data := h.Bytes()
		require.Len(t, data, ColumnHeaderSize)
		require.Equal(t, data, h.AppendTo(nil))

		parsed, err := ParseColumnHeader(append(data, 0x01, 0x02))
		require.NoError(t, err)
		require.Equal(t, *h, parsed)

		codec := parsed.Codec()
		require.Equal(t, 128, codec.EffectiveBase())
		require.Equal(t, format.RoundingClosed, codec.Rounding)
		require.Equal(t, h.Range(), codec.Range)
	}
}

func TestColumnHeader_ParseErrors(t *testing.T) {
	_, err := ParseColumnHeader([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	h := &ColumnHeader{}
	require.ErrorIs(t, h.Parse(make([]byte, ColumnHeaderSize+1)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(make([]byte, ColumnHeaderSize)), errs.ErrInvalidMagicNumber)

	data := NewColumnHeader(logint.Range{LogMin: 0, LogMax: 1}, 128).Bytes()
	data[3] = 0x09
	_, err = ParseColumnHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestColumnHeader_ParseInvalidCodec(t *testing.T) {
	tests := []struct {
		name   string
		header *ColumnHeader
		want   error
	}{
		{"base zero", NewColumnHeader(logint.Range{LogMin: 0, LogMax: 1}, 0), errs.ErrInvalidBase},
		{"base one", NewColumnHeader(logint.Range{LogMin: 0, LogMax: 1}, 1), errs.ErrInvalidBase},
		{"empty range", NewColumnHeader(logint.Range{LogMin: 1, LogMax: 1}, 128), errs.ErrInvalidRange},
		{"inverted range", NewColumnHeader(logint.Range{LogMin: 2, LogMax: 1}, 128), errs.ErrInvalidRange},
		{"infinite max", NewColumnHeader(logint.Range{LogMin: 0, LogMax: math.Inf(1)}, 128), errs.ErrInvalidRange},
		{"NaN min", NewColumnHeader(logint.Range{LogMin: math.NaN(), LogMax: 1}, 128), errs.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.header.Validate(), tt.want)

			_, err := ParseColumnHeader(tt.header.Bytes())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestColumnHeader_ValueAccessors(t *testing.T) {
	r := logint.NewRange(1e-3, 1)
	header := func() ColumnHeader { return *NewColumnHeader(r, 64) }

	require.Equal(t, r, header().Range())
	require.Equal(t, 64, header().Codec().EffectiveBase())
	require.NoError(t, header().Validate())
}

func TestColumnHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	h := NewColumnHeader(logint.Range{LogMin: 0, LogMax: 1}, 128)
	h.Flag.WithBigEndian()
	data := h.Bytes()

	require.Equal(t, byte((MagicColumnV1Opt|EndiannessMask)&0xFF), data[0])
	require.Equal(t, byte(MagicColumnV1Opt>>8), data[1])
}

func TestSetHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := NewSetHeader()
		if bigEndian {
			h.WithBigEndian()
		}
		h.ColumnCount = 3
		h.NamesOffset = SetHeaderSize + 3*SetIndexEntrySize
		h.DataOffset = h.NamesOffset + 20

		parsed, err := ParseSetHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
		require.Equal(t, !bigEndian, parsed.IsLittleEndian())
	}

	_, err := ParseSetHeader(make([]byte, 4))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = ParseSetHeader(make([]byte, SetHeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	_, err = ParseSetHeader(NewColumnHeader(logint.Range{}, 128).Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestSetIndexEntry_RoundTrip(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	e := NewSetIndexEntry(0x0123456789ABCDEF, 96, 140)
	require.Equal(t, 236, e.End())

	data := e.AppendTo(engine, nil)
	require.Len(t, data, SetIndexEntrySize)

	parsed, err := ParseSetIndexEntry(data, engine)
	require.NoError(t, err)
	require.Equal(t, e, parsed)

	_, err = ParseSetIndexEntry(data[:15], engine)
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
