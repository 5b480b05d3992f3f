package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

func sampleValues(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		v := math.Pow(10, float64(i%250)/100-0.3)
		if i%3 == 0 {
			v = -v
		}
		values[i] = v
	}

	return values
}

func encodeColumn(t *testing.T, r logint.Range, values []float64, opts ...EncoderOption) Column {
	t.Helper()

	enc, err := NewEncoder(r, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.AddValues(values))

	col, err := enc.Finish()
	require.NoError(t, err)

	return col
}

func TestDecoder_AllCompressions(t *testing.T) {
	values := sampleValues(2000)

	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		for _, rounding := range []format.Rounding{format.RoundingCeil, format.RoundingFloor, format.RoundingClosed} {
			t.Run(comp.String()+"/"+rounding.String(), func(t *testing.T) {
				col := encodeColumn(t, decadeRange, values, WithCompression(comp), WithRounding(rounding))

				dec, err := NewDecoder(col.Bytes())
				require.NoError(t, err)
				require.Equal(t, len(values), dec.Len())
				require.Equal(t, comp, dec.Header().Flag.CompressionType())

				codec := logint.New(decadeRange, logint.DefaultBase, rounding)
				require.Equal(t, codec, dec.Codec())

				got := dec.Values()
				for i, v := range values {
					require.Equal(t, codec.Decode(codec.Encode(v)), got[i], "index %d", i)
				}
			})
		}
	}
}

func TestDecoder_CompressionShrinksRepetitiveColumns(t *testing.T) {
	values := make([]float64, 8192)
	for i := range values {
		values[i] = float64(1 + i%4)
	}

	plain := encodeColumn(t, decadeRange, values)
	packed := encodeColumn(t, decadeRange, values, WithCompression(format.CompressionZstd))

	require.Less(t, packed.Size(), plain.Size())
}

func TestDecoder_BigEndian(t *testing.T) {
	values := sampleValues(100)
	r := logint.NewRange(0.1, 500)

	little := encodeColumn(t, r, values)
	big := encodeColumn(t, r, values, WithBigEndian())
	require.NotEqual(t, little.Bytes()[:section.ColumnHeaderSize], big.Bytes()[:section.ColumnHeaderSize])

	dec, err := NewDecoder(big.Bytes())
	require.NoError(t, err)
	require.True(t, dec.Header().Flag.IsBigEndian())
	require.Equal(t, r, dec.Header().Range())

	ref, err := NewDecoder(little.Bytes())
	require.NoError(t, err)
	require.Equal(t, ref.Codes(), dec.Codes())
}

func TestDecoder_Access(t *testing.T) {
	col := encodeColumn(t, decadeRange, []float64{10, -10, 100})

	dec, err := col.Decoder()
	require.NoError(t, err)

	code, ok := dec.Code(1)
	require.True(t, ok)
	require.Equal(t, int8(-64), code)

	v, ok := dec.At(0)
	require.True(t, ok)
	require.InDelta(t, 10.0, v, 1e-9)

	_, ok = dec.At(3)
	require.False(t, ok)
	_, ok = dec.Code(-1)
	require.False(t, ok)

	var seen []int
	for i, v := range dec.All() {
		seen = append(seen, i)
		require.NotZero(t, v)
		if i == 1 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, seen)
}

func TestDecoder_Corruption(t *testing.T) {
	col := encodeColumn(t, decadeRange, sampleValues(64))

	t.Run("short header", func(t *testing.T) {
		_, err := NewDecoder(col.Bytes()[:section.ColumnHeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewDecoder(col.Bytes()[:col.Size()-1])
		require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)
	})

	t.Run("flipped code", func(t *testing.T) {
		data := append([]byte(nil), col.Bytes()...)
		data[section.ColumnHeaderSize+5] ^= 0x01

		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("wrong count", func(t *testing.T) {
		h := col.Header()
		h.Count++
		data := append(h.Bytes(), col.Bytes()[section.ColumnHeaderSize:]...)

		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), col.Bytes()...)
		data[1] ^= 0xFF

		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("reserved option bit", func(t *testing.T) {
		data := append([]byte(nil), col.Bytes()...)
		data[0] |= 0x01

		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("corrupt base", func(t *testing.T) {
		for _, base := range []byte{0, 1} {
			data := append([]byte(nil), col.Bytes()...)
			data[4] = base

			_, err := NewDecoder(data)
			require.ErrorIs(t, err, errs.ErrInvalidBase, "base %d", base)
		}
	})

	t.Run("non-finite range", func(t *testing.T) {
		for _, bounds := range [][2]float64{{0, math.Inf(1)}, {math.NaN(), 1}, {2, 1}} {
			h := col.Header()
			h.LogMin, h.LogMax = bounds[0], bounds[1]
			data := append(h.Bytes(), col.Bytes()[section.ColumnHeaderSize:]...)

			_, err := NewDecoder(data)
			require.ErrorIs(t, err, errs.ErrInvalidRange, "bounds %v", bounds)
		}
	})

	t.Run("wrong count compressed", func(t *testing.T) {
		for _, comp := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
			packed := encodeColumn(t, decadeRange, sampleValues(2000), WithCompression(comp))
			require.Equal(t, comp, packed.Header().Flag.CompressionType())

			for _, delta := range []int{-1, 1} {
				h := packed.Header()
				h.Count = uint32(int(h.Count) + delta)
				data := append(h.Bytes(), packed.Bytes()[section.ColumnHeaderSize:]...)

				_, err := NewDecoder(data)
				require.ErrorIs(t, err, errs.ErrInvalidPayloadLength, "%s count %+d", comp, delta)
			}
		}
	})
}

func TestParseColumn(t *testing.T) {
	col := encodeColumn(t, decadeRange, []float64{1, 2, 3}, WithRounding(format.RoundingFloor))

	parsed, err := ParseColumn(col.Bytes())
	require.NoError(t, err)
	require.Equal(t, col.Header(), parsed.Header())
	require.Equal(t, col.Codec(), parsed.Codec())
	require.Equal(t, 3, parsed.Len())

	_, err = ParseColumn(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func BenchmarkDecoder_Values(b *testing.B) {
	enc, _ := NewEncoder(decadeRange)
	_ = enc.AddValues(sampleValues(4096))
	col, _ := enc.Finish()

	b.ReportAllocs()
	for b.Loop() {
		dec, _ := NewDecoder(col.Bytes())
		_ = dec.Values()
	}
}
