package logint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
)

func TestNewRange(t *testing.T) {
	r := NewRange(1, 100)

	assert.Equal(t, 0.0, r.LogMin)
	assert.Equal(t, math.Log(100), r.LogMax)
	assert.InDelta(t, 1.0, r.MinMagnitude(), 1e-12)
	assert.InDelta(t, 100.0, r.MaxMagnitude(), 1e-9)
	assert.Equal(t, math.Log(100), r.Width())

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(-10))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(0.5))
	assert.False(t, r.Contains(-1000))
}

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"valid", Range{LogMin: -1, LogMax: 1}, false},
		{"equal bounds", Range{LogMin: 1, LogMax: 1}, true},
		{"inverted", Range{LogMin: 2, LogMax: 1}, true},
		{"nan", Range{LogMin: math.NaN(), LogMax: 1}, true},
		{"inf", Range{LogMin: 0, LogMax: math.Inf(1)}, true},
		{"from zero magnitude", NewRange(0, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCodec_ZeroValueDefaults(t *testing.T) {
	c := Codec{Range: Range{LogMin: 0, LogMax: 2 * math.Log(10)}}

	assert.Equal(t, 128, c.EffectiveBase())
	assert.Equal(t, int8(127), c.MaxCode())
	assert.Equal(t, int8(-127), c.MinCode())
	assert.Equal(t, int8(64), c.Encode(10))
	assert.Equal(t, EncodeCeil(3.3, c.Range.LogMin, c.Range.LogMax, 128), c.Encode(3.3))
	assert.Equal(t, DecodeOpen(-12, c.Range.LogMin, c.Range.LogMax, 128), c.Decode(-12))
	require.NoError(t, c.Validate())
}

func TestCodec_DispatchesByRounding(t *testing.T) {
	r := Range{LogMin: -4, LogMax: 3}
	values := []float64{-20, -1, -0.05, 0.02, 0.7, 5, 19.9, 1e6}

	for _, tt := range []struct {
		rounding format.Rounding
		encode   encodeFunc
		decode   func(code int8, lmin, lmax float64, base uint8) float64
	}{
		{format.RoundingCeil, EncodeCeil, DecodeOpen},
		{format.RoundingFloor, EncodeFloor, DecodeOpen},
		{format.RoundingClosed, EncodeRoundClosed, DecodeClosed},
	} {
		t.Run(tt.rounding.String(), func(t *testing.T) {
			c := New(r, 64, tt.rounding)
			for _, v := range values {
				code := tt.encode(v, r.LogMin, r.LogMax, 64)
				assert.Equal(t, code, c.Encode(v))
				assert.Equal(t, tt.decode(code, r.LogMin, r.LogMax, 64), c.Decode(code))
			}
		})
	}
}

func TestCodec_Slices(t *testing.T) {
	c := New(Range{LogMin: -2, LogMax: 2}, 128, format.RoundingClosed)
	src := []float64{-7.389, -1, 0.2, 1, 7.389}

	codes := c.EncodeSlice(nil, src)
	require.Len(t, codes, len(src))
	for i, v := range src {
		assert.Equal(t, c.Encode(v), codes[i])
	}

	prefix := []int8{99}
	codes = c.EncodeSlice(prefix, src)
	require.Len(t, codes, len(src)+1)
	assert.Equal(t, int8(99), codes[0])

	values := c.DecodeSlice(nil, codes[1:])
	require.Len(t, values, len(src))
	for i, v := range values {
		assert.Equal(t, c.Decode(codes[i+1]), v)
		assert.Equal(t, math.Signbit(src[i]), math.Signbit(v))
	}
}

func TestCodec_Precision(t *testing.T) {
	r := Range{LogMin: 0, LogMax: 12.8}

	open := New(r, 128, format.RoundingCeil)
	assert.InDelta(t, math.Expm1(0.1), open.Precision(), 1e-12)

	closed := New(r, 128, format.RoundingClosed)
	assert.InDelta(t, math.Expm1(12.8/127), closed.Precision(), 1e-12)
	assert.Greater(t, closed.Precision(), open.Precision())
}

func TestCodec_Validate(t *testing.T) {
	good := Range{LogMin: -1, LogMax: 1}

	require.NoError(t, New(good, 2, format.RoundingFloor).Validate())
	require.NoError(t, New(good, 255, format.RoundingClosed).Validate())

	require.ErrorIs(t, New(Range{}, 128, format.RoundingCeil).Validate(), errs.ErrInvalidRange)
	require.ErrorIs(t, New(good, 1, format.RoundingCeil).Validate(), errs.ErrInvalidBase)
	require.ErrorIs(t, New(good, 128, format.Rounding(9)).Validate(), errs.ErrInvalidRounding)
}

func TestCodec_String(t *testing.T) {
	c := Codec{Range: Range{LogMin: -1, LogMax: 2}, Base: 200}
	assert.Equal(t, "logint(Ceil, base=128, log range=[-1, 2])", c.String())

	c.Rounding = format.RoundingClosed
	c.Base = 16
	assert.Equal(t, "logint(Closed, base=16, log range=[-1, 2])", c.String())
}
