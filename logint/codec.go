package logint

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
)

// Range is the natural-log magnitude domain a codec is calibrated for.
type Range struct {
	LogMin float64
	LogMax float64
}

// NewRange builds a Range from linear magnitude bounds, e.g. NewRange(1, 100)
// covers magnitudes 1 through 100.
func NewRange(minMagnitude, maxMagnitude float64) Range {
	return Range{
		LogMin: math.Log(minMagnitude),
		LogMax: math.Log(maxMagnitude),
	}
}

// Width returns LogMax - LogMin.
func (r Range) Width() float64 {
	return r.LogMax - r.LogMin
}

// MinMagnitude returns exp(LogMin).
func (r Range) MinMagnitude() float64 {
	return math.Exp(r.LogMin)
}

// MaxMagnitude returns exp(LogMax).
func (r Range) MaxMagnitude() float64 {
	return math.Exp(r.LogMax)
}

// Contains reports whether |x| lies inside [exp(LogMin), exp(LogMax)].
func (r Range) Contains(x float64) bool {
	l := math.Log(math.Abs(x))
	return l >= r.LogMin && l <= r.LogMax
}

// Validate checks that both bounds are finite and LogMin < LogMax.
func (r Range) Validate() error {
	if math.IsNaN(r.LogMin) || math.IsInf(r.LogMin, 0) || math.IsNaN(r.LogMax) || math.IsInf(r.LogMax, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", errs.ErrInvalidRange, r.LogMin, r.LogMax)
	}

	if r.LogMin >= r.LogMax {
		return fmt.Errorf("%w: log min %g must be below log max %g", errs.ErrInvalidRange, r.LogMin, r.LogMax)
	}

	return nil
}

// Codec bundles a range, a base and a rounding policy so callers can pack and
// unpack without repeating the parameters.
//
// The zero Base means DefaultBase and the zero Rounding means RoundingCeil, so a
// Codec literal with only a Range is usable. Codec is a small value type and is
// safe for concurrent use.
type Codec struct {
	Range    Range
	Base     uint8
	Rounding format.Rounding
}

// New returns a Codec for the given parameters.
func New(r Range, base uint8, rounding format.Rounding) Codec {
	return Codec{Range: r, Base: base, Rounding: rounding}
}

// base returns the configured base with the zero value defaulted.
func (c Codec) base() uint8 {
	if c.Base == 0 {
		return DefaultBase
	}

	return c.Base
}

// EffectiveBase returns the number of positive levels used by the codec.
func (c Codec) EffectiveBase() int {
	return EffectiveBase(c.base())
}

// MaxCode returns the saturation code base-1.
func (c Codec) MaxCode() int8 {
	return int8(c.EffectiveBase() - 1)
}

// MinCode returns the most negative code -(base-1).
func (c Codec) MinCode() int8 {
	return -c.MaxCode()
}

// Encode packs x with the codec's rounding policy.
func (c Codec) Encode(x float64) int8 {
	switch c.Rounding {
	case format.RoundingFloor:
		return EncodeFloor(x, c.Range.LogMin, c.Range.LogMax, c.base())
	case format.RoundingClosed:
		return EncodeRoundClosed(x, c.Range.LogMin, c.Range.LogMax, c.base())
	default:
		return EncodeCeil(x, c.Range.LogMin, c.Range.LogMax, c.base())
	}
}

// Decode unpacks a code with the decode rule matching the codec's rounding policy.
func (c Codec) Decode(code int8) float64 {
	if c.Rounding.IsClosed() {
		return DecodeClosed(code, c.Range.LogMin, c.Range.LogMax, c.base())
	}

	return DecodeOpen(code, c.Range.LogMin, c.Range.LogMax, c.base())
}

// EncodeSlice appends the codes of src to dst and returns the extended slice.
func (c Codec) EncodeSlice(dst []int8, src []float64) []int8 {
	dst = slices.Grow(dst, len(src))
	for _, x := range src {
		dst = append(dst, c.Encode(x))
	}

	return dst
}

// DecodeSlice appends the decoded values of src to dst and returns the extended slice.
func (c Codec) DecodeSlice(dst []float64, src []int8) []float64 {
	dst = slices.Grow(dst, len(src))
	for _, code := range src {
		dst = append(dst, c.Decode(code))
	}

	return dst
}

// Precision returns the relative width of one bucket, exp(width/levels) - 1.
// A value of 0.037 means neighbouring codes decode about 3.7% apart.
func (c Codec) Precision() float64 {
	levels := c.EffectiveBase()
	if c.Rounding.IsClosed() {
		levels--
	}

	return math.Expm1(c.Range.Width() / float64(levels))
}

// Validate reports parameters the codec is not defined for. Encode and Decode
// never call it.
func (c Codec) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}

	if c.EffectiveBase() < 2 {
		return fmt.Errorf("%w: base %d leaves no room for a non-zero code", errs.ErrInvalidBase, c.Base)
	}

	if c.Rounding != 0 && !c.Rounding.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRounding, c.Rounding)
	}

	return nil
}

func (c Codec) String() string {
	rounding := c.Rounding
	if rounding == 0 {
		rounding = format.RoundingCeil
	}

	return fmt.Sprintf("logint(%s, base=%d, log range=[%g, %g])",
		rounding, c.EffectiveBase(), c.Range.LogMin, c.Range.LogMax)
}
