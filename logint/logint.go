package logint

import "math"

const (
	// MaxBase is the largest number of positive levels a signed byte can hold.
	MaxBase = 128
	// DefaultBase is the base used when callers have no reason to pick another.
	DefaultBase uint8 = MaxBase

	// SmallestPositive is the code of the smallest positive magnitude bucket.
	SmallestPositive int8 = 0
	// SmallestNegative is the code of the smallest negative magnitude bucket.
	// Decoding it gives -Decode(1), not -Decode(0).
	SmallestNegative int8 = -1
)

// EffectiveBase returns the number of levels actually used for the given base.
func EffectiveBase(base uint8) int {
	if base > MaxBase {
		return MaxBase
	}

	return int(base)
}

// EncodeCeil packs x by rounding its log position up to the next level.
//
// Parameters:
//   - x: value to pack, must be non-zero
//   - lmin, lmax: natural-log bounds of the magnitude domain
//   - base: number of positive levels, clamped to 128
//
// Returns:
//   - int8: code in [-(base-1), base-1]
func EncodeCeil(x, lmin, lmax float64, base uint8) int8 {
	b := EffectiveBase(base)
	centered := position(x, lmin, lmax, b)

	return pack(x, centered, math.Ceil(centered), b)
}

// EncodeFloor packs x by truncating its log position, so that the decoded
// magnitude never exceeds |x| inside the calibrated range.
func EncodeFloor(x, lmin, lmax float64, base uint8) int8 {
	b := EffectiveBase(base)
	centered := position(x, lmin, lmax, b)

	return pack(x, centered, math.Trunc(centered), b)
}

// EncodeRoundClosed packs x onto base-1 levels spanning the closed range
// [exp(lmin), exp(lmax)], rounding to the nearest level.
//
// A magnitude of exactly exp(lmax) maps to the top code, which DecodeClosed turns
// back into exp(lmax) without drift.
func EncodeRoundClosed(x, lmin, lmax float64, base uint8) int8 {
	b := EffectiveBase(base)
	centered := position(x, lmin, lmax, b-1)

	return pack(x, centered, math.Round(centered), b)
}

// DecodeOpen unpacks a code produced by EncodeCeil or EncodeFloor.
//
// The result is the lower edge of the code's bucket on the log scale, so it
// recovers the original value only to within one bucket width.
func DecodeOpen(code int8, lmin, lmax float64, base uint8) float64 {
	b := EffectiveBase(base)
	l := lmin + float64(magnitude(code))/float64(b)*(lmax-lmin)

	return withSign(code, math.Exp(l))
}

// DecodeClosed unpacks a code produced by EncodeRoundClosed.
//
// The saturated code ±(base-1) decodes to exactly ±exp(lmax).
func DecodeClosed(code int8, lmin, lmax float64, base uint8) float64 {
	b := EffectiveBase(base)
	m := magnitude(code)

	l := lmin + float64(m)/float64(b-1)*(lmax-lmin)
	if m == b-1 {
		l = lmax
	}

	return withSign(code, math.Exp(l))
}

// position maps |x| onto [0, levels] over the log range. The result is outside
// that interval for magnitudes outside the range, and NaN for degenerate inputs.
func position(x, lmin, lmax float64, levels int) float64 {
	l := math.Log(math.Abs(x))
	return (l - lmin) / (lmax - lmin) * float64(levels)
}

// pack clamps the rounded position into [0, b-1] and applies the sign of x.
// Clamping happens on the float before any integer conversion, so infinities
// and NaN never reach the int8 cast.
func pack(x, centered, rounded float64, b int) int8 {
	var r int
	switch {
	case centered >= float64(b-1):
		r = b - 1
	case !(centered >= 0):
		r = 0
	default:
		r = int(rounded)
	}

	if x < 0 {
		if r == 0 {
			return SmallestNegative
		}

		return int8(-r)
	}

	return int8(r)
}

func magnitude(code int8) int {
	if code < 0 {
		return -int(code)
	}

	return int(code)
}

func withSign(code int8, val float64) float64 {
	if code < 0 {
		return -val
	}

	return val
}
