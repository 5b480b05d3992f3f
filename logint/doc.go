// Package logint implements a signed logarithmic quantizer that packs a real value
// into a single signed byte and unpacks it again.
//
// A value x is located on a natural-log scale calibrated by a Range
// (LogMin, LogMax) and bucketed into base positive levels. The sign of the code
// carries the sign of x. Magnitudes below exp(LogMin) collapse into the smallest
// bucket and magnitudes at or above exp(LogMax) saturate at ±(base-1); nothing is
// rejected.
//
// # Encoding Families
//
// Two families share the same clamping and sign rules:
//
//   - Open range: EncodeCeil and EncodeFloor spread base levels over the range and
//     are inverted by DecodeOpen. Ceil never underestimates the magnitude of a value
//     inside the range, Floor never overestimates it.
//   - Closed range: EncodeRoundClosed spreads base-1 levels, rounds to the nearest
//     level and is inverted by DecodeClosed, which maps the top code back to exactly
//     exp(LogMax). Use it when the endpoint magnitude must survive a round trip
//     bit for bit.
//
// # Code Space
//
// Codes lie in [-(base-1), base-1]. Code 0 is the smallest positive bucket; the
// smallest negative bucket is -1, never -0. As a consequence no code decodes to
// -Decode(0), and the negative side has one bucket fewer than the positive side.
//
// # Contract
//
// The functions are pure, allocation free and safe for concurrent use. They never
// panic and never return errors: a base above 128 is clamped to 128, and inputs the
// codec is not defined for (x == 0, LogMin >= LogMax, base < 2) still produce some
// code without signalling. Callers that want validation can use Codec.Validate or
// the column package, which rejects such inputs before they reach the codec.
//
// Example:
//
//	r := logint.NewRange(1, 100)
//	code := logint.EncodeCeil(10, r.LogMin, r.LogMax, logint.DefaultBase) // 64
//	x := logint.DecodeOpen(code, r.LogMin, r.LogMax, logint.DefaultBase)  // ≈ 10
package logint
