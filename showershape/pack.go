package showershape

import (
	"math"

	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/logint"
)

// SentinelCode marks a width that was not computed. It lies outside the code
// space of every codec, whose codes never go below -127.
const SentinelCode int8 = math.MinInt8

// Packed is the compact form of a Result.
type Packed struct {
	SigmaEtaEta           int8
	SigmaPhiPhi           int8
	CentralEtaStripSize   int
	AdjacentEtaStripsSize int
}

// WidthCodec returns the codec used for shower widths: closed rounding over
// [1e-3, 1], which reproduces both endpoints exactly.
func WidthCodec() logint.Codec {
	return logint.New(logint.NewRange(1e-3, 1), logint.DefaultBase, format.RoundingClosed)
}

// Pack packs both widths with codec. Missing widths become SentinelCode.
func (r Result) Pack(codec logint.Codec) Packed {
	return Packed{
		SigmaEtaEta:           packWidth(codec, r.SigmaEtaEta),
		SigmaPhiPhi:           packWidth(codec, r.SigmaPhiPhi),
		CentralEtaStripSize:   r.CentralEtaStripSize,
		AdjacentEtaStripsSize: r.AdjacentEtaStripsSize,
	}
}

// Unpack restores a Result with the codec used by Pack.
func (p Packed) Unpack(codec logint.Codec) Result {
	return Result{
		SigmaEtaEta:           unpackWidth(codec, p.SigmaEtaEta),
		SigmaPhiPhi:           unpackWidth(codec, p.SigmaPhiPhi),
		CentralEtaStripSize:   p.CentralEtaStripSize,
		AdjacentEtaStripsSize: p.AdjacentEtaStripsSize,
	}
}

func packWidth(codec logint.Codec, w float64) int8 {
	if w < 0 || math.IsNaN(w) {
		return SentinelCode
	}

	return codec.Encode(w)
}

func unpackWidth(codec logint.Codec, code int8) float64 {
	if code == SentinelCode {
		return -1
	}

	return codec.Decode(code)
}
