package showershape

import (
	"math"

	"github.com/arloliu/logintpack/internal/options"
)

// Candidate is a jet constituent.
type Candidate struct {
	PdgID int     `yaml:"pdg_id"`
	Pt    float64 `yaml:"pt"`
	Eta   float64 `yaml:"eta"`
	Phi   float64 `yaml:"phi"`
}

// Jet is a reconstructed jet with its constituents.
type Jet struct {
	Pt           float64     `yaml:"pt"`
	Eta          float64     `yaml:"eta"`
	Phi          float64     `yaml:"phi"`
	Constituents []Candidate `yaml:"constituents"`
}

// Result holds the shower shape observables of one jet.
type Result struct {
	SigmaEtaEta           float64
	SigmaPhiPhi           float64
	CentralEtaStripSize   int
	AdjacentEtaStripsSize int
}

// NoShape is the result of jets that are not forward enough or too soft.
var NoShape = Result{SigmaEtaEta: -1, SigmaPhiPhi: -1}

// HasWidths reports whether both widths were computed.
func (r Result) HasWidths() bool {
	return r.SigmaEtaEta >= 0 && r.SigmaPhiPhi >= 0
}

// Calculator computes shower shapes with a fixed configuration. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator from DefaultConfig and the given options.
//
// Returns:
//   - error: ErrInvalidConfig if the resulting configuration is unusable
func NewCalculator(opts ...Option) (*Calculator, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{cfg: cfg}, nil
}

// Config returns the configuration in use.
func (c *Calculator) Config() Config {
	return c.cfg
}

// ComputeAll computes the shapes of all jets of one event.
func (c *Calculator) ComputeAll(jets []Jet, nPV int) []Result {
	offset := c.cfg.PileupOffset(nPV)

	results := make([]Result, len(jets))
	for i := range jets {
		results[i] = c.compute(&jets[i], offset)
	}

	return results
}

// Compute computes the shape of a single jet in an event with nPV primary vertices.
func (c *Calculator) Compute(jet Jet, nPV int) Result {
	return c.compute(&jet, c.cfg.PileupOffset(nPV))
}

func (c *Calculator) compute(jet *Jet, offset float64) Result {
	if jet.Pt <= c.cfg.JetPtThreshold || math.Abs(jet.Eta) <= c.cfg.JetEtaThreshold {
		return NoShape
	}

	sumPt := 0.0
	for _, cand := range jet.Constituents {
		if !isForwardCandidate(cand) {
			continue
		}
		if ptSub := cand.Pt - offset; ptSub >= c.cfg.WidthPtThreshold {
			sumPt += ptSub
		}
	}

	var (
		res                  Result
		etaSq, phiSq, sumWgt float64
	)
	for _, cand := range jet.Constituents {
		if !isForwardCandidate(cand) {
			continue
		}

		deta := math.Abs(cand.Eta - jet.Eta)
		dphi := math.Abs(DeltaPhi(cand.Phi, jet.Phi))
		ptSub := cand.Pt - offset

		if ptSub >= c.cfg.StripPtThreshold {
			switch {
			case dphi <= c.cfg.TowerPhiWidth*0.5:
				res.CentralEtaStripSize++
			case dphi <= c.cfg.TowerPhiWidth*1.5:
				res.AdjacentEtaStripsSize++
			}
		}

		if ptSub >= c.cfg.WidthPtThreshold && sumPt > 0 {
			w := ptSub / sumPt
			etaSq += deta * deta * w
			phiSq += dphi * dphi * w
			sumWgt += w
		}
	}

	if sumWgt > 0 && etaSq > 0 && phiSq > 0 {
		res.SigmaEtaEta = math.Sqrt(etaSq / sumWgt)
		res.SigmaPhiPhi = math.Sqrt(phiSq / sumWgt)
	} else {
		res.SigmaEtaEta = -1
		res.SigmaPhiPhi = -1
	}

	return res
}

// hadronic and electromagnetic forward calorimeter candidates
func isForwardCandidate(c Candidate) bool {
	return c.PdgID >= -2 && c.PdgID <= 2
}

// DeltaPhi returns a-b wrapped into [-π, π].
func DeltaPhi(a, b float64) float64 {
	d := math.Remainder(a-b, 2*math.Pi)
	if d == -math.Pi {
		return math.Pi
	}

	return d
}
