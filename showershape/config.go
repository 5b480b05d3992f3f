package showershape

import (
	"fmt"
	"math"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/internal/options"
)

// Config holds the thresholds and detector constants of the calculation.
type Config struct {
	// JetPtThreshold is the jet pt at or below which no shape is computed.
	JetPtThreshold float64 `koanf:"jet_pt_threshold" yaml:"jet_pt_threshold"`
	// JetEtaThreshold is the |eta| at or below which no shape is computed.
	JetEtaThreshold float64 `koanf:"jet_eta_threshold" yaml:"jet_eta_threshold"`
	// TowerEtaWidth is the calorimeter tower size in eta.
	TowerEtaWidth float64 `koanf:"tower_eta_width" yaml:"tower_eta_width"`
	// TowerPhiWidth is the calorimeter tower size in phi.
	TowerPhiWidth float64 `koanf:"tower_phi_width" yaml:"tower_phi_width"`
	// VertexRecoEfficiency is the fraction of pileup vertices that get reconstructed.
	VertexRecoEfficiency float64 `koanf:"vertex_reco_efficiency" yaml:"vertex_reco_efficiency"`
	// OffsetPerPileup is the pt added per pileup interaction inside the reference cone.
	OffsetPerPileup float64 `koanf:"offset_per_pileup" yaml:"offset_per_pileup"`
	// JetReferenceRadius is the radius of the reference cone.
	JetReferenceRadius float64 `koanf:"jet_reference_radius" yaml:"jet_reference_radius"`
	// StripPtThreshold is the minimum subtracted pt of a constituent counted in a strip.
	StripPtThreshold float64 `koanf:"strip_pt_threshold" yaml:"strip_pt_threshold"`
	// WidthPtThreshold is the minimum subtracted pt of a constituent used in the widths.
	WidthPtThreshold float64 `koanf:"width_pt_threshold" yaml:"width_pt_threshold"`
}

// DefaultConfig returns the standard forward calorimeter settings.
func DefaultConfig() Config {
	return Config{
		JetPtThreshold:       25,
		JetEtaThreshold:      2.9,
		TowerEtaWidth:        0.175,
		TowerPhiWidth:        0.175,
		VertexRecoEfficiency: 0.7,
		OffsetPerPileup:      0.4,
		JetReferenceRadius:   0.4,
		StripPtThreshold:     10,
		WidthPtThreshold:     3,
	}
}

// Validate checks that every value is finite and that the geometry is usable.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"jet_pt_threshold", c.JetPtThreshold},
		{"jet_eta_threshold", c.JetEtaThreshold},
		{"tower_eta_width", c.TowerEtaWidth},
		{"tower_phi_width", c.TowerPhiWidth},
		{"vertex_reco_efficiency", c.VertexRecoEfficiency},
		{"offset_per_pileup", c.OffsetPerPileup},
		{"jet_reference_radius", c.JetReferenceRadius},
		{"strip_pt_threshold", c.StripPtThreshold},
		{"width_pt_threshold", c.WidthPtThreshold},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", errs.ErrInvalidConfig, f.name)
		}
	}

	if c.TowerEtaWidth <= 0 || c.TowerPhiWidth <= 0 {
		return fmt.Errorf("%w: tower widths must be positive", errs.ErrInvalidConfig)
	}

	if c.VertexRecoEfficiency <= 0 || c.VertexRecoEfficiency > 1 {
		return fmt.Errorf("%w: vertex_reco_efficiency %v outside (0, 1]", errs.ErrInvalidConfig, c.VertexRecoEfficiency)
	}

	if c.JetReferenceRadius <= 0 {
		return fmt.Errorf("%w: jet_reference_radius must be positive", errs.ErrInvalidConfig)
	}

	if c.OffsetPerPileup < 0 {
		return fmt.Errorf("%w: offset_per_pileup must not be negative", errs.ErrInvalidConfig)
	}

	return nil
}

// PileupOffset returns the pt subtracted from each constituent for nPV
// reconstructed primary vertices: the offset per pileup interaction scaled from
// the reference cone to one tower, corrected for vertex reconstruction efficiency.
func (c Config) PileupOffset(nPV int) float64 {
	return c.OffsetPerPileup / (math.Pi * c.JetReferenceRadius * c.JetReferenceRadius) *
		float64(nPV) / c.VertexRecoEfficiency * (c.TowerEtaWidth * c.TowerPhiWidth)
}

// Option configures a Calculator.
type Option = options.Option[*Config]

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return options.NoError(func(c *Config) {
		*c = cfg
	})
}

// WithJetThresholds sets the jet pt and |eta| thresholds.
func WithJetThresholds(pt, eta float64) Option {
	return options.NoError(func(c *Config) {
		c.JetPtThreshold = pt
		c.JetEtaThreshold = eta
	})
}

// WithTowerSize sets the calorimeter tower size.
func WithTowerSize(etaWidth, phiWidth float64) Option {
	return options.NoError(func(c *Config) {
		c.TowerEtaWidth = etaWidth
		c.TowerPhiWidth = phiWidth
	})
}

// WithPileup sets the pileup subtraction constants.
func WithPileup(offsetPerPileup, vertexRecoEfficiency, referenceRadius float64) Option {
	return options.NoError(func(c *Config) {
		c.OffsetPerPileup = offsetPerPileup
		c.VertexRecoEfficiency = vertexRecoEfficiency
		c.JetReferenceRadius = referenceRadius
	})
}

// WithCandidateThresholds sets the constituent pt thresholds for strips and widths.
func WithCandidateThresholds(strip, width float64) Option {
	return options.NoError(func(c *Config) {
		c.StripPtThreshold = strip
		c.WidthPtThreshold = width
	})
}
