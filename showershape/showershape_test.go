package showershape

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/logintpack/errs"
)

func forwardJet() Jet {
	return Jet{
		Pt:  50,
		Eta: 3.5,
		Phi: 0,
		Constituents: []Candidate{
			{PdgID: 1, Pt: 20, Eta: 3.5, Phi: 0},
			{PdgID: 2, Pt: 10, Eta: 3.6, Phi: 0.2},
			{PdgID: 211, Pt: 100, Eta: 3.4, Phi: 0},
			{PdgID: 1, Pt: 5, Eta: 3.3, Phi: -0.1},
			{PdgID: -1, Pt: 2, Eta: 3.5, Phi: 0.05},
		},
	}
}

func newTestCalculator(t *testing.T, opts ...Option) *Calculator {
	t.Helper()

	calc, err := NewCalculator(opts...)
	require.NoError(t, err)

	return calc
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25.0, cfg.JetPtThreshold)
	assert.Equal(t, 2.9, cfg.JetEtaThreshold)
	assert.Equal(t, 0.175, cfg.TowerEtaWidth)
	assert.Equal(t, 0.175, cfg.TowerPhiWidth)
	assert.Equal(t, 0.7, cfg.VertexRecoEfficiency)
	assert.Equal(t, 0.4, cfg.OffsetPerPileup)
	assert.Equal(t, 0.4, cfg.JetReferenceRadius)
	assert.Equal(t, 10.0, cfg.StripPtThreshold)
	assert.Equal(t, 3.0, cfg.WidthPtThreshold)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"nan threshold", func(c *Config) { c.JetPtThreshold = math.NaN() }},
		{"inf width threshold", func(c *Config) { c.WidthPtThreshold = math.Inf(1) }},
		{"zero tower width", func(c *Config) { c.TowerPhiWidth = 0 }},
		{"zero efficiency", func(c *Config) { c.VertexRecoEfficiency = 0 }},
		{"efficiency above one", func(c *Config) { c.VertexRecoEfficiency = 1.2 }},
		{"negative radius", func(c *Config) { c.JetReferenceRadius = -0.4 }},
		{"negative offset", func(c *Config) { c.OffsetPerPileup = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), errs.ErrInvalidConfig)

			_, err := NewCalculator(WithConfig(cfg))
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}

func TestConfig_PileupOffset(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 0.0, cfg.PileupOffset(0))

	want := 0.4 / (math.Pi * 0.4 * 0.4) * 30 / 0.7 * (0.175 * 0.175)
	require.InDelta(t, want, cfg.PileupOffset(30), 1e-12)
	require.InDelta(t, 2*cfg.PileupOffset(15), cfg.PileupOffset(30), 1e-12)
}

func TestNewCalculator_Options(t *testing.T) {
	calc := newTestCalculator(t,
		WithJetThresholds(30, 3),
		WithTowerSize(0.2, 0.1),
		WithPileup(0.5, 0.8, 0.5),
		WithCandidateThresholds(8, 2),
	)

	cfg := calc.Config()
	assert.Equal(t, 30.0, cfg.JetPtThreshold)
	assert.Equal(t, 3.0, cfg.JetEtaThreshold)
	assert.Equal(t, 0.2, cfg.TowerEtaWidth)
	assert.Equal(t, 0.1, cfg.TowerPhiWidth)
	assert.Equal(t, 0.5, cfg.OffsetPerPileup)
	assert.Equal(t, 0.8, cfg.VertexRecoEfficiency)
	assert.Equal(t, 0.5, cfg.JetReferenceRadius)
	assert.Equal(t, 8.0, cfg.StripPtThreshold)
	assert.Equal(t, 2.0, cfg.WidthPtThreshold)
}

func TestCompute_ForwardJet(t *testing.T) {
	calc := newTestCalculator(t)

	res := calc.Compute(forwardJet(), 0)

	// weights 20/35, 10/35 and 5/35; the pion and the soft candidate are ignored
	assert.Equal(t, 1, res.CentralEtaStripSize)
	assert.Equal(t, 1, res.AdjacentEtaStripsSize)
	assert.InDelta(t, math.Sqrt(0.3/35), res.SigmaEtaEta, 1e-9)
	assert.InDelta(t, math.Sqrt(0.45/35), res.SigmaPhiPhi, 1e-9)
	assert.True(t, res.HasWidths())
}

func TestCompute_NegativeEta(t *testing.T) {
	calc := newTestCalculator(t)

	jet := forwardJet()
	jet.Eta = -jet.Eta
	for i := range jet.Constituents {
		jet.Constituents[i].Eta = -jet.Constituents[i].Eta
	}

	require.Equal(t, calc.Compute(forwardJet(), 0), calc.Compute(jet, 0))
}

func TestCompute_PileupSubtraction(t *testing.T) {
	calc := newTestCalculator(t)
	offset := calc.Config().PileupOffset(40)
	require.Greater(t, offset, 0.1)

	jet := forwardJet()
	// just above the width threshold without pileup, below it with
	jet.Constituents[3].Pt = 3 + offset/2
	// just above the strip threshold without pileup, below it with
	jet.Constituents[1].Pt = 10 + offset/2

	clean := calc.Compute(jet, 0)
	require.Equal(t, 1, clean.AdjacentEtaStripsSize)

	busy := calc.Compute(jet, 40)
	assert.Equal(t, 1, busy.CentralEtaStripSize)
	assert.Equal(t, 0, busy.AdjacentEtaStripsSize)

	// only the first two candidates remain in the widths
	w1 := 20 - offset
	w2 := 10 + offset/2 - offset
	sum := w1 + w2
	etaSq := 0.01 * w2 / sum
	phiSq := 0.04 * w2 / sum
	assert.InDelta(t, math.Sqrt(etaSq), busy.SigmaEtaEta, 1e-9)
	assert.InDelta(t, math.Sqrt(phiSq), busy.SigmaPhiPhi, 1e-9)
}

func TestCompute_NoShape(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name string
		jet  Jet
	}{
		{"pt at threshold", Jet{Pt: 25, Eta: 3.5}},
		{"soft", Jet{Pt: 10, Eta: 4}},
		{"eta at threshold", Jet{Pt: 60, Eta: 2.9}},
		{"central", Jet{Pt: 60, Eta: -1.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jet := tt.jet
			jet.Constituents = forwardJet().Constituents
			require.Equal(t, NoShape, calc.Compute(jet, 10))
		})
	}
}

func TestCompute_MissingWidths(t *testing.T) {
	calc := newTestCalculator(t)

	res := calc.Compute(Jet{Pt: 60, Eta: 3.2}, 5)
	assert.Equal(t, NoShape, res)
	assert.False(t, res.HasWidths())

	// a single candidate on the jet axis has zero spread
	res = calc.Compute(Jet{
		Pt: 60, Eta: 3.2, Phi: 1,
		Constituents: []Candidate{{PdgID: 1, Pt: 40, Eta: 3.2, Phi: 1}},
	}, 0)
	assert.Equal(t, Result{SigmaEtaEta: -1, SigmaPhiPhi: -1, CentralEtaStripSize: 1}, res)

	// all candidates below the width threshold
	res = calc.Compute(Jet{
		Pt: 60, Eta: 3.2,
		Constituents: []Candidate{{PdgID: 2, Pt: 1, Eta: 3.0, Phi: 0.3}},
	}, 0)
	assert.False(t, res.HasWidths())
}

func TestComputeAll(t *testing.T) {
	calc := newTestCalculator(t)

	jets := []Jet{forwardJet(), {Pt: 100, Eta: 0.3}, forwardJet()}
	results := calc.ComputeAll(jets, 12)

	require.Len(t, results, 3)
	assert.Equal(t, calc.Compute(jets[0], 12), results[0])
	assert.Equal(t, NoShape, results[1])
	assert.Equal(t, results[0], results[2])
	assert.Empty(t, calc.ComputeAll(nil, 12))
}

func TestCalculator_Concurrent(t *testing.T) {
	calc := newTestCalculator(t)
	want := calc.Compute(forwardJet(), 20)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, want, calc.Compute(forwardJet(), 20))
			}
		}()
	}
	wg.Wait()
}

func TestDeltaPhi(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.5, 0.2, 0.3},
		{0.2, 0.5, -0.3},
		{3, -3, 6 - 2*math.Pi},
		{-3, 3, 2*math.Pi - 6},
		{math.Pi, -math.Pi, 0},
		{0, math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := DeltaPhi(tt.a, tt.b)
		assert.InDelta(t, tt.want, got, 1e-9, "DeltaPhi(%v, %v)", tt.a, tt.b)
		assert.LessOrEqual(t, math.Abs(got), math.Pi)
	}
}

func BenchmarkComputeAll(b *testing.B) {
	calc, _ := NewCalculator()
	jets := make([]Jet, 32)
	for i := range jets {
		jets[i] = forwardJet()
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = calc.ComputeAll(jets, 30)
	}
}
