// Package showershape computes shower shape observables of forward calorimeter
// jets and packs them with the logint codec.
//
// For every jet above the pt and |eta| thresholds, the calculator looks at the
// forward calorimeter constituents (|pdgId| <= 2), subtracts a pileup offset
// proportional to the number of primary vertices and derives:
//
//   - SigmaEtaEta and SigmaPhiPhi: pt-weighted widths of the constituents around
//     the jet axis
//   - CentralEtaStripSize: constituents within half a tower of the jet in phi
//   - AdjacentEtaStripsSize: constituents in the two neighbouring phi strips
//
// Jets outside the forward region, and widths that cannot be computed, carry -1
// widths. Widths are small positive numbers spanning several decades, which is
// what the closed rounding family of the codec is meant for:
//
//	calc, err := showershape.NewCalculator()
//	if err != nil {
//	    return err
//	}
//	results := calc.ComputeAll(jets, nPV)
//	for _, r := range results {
//	    packed := r.Pack(showershape.WidthCodec())
//	    // store packed.SigmaEtaEta, packed.SigmaPhiPhi
//	}
package showershape
