package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/logintpack/showershape"
)

// jetFile is the YAML input of the showershape command.
type jetFile struct {
	Events []event `yaml:"events"`
}

type event struct {
	NumPrimaryVertices int               `yaml:"n_pv"`
	Jets               []showershape.Jet `yaml:"jets"`
}

func newShowerShapeCmd(a *app) *cobra.Command {
	var packed bool

	cmd := &cobra.Command{
		Use:   "showershape <jets.yaml>",
		Short: "Compute forward jet shower shapes",
		Long: `Showershape reads events of jets with their constituents from YAML and prints
the shower shape observables of every jet. Thresholds come from the
showershape configuration section.

Input format:
  events:
    - n_pv: 32
      jets:
        - pt: 48.2
          eta: 3.4
          phi: 1.2
          constituents:
            - {pdg_id: 1, pt: 20.5, eta: 3.41, phi: 1.18}

Example:
  logintpack showershape --packed jets.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShowerShape(cmd, args[0], packed)
		},
	}

	cmd.Flags().BoolVar(&packed, "packed", false, "also print the widths packed with the closed-rounding width codec")

	return cmd
}

func (a *app) runShowerShape(cmd *cobra.Command, name string, packed bool) error {
	content, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	var input jetFile
	if err := yaml.Unmarshal(content, &input); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	calc, err := showershape.NewCalculator(showershape.WithConfig(a.cfg.ShowerShape))
	if err != nil {
		return err
	}

	codec := showershape.WidthCodec()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "event\tjet\tpt\teta\tsigma_eta_eta\tsigma_phi_phi\tcentral\tadjacent")
	if packed {
		fmt.Fprint(w, "\tcode_eta_eta\tcode_phi_phi")
	}
	fmt.Fprintln(w)

	computed := 0
	for i, ev := range input.Events {
		results := calc.ComputeAll(ev.Jets, ev.NumPrimaryVertices)
		for j, res := range results {
			jet := ev.Jets[j]
			if res.HasWidths() {
				computed++
			}

			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%d\t%d", i, j,
				formatFloat(jet.Pt), formatFloat(jet.Eta),
				formatFloat(res.SigmaEtaEta), formatFloat(res.SigmaPhiPhi),
				res.CentralEtaStripSize, res.AdjacentEtaStripsSize)
			if packed {
				p := res.Pack(codec)
				fmt.Fprintf(w, "\t%d\t%d", p.SigmaEtaEta, p.SigmaPhiPhi)
			}
			fmt.Fprintln(w)
		}
	}

	a.logger.Info("computed shower shapes",
		zap.Int("events", len(input.Events)),
		zap.Int("with_widths", computed),
	)

	return w.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
