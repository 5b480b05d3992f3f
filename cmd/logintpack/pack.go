package main

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/logintpack/column"
	"github.com/arloliu/logintpack/compress"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/internal/config"
)

type packFlags struct {
	out         string
	logMin      float64
	logMax      float64
	base        int
	rounding    string
	compression string
}

func newPackCmd(a *app) *cobra.Command {
	var flags packFlags

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Pack newline-separated values into a column",
		Long: `Pack reads one value per line from a file or stdin and writes an encoded
column. Blank lines and lines starting with '#' are skipped. Zero and NaN
values have no logarithm and are rejected.

Examples:
  # Pack a file with the configured codec
  logintpack pack pts.txt --out pts.lip

  # Pack stdin with closed rounding over [1e-3, 1]
  cat widths.txt | logintpack pack --log-min -6.9078 --log-max 0 --rounding closed --out widths.lip`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPack(cmd, args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&flags.logMin, "log-min", 0, "override codec.log_min")
	cmd.Flags().Float64Var(&flags.logMax, "log-max", 0, "override codec.log_max")
	cmd.Flags().IntVar(&flags.base, "base", 0, "override codec.base")
	cmd.Flags().StringVar(&flags.rounding, "rounding", "", "override codec.rounding (ceil, floor, closed)")
	cmd.Flags().StringVar(&flags.compression, "compression", "", "override codec.compression (none, zstd, s2, lz4)")

	return cmd
}

func (a *app) runPack(cmd *cobra.Command, args []string, flags *packFlags) error {
	codecCfg := a.cfg.Codec
	applyCodecFlags(cmd, &codecCfg, flags)

	opts, err := codecCfg.EncoderOptions()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	content, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	values, err := parseValues(content)
	if err != nil {
		return err
	}

	enc, err := column.NewEncoder(codecCfg.Range(), opts...)
	if err != nil {
		return err
	}

	if err := enc.AddValues(values); err != nil {
		return err
	}

	col, err := enc.Finish()
	if err != nil {
		return err
	}

	header := col.Header()
	stats := compress.Stats{
		Algorithm:      header.Flag.CompressionType(),
		OriginalSize:   int(header.Count),
		CompressedSize: int(header.PayloadSize),
	}
	a.logger.Info("packed column",
		zap.Int("values", col.Len()),
		zap.Int("bytes", col.Size()),
		zap.Stringer("codec", col.Codec()),
		zap.Stringer("compression", stats.Algorithm),
		zap.Float64("space_savings", stats.SpaceSavings()),
	)

	if flags.out == "" {
		_, err = cmd.OutOrStdout().Write(col.Bytes())
		return err
	}

	if err := os.WriteFile(flags.out, col.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.out, err)
	}

	return nil
}

func applyCodecFlags(cmd *cobra.Command, c *config.CodecConfig, flags *packFlags) {
	if cmd.Flags().Changed("log-min") {
		c.LogMin = flags.logMin
	}
	if cmd.Flags().Changed("log-max") {
		c.LogMax = flags.logMax
	}
	if cmd.Flags().Changed("base") {
		c.Base = flags.base
	}
	if cmd.Flags().Changed("rounding") {
		c.Rounding = flags.rounding
	}
	if cmd.Flags().Changed("compression") {
		c.Compression = flags.compression
	}
}

// parseValues parses one float per line, reporting failures with 1-based line numbers.
func parseValues(content []byte) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		switch {
		case v == 0:
			return nil, fmt.Errorf("line %d: %w", line, errs.ErrZeroValue)
		case math.IsNaN(v):
			return nil, fmt.Errorf("line %d: %w", line, errs.ErrNaNValue)
		}

		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, errs.ErrNoValuesAdded
	}

	return values, nil
}
