package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/logintpack/compress"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the header of a packed column or column set",
		Long: `Inspect prints the codec parameters, sizes and checksum of a packed column,
or of every column of a set, and verifies the payload.

Example:
  logintpack inspect pts.lip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args[0])
		},
	}
}

func (a *app) runInspect(cmd *cobra.Command, name string) error {
	data, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	cols, err := openColumns(data)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, nc := range cols {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeColumnInfo(w, nc)
	}

	return w.Flush()
}

func writeColumnInfo(w io.Writer, nc namedColumn) {
	h := nc.col.Header()
	codec := nc.col.Codec()
	r := h.Range()

	byteOrder := "little-endian"
	if h.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}

	stats := compress.Stats{
		Algorithm:      h.Flag.CompressionType(),
		OriginalSize:   int(h.Count),
		CompressedSize: int(h.PayloadSize),
	}

	status := "ok"
	if _, err := nc.col.Decoder(); err != nil {
		status = err.Error()
	}

	if nc.name != "" {
		fmt.Fprintf(w, "column:\t%s\n", nc.name)
	}
	fmt.Fprintf(w, "byte order:\t%s\n", byteOrder)
	fmt.Fprintf(w, "rounding:\t%s\n", codec.Rounding)
	fmt.Fprintf(w, "base:\t%d (effective %d)\n", h.Base, codec.EffectiveBase())
	fmt.Fprintf(w, "log range:\t[%g, %g]\n", r.LogMin, r.LogMax)
	fmt.Fprintf(w, "magnitude range:\t[%g, %g]\n", r.MinMagnitude(), r.MaxMagnitude())
	fmt.Fprintf(w, "precision:\t%.4g%%\n", codec.Precision()*100)
	fmt.Fprintf(w, "values:\t%d\n", h.Count)
	fmt.Fprintf(w, "compression:\t%s (%d -> %d bytes, %.1f%% saved)\n",
		stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
	fmt.Fprintf(w, "checksum:\t%#016x\n", h.Checksum)
	fmt.Fprintf(w, "status:\t%s\n", status)
}
