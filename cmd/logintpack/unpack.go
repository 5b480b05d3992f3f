package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/logintpack/column"
	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/section"
)

// namedColumn is a column read from a file; name is empty for a bare column.
type namedColumn struct {
	name string
	col  column.Column
}

// openColumns accepts either a single column or a column set.
func openColumns(data []byte) ([]namedColumn, error) {
	if len(data) < 2 {
		return nil, errs.ErrInvalidHeaderSize
	}

	magic := endian.GetLittleEndianEngine().Uint16(data[0:2]) & section.MagicNumberMask
	switch magic {
	case section.MagicColumnV1Opt:
		col, err := column.ParseColumn(data)
		if err != nil {
			return nil, err
		}

		return []namedColumn{{col: col}}, nil
	case section.MagicSetV1Opt:
		set, err := column.NewSetDecoder(data)
		if err != nil {
			return nil, err
		}

		cols := make([]namedColumn, 0, set.Len())
		for _, name := range set.Names() {
			col, ok := set.Column(name)
			if !ok {
				return nil, fmt.Errorf("column %q: %w", name, errs.ErrColumnNotFound)
			}
			cols = append(cols, namedColumn{name: name, col: col})
		}

		return cols, nil
	default:
		return nil, fmt.Errorf("%w: %#04x", errs.ErrInvalidMagicNumber, magic)
	}
}

func newUnpackCmd(a *app) *cobra.Command {
	var codes bool

	cmd := &cobra.Command{
		Use:   "unpack <file>",
		Short: "Print the values of a packed column or column set",
		Long: `Unpack verifies a packed column, or every column of a set, and prints one
decoded value per line. Columns of a set are prefixed with their name.

Examples:
  logintpack unpack pts.lip
  logintpack unpack --codes pts.lip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUnpack(cmd, args[0], codes)
		},
	}

	cmd.Flags().BoolVar(&codes, "codes", false, "print raw codes instead of values")

	return cmd
}

func (a *app) runUnpack(cmd *cobra.Command, name string, codes bool) error {
	data, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	cols, err := openColumns(data)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, nc := range cols {
		dec, err := nc.col.Decoder()
		if err != nil {
			if nc.name != "" {
				return fmt.Errorf("column %q: %w", nc.name, err)
			}

			return err
		}

		a.logger.Debug("unpacking column", zap.String("name", nc.name), zap.Int("values", dec.Len()))

		prefix := ""
		if nc.name != "" {
			prefix = nc.name + "\t"
		}

		if codes {
			for _, c := range dec.Codes() {
				fmt.Fprintf(w, "%s%d\n", prefix, c)
			}

			continue
		}

		for _, v := range dec.All() {
			fmt.Fprintf(w, "%s%s\n", prefix, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	return w.Flush()
}
