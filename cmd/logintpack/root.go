package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/logintpack/internal/config"
	"github.com/arloliu/logintpack/internal/logging"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "logintpack",
		Short: "Pack floating point observables into 8-bit logarithmic codes",
		Long: `logintpack quantizes values onto a calibrated natural-log scale and stores
them as self-describing columns of signed 8-bit codes.

Configuration is read from the file given with --config, then overridden by
LOGINTPACK_* environment variables (e.g. LOGINTPACK_CODEC_LOG_MAX=9.2).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(newPackCmd(a))
	rootCmd.AddCommand(newUnpackCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newShowerShapeCmd(a))

	return rootCmd
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Float64("log_min", cfg.Codec.LogMin),
		zap.Float64("log_max", cfg.Codec.LogMax),
		zap.Int("base", cfg.Codec.Base),
		zap.String("rounding", cfg.Codec.Rounding),
		zap.String("compression", cfg.Codec.Compression),
	)

	return nil
}

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}

		return content, nil
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return content, nil
}
