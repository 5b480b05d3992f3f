// Package config loads the logintpack command line configuration.
package config

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/arloliu/logintpack/column"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/showershape"
)

// Config is the top-level configuration.
type Config struct {
	Codec       CodecConfig        `koanf:"codec"`
	ShowerShape showershape.Config `koanf:"showershape"`
	Log         LogConfig          `koanf:"log"`
}

// CodecConfig selects the codec used by pack and by packed shower shape output.
type CodecConfig struct {
	LogMin      float64 `koanf:"log_min"`
	LogMax      float64 `koanf:"log_max"`
	Base        int     `koanf:"base"`
	Rounding    string  `koanf:"rounding"`
	Compression string  `koanf:"compression"`
	BigEndian   bool    `koanf:"big_endian"`
}

// LogConfig controls the command line logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Codec: CodecConfig{
			LogMin:      math.Log(1e-2),
			LogMax:      math.Log(1e4),
			Base:        int(logint.DefaultBase),
			Rounding:    "ceil",
			Compression: "none",
		},
		ShowerShape: showershape.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.Codec.Codec(); err != nil {
		return err
	}

	if _, err := c.Codec.compression(); err != nil {
		return err
	}

	if err := c.ShowerShape.Validate(); err != nil {
		return fmt.Errorf("showershape: %w", err)
	}

	return c.Log.Validate()
}

// Range returns the configured log range.
func (c CodecConfig) Range() logint.Range {
	return logint.Range{LogMin: c.LogMin, LogMax: c.LogMax}
}

// Codec builds the configured codec.
func (c CodecConfig) Codec() (logint.Codec, error) {
	if err := c.Range().Validate(); err != nil {
		return logint.Codec{}, fmt.Errorf("codec: %w", err)
	}

	if c.Base < 2 || c.Base > math.MaxUint8 {
		return logint.Codec{}, fmt.Errorf("codec: %w: %d outside [2, 255]", errs.ErrInvalidBase, c.Base)
	}

	rounding, ok := format.ParseRounding(c.Rounding)
	if !ok {
		return logint.Codec{}, fmt.Errorf("codec: %w: %q", errs.ErrInvalidRounding, c.Rounding)
	}

	return logint.New(c.Range(), uint8(c.Base), rounding), nil
}

func (c CodecConfig) compression() (format.CompressionType, error) {
	comp, ok := format.ParseCompression(c.Compression)
	if !ok {
		return 0, fmt.Errorf("codec: %w: %q", errs.ErrInvalidCompression, c.Compression)
	}

	return comp, nil
}

// EncoderOptions translates the section into column encoder options.
func (c CodecConfig) EncoderOptions() ([]column.EncoderOption, error) {
	codec, err := c.Codec()
	if err != nil {
		return nil, err
	}

	comp, err := c.compression()
	if err != nil {
		return nil, err
	}

	opts := []column.EncoderOption{
		column.WithCodec(codec),
		column.WithCompression(comp),
	}
	if c.BigEndian {
		opts = append(opts, column.WithBigEndian())
	}

	return opts, nil
}

// Validate checks the level and format names.
func (c LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log: %w: %w", errs.ErrInvalidConfig, err)
	}

	switch strings.ToLower(c.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("log: %w: unknown format %q", errs.ErrInvalidConfig, c.Format)
	}
}
