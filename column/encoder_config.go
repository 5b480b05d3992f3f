package column

import (
	"fmt"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/internal/options"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

// EncoderConfig holds the column header an encoder is building.
type EncoderConfig struct {
	header *section.ColumnHeader
}

func newEncoderConfig(r logint.Range) *EncoderConfig {
	return &EncoderConfig{
		header: section.NewColumnHeader(r, logint.DefaultBase),
	}
}

func (c *EncoderConfig) setBase(base uint8) error {
	if logint.EffectiveBase(base) < 2 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBase, base)
	}
	c.header.Base = base

	return nil
}

func (c *EncoderConfig) setRounding(r format.Rounding) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRounding, r)
	}
	c.header.Flag.SetRounding(r)

	return nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

func (c *EncoderConfig) setBigEndian(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithBase sets the number of positive levels. Values above 128 are stored as
// given and clamped when used; values whose effective base is below 2 are rejected.
func WithBase(base uint8) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setBase(base)
	})
}

// WithRounding selects the encode policy. RoundingCeil is the default.
func WithRounding(r format.Rounding) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setRounding(r)
	})
}

// WithCompression selects the payload compression. CompressionNone is the default.
// Short columns often do not shrink; Finish then stores them uncompressed.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian stores header fields little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian stores header fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(true)
	})
}

// WithCodec copies base and rounding from an existing codec.
func WithCodec(codec logint.Codec) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if codec.Base != 0 {
			if err := c.setBase(codec.Base); err != nil {
				return err
			}
		}
		if codec.Rounding != 0 {
			return c.setRounding(codec.Rounding)
		}

		return nil
	})
}
