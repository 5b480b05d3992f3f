package column

import (
	"fmt"
	"math"

	"github.com/arloliu/logintpack/compress"
	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/format"
	"github.com/arloliu/logintpack/internal/hash"
	"github.com/arloliu/logintpack/internal/options"
	"github.com/arloliu/logintpack/internal/pool"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

// MaxColumnLength is the maximum number of values in a single column.
const MaxColumnLength = math.MaxInt32

// Encoder packs values into a Column.
//
// An Encoder is not safe for concurrent use. After Finish it rejects every call
// with ErrEncoderFinished.
type Encoder struct {
	*EncoderConfig
	quantizer    logint.Codec
	payloadCodec compress.Codec
	buf          *pool.ByteBuffer
}

// NewEncoder creates an encoder for values calibrated to r.
//
// Parameters:
//   - r: log range of the column, must be finite with LogMin < LogMax
//   - opts: base, rounding, compression and byte order options
//
// Returns:
//   - *Encoder: encoder ready for AddValue calls
//   - error: ErrInvalidRange or an option error
func NewEncoder(r logint.Range, opts ...EncoderOption) (*Encoder, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	config := newEncoderConfig(r)
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	payloadCodec, err := compress.CreateCodec(config.header.Flag.CompressionType(), "codes")
	if err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		quantizer:     config.header.Codec(),
		payloadCodec:  payloadCodec,
		buf:           pool.GetColumnBuffer(),
	}, nil
}

// Codec returns the quantizer the encoder packs with.
func (e *Encoder) Codec() logint.Codec {
	return e.quantizer
}

// Len returns the number of values added so far.
func (e *Encoder) Len() int {
	if e.buf == nil {
		return int(e.header.Count)
	}

	return e.buf.Len()
}

// AddValue packs a single value.
//
// Returns:
//   - error: ErrZeroValue, ErrNaNValue, ErrTooManyValues or ErrEncoderFinished
func (e *Encoder) AddValue(v float64) error {
	if err := e.checkWritable(1); err != nil {
		return err
	}

	if err := checkValue(v); err != nil {
		return err
	}

	_ = e.buf.WriteByte(byte(e.quantizer.Encode(v)))

	return nil
}

// AddValues packs a slice of values. The slice is validated first, so on error
// nothing is added.
func (e *Encoder) AddValues(values []float64) error {
	if err := e.checkWritable(len(values)); err != nil {
		return err
	}

	for i, v := range values {
		if err := checkValue(v); err != nil {
			return fmt.Errorf("%w at index %d", err, i)
		}
	}

	e.buf.Grow(len(values))
	for _, v := range values {
		_ = e.buf.WriteByte(byte(e.quantizer.Encode(v)))
	}

	return nil
}

// AddCode appends a code that was packed elsewhere with the same codec.
//
// Returns:
//   - error: ErrCodeOutOfRange if |code| exceeds base-1
func (e *Encoder) AddCode(code int8) error {
	if err := e.checkWritable(1); err != nil {
		return err
	}

	if code > e.quantizer.MaxCode() || code < e.quantizer.MinCode() {
		return fmt.Errorf("%w: %d outside [%d, %d]", errs.ErrCodeOutOfRange,
			code, e.quantizer.MinCode(), e.quantizer.MaxCode())
	}

	_ = e.buf.WriteByte(byte(code))

	return nil
}

// Finish seals the column: it computes the checksum over the raw codes,
// compresses them and prepends the header. When compression does not make the
// payload smaller the codes are stored as is and the header records
// CompressionNone. The encoder cannot be used afterwards.
//
// Returns:
//   - Column: the encoded column
//   - error: ErrNoValuesAdded, ErrEncoderFinished or a compression error
func (e *Encoder) Finish() (Column, error) {
	if e.buf == nil {
		return Column{}, errs.ErrEncoderFinished
	}

	raw := e.buf.Bytes()
	if len(raw) == 0 {
		return Column{}, errs.ErrNoValuesAdded
	}

	payload, err := e.payloadCodec.Compress(raw)
	if err != nil {
		return Column{}, fmt.Errorf("failed to compress codes: %w", err)
	}

	if len(payload) >= len(raw) && e.header.Flag.CompressionType() != format.CompressionNone {
		payload = raw
		e.header.Flag.SetCompression(format.CompressionNone)
	}

	e.header.Count = uint32(len(raw))
	e.header.PayloadSize = uint32(len(payload))
	e.header.Checksum = hash.Checksum(raw)

	data := make([]byte, 0, section.ColumnHeaderSize+len(payload))
	data = e.header.AppendTo(data)
	data = append(data, payload...)

	// payload may alias the pooled buffer when compression is off, so release it last
	pool.PutColumnBuffer(e.buf)
	e.buf = nil

	return Column{header: *e.header, data: data}, nil
}

func (e *Encoder) checkWritable(n int) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	if e.buf.Len()+n > MaxColumnLength {
		return fmt.Errorf("%w: column is limited to %d values", errs.ErrTooManyValues, MaxColumnLength)
	}

	return nil
}

func checkValue(v float64) error {
	if v == 0 {
		return errs.ErrZeroValue
	}

	if math.IsNaN(v) {
		return errs.ErrNaNValue
	}

	return nil
}
