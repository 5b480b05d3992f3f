// Package errs defines the sentinel errors returned by logintpack packages.
//
// The quantization functions in the logint package never return errors; these
// values are produced by the validating layers built on top of them (codec
// validation, column encoders and decoders, column sets).
//
// Callers should compare with errors.Is, since most errors are wrapped with
// additional context:
//
//	if errors.Is(err, errs.ErrChecksumMismatch) {
//	    // stored codes are corrupted
//	}
package errs

import "errors"

// Codec parameter errors.
var (
	// ErrInvalidRange is returned when a log range is not finite or LogMin >= LogMax.
	ErrInvalidRange = errors.New("invalid log range")
	// ErrInvalidBase is returned when the effective base is below 2.
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidRounding is returned for an unknown rounding policy.
	ErrInvalidRounding = errors.New("invalid rounding")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression")
)

// Column encoder errors.
var (
	// ErrZeroValue is returned when a zero value is added; its logarithm is undefined.
	ErrZeroValue = errors.New("zero value cannot be log-packed")
	// ErrNaNValue is returned when a NaN value is added.
	ErrNaNValue = errors.New("NaN value cannot be log-packed")
	// ErrCodeOutOfRange is returned when a raw code exceeds ±(base-1).
	ErrCodeOutOfRange = errors.New("code out of range")
	// ErrTooManyValues is returned when a column exceeds its maximum length.
	ErrTooManyValues = errors.New("too many values")
	// ErrNoValuesAdded is returned when Finish is called on an empty encoder.
	ErrNoValuesAdded = errors.New("no values added")
	// ErrEncoderFinished is returned when an encoder is used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// Column decoder errors.
var (
	// ErrInvalidHeaderSize is returned when the data is shorter than a header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagicNumber is returned when the header magic does not match.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidHeaderFlags is returned when header flags hold unknown values.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrInvalidPayloadLength is returned when the payload size disagrees with the header.
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	// ErrChecksumMismatch is returned when the stored checksum does not match the codes.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Column set errors.
var (
	// ErrInvalidColumnName is returned for an empty column name.
	ErrInvalidColumnName = errors.New("invalid column name")
	// ErrDuplicateColumn is returned when the same column name is added twice.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrHashCollision is returned when two different names hash to the same id.
	ErrHashCollision = errors.New("column name hash collision")
	// ErrNoColumnsAdded is returned when Finish is called on an empty set encoder.
	ErrNoColumnsAdded = errors.New("no columns added")
	// ErrTooManyColumns is returned when a set exceeds its maximum column count.
	ErrTooManyColumns = errors.New("too many columns")
	// ErrInvalidIndexEntrySize is returned when an index entry slice has the wrong size.
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	// ErrColumnNotFound is returned when a set has no column with the requested name or id.
	ErrColumnNotFound = errors.New("column not found")
	// ErrOffsetOutOfRange is returned when an index entry points outside the data.
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)
