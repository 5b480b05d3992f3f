package format

import "strings"

type (
	Rounding        uint8
	CompressionType uint8
)

const (
	RoundingCeil   Rounding = 0x1 // RoundingCeil rounds the log position up, decoded with the open rule.
	RoundingFloor  Rounding = 0x2 // RoundingFloor truncates the log position, decoded with the open rule.
	RoundingClosed Rounding = 0x3 // RoundingClosed rounds to nearest over base-1 levels, decoded with the closed rule.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (r Rounding) String() string {
	switch r {
	case RoundingCeil:
		return "Ceil"
	case RoundingFloor:
		return "Floor"
	case RoundingClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// IsClosed reports whether codes produced with r must be decoded with the closed rule.
func (r Rounding) IsClosed() bool {
	return r == RoundingClosed
}

// IsValid reports whether r is one of the defined rounding policies.
func (r Rounding) IsValid() bool {
	switch r {
	case RoundingCeil, RoundingFloor, RoundingClosed:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// ParseRounding converts a case-insensitive name such as "ceil" into a Rounding.
// The second return value is false when the name is not recognized.
func ParseRounding(name string) (Rounding, bool) {
	switch strings.ToLower(name) {
	case "ceil":
		return RoundingCeil, true
	case "floor":
		return RoundingFloor, true
	case "closed":
		return RoundingClosed, true
	default:
		return 0, false
	}
}

// ParseCompression converts a case-insensitive name such as "zstd" into a CompressionType.
// The second return value is false when the name is not recognized.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
