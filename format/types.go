package format

import "strings"

// CompressionType identifies the payload compression of a snapshot.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

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

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType maps a name as returned by String back to its type,
// ignoring case.
func ParseCompressionType(name string) (CompressionType, bool) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}

	return 0, false
}
