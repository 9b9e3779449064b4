package compress

import (
	"fmt"

	"github.com/arloliu/uvcval/format"
)

// Compressor compresses a snapshot payload.
//
// The returned slice is owned by the caller. Implementations other than the
// no-op codec never modify or retain the input.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input or input produced by another algorithm yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// backed by pooled encoders and are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs whose compressed form does not
// record the decoded length, so the caller has to supply it.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// DecompressSize restores data whose decoded length is known to be size.
// Codecs that implement SizedDecompressor decode straight into a buffer of
// that size; the others fall back to Decompress.
func DecompressSize(d Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSize(data, size)
	}

	return d.Decompress(data)
}

// CreateCodec returns a new Codec for compressionType.
//
// target names the payload being configured and only appears in the error.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
