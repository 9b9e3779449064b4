// Package compress provides the payload codecs used by snapshot archives.
//
// Every codec implements Codec:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// The codec is selected by format.CompressionType:
//   - CompressionNone: payload stored as is (NoOpCompressor)
//   - CompressionZstd: best ratio (ZstdCompressor, klauspost/compress, or
//     valyala/gozstd when built with -tags gozstd)
//   - CompressionS2: fast, moderate ratio (S2Compressor)
//   - CompressionLZ4: fastest decoding (LZ4Compressor)
//
// Snapshots of a full control catalog are only a few hundred bytes, so
// compression mainly pays off for archives holding many profiles.
//
// Use GetCodec for the shared built-in instances:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
