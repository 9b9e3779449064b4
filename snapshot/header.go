package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
)

const (
	HeaderSize     = 16     // fixed header size in bytes
	MagicNumber    = 0x5556 // "VU" in little-endian order
	CurrentVersion = 1      // snapshot layout version written by Encoder

	// MaxNameLength is the longest entry name or schema signature, both
	// stored with a one-byte length prefix.
	MaxNameLength = 255
)

// Header is the fixed-size header at the start of every snapshot.
//
// All fields are little-endian:
//
//	offset 0-1   magic number
//	offset 2     version
//	offset 3     payload compression
//	offset 4-7   entry count
//	offset 8-11  uncompressed payload size
//	offset 12-15 CRC32 (IEEE) of the uncompressed payload
type Header struct {
	Version     uint8
	Compression format.CompressionType
	EntryCount  uint32
	PayloadSize uint32
	Checksum    uint32
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], MagicNumber)
	b[2] = h.Version
	b[3] = uint8(h.Compression)
	binary.LittleEndian.PutUint32(b[4:8], h.EntryCount)
	binary.LittleEndian.PutUint32(b[8:12], h.PayloadSize)
	binary.LittleEndian.PutUint32(b[12:16], h.Checksum)

	return b
}

// ParseHeader parses the header at the start of data.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is shorter than HeaderSize
//   - errs.ErrInvalidMagicNumber if data is not a snapshot
//   - errs.ErrUnsupportedVersion for versions newer than CurrentVersion
//   - errs.ErrInvalidPayload for an unknown compression type
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != MagicNumber {
		return Header{}, fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	h := Header{
		Version:     data[2],
		Compression: format.CompressionType(data[3]),
		EntryCount:  binary.LittleEndian.Uint32(data[4:8]),
		PayloadSize: binary.LittleEndian.Uint32(data[8:12]),
		Checksum:    binary.LittleEndian.Uint32(data[12:16]),
	}

	if h.Version == 0 || h.Version > CurrentVersion {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.IsValid() {
		return Header{}, fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidPayload, uint8(h.Compression))
	}

	return h, nil
}
