package snapshot

import (
	"errors"
	"fmt"
	"hash/crc32"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/uvcval/compress"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/internal/collision"
	"github.com/arloliu/uvcval/internal/hash"
	"github.com/arloliu/uvcval/internal/logging"
	"github.com/arloliu/uvcval/internal/options"
	"github.com/arloliu/uvcval/internal/pool"
	"github.com/arloliu/uvcval/value"
)

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	compression format.CompressionType
	logger      *slog.Logger
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression selects the payload compression. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid snapshot compression: %s", compression)
		}
		c.compression = compression

		return nil
	})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.logger = logger
	})
}

// Encoder builds a snapshot from named values.
//
// An Encoder is not safe for concurrent use and cannot be reused after Finish.
type Encoder struct {
	config   EncoderConfig
	codec    compress.Codec
	tracker  *collision.Tracker
	buf      *pool.ByteBuffer
	log      *slog.Logger
	finished bool
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := EncoderConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "snapshot")
	if err != nil {
		return nil, err
	}

	return &Encoder{
		config:  cfg,
		codec:   codec,
		tracker: collision.NewTracker(),
		buf:     pool.GetSnapshotBuffer(),
		log:     logging.For(cfg.logger, logging.ComponentSnapshot),
	}, nil
}

// Add appends v under name. Names are stored lower-cased and must be unique
// under case folding. The value is stored in wire order regardless of its
// current byte order; v is not modified.
//
// Returns errs.ErrInvalidEntryName for an empty or over-long name,
// errs.ErrDuplicateEntry for a repeated name, errs.ErrNilValue for a nil v
// and errs.ErrEncoderFinished after Finish.
func (e *Encoder) Add(name string, v *value.Value) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if v == nil {
		return fmt.Errorf("%w: entry %q", errs.ErrNilValue, name)
	}

	// lower-casing may change the byte length of non-ASCII names
	name = strings.ToLower(name)
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes exceeds %d", errs.ErrInvalidEntryName, len(name), MaxNameLength)
	}

	sig := v.Schema().Signature()
	if len(sig) > MaxNameLength {
		return fmt.Errorf("%w: signature of %q exceeds %d bytes", errs.ErrInvalidPayload, name, MaxNameLength)
	}

	if err := e.tracker.Track(name, hash.NameID(name)); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}

	_ = e.buf.WriteByte(uint8(len(name)))
	_, _ = e.buf.WriteString(name)
	_ = e.buf.WriteByte(uint8(len(sig)))
	_, _ = e.buf.WriteString(sig)
	e.buf.MustWrite(v.WireBytes())

	e.log.Debug("entry added", "name", name, "signature", sig, "bytes", v.ByteSize())

	return nil
}

// Names returns the lower-cased entry names added so far, in order.
func (e *Encoder) Names() []string {
	return slices.Clone(e.tracker.Names())
}

// Len returns the number of entries added so far. Both Len and Names report
// nothing once Finish has succeeded.
func (e *Encoder) Len() int {
	return e.tracker.Count()
}

// Finish compresses the payload and returns the complete snapshot.
//
// Returns errs.ErrNoEntriesAdded if Add was never called successfully.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	if e.tracker.Count() == 0 {
		return nil, errs.ErrNoEntriesAdded
	}
	if uint64(e.buf.Len()) > math.MaxUint32 {
		return nil, errors.New("snapshot payload exceeds 4GiB")
	}

	defer e.release()

	raw := e.buf.Bytes()
	packed, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := Header{
		Version:     CurrentVersion,
		Compression: e.config.compression,
		EntryCount:  uint32(e.tracker.Count()),
		PayloadSize: uint32(len(raw)),
		Checksum:    crc32.ChecksumIEEE(raw),
	}

	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, header.Bytes()...)
	out = append(out, packed...)

	e.log.Debug("snapshot finished",
		"entries", header.EntryCount,
		"payload", header.PayloadSize,
		"compressed", len(packed),
		"compression", e.config.compression.String(),
		"collision", e.tracker.HasCollision(),
		"names", e.tracker.Names())

	return out, nil
}

func (e *Encoder) release() {
	e.finished = true
	e.tracker.Reset()
	pool.PutSnapshotBuffer(e.buf)
	e.buf = nil
}
