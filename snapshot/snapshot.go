package snapshot

import (
	"fmt"
	"hash/crc32"
	"iter"
	"strings"

	"github.com/arloliu/uvcval/compress"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/internal/hash"
	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/value"
)

type entry struct {
	name  string
	value *value.Value
}

// Snapshot is a decoded set of named values.
//
// Values are returned in host order and are owned by the Snapshot; callers
// that modify them should Clone first.
type Snapshot struct {
	header  Header
	entries []entry
	byID    map[uint64][]int // name id -> entry indexes, more than one on hash collision
}

// Decode parses a snapshot produced by Encoder.Finish. opts are applied to
// every decoded value.
//
// Returns errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
// errs.ErrUnsupportedVersion, errs.ErrChecksumMismatch or
// errs.ErrInvalidPayload for damaged input.
func Decode(data []byte, opts ...value.Option) (*Snapshot, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	raw, err := compress.DecompressSize(codec, data[HeaderSize:], int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if len(raw) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d", errs.ErrInvalidPayload, len(raw), header.PayloadSize)
	}
	if sum := crc32.ChecksumIEEE(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%08x, want 0x%08x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	snap := &Snapshot{
		header:  header,
		entries: make([]entry, 0, min(int(header.EntryCount), len(raw))),
		byID:    make(map[uint64][]int, min(int(header.EntryCount), len(raw))),
	}

	r := payloadReader{data: raw}
	schemas := make(map[string]*schema.Schema)

	for i := range int(header.EntryCount) {
		name, ok := r.shortString()
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: entry %d has a bad name", errs.ErrInvalidPayload, i)
		}
		sig, ok := r.shortString()
		if !ok {
			return nil, fmt.Errorf("%w: entry %q has a bad signature", errs.ErrInvalidPayload, name)
		}

		s, found := schemas[sig]
		if !found {
			if s, err = schema.Parse(sig); err != nil {
				return nil, fmt.Errorf("%w: entry %q: %w", errs.ErrInvalidPayload, name, err)
			}
			schemas[sig] = s
		}

		wire, ok := r.next(s.ByteSize())
		if !ok {
			return nil, fmt.Errorf("%w: entry %q is truncated", errs.ErrInvalidPayload, name)
		}
		v, err := value.FromWire(s, wire, opts...)
		if err != nil {
			return nil, err
		}

		if _, dup := snap.lookup(name); dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateEntry, name)
		}
		id := hash.NameID(name)
		snap.byID[id] = append(snap.byID[id], len(snap.entries))
		snap.entries = append(snap.entries, entry{name: name, value: v})
	}

	if r.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, r.remaining())
	}

	return snap, nil
}

// Header returns the parsed snapshot header.
func (s *Snapshot) Header() Header {
	return s.header
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Names returns the entry names in the order they were added.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}

	return names
}

// Get returns the value stored under name, ignoring case.
func (s *Snapshot) Get(name string) (*value.Value, bool) {
	idx, ok := s.lookup(name)
	if !ok {
		return nil, false
	}

	return s.entries[idx].value, true
}

// All iterates over the entries in the order they were added.
func (s *Snapshot) All() iter.Seq2[string, *value.Value] {
	return func(yield func(string, *value.Value) bool) {
		for _, e := range s.entries {
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

func (s *Snapshot) lookup(name string) (int, bool) {
	for _, idx := range s.byID[hash.NameID(name)] {
		if strings.EqualFold(s.entries[idx].name, name) {
			return idx, true
		}
	}

	return 0, false
}

// payloadReader reads length-prefixed fields from a snapshot payload.
type payloadReader struct {
	data []byte
	pos  int
}

func (r *payloadReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *payloadReader) next(n int) ([]byte, bool) {
	if n < 0 || r.remaining() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, true
}

func (r *payloadReader) shortString() (string, bool) {
	n, ok := r.next(1)
	if !ok {
		return "", false
	}
	b, ok := r.next(int(n[0]))
	if !ok {
		return "", false
	}

	return string(b), true
}
