package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/internal/logging"
	"github.com/arloliu/uvcval/internal/options"
)

// ScanConfig holds the companion buffers and settings used by Schema.Scan.
type ScanConfig struct {
	minimum      []byte
	maximum      []byte
	step         []byte
	defaultValue []byte
	engine       endian.EndianEngine
	logger       *slog.Logger
}

// ScanOption represents a functional option for configuring a scan.
type ScanOption = options.Option[*ScanConfig]

// WithMinimum supplies the buffer copied for the "minimum" keyword.
func WithMinimum(buf []byte) ScanOption {
	return options.NoError(func(c *ScanConfig) {
		c.minimum = buf
	})
}

// WithMaximum supplies the buffer copied for the "maximum" keyword.
func WithMaximum(buf []byte) ScanOption {
	return options.NoError(func(c *ScanConfig) {
		c.maximum = buf
	})
}

// WithStep supplies the resolution (step size) buffer of the control.
func WithStep(buf []byte) ScanOption {
	return options.NoError(func(c *ScanConfig) {
		c.step = buf
	})
}

// WithDefault supplies the buffer copied for the "default" keyword.
func WithDefault(buf []byte) ScanOption {
	return options.NoError(func(c *ScanConfig) {
		c.defaultValue = buf
	})
}

// WithByteOrder selects the host byte order numeric fields are written in.
// The native order is used by default.
func WithByteOrder(engine endian.EndianEngine) ScanOption {
	return options.New(func(c *ScanConfig) error {
		if engine == nil {
			return errors.New("nil byte order engine")
		}
		c.engine = engine

		return nil
	})
}

// WithLogger enables debug logging of the scan progress.
func WithLogger(logger *slog.Logger) ScanOption {
	return options.NoError(func(c *ScanConfig) {
		c.logger = logger
	})
}

type keyword int

const (
	keywordNone keyword = iota
	keywordDefault
	keywordMinimum
	keywordMaximum
)

func (k keyword) String() string {
	switch k {
	case keywordDefault:
		return "default"
	case keywordMinimum:
		return "minimum"
	case keywordMaximum:
		return "maximum"
	default:
		return ""
	}
}

var (
	trueWords  = []string{"y", "yes", "true", "t", "1"}
	falseWords = []string{"n", "no", "false", "f", "0"}
)

// Scan parses text into buf, a record of this schema in host byte order.
//
// A schema with a single field accepts a bare literal. Otherwise the value is
// a brace-enclosed list of comma or whitespace separated components, either
// positional ("{100,200}") or named ("{tilt=200,pan=100}"). Named components
// may appear in any order and may omit fields; positional components fill
// fields in declaration order and may stop early.
//
// A literal is an integer in decimal, hex (0x) or octal (leading 0), one of
// the boolean words y/yes/true/t/1 and n/no/false/f/0 for boolean fields, or
// one of the keywords "default", "minimum" and "maximum". A keyword used as
// the whole value copies the entire companion buffer; used as a component it
// copies only that field's bytes.
//
// Integers are truncated to the field width without range checks.
//
// On error, fields scanned before the failing component have already been
// written and buf must be treated as undefined.
func (s *Schema) Scan(text string, buf []byte, opts ...ScanOption) error {
	cfg := ScanConfig{engine: endian.NativeEngine()}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	if len(buf) != s.size {
		return fmt.Errorf("%w: buffer has %d bytes, schema %s needs %d",
			errs.ErrBufferSizeMismatch, len(buf), s.Signature(), s.size)
	}
	for _, companion := range [][]byte{cfg.minimum, cfg.maximum, cfg.step, cfg.defaultValue} {
		if companion != nil && len(companion) != s.size {
			return fmt.Errorf("%w: companion has %d bytes, schema %s needs %d",
				errs.ErrBufferSizeMismatch, len(companion), s.Signature(), s.size)
		}
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.logger != nil {
		logger = logging.For(cfg.logger, logging.ComponentScanner)
	}

	sc := &scanner{
		schema: s,
		cfg:    &cfg,
		src:    text,
		buf:    buf,
		log:    logger,
		debug:  logging.Enabled(logger, slog.LevelDebug),
	}

	return sc.scan()
}

type scanner struct {
	schema *Schema
	cfg    *ScanConfig
	src    string
	pos    int
	buf    []byte
	log    *slog.Logger
	debug  bool // per-field records are skipped unless debug is enabled
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *scanner) peek() byte {
	return sc.src[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && isSpace(sc.peek()) {
		sc.pos++
	}
}

func (sc *scanner) skipSeparators() {
	for !sc.eof() && (isSpace(sc.peek()) || sc.peek() == ',') {
		sc.pos++
	}
}

// literal reads a run of characters up to a separator, '=' or '}'.
func (sc *scanner) literal() string {
	start := sc.pos
	for !sc.eof() {
		c := sc.peek()
		if isSpace(c) || c == ',' || c == '}' || c == '=' || c == '{' {
			break
		}
		sc.pos++
	}

	return sc.src[start:sc.pos]
}

func (sc *scanner) scan() error {
	sc.skipSpace()
	rest := strings.TrimSpace(sc.src[sc.pos:])

	if kw := matchKeyword(rest); kw != keywordNone {
		companion := sc.companion(kw)
		if companion == nil {
			sc.log.Debug("no companion value for keyword", "keyword", kw.String())
			return fmt.Errorf("%w: %s", errs.ErrMissingCompanion, kw)
		}
		copy(sc.buf, companion)
		sc.log.Debug("value copied from companion", "keyword", kw.String())

		return nil
	}

	if len(sc.schema.fields) == 1 && (sc.eof() || sc.peek() != '{') {
		return sc.scanField(0, rest)
	}

	if sc.eof() || sc.peek() != '{' {
		return fmt.Errorf("%w: expected '{' for %d-field value", errs.ErrMalformedRecord, len(sc.schema.fields))
	}
	sc.pos++

	end := strings.IndexByte(sc.src[sc.pos:], '}')
	if end < 0 {
		return fmt.Errorf("%w: missing '}'", errs.ErrMalformedRecord)
	}
	if trailing := strings.TrimSpace(sc.src[sc.pos+end+1:]); trailing != "" {
		return fmt.Errorf("%w: unexpected %q after '}'", errs.ErrMalformedRecord, trailing)
	}

	if strings.IndexByte(sc.src[sc.pos:sc.pos+end], '=') >= 0 {
		return sc.scanNamed()
	}

	return sc.scanPositional()
}

func (sc *scanner) scanPositional() error {
	for idx := 0; ; idx++ {
		sc.skipSeparators()
		if sc.peek() == '}' {
			return nil
		}
		if idx >= len(sc.schema.fields) {
			return fmt.Errorf("%w: schema %s has %d fields",
				errs.ErrTooManyComponents, sc.schema.Signature(), len(sc.schema.fields))
		}

		lit := sc.literal()
		if lit == "" {
			return fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrMalformedRecord, sc.peek(), sc.pos)
		}
		if err := sc.scanField(idx, lit); err != nil {
			return err
		}
	}
}

func (sc *scanner) scanNamed() error {
	for {
		sc.skipSeparators()
		if sc.peek() == '}' {
			return nil
		}

		name := sc.literal()
		sc.skipSpace()
		if name == "" || sc.peek() != '=' {
			return fmt.Errorf("%w: expected name=value at offset %d", errs.ErrMalformedRecord, sc.pos)
		}
		sc.pos++
		sc.skipSpace()

		idx := sc.schema.IndexOf(name)
		if idx == InvalidIndex {
			return fmt.Errorf("%w: %q in schema %s", errs.ErrUnknownField, name, sc.schema.Signature())
		}

		lit := sc.literal()
		if lit == "" {
			return fmt.Errorf("%w: missing value for field %q", errs.ErrInvalidLiteral, name)
		}
		if err := sc.scanField(idx, lit); err != nil {
			return err
		}
	}
}

// scanField stores a single literal into field idx.
func (sc *scanner) scanField(idx int, lit string) error {
	f := sc.schema.fields[idx]
	off := sc.schema.offsets[idx]
	dst := sc.buf[off : off+f.Type.Size()]

	if kw := matchKeyword(lit); kw != keywordNone {
		companion := sc.companion(kw)
		if companion == nil {
			sc.log.Debug("no companion value for keyword", "field", f.Name, "keyword", kw.String())
			return fmt.Errorf("%w: %s for field %q", errs.ErrMissingCompanion, kw, f.Name)
		}
		copy(dst, companion[off:off+len(dst)])
		sc.log.Debug("field copied from companion", "field", f.Name, "keyword", kw.String())

		return nil
	}

	if f.Type == format.AtomBoolean {
		if b, ok := parseBoolWord(lit); ok {
			dst[0] = b
			if sc.debug {
				sc.log.Debug("field scanned", "field", f.Name, "literal", lit, "value", b)
			}

			return nil
		}
	}

	v, err := parseInteger(lit)
	if err != nil {
		return fmt.Errorf("%w: %q for field %q (%s)", errs.ErrInvalidLiteral, lit, f.Name, f.Type.Verbose())
	}
	if f.Type == format.AtomBoolean && v != 0 {
		v = 1
	}

	StoreUint(sc.cfg.engine, f.Type, dst, v)
	if sc.debug {
		sc.log.Debug("field scanned", "field", f.Name, "literal", lit, "type", f.Type.Code())
	}

	return nil
}

func (sc *scanner) companion(kw keyword) []byte {
	switch kw {
	case keywordDefault:
		return sc.cfg.defaultValue
	case keywordMinimum:
		return sc.cfg.minimum
	case keywordMaximum:
		return sc.cfg.maximum
	default:
		return nil
	}
}

func matchKeyword(lit string) keyword {
	switch {
	case strings.EqualFold(lit, "default"):
		return keywordDefault
	case strings.EqualFold(lit, "minimum"):
		return keywordMinimum
	case strings.EqualFold(lit, "maximum"):
		return keywordMaximum
	default:
		return keywordNone
	}
}

func parseBoolWord(lit string) (byte, bool) {
	for _, w := range trueWords {
		if strings.EqualFold(lit, w) {
			return 1, true
		}
	}
	for _, w := range falseWords {
		if strings.EqualFold(lit, w) {
			return 0, true
		}
	}

	return 0, false
}

// parseInteger parses lit with base prefix detection and returns its two's
// complement bits. Values above math.MaxInt64 are accepted as unsigned.
//
// Only "0x" hex, leading-zero octal and decimal are accepted; the "0b" and
// "0o" prefixes and '_' separators understood by strconv are rejected.
func parseInteger(lit string) (uint64, error) {
	digits := strings.TrimLeft(lit, "+-")
	if strings.ContainsRune(digits, '_') {
		return 0, errors.New("digit separators are not supported")
	}
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'b', 'B', 'o', 'O':
			return 0, fmt.Errorf("prefix %q is not supported", digits[:2])
		}
	}

	v, err := strconv.ParseInt(lit, 0, 64)
	if err == nil {
		return uint64(v), nil
	}
	if !errors.Is(err, strconv.ErrRange) || strings.HasPrefix(lit, "-") {
		return 0, err
	}

	u, uerr := strconv.ParseUint(strings.TrimPrefix(lit, "+"), 0, 64)
	if uerr != nil {
		return 0, uerr
	}

	return u, nil
}
