package schema

import (
	"fmt"
	"strings"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/format"
)

// Parse compiles a type description into a Schema.
//
// The description lists one or more typed fields inside braces:
//
//	{ S2 pan; S2 tilt }
//
// Type codes are case-insensitive; field names consist of letters, digits and
// '-' and are stored lower-cased. A single field may omit its name, in which
// case it is called "value", and a single anonymous field may also omit the
// braces:
//
//	{S2}
//	S2
//
// Whitespace between tokens is insignificant, fields are separated by ';'
// and/or whitespace, a trailing ';' before '}' is allowed and anything after
// the closing brace is ignored.
//
// On failure Parse returns a nil Schema and an error wrapping one of
// errs.ErrMissingOpenBrace, errs.ErrUnknownAtomType, errs.ErrUnexpectedEnd,
// errs.ErrInvalidFieldName, errs.ErrDuplicateFieldName or errs.ErrEmptySchema.
func Parse(desc string) (*Schema, error) {
	p := parser{src: desc}
	p.skipSpace()

	if p.eof() {
		return nil, fmt.Errorf("%w: empty type description", errs.ErrUnexpectedEnd)
	}

	if p.peek() != '{' {
		return p.parseBare()
	}
	p.pos++

	return p.parseFields()
}

// MustParse is like Parse but panics if desc is invalid.
// It is intended for package-level tables and tests.
func MustParse(desc string) *Schema {
	s, err := Parse(desc)
	if err != nil {
		panic(fmt.Sprintf("schema.MustParse(%q): %v", desc, err))
	}

	return s
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) skipSeparators() {
	for !p.eof() && (isSpace(p.peek()) || p.peek() == ';') {
		p.pos++
	}
}

// parseAtom reads a type code that must be followed by a non-name character.
func (p *parser) parseAtom() (format.AtomType, bool) {
	typ, n := format.ParseAtomCode(p.src[p.pos:])
	if typ == format.AtomInvalid {
		return typ, false
	}
	if p.pos+n < len(p.src) && isNameChar(p.src[p.pos+n]) {
		return format.AtomInvalid, false
	}
	p.pos += n

	return typ, true
}

// parseBare handles the brace-less form, a lone type code.
func (p *parser) parseBare() (*Schema, error) {
	start := p.pos
	typ, ok := p.parseAtom()
	if !ok {
		return nil, fmt.Errorf("%w: found %q", errs.ErrMissingOpenBrace, p.src[start:])
	}

	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w: unexpected %q after bare type", errs.ErrMissingOpenBrace, p.src[p.pos:])
	}

	return build([]Field{{Name: DefaultFieldName, Type: typ}}), nil
}

func (p *parser) parseFields() (*Schema, error) {
	var fields []Field

	for {
		p.skipSeparators()
		if p.eof() {
			return nil, fmt.Errorf("%w: missing '}' in %q", errs.ErrUnexpectedEnd, p.src)
		}
		if p.peek() == '}' {
			break
		}

		start := p.pos
		typ, ok := p.parseAtom()
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", errs.ErrUnknownAtomType, token(p.src[start:]), start)
		}

		p.skipSpace()
		if p.eof() {
			return nil, fmt.Errorf("%w: field at offset %d is incomplete", errs.ErrUnexpectedEnd, start)
		}

		if p.peek() == '}' {
			if len(fields) > 0 {
				return nil, fmt.Errorf("%w: unnamed field at offset %d in a multi-field type", errs.ErrInvalidFieldName, start)
			}
			fields = append(fields, Field{Name: DefaultFieldName, Type: typ})

			break
		}

		nameStart := p.pos
		for !p.eof() && isNameChar(p.peek()) {
			p.pos++
		}
		if p.pos == nameStart {
			return nil, fmt.Errorf("%w: expected a name at offset %d", errs.ErrInvalidFieldName, nameStart)
		}
		if p.eof() {
			return nil, fmt.Errorf("%w: missing '}' after field %q", errs.ErrUnexpectedEnd, p.src[nameStart:])
		}
		if c := p.peek(); !isSpace(c) && c != ';' && c != '}' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrInvalidFieldName, c, p.pos)
		}

		name := strings.ToLower(p.src[nameStart:p.pos])
		for _, f := range fields {
			if f.Name == name {
				return nil, fmt.Errorf("%w: %q at offset %d", errs.ErrDuplicateFieldName, name, nameStart)
			}
		}
		fields = append(fields, Field{Name: name, Type: typ})
	}

	if len(fields) == 0 {
		return nil, errs.ErrEmptySchema
	}

	return build(fields), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// token returns the leading run of non-separator characters of s, for error messages.
func token(s string) string {
	end := strings.IndexAny(s, " \t\n\r\v\f;}")
	if end < 0 {
		return s
	}

	return s[:end]
}
