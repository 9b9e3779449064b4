package uvc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/internal/hash"
	"github.com/arloliu/uvcval/internal/logging"
	"github.com/arloliu/uvcval/internal/options"
	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/value"
)

// Unit identifies the UVC entity a control belongs to.
type Unit uint8

const (
	ProcessingUnit Unit = iota // processing unit controls (brightness, gain, ...)
	CameraTerminal             // camera terminal controls (exposure, focus, ...)
)

var unitNames = [...]string{
	ProcessingUnit: "processing-unit",
	CameraTerminal: "camera-terminal",
}

// String returns the catalog name of the unit.
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}

	return fmt.Sprintf("unit(%d)", uint8(u))
}

// IsValid reports whether u is a known unit.
func (u Unit) IsValid() bool {
	return int(u) < len(unitNames)
}

// DefaultID returns the entity id used when the device descriptors do not
// report one.
func (u Unit) DefaultID() uint8 {
	if u == CameraTerminal {
		return 0x01
	}

	return 0x02
}

// ParseUnit parses a unit name. Matching ignores case; "pu" and "ct" are
// accepted as short forms.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "processing-unit", "pu":
		return ProcessingUnit, nil
	case "camera-terminal", "ct":
		return CameraTerminal, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", errs.ErrInvalidControl, s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *Unit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (u Unit) MarshalYAML() (any, error) {
	return u.String(), nil
}

// ControlDef is the uncompiled description of a control.
type ControlDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Selector uint8  `yaml:"selector"`
	Unit     Unit   `yaml:"unit"`
}

// Control is a compiled ControlDef.
type Control struct {
	name     string
	selector uint8
	unit     Unit
	schema   *schema.Schema
}

func compile(def ControlDef) (*Control, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("%w: empty name", errs.ErrInvalidControl)
	}
	if !def.Unit.IsValid() {
		return nil, fmt.Errorf("%w: %q has unknown unit %d", errs.ErrInvalidControl, def.Name, uint8(def.Unit))
	}

	s, err := schema.Parse(def.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errs.ErrInvalidControl, def.Name, err)
	}

	return &Control{
		name:     def.Name,
		selector: def.Selector,
		unit:     def.Unit,
		schema:   s,
	}, nil
}

// Name returns the control name.
func (c *Control) Name() string { return c.name }

// Selector returns the UVC control selector.
func (c *Control) Selector() uint8 { return c.selector }

// Unit returns the entity the control belongs to.
func (c *Control) Unit() Unit { return c.unit }

// Schema returns the payload layout of the control.
func (c *Control) Schema() *schema.Schema { return c.schema }

// Def returns the definition the control was compiled from, with the type
// in canonical signature form.
func (c *Control) Def() ControlDef {
	return ControlDef{
		Name:     c.name,
		Type:     c.schema.Signature(),
		Selector: c.selector,
		Unit:     c.unit,
	}
}

// NewValue creates a zero value for the control.
func (c *Control) NewValue(opts ...value.Option) (*value.Value, error) {
	return value.New(c.schema, opts...)
}

// CatalogConfig holds the settings of a Catalog.
type CatalogConfig struct {
	logger *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption = options.Option[*CatalogConfig]

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) CatalogOption {
	return options.NoError(func(c *CatalogConfig) {
		c.logger = logger
	})
}

// Catalog is an ordered set of controls with case-insensitive lookup.
//
// A Catalog is immutable and safe for concurrent use.
type Catalog struct {
	controls []*Control
	byID     map[uint64][]int
}

// NewCatalog compiles defs into a Catalog.
//
// Returns errs.ErrInvalidControl for a definition with an empty name, an
// unknown unit or a bad type description, and errs.ErrDuplicateControl for
// names that are equal under case folding.
func NewCatalog(defs []ControlDef, opts ...CatalogOption) (*Catalog, error) {
	var cfg CatalogConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	log := logging.For(cfg.logger, logging.ComponentCatalog)

	cat := &Catalog{
		controls: make([]*Control, 0, len(defs)),
		byID:     make(map[uint64][]int, len(defs)),
	}

	for _, def := range defs {
		c, err := compile(def)
		if err != nil {
			return nil, err
		}
		if _, dup := cat.Lookup(c.name); dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateControl, c.name)
		}

		id := hash.NameID(c.name)
		cat.byID[id] = append(cat.byID[id], len(cat.controls))
		cat.controls = append(cat.controls, c)

		log.Debug("control compiled",
			"name", c.name,
			"unit", c.unit.String(),
			"selector", c.selector,
			"signature", c.schema.Signature())
	}

	return cat, nil
}

type catalogFile struct {
	Controls []ControlDef `yaml:"controls"`
}

// LoadCatalog reads a YAML catalog of the form
//
//	controls:
//	  - {name: gain, type: "{U2}", selector: 0x04, unit: processing-unit}
func LoadCatalog(r io.Reader, opts ...CatalogOption) (*Catalog, error) {
	var file catalogFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog", errs.ErrInvalidControl)
		}

		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return NewCatalog(file.Controls, opts...)
}

// WriteCatalog writes c in the format read by LoadCatalog.
func WriteCatalog(w io.Writer, c *Catalog) error {
	file := catalogFile{Controls: make([]ControlDef, len(c.controls))}
	for i, ctrl := range c.controls {
		file.Controls[i] = ctrl.Def()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	return enc.Close()
}

// Len returns the number of controls.
func (c *Catalog) Len() int {
	return len(c.controls)
}

// Controls returns the controls in definition order.
func (c *Catalog) Controls() []*Control {
	out := make([]*Control, len(c.controls))
	copy(out, c.controls)

	return out
}

// Lookup returns the control with the given name, ignoring case.
func (c *Catalog) Lookup(name string) (*Control, bool) {
	for _, idx := range c.byID[hash.NameID(name)] {
		if strings.EqualFold(c.controls[idx].name, name) {
			return c.controls[idx], true
		}
	}

	return nil, false
}
