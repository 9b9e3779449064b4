package uvc

import (
	"fmt"

	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/value"
)

// Limits holds the GET_MIN, GET_MAX, GET_RES and GET_DEF values of a
// control. Any of them may be nil when the device did not answer.
type Limits struct {
	Minimum *value.Value
	Maximum *value.Value
	Step    *value.Value
	Default *value.Value
}

// LimitsFromWire builds Limits from raw request responses in wire order.
// A nil slice leaves the matching field nil.
func (c *Control) LimitsFromWire(minimum, maximum, step, def []byte, opts ...value.Option) (Limits, error) {
	var (
		l   Limits
		err error
	)

	decode := func(wire []byte, req Request) (*value.Value, error) {
		if wire == nil {
			return nil, nil
		}
		v, err := value.FromWire(c.schema, wire, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", c.name, req, err)
		}

		return v, nil
	}

	if l.Minimum, err = decode(minimum, GetMin); err != nil {
		return Limits{}, err
	}
	if l.Maximum, err = decode(maximum, GetMax); err != nil {
		return Limits{}, err
	}
	if l.Step, err = decode(step, GetRes); err != nil {
		return Limits{}, err
	}
	if l.Default, err = decode(def, GetDef); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// Capabilities returns the range, step and default bits for the values
// present in l.
func (l Limits) Capabilities() Capabilities {
	var c Capabilities
	if l.Minimum != nil && l.Maximum != nil {
		c |= HasRange
	}
	if l.Step != nil {
		c |= HasStepSize
	}
	if l.Default != nil {
		c |= HasDefaultValue
	}

	return c
}

// ScanOptions returns scanner options that make the "minimum", "maximum"
// and "default" keywords resolve to the values in l.
func (l Limits) ScanOptions() []schema.ScanOption {
	opts := make([]schema.ScanOption, 0, 4)
	if l.Minimum != nil {
		opts = append(opts, schema.WithMinimum(l.Minimum.HostBytes()))
	}
	if l.Maximum != nil {
		opts = append(opts, schema.WithMaximum(l.Maximum.HostBytes()))
	}
	if l.Step != nil {
		opts = append(opts, schema.WithStep(l.Step.HostBytes()))
	}
	if l.Default != nil {
		opts = append(opts, schema.WithDefault(l.Default.HostBytes()))
	}

	return opts
}

// ResetToDefault copies the default value into cur.
//
// Returns errs.ErrMissingCompanion when l has no default and
// errs.ErrSchemaMismatch when cur does not belong to the control.
func (l Limits) ResetToDefault(cur *value.Value) error {
	if l.Default == nil {
		return fmt.Errorf("%w: no default value", errs.ErrMissingCompanion)
	}

	return cur.CopyFrom(l.Default)
}
