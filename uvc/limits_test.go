package uvc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/uvcval/endian"
	"github.com/arloliu/uvcval/errs"
	"github.com/arloliu/uvcval/value"
)

func panTiltLimits(t *testing.T, opts ...value.Option) (*Control, Limits) {
	t.Helper()

	c, ok := DefaultCatalog().Lookup("pan-tilt-abs")
	require.True(t, ok)

	// little-endian responses as a device would send them
	l, err := c.LimitsFromWire(
		[]byte{0x10, 0xb6, 0xfd, 0xff, 0x20, 0xbf, 0x02, 0x00}, // {-150000,180000}
		[]byte{0xf0, 0x49, 0x02, 0x00, 0xe0, 0x40, 0xfd, 0xff}, // {150000,-180000}
		[]byte{0x10, 0x0e, 0x00, 0x00, 0x10, 0x0e, 0x00, 0x00}, // {3600,3600}
		make([]byte, 8),
		opts...,
	)
	require.NoError(t, err)

	return c, l
}

func TestLimitsFromWire(t *testing.T) {
	_, l := panTiltLimits(t)

	require.Equal(t, "{pan=-150000,tilt=180000}", l.Minimum.String())
	require.Equal(t, "{pan=150000,tilt=-180000}", l.Maximum.String())
	require.Equal(t, "{pan=3600,tilt=3600}", l.Step.String())
	require.Equal(t, "{pan=0,tilt=0}", l.Default.String())
	require.Equal(t, HasRange|HasStepSize|HasDefaultValue, l.Capabilities())
}

func TestLimitsFromWire_Partial(t *testing.T) {
	c, ok := DefaultCatalog().Lookup("gain")
	require.True(t, ok)

	l, err := c.LimitsFromWire(nil, []byte{0xff, 0x00}, nil, nil)
	require.NoError(t, err)
	require.Nil(t, l.Minimum)
	require.Equal(t, "255", l.Maximum.String())
	require.Equal(t, Capabilities(0), l.Capabilities())

	_, err = c.LimitsFromWire([]byte{1}, nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrBufferSizeMismatch)
	require.Contains(t, err.Error(), "GET_MIN")
}

func TestLimits_ScanOptions(t *testing.T) {
	for _, host := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		c, l := panTiltLimits(t, value.WithHostEngine(host))

		v, err := c.NewValue(value.WithHostEngine(host))
		require.NoError(t, err)

		require.NoError(t, v.Scan("{pan=minimum,tilt=maximum}", l.ScanOptions()...))
		require.Equal(t, "{pan=-150000,tilt=-180000}", v.String())

		require.NoError(t, v.Scan("maximum", l.ScanOptions()...))
		require.True(t, v.Equal(l.Maximum))

		require.NoError(t, v.Scan("{default, 7}", l.ScanOptions()...))
		require.Equal(t, "{pan=0,tilt=7}", v.String())
	}
}

func TestLimits_ScanOptionsMissing(t *testing.T) {
	c, ok := DefaultCatalog().Lookup("gain")
	require.True(t, ok)

	v, err := c.NewValue()
	require.NoError(t, err)

	require.ErrorIs(t, v.Scan("default", Limits{}.ScanOptions()...), errs.ErrMissingCompanion)
}

func TestLimits_ResetToDefault(t *testing.T) {
	c, l := panTiltLimits(t)

	cur, err := c.NewValue()
	require.NoError(t, err)
	require.NoError(t, cur.Scan("{100,200}"))

	require.NoError(t, l.ResetToDefault(cur))
	require.True(t, cur.Equal(l.Default))

	require.ErrorIs(t, Limits{}.ResetToDefault(cur), errs.ErrMissingCompanion)

	gain, _ := DefaultCatalog().Lookup("gain")
	other, err := gain.NewValue()
	require.NoError(t, err)
	require.ErrorIs(t, l.ResetToDefault(other), errs.ErrSchemaMismatch)
}
