package uvc

import "strings"

// Capabilities is the GET_INFO bitmap of a control, extended with bits
// recording which of the range, resolution and default requests succeeded.
type Capabilities uint32

const (
	SupportsGet                Capabilities = 1 << 0
	SupportsSet                Capabilities = 1 << 1
	DisabledDueToAutomaticMode Capabilities = 1 << 2
	AutoUpdate                 Capabilities = 1 << 3
	Asynchronous               Capabilities = 1 << 4

	// Bits 8 and up are not reported by the device.
	HasRange        Capabilities = 1 << 8
	HasStepSize     Capabilities = 1 << 9
	HasDefaultValue Capabilities = 1 << 10
)

var capabilityNames = []struct {
	bit  Capabilities
	name string
}{
	{SupportsGet, "get"},
	{SupportsSet, "set"},
	{DisabledDueToAutomaticMode, "disabled-by-auto"},
	{AutoUpdate, "auto-update"},
	{Asynchronous, "async"},
	{HasRange, "range"},
	{HasStepSize, "step"},
	{HasDefaultValue, "default"},
}

// ParseInfo converts the single GET_INFO response byte into Capabilities.
func ParseInfo(info byte) Capabilities {
	return Capabilities(info)
}

// Has reports whether all bits of flag are set.
func (c Capabilities) Has(flag Capabilities) bool {
	return c&flag == flag
}

// CanGet reports whether the current value can be read.
func (c Capabilities) CanGet() bool { return c.Has(SupportsGet) }

// CanSet reports whether the current value can be written.
func (c Capabilities) CanSet() bool { return c.Has(SupportsSet) }

// String lists the set flags separated by '|', or "none".
func (c Capabilities) String() string {
	var b strings.Builder
	for _, n := range capabilityNames {
		if !c.Has(n.bit) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	if b.Len() == 0 {
		return "none"
	}

	return b.String()
}
