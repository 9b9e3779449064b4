package uvc

// Processing unit control selectors.
const (
	PUBacklightCompensation uint8 = 0x01
	PUBrightness            uint8 = 0x02
	PUContrast              uint8 = 0x03
	PUGain                  uint8 = 0x04
	PUPowerLineFrequency    uint8 = 0x05
	PUHue                   uint8 = 0x06
	PUSaturation            uint8 = 0x07
	PUSharpness             uint8 = 0x08
	PUGamma                 uint8 = 0x09
	PUWhiteBalanceTemp      uint8 = 0x0A
	PUWhiteBalanceTempAuto  uint8 = 0x0B
)

// Camera terminal control selectors.
const (
	CTAutoExposureMode     uint8 = 0x02
	CTAutoExposurePriority uint8 = 0x03
	CTExposureTimeAbsolute uint8 = 0x04
	CTFocusAbsolute        uint8 = 0x06
	CTFocusRelative        uint8 = 0x07
	CTFocusAuto            uint8 = 0x08
	CTIrisAbsolute         uint8 = 0x09
	CTZoomAbsolute         uint8 = 0x0B
	CTZoomRelative         uint8 = 0x0C
	CTPanTiltAbsolute      uint8 = 0x0D
	CTPanTiltRelative      uint8 = 0x0E
	CTPrivacy              uint8 = 0x11
)

var standardControls = []ControlDef{
	{Name: "brightness", Type: "{S2}", Selector: PUBrightness, Unit: ProcessingUnit},
	{Name: "contrast", Type: "{U2}", Selector: PUContrast, Unit: ProcessingUnit},
	{Name: "hue", Type: "{S2}", Selector: PUHue, Unit: ProcessingUnit},
	{Name: "saturation", Type: "{U2}", Selector: PUSaturation, Unit: ProcessingUnit},
	{Name: "sharpness", Type: "{U2}", Selector: PUSharpness, Unit: ProcessingUnit},
	{Name: "gamma", Type: "{U2}", Selector: PUGamma, Unit: ProcessingUnit},
	{Name: "backlight-compensation", Type: "{U2}", Selector: PUBacklightCompensation, Unit: ProcessingUnit},
	{Name: "gain", Type: "{U2}", Selector: PUGain, Unit: ProcessingUnit},
	{Name: "power-line-frequency", Type: "{U1}", Selector: PUPowerLineFrequency, Unit: ProcessingUnit},
	{Name: "white-balance-temp", Type: "{U2}", Selector: PUWhiteBalanceTemp, Unit: ProcessingUnit},
	{Name: "auto-white-balance-temp", Type: "{B}", Selector: PUWhiteBalanceTempAuto, Unit: ProcessingUnit},

	{Name: "auto-exposure-mode", Type: "{U1}", Selector: CTAutoExposureMode, Unit: CameraTerminal},
	{Name: "auto-exposure-priority", Type: "{B}", Selector: CTAutoExposurePriority, Unit: CameraTerminal},
	{Name: "exposure-time-abs", Type: "{U4}", Selector: CTExposureTimeAbsolute, Unit: CameraTerminal},
	{Name: "focus-abs", Type: "{U2}", Selector: CTFocusAbsolute, Unit: CameraTerminal},
	{Name: "focus-rel", Type: "{S1}", Selector: CTFocusRelative, Unit: CameraTerminal},
	{Name: "auto-focus", Type: "{B}", Selector: CTFocusAuto, Unit: CameraTerminal},
	{Name: "iris-abs", Type: "{U2}", Selector: CTIrisAbsolute, Unit: CameraTerminal},
	{Name: "zoom-abs", Type: "{U2}", Selector: CTZoomAbsolute, Unit: CameraTerminal},
	{Name: "zoom-rel", Type: "{S1 zoom;U1 digital-zoom;U1 speed}", Selector: CTZoomRelative, Unit: CameraTerminal},
	{Name: "pan-tilt-abs", Type: "{S4 pan; S4 tilt}", Selector: CTPanTiltAbsolute, Unit: CameraTerminal},
	{Name: "pan-tilt-rel", Type: "{S1 pan;U1 pan-speed; S1 tilt;U1 tilt-speed}", Selector: CTPanTiltRelative, Unit: CameraTerminal},
	{Name: "privacy", Type: "{B}", Selector: CTPrivacy, Unit: CameraTerminal},
}

var defaultCatalog = mustCatalog(standardControls)

func mustCatalog(defs []ControlDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}

	return c
}

// DefaultCatalog returns the catalog of standard processing unit and camera
// terminal controls. The returned Catalog is shared.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// StandardControls returns a copy of the definitions behind DefaultCatalog,
// for callers that want to extend them.
func StandardControls() []ControlDef {
	out := make([]ControlDef, len(standardControls))
	copy(out, standardControls)

	return out
}
