// Package uvc describes the standard USB Video Class controls in terms of
// uvcval schemas and builds the class-specific control requests that carry
// their values.
//
// The package performs no device I/O. It answers three questions for a
// control: what its payload looks like (Control.Schema), how to address it
// (Control.Setup) and how its range and default values feed the scanner
// keywords (Limits.ScanOptions).
//
//	cat := uvc.DefaultCatalog()
//	pt, _ := cat.Lookup("pan-tilt-abs")
//	v, _ := pt.NewValue()
//	_ = v.Scan("{pan=3600}")
//	pkt := pt.Setup(uvc.SetCur, 0, 0) // unit 0 selects the default unit id
//	payload := v.WireBytes()
//
// Catalogs can be extended from YAML:
//
//	controls:
//	  - name: brightness
//	    type: "{S2}"
//	    selector: 0x02
//	    unit: processing-unit
package uvc
