// Package snapshot saves and restores sets of named control values, such as
// a full camera profile, as a single compact binary blob.
//
// # Layout
//
// A snapshot is a 16-byte header (see Header) followed by the payload,
// optionally compressed with one of the codecs of package compress. The
// uncompressed payload is a sequence of entries:
//
//	u8 name length | name (lower-cased)
//	u8 signature length | schema signature, e.g. "{S4 pan;S4 tilt}"
//	value bytes in little-endian wire order
//
// Entries are looked up by the xxHash64 of their lower-cased name; names are
// stored in full so hash collisions are resolved by comparison.
//
// # Usage
//
//	enc, _ := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionS2))
//	_ = enc.Add("brightness", brightness)
//	_ = enc.Add("pan-tilt-abs", panTilt)
//	blob, _ := enc.Finish()
//
//	snap, err := snapshot.Decode(blob)
//	if err != nil {
//	    return err
//	}
//	v, ok := snap.Get("Pan-Tilt-Abs")
package snapshot
