// Package dcmeta provides:
//
// - Classification of generic XML elements into typed Dublin Core metadata (Classify/From)
// - Strict attribute value types (ID, Direction, XMLLang) with three-state optional attributes (Attr)
// - A stable error model via Issues (attribute path, code, message, offending input)
// - Presence flags telling absent, invalid and valid attributes apart
//
// Design policy:
// - The root package is pure: no I/O, no shared mutable state.
// - XML reading lives in opf/, output encoding in internal/render, the CLI in cmd/dcmeta.
// - Elements that do not match are returned as Unrecognized, never as errors.
//
// Typical usage:
//
//	elems, err := opf.Decode(r)
//	c := dcmeta.NewClassifier(dcmeta.WithLanguage(true))
//	for _, e := range elems {
//		if t, ok := c.Classify(e).(dcmeta.Title); ok {
//			dir, _ := t.Dir.Get()
//		}
//	}
package dcmeta
