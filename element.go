package dcmeta

// Element is the generic XML element the classifier reads. It is produced by
// an XML parser outside this package (see package opf) and never modified here.
type Element struct {
	// Namespace is nil when the element has no namespace.
	Namespace *string
	Name      string
	// Attributes keys are attribute names; an XML-namespace attribute such as
	// xml:lang is keyed "xml:lang".
	Attributes map[string]string
	// Text is the character data of the element. It is copied into typed
	// records but never affects classification.
	Text string
}

// NS returns a pointer to s, for filling Element.Namespace.
func NS(s string) *string { return &s }

// Attr looks up an attribute by exact key.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}
