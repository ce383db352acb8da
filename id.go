package dcmeta

// ID is the optional id attribute used for cross-references inside a
// metadata block. The zero value is the no-value ID.
type ID struct {
	value string
	ok    bool
}

// NewID wraps a present id value.
func NewID(v string) ID { return ID{value: v, ok: true} }

// ExtractID reads the id attribute of e. A missing attribute yields the
// no-value ID; it is not an error.
func ExtractID(e Element) ID {
	if v, ok := e.Attr("id"); ok {
		return NewID(v)
	}
	return ID{}
}

// Value returns the wrapped string and whether the attribute was present.
func (id ID) Value() (string, bool) { return id.value, id.ok }

// IsSet reports whether the attribute was present (possibly empty).
func (id ID) IsSet() bool { return id.ok }

func (id ID) String() string { return id.value }
