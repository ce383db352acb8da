package dcmeta

import "maps"

// Presence is the bit flag recorded for each attribute of a typed record.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Attribute appeared on the element.
	PresenceInvalid                      // Attribute value failed validation.
)

// Has reports whether all bits of f are set.
func (p Presence) Has(f Presence) bool { return p&f == f }

// PresenceMap maps attribute paths (for example "/@dir") to Presence flags.
type PresenceMap map[string]Presence

// AttrState distinguishes the three outcomes of reading an optional attribute.
type AttrState uint8

const (
	AttrAbsent AttrState = iota
	AttrInvalid
	AttrValid
)

func (s AttrState) String() string {
	switch s {
	case AttrInvalid:
		return "invalid"
	case AttrValid:
		return "valid"
	default:
		return "absent"
	}
}

// Attr is an optional typed attribute. Raw and Err are set for AttrInvalid so
// callers can decide whether to surface a warning.
type Attr[T any] struct {
	State AttrState
	Value T
	Raw   string
	Err   error
}

// Valid builds a valid attribute.
func Valid[T any](raw string, v T) Attr[T] {
	return Attr[T]{State: AttrValid, Value: v, Raw: raw}
}

// Invalid builds an attribute whose raw value could not be converted.
func Invalid[T any](raw string, err error) Attr[T] {
	return Attr[T]{State: AttrInvalid, Raw: raw, Err: err}
}

// Get returns the value only when the attribute was present and valid.
// Absent and invalid attributes both report ok == false.
func (a Attr[T]) Get() (T, bool) {
	if a.State != AttrValid {
		var zero T
		return zero, false
	}
	return a.Value, true
}

// Presence maps the attribute state to presence flags.
func (a Attr[T]) Presence() Presence {
	switch a.State {
	case AttrValid:
		return PresenceSeen
	case AttrInvalid:
		return PresenceSeen | PresenceInvalid
	default:
		return 0
	}
}

// mergePresenceMaps returns a new PresenceMap that is the bitwise-OR merge of a and b.
func mergePresenceMaps(a, b PresenceMap) PresenceMap {
	if a == nil && b == nil {
		return nil
	}
	out := make(PresenceMap, len(a)+len(b))
	maps.Copy(out, a)
	for k, v := range b {
		out[k] |= v
	}
	return out
}
