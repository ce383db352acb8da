package dcmeta

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	// Classification outcomes (not errors, reported through Unrecognized)
	CodeMissingNamespace  = "missing_namespace"
	CodeNamespaceMismatch = "namespace_mismatch"
	CodeUnknownElement    = "unknown_element"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Attribute path (for example: /@dir).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: allowed values, format names, etc.
	Cause   error  // Optional: underlying error.
	// InputFragment is the offending raw value when one exists.
	InputFragment string
	// Params carries structured parameters (e.g., {"got":"up"}) for i18n and
	// logging.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_enum at /@dir
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.InputFragment != "" {
			fmt.Fprintf(b, " (%q)", it.InputFragment)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through an Issues value.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
