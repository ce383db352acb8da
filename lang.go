package dcmeta

import (
	"github.com/reoring/dcmeta/i18n"
	"golang.org/x/text/language"
)

// XMLLang is a language tag carried as an opaque string.
type XMLLang struct {
	tag string
}

// NewXMLLang wraps s without validating it.
func NewXMLLang(s string) XMLLang { return XMLLang{tag: s} }

// ParseXMLLang wraps s after checking it is a well-formed BCP 47 tag.
func ParseXMLLang(s string) (XMLLang, error) {
	if _, err := language.Parse(s); err != nil {
		return XMLLang{}, Issues{{
			Path:          "/",
			Code:          CodeInvalidFormat,
			Message:       i18n.T(CodeInvalidFormat, map[string]string{"got": s}),
			Hint:          "bcp47",
			Cause:         err,
			InputFragment: s,
			Params:        map[string]any{"got": s, "format": "bcp47"},
		}}
	}
	return XMLLang{tag: s}, nil
}

// Tag parses the wrapped string as a BCP 47 tag.
func (l XMLLang) Tag() (language.Tag, error) { return language.Parse(l.tag) }

func (l XMLLang) String() string { return l.tag }
