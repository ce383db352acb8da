package dcmeta

import (
	"io"
	"log/slog"
)

// DublinCoreURI is the namespace URI of the Dublin Core element set.
const DublinCoreURI = "http://purl.org/dc/elements/1.1/"

// DublinCorePrefix is the conventional prefix of the Dublin Core namespace.
const DublinCorePrefix = "dc"

// NamespaceMatch selects how an element's namespace string is compared.
type NamespaceMatch int

const (
	NamespacePrefix NamespaceMatch = iota // Literal "dc".
	NamespaceURI                          // The Dublin Core namespace URI.
	NamespaceAny                          // Either of the above.
)

func (m NamespaceMatch) String() string {
	switch m {
	case NamespaceURI:
		return "uri"
	case NamespaceAny:
		return "any"
	default:
		return "prefix"
	}
}

// ParseNamespaceMatch maps "prefix", "uri" and "any" to a NamespaceMatch.
func ParseNamespaceMatch(s string) (NamespaceMatch, error) {
	switch s {
	case "prefix", "":
		return NamespacePrefix, nil
	case "uri":
		return NamespaceURI, nil
	case "any":
		return NamespaceAny, nil
	}
	return NamespacePrefix, Issues{Root().Issue(CodeInvalidEnum, "namespace match must be prefix, uri or any", "got", s)}
}

func (m NamespaceMatch) matches(ns string) bool {
	switch m {
	case NamespaceURI:
		return ns == DublinCoreURI
	case NamespaceAny:
		return ns == DublinCorePrefix || ns == DublinCoreURI
	default:
		return ns == DublinCorePrefix
	}
}

// options holds the internal configuration of a Classifier.
type options struct {
	namespace  NamespaceMatch
	language   bool
	strictLang bool
	logger     *slog.Logger
}

// Option defines a functional option for configuring a Classifier.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		namespace: NamespacePrefix,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithNamespaceMatch sets the namespace comparison policy.
func WithNamespaceMatch(m NamespaceMatch) Option {
	return func(o *options) {
		o.namespace = m
	}
}

// WithLanguage enables reading the xml:lang attribute into TitleElement.Lang.
// It is off by default and Lang stays absent.
func WithLanguage(enabled bool) Option {
	return func(o *options) {
		o.language = enabled
	}
}

// WithStrictLanguage validates xml:lang as a BCP 47 tag. It only has an
// effect together with WithLanguage(true).
func WithStrictLanguage(enabled bool) Option {
	return func(o *options) {
		o.strictLang = enabled
	}
}

// WithLogger sets the logger used to report dropped attributes and
// unrecognized elements at debug level. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
