package dcmeta

import (
	"context"
	"log/slog"
)

// Kind identifies the case of a Metadata value.
type Kind uint8

const (
	KindUnrecognized Kind = iota
	KindTitle
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	default:
		return "unrecognized"
	}
}

// Metadata is the result of classifying one element. The set of cases is
// closed: Title and Unrecognized.
type Metadata interface {
	Kind() Kind
	metadata()
}

// Title is the Metadata case for a dc:title element.
type Title struct {
	TitleElement
}

func (Title) Kind() Kind { return KindTitle }
func (Title) metadata()  {}

// Unrecognized is the Metadata case for an element that did not match any
// supported kind. Code tells why: CodeUnknownElement, CodeMissingNamespace or
// CodeNamespaceMismatch.
type Unrecognized struct {
	Namespace *string
	Name      string
	Code      string
}

func (Unrecognized) Kind() Kind { return KindUnrecognized }
func (Unrecognized) metadata()  {}

// extractor builds a Metadata case from an element whose namespace and name
// already matched.
type extractor func(c *Classifier, e Element) Metadata

var extractors = map[string]extractor{
	"title": (*Classifier).extractTitle,
}

// Classifier turns generic elements into Metadata. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	opts options
}

// NewClassifier returns a Classifier configured by opts.
func NewClassifier(opts ...Option) *Classifier {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Classifier{opts: *o}
}

var defaultClassifier = NewClassifier()

// Classify classifies e with the default options.
func Classify(e Element) Metadata { return defaultClassifier.Classify(e) }

// From classifies e with the default options and reports false when no
// typed case was produced.
func From(e Element) (Metadata, bool) { return defaultClassifier.From(e) }

// From is Classify with Unrecognized folded into ok == false.
func (c *Classifier) From(e Element) (Metadata, bool) {
	m := c.Classify(e)
	if m.Kind() == KindUnrecognized {
		return nil, false
	}
	return m, true
}

// Classify inspects the namespace and name of e and returns the matching
// case. It never fails: anything that does not match is Unrecognized.
func (c *Classifier) Classify(e Element) Metadata {
	ext, ok := extractors[e.Name]
	if !ok {
		return c.unrecognized(e, CodeUnknownElement)
	}
	if e.Namespace == nil {
		return c.unrecognized(e, CodeMissingNamespace)
	}
	if !c.opts.namespace.matches(*e.Namespace) {
		return c.unrecognized(e, CodeNamespaceMismatch)
	}
	return ext(c, e)
}

func (c *Classifier) unrecognized(e Element, code string) Metadata {
	if c.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		ns := "<none>"
		if e.Namespace != nil {
			ns = *e.Namespace
		}
		c.opts.logger.Debug("element not recognized", "namespace", ns, "name", e.Name, "code", code)
	}
	u := Unrecognized{Name: e.Name, Code: code}
	if e.Namespace != nil {
		u.Namespace = NS(*e.Namespace)
	}
	return u
}

func (c *Classifier) extractTitle(e Element) Metadata {
	t := TitleElement{
		Namespace: *e.Namespace,
		ID:        ExtractID(e),
		Dir:       c.dir(e),
		Lang:      c.lang(e),
		Text:      e.Text,
	}
	for _, it := range t.Issues() {
		c.opts.logger.Debug("attribute dropped", "name", e.Name, "path", it.Path, "code", it.Code, "value", it.InputFragment)
	}
	return Title{TitleElement: t}
}

func (c *Classifier) dir(e Element) Attr[Direction] {
	raw, ok := e.Attr("dir")
	if !ok {
		return Attr[Direction]{}
	}
	d, err := ParseDirection(raw)
	if err != nil {
		return Invalid[Direction](raw, err)
	}
	return Valid(raw, d)
}

func (c *Classifier) lang(e Element) Attr[XMLLang] {
	if !c.opts.language {
		return Attr[XMLLang]{}
	}
	raw, ok := e.Attr("xml:lang")
	if !ok {
		return Attr[XMLLang]{}
	}
	if !c.opts.strictLang {
		return Valid(raw, NewXMLLang(raw))
	}
	l, err := ParseXMLLang(raw)
	if err != nil {
		return Invalid[XMLLang](raw, err)
	}
	return Valid(raw, l)
}
