// Package render turns classification results into output records and
// encodes them as JSON or YAML.
package render

import (
	"github.com/reoring/dcmeta"
	js "github.com/reoring/dcmeta/jsonschema"
)

// Record is the flat output shape of one classified element.
type Record struct {
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
	Kind      string  `json:"kind" yaml:"kind"`
	Namespace *string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Element   string  `json:"element" yaml:"element"`
	ID        *string `json:"id,omitempty" yaml:"id,omitempty"`
	Dir       string  `json:"dir,omitempty" yaml:"dir,omitempty"`
	Lang      string  `json:"lang,omitempty" yaml:"lang,omitempty"`
	Text      string  `json:"text,omitempty" yaml:"text,omitempty"`
	Reason    string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	Issues    []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Issue is the output shape of a dcmeta.Issue.
type Issue struct {
	Path    string `json:"path" yaml:"path"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

// FromMetadata builds the record for m. source names the document the
// element came from and may be empty.
func FromMetadata(source string, m dcmeta.Metadata) Record {
	rec := Record{Source: source, Kind: m.Kind().String()}
	switch v := m.(type) {
	case dcmeta.Title:
		rec.Namespace = dcmeta.NS(v.Namespace)
		rec.Element = "title"
		if id, ok := v.ID.Value(); ok {
			rec.ID = &id
		}
		if d, ok := v.Dir.Get(); ok {
			rec.Dir = d.String()
		}
		if l, ok := v.Lang.Get(); ok {
			rec.Lang = l.String()
		}
		rec.Text = v.Text
		for _, it := range v.Issues() {
			rec.Issues = append(rec.Issues, Issue{Path: it.Path, Code: it.Code, Message: it.Message, Value: it.InputFragment})
		}
	case dcmeta.Unrecognized:
		rec.Namespace = v.Namespace
		rec.Element = v.Name
		rec.Reason = v.Code
	}
	return rec
}

// Schema describes Record as JSON Schema.
func Schema() *js.Schema {
	issue := js.Object(map[string]*js.Schema{
		"path":    js.String(),
		"code":    js.Enum(dcmeta.CodeInvalidEnum, dcmeta.CodeInvalidFormat),
		"message": js.String(),
		"value":   js.String(),
	}, "path", "code")

	s := js.Object(map[string]*js.Schema{
		"source":    js.String(),
		"kind":      js.Enum(dcmeta.KindTitle.String(), dcmeta.KindUnrecognized.String()),
		"namespace": js.String(),
		"element":   js.String(),
		"id":        js.String(),
		"dir":       js.Enum(dcmeta.DirLTR.String(), dcmeta.DirRTL.String()),
		"lang":      js.String(),
		"text":      js.String(),
		"reason":    js.Enum(dcmeta.CodeUnknownElement, dcmeta.CodeMissingNamespace, dcmeta.CodeNamespaceMismatch),
		"issues":    js.Array(issue),
	}, "kind", "element")
	s.Schema = js.Draft
	s.Title = "dcmeta record"
	return s
}
