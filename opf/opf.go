// Package opf reads the <metadata> block of an EPUB package document and
// returns its child elements in the generic shape dcmeta classifies.
package opf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reoring/dcmeta"
	"github.com/reoring/dcmeta/i18n"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/ianaindex"
)

// Namespace URIs the reader knows a conventional prefix for.
const (
	OPFURI     = "http://www.idpf.org/2007/opf"
	DCTermsURI = "http://purl.org/dc/terms/"
	xmlURI     = "http://www.w3.org/XML/1998/namespace"
)

var knownPrefixes = map[string]string{
	dcmeta.DublinCoreURI: dcmeta.DublinCorePrefix,
	OPFURI:               "opf",
	DCTermsURI:           "dcterms",
}

// ErrNoMetadata is returned when the document has no metadata element.
var ErrNoMetadata = errors.New("opf: metadata element not found")

type options struct {
	raw bool
}

// Option configures Decode.
type Option func(*options)

// WithRawNamespaces keeps element namespaces as the URIs found in the
// document instead of mapping known URIs to their prefix.
func WithRawNamespaces() Option {
	return func(o *options) {
		o.raw = true
	}
}

// Decode streams r and returns every direct child of the first metadata
// element, in document order. Character data of a child, including that of
// nested elements, is concatenated and trimmed into Element.Text.
// Documents declaring a non-UTF-8 encoding are decoded through the IANA
// charset registry of golang.org/x/text; unknown charsets are a parse_error.
func Decode(r io.Reader, opts ...Option) ([]dcmeta.Element, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	var (
		out       []dcmeta.Element
		depth     int
		metaDepth = -1
		cur       *dcmeta.Element
		text      strings.Builder
	)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(err, d.InputOffset())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case metaDepth < 0 && t.Name.Local == "metadata":
				metaDepth = depth
			case metaDepth >= 0 && depth == metaDepth+1:
				el := o.element(t)
				cur = &el
				text.Reset()
			}
		case xml.CharData:
			if cur != nil {
				text.Write(t)
			}
		case xml.EndElement:
			switch {
			case cur != nil && depth == metaDepth+1:
				cur.Text = strings.TrimSpace(text.String())
				out = append(out, *cur)
				cur = nil
			case depth == metaDepth:
				return out, nil
			}
			depth--
		}
	}
	if metaDepth < 0 {
		return nil, ErrNoMetadata
	}
	return out, nil
}

// DecodeFile opens path on fsys and decodes it.
func DecodeFile(fsys afero.Fs, path string, opts ...Option) ([]dcmeta.Element, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package document: %w", err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

func (o *options) element(se xml.StartElement) dcmeta.Element {
	el := dcmeta.Element{Name: se.Name.Local}
	if ns := se.Name.Space; ns != "" {
		if p, ok := knownPrefixes[ns]; ok && !o.raw {
			ns = p
		}
		el.Namespace = dcmeta.NS(ns)
	}
	for _, a := range se.Attr {
		key, ok := attrKey(a.Name)
		if !ok {
			continue
		}
		if el.Attributes == nil {
			el.Attributes = make(map[string]string, len(se.Attr))
		}
		el.Attributes[key] = a.Value
	}
	return el
}

func attrKey(n xml.Name) (string, bool) {
	switch {
	case n.Space == "xmlns", n.Space == "" && n.Local == "xmlns":
		return "", false
	case n.Space == "":
		return n.Local, true
	case n.Space == xmlURI:
		return "xml:" + n.Local, true
	}
	if p, ok := knownPrefixes[n.Space]; ok {
		return p + ":" + n.Local, true
	}
	// An undeclared prefix is left in Space by encoding/xml.
	if !strings.ContainsAny(n.Space, ":/") {
		return n.Space + ":" + n.Local, true
	}
	return "{" + n.Space + "}" + n.Local, true
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("opf: charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("opf: charset %q not supported", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

func parseError(err error, offset int64) error {
	return dcmeta.Issues{{
		Path:    "/",
		Code:    dcmeta.CodeParseError,
		Message: i18n.T(dcmeta.CodeParseError, nil),
		Cause:   err,
		Params:  map[string]any{"offset": offset},
	}}
}
