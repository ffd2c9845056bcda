package gocml

import (
	"io"
	"log/slog"

	"github.com/reoring/gocml/convention"
)

// Namespaces pre-registered on every document.
const (
	NamespaceCML        = "http://www.xml-cml.org/schema"
	NamespaceConvention = "http://www.xml-cml.org/convention/"
	NamespaceXSD        = "http://www.w3.org/2001/XMLSchema"
)

// rootLocal is the local name of the document root in NamespaceCML.
const rootLocal = "cml"

// Namespace is one prefix binding.
type Namespace struct {
	Prefix string
	URI    string
}

// Document is the top-level container of a CML document. Each document owns
// its namespace table; registering a prefix on one document never affects
// another.
type Document struct {
	namespaces []Namespace
	elements   []*Node
	convention *convention.Descriptor
	logger     *slog.Logger
	prefix     string
	indent     string
}

// New returns an empty document with the cml, convention and xsd prefixes
// registered.
func New(opts ...Option) *Document {
	o := buildOptions(opts)
	d := &Document{
		convention: o.convention,
		logger:     o.logger,
		prefix:     o.prefix,
		indent:     o.indent,
	}
	d.namespaces = []Namespace{
		{Prefix: "cml", URI: NamespaceCML},
		{Prefix: "convention", URI: NamespaceConvention},
		{Prefix: "xsd", URI: NamespaceXSD},
	}
	return d
}

// RegisterNamespace binds prefix to uri, replacing an existing binding of the
// same prefix in place.
func (d *Document) RegisterNamespace(prefix, uri string) error {
	if !validPrefix(prefix) || uri == "" {
		return singleIssue("/", CodeInvalidNamespace, map[string]string{"prefix": prefix})
	}
	for i := range d.namespaces {
		if d.namespaces[i].Prefix == prefix {
			d.namespaces[i].URI = uri
			return nil
		}
	}
	d.namespaces = append(d.namespaces, Namespace{Prefix: prefix, URI: uri})
	return nil
}

// Namespaces returns a copy of the namespace table in registration order.
func (d *Document) Namespaces() []Namespace {
	return append([]Namespace(nil), d.namespaces...)
}

// NamespaceURI returns the URI bound to prefix.
func (d *Document) NamespaceURI(prefix string) (string, bool) {
	for _, ns := range d.namespaces {
		if ns.Prefix == prefix {
			return ns.URI, true
		}
	}
	return "", false
}

// Append adds a top-level element. Elements are written in call order. n
// must not be attached to a parent or a document already.
func (d *Document) Append(n *Node) error {
	if err := validNode(n); err != nil {
		return err
	}
	if n.owned {
		return singleIssue("/"+n.Tag, CodeMalformedNode, nil)
	}
	n.owned = true
	d.elements = append(d.elements, n)
	return nil
}

// Elements returns the top-level elements.
func (d *Document) Elements() []*Node {
	return append([]*Node(nil), d.elements...)
}

// Convention returns the descriptor attached with WithConvention, or nil.
func (d *Document) Convention() *convention.Descriptor { return d.convention }

// SetConvention replaces the attached convention descriptor.
func (d *Document) SetConvention(c *convention.Descriptor) { d.convention = c }

// Logger returns the logger the document reports to.
func (d *Document) Logger() *slog.Logger { return d.logger }

// Serialize writes the document as UTF-8 XML with a declaration and returns w.
// w is never closed. The document is not modified, so Serialize can be
// called repeatedly.
func (d *Document) Serialize(w io.Writer) (io.Writer, error) {
	if err := writeDocument(w, d); err != nil {
		return w, err
	}
	d.logger.Debug("document serialized", "elements", len(d.elements))
	return w, nil
}

// validPrefix accepts NCName prefixes other than the reserved xml and xmlns.
func validPrefix(p string) bool {
	return p != "xml" && p != "xmlns" && validNCName(p)
}
