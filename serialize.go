package gocml

import (
	"encoding/xml"
	"io"
)

// fallbackPrefix qualifies the root when no registered prefix is bound to
// NamespaceCML.
const fallbackPrefix = "ns0"

// writeDocument emits the declaration, the root element with every
// registered namespace, and the top-level elements.
// Nothing is written when the tree fails checkTree.
func writeDocument(w io.Writer, d *Document) error {
	if err := checkTree(d.elements, map[*Node]bool{}); err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if d.indent != "" || d.prefix != "" {
		enc.Indent(d.prefix, d.indent)
	}

	root := xml.StartElement{Name: xml.Name{Local: rootName(d.namespaces)}}
	for _, ns := range d.namespaces {
		root.Attr = append(root.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + ns.Prefix}, Value: ns.URI})
	}
	if !hasNamespace(d.namespaces, NamespaceCML) {
		root.Attr = append(root.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + fallbackPrefix}, Value: NamespaceCML})
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, n := range d.elements {
		if err := encodeNode(enc, n); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// rootName qualifies the root with the first prefix bound to NamespaceCML.
func rootName(nss []Namespace) string {
	for _, ns := range nss {
		if ns.URI == NamespaceCML {
			return ns.Prefix + ":" + rootLocal
		}
	}
	return fallbackPrefix + ":" + rootLocal
}

func hasNamespace(nss []Namespace, uri string) bool {
	for _, ns := range nss {
		if ns.URI == uri {
			return true
		}
	}
	return false
}

// checkTree reports a node that cannot be written: a bad name, or a node
// reached twice, which covers shared nodes and cycles built by hand.
func checkTree(nodes []*Node, seen map[*Node]bool) error {
	for _, n := range nodes {
		if n == nil || seen[n] {
			return singleIssue("/", CodeMalformedNode, nil)
		}
		seen[n] = true
		if err := checkNames(n.Tag, n.Attrs); err != nil {
			return prefixIssues(toIssues(err), n.Tag)
		}
		if err := checkTree(n.Children, seen); err != nil {
			return prefixIssues(toIssues(err), n.Tag)
		}
	}
	return nil
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
