package gocml_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/gocml"
	"github.com/reoring/gocml/convention"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const rootOpen = `<cml:cml xmlns:cml="http://www.xml-cml.org/schema" xmlns:convention="http://www.xml-cml.org/convention/" xmlns:xsd="http://www.w3.org/2001/XMLSchema">`

func TestDocument_SerializeEmpty(t *testing.T) {
	var buf bytes.Buffer
	w, err := gocml.New().Serialize(&buf)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if w != &buf {
		t.Fatalf("serialize must return the sink")
	}
	want := header + rootOpen + `</cml:cml>`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got: %s\nwant: %s", got, want)
	}
}

func TestDocument_Serialize(t *testing.T) {
	doc := gocml.New()
	l, err := gocml.NewParameterList(gocml.Descriptor{Value: 5, Attrib: map[string]string{"dictRef": "x", "units": "u"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := doc.Append(l); err != nil {
		t.Fatalf("append: %v", err)
	}
	var buf bytes.Buffer
	if _, err := doc.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := header + rootOpen +
		`<parameterList><parameter dictRef="x"><scalar dataType="xsd:int" units="u">5</scalar></parameter></parameterList>` +
		`</cml:cml>`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got: %s\nwant: %s", got, want)
	}

	// Serializing again yields the same bytes.
	var again bytes.Buffer
	if _, err := doc.Serialize(&again); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if again.String() != want {
		t.Fatalf("second serialization differs:\n%s", again.String())
	}
}

func TestDocument_SerializeEscapes(t *testing.T) {
	doc := gocml.New()
	p, err := gocml.NewProperty(`a<b & "c"`, map[string]string{"dictRef": `x:"q"`, "units": "u"})
	if err != nil {
		t.Fatalf("property: %v", err)
	}
	_ = doc.Append(p)
	var buf bytes.Buffer
	if _, err := doc.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	var parsed struct {
		Property struct {
			DictRef string `xml:"dictRef,attr"`
			Scalar  string `xml:"scalar"`
		} `xml:"property"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not well-formed: %v\n%s", err, buf.String())
	}
	if parsed.Property.DictRef != `x:"q"` || parsed.Property.Scalar != `a<b & "c"` {
		t.Fatalf("escaping lost data: %+v", parsed)
	}
}

func TestDocument_Indent(t *testing.T) {
	doc := gocml.New(gocml.WithIndent("", "  "))
	m, _ := gocml.NewModule(map[string]string{"dictRef": "x:m"})
	_ = doc.Append(m)
	var buf bytes.Buffer
	if _, err := doc.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  <module dictRef=\"x:m\"></module>\n") {
		t.Fatalf("expected indented module, got:\n%s", buf.String())
	}
}

func TestDocument_AppendMalformed(t *testing.T) {
	doc := gocml.New()
	if err := doc.Append(nil); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("expected structure error, got %v", err)
	}
	if err := doc.Append(&gocml.Node{}); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("expected structure error for a tagless node, got %v", err)
	}
	if len(doc.Elements()) != 0 {
		t.Fatalf("malformed nodes must not be kept")
	}
}

func TestDocument_NamespacesArePerDocument(t *testing.T) {
	a := gocml.New()
	b := gocml.New()
	if err := a.RegisterNamespace("cc", "urn:a"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := b.RegisterNamespace("cc", "urn:b"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if uri, _ := a.NamespaceURI("cc"); uri != "urn:a" {
		t.Fatalf("document a sees %q", uri)
	}
	if uri, _ := b.NamespaceURI("cc"); uri != "urn:b" {
		t.Fatalf("document b sees %q", uri)
	}

	// Overwrite keeps the position.
	_ = a.RegisterNamespace("xsd", "urn:xsd")
	want := []gocml.Namespace{
		{Prefix: "cml", URI: gocml.NamespaceCML},
		{Prefix: "convention", URI: gocml.NamespaceConvention},
		{Prefix: "xsd", URI: "urn:xsd"},
		{Prefix: "cc", URI: "urn:a"},
	}
	if diff := cmp.Diff(want, a.Namespaces()); diff != "" {
		t.Fatalf("namespace table (-want +got):\n%s", diff)
	}
}

func TestDocument_RegisterNamespaceInvalid(t *testing.T) {
	doc := gocml.New()
	for _, p := range []string{"", "xmlns", "1abc", "a b"} {
		if err := doc.RegisterNamespace(p, "urn:x"); err == nil {
			t.Fatalf("prefix %q should be rejected", p)
		}
	}
	if err := doc.RegisterNamespace("ok", ""); err == nil {
		t.Fatalf("empty uri should be rejected")
	}
}

func TestDocument_RootPrefixFollowsTable(t *testing.T) {
	doc := gocml.New()
	_ = doc.RegisterNamespace("cml", "urn:elsewhere")
	var buf bytes.Buffer
	if _, err := doc.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<ns0:cml `) || !strings.Contains(out, `xmlns:ns0="http://www.xml-cml.org/schema"`) {
		t.Fatalf("expected fallback prefix for the root, got %s", out)
	}
}

func TestDocument_Convention(t *testing.T) {
	c := &convention.Descriptor{Name: "convention:test"}
	doc := gocml.New(gocml.WithConvention(c))
	if doc.Convention() != c {
		t.Fatalf("convention not attached")
	}
	doc.SetConvention(nil)
	if doc.Convention() != nil {
		t.Fatalf("convention not cleared")
	}
}

func TestDocument_AppendOwnership(t *testing.T) {
	m, _ := gocml.NewModule(map[string]string{"dictRef": "x:m"})
	child, _ := gocml.NewModule(map[string]string{"dictRef": "x:c"})
	_ = m.Append(child)

	doc := gocml.New()
	if err := doc.Append(child); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("attached node: expected structure error, got %v", err)
	}
	if err := doc.Append(m); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := doc.Append(m); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("same node twice: expected structure error, got %v", err)
	}
	if err := gocml.New().Append(m); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("node of another document: expected structure error, got %v", err)
	}
	if len(doc.Elements()) != 1 {
		t.Fatalf("expected one element, got %d", len(doc.Elements()))
	}
}

func TestDocument_SerializeRejectsUnwritableTrees(t *testing.T) {
	renamed, _ := gocml.NewModule(map[string]string{"dictRef": "x:m"})
	leaf := &gocml.Node{Tag: "leaf"}
	cases := []struct {
		name  string
		node  *gocml.Node
		after func()
	}{
		{"attribute renamed after append", renamed, func() { renamed.Attrs.Set("x y", "v") }},
		{"shared child", &gocml.Node{Tag: "list", Children: []*gocml.Node{leaf, leaf}}, func() {}},
	}
	for _, tc := range cases {
		doc := gocml.New()
		if err := doc.Append(tc.node); err != nil {
			t.Fatalf("%s: append: %v", tc.name, err)
		}
		tc.after()
		var buf bytes.Buffer
		if _, err := doc.Serialize(&buf); !errors.Is(err, gocml.ErrStructure) {
			t.Fatalf("%s: expected structure error, got %v", tc.name, err)
		}
		if buf.Len() != 0 {
			t.Fatalf("%s: nothing must be written, got %q", tc.name, buf.String())
		}
	}
}
