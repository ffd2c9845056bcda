// Package convention describes the shape a convention expects of a document.
//
// A Descriptor lists nodes in document order with their attribute policy and
// children. It is declarative only: documents carry it for callers and export
// it, but the builder does not check trees against it.
package convention

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Descriptor is the declarative shape of a convention.
type Descriptor struct {
	// Name is the convention reference, e.g. "compchem:simple".
	Name       string            `json:"name" yaml:"name"`
	Namespaces map[string]string `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	Nodes      []Node            `json:"nodes" yaml:"nodes"`
}

// Node is one expected element.
type Node struct {
	Tag      string `json:"tag" yaml:"tag"`
	Required bool   `json:"required" yaml:"required"`
	// Attrib maps attribute names to their rule.
	Attrib   map[string]Attribute `json:"attrib,omitempty" yaml:"attrib,omitempty"`
	Children []Node               `json:"children,omitempty" yaml:"children,omitempty"`
}

// Attribute is the rule for one attribute. An empty Value with Required set
// means any value is accepted.
type Attribute struct {
	Required bool   `json:"required" yaml:"required"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
}

// MarshalJSON renders d as indented JSON.
func MarshalJSON(d *Descriptor) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// MarshalYAML renders d as YAML.
func MarshalYAML(d *Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Walk calls fn for every node in depth-first document order.
func (d *Descriptor) Walk(fn func(path []string, n Node)) {
	if d == nil {
		return
	}
	var walk func(prefix []string, nodes []Node)
	walk = func(prefix []string, nodes []Node) {
		for _, n := range nodes {
			p := append(append([]string(nil), prefix...), n.Tag)
			fn(p, n)
			walk(p, n.Children)
		}
	}
	walk(nil, d.Nodes)
}
