package gocml

import (
	"sort"
	"unicode"
)

// Kind classifies a Node within the markup vocabulary.
type Kind uint8

const (
	KindElement Kind = iota // Generic attributed element.
	KindScalar
	KindArray
	KindMatrix
	KindParameter
	KindProperty
	KindParameterList
	KindPropertyList
	KindModule
)

// Element tags of the vocabulary.
const (
	TagScalar        = "scalar"
	TagArray         = "array"
	TagMatrix        = "matrix"
	TagParameter     = "parameter"
	TagProperty      = "property"
	TagParameterList = "parameterList"
	TagPropertyList  = "propertyList"
	TagModule        = "module"
)

// Attribute names used by the vocabulary.
const (
	AttrDictRef   = "dictRef"
	AttrUnits     = "units"
	AttrDataType  = "dataType"
	AttrLength    = "length"
	AttrDelimiter = "delimiter"
	AttrTitle     = "title"
)

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list with unique names. Output order is
// insertion order.
type Attrs []Attr

// AttrsFromMap copies m into Attrs in sorted key order.
func AttrsFromMap(m map[string]string) Attrs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Attrs, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attr{Name: k, Value: m[k]})
	}
	return out
}

// Get returns the value of name and whether it is set.
func (a Attrs) Get(name string) (string, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}

// Has reports whether name is set.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set overwrites name in place or appends it.
func (a *Attrs) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Delete removes name if present.
func (a *Attrs) Delete(name string) {
	for i := range *a {
		if (*a)[i].Name == name {
			*a = append((*a)[:i], (*a)[i+1:]...)
			return
		}
	}
}

// Map returns a copy of the attributes as a map.
func (a Attrs) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, at := range a {
		m[at.Name] = at.Value
	}
	return m
}

// Node is an element of the document tree. Value nodes carry Text, all other
// kinds carry Children. A Node owns its children: once attached to a parent
// or a Document it cannot be attached anywhere else.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    Attrs
	Children []*Node
	Text     string

	owned bool
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(name string) string {
	v, _ := n.Attrs.Get(name)
	return v
}

// Find returns the first direct child with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given tag.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Append adds child as the last child of n. child must not be attached
// already and must not contain n.
func (n *Node) Append(child *Node) error {
	if err := validNode(child); err != nil {
		return err
	}
	if n.isValue() || child.owned || contains(child, n, map[*Node]bool{}) {
		return singleIssue("/"+n.Tag, CodeMalformedNode, nil)
	}
	n.adopt(child)
	return nil
}

func (n *Node) adopt(children ...*Node) {
	for _, c := range children {
		c.owned = true
	}
	n.Children = append(n.Children, children...)
}

// contains reports whether target is root or lies below it.
func contains(root, target *Node, seen map[*Node]bool) bool {
	if root == target {
		return true
	}
	if root == nil || seen[root] {
		return false
	}
	seen[root] = true
	for _, c := range root.Children {
		if contains(c, target, seen) {
			return true
		}
	}
	return false
}

// SetTitle sets the title attribute and returns n.
func (n *Node) SetTitle(title string) *Node {
	n.Attrs.Set(AttrTitle, title)
	return n
}

func (n *Node) isValue() bool {
	return n.Kind == KindScalar || n.Kind == KindArray || n.Kind == KindMatrix
}

func validNode(n *Node) error {
	if n == nil {
		return singleIssue("/", CodeMalformedNode, nil)
	}
	return checkNames(n.Tag, n.Attrs)
}

// checkNames reports a tag or attribute name that is not an XML NCName.
func checkNames(tag string, attrs Attrs) error {
	if !validNCName(tag) {
		return singleIssue("/", CodeMalformedNode, map[string]string{"tag": tag})
	}
	for _, a := range attrs {
		if !validNCName(a.Name) {
			return singleIssue(attrPath("/", a.Name), CodeMalformedNode, map[string]string{"attribute": a.Name})
		}
	}
	return nil
}

// validNCName reports whether s is an XML name without a colon.
func validNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
