package gocml

// elementSpec is the requirement every attributed element carries.
var elementSpec = RequirementSpec{AttrDictRef: {Status: Required}}

// containerSpec is the requirement of parameters and properties. units is
// consumed by the value child.
var containerSpec = RequirementSpec{
	AttrDictRef: {Status: Required},
	AttrUnits:   {Status: Required},
}

var containerKinds = map[string]Kind{
	TagParameter: KindParameter,
	TagProperty:  KindProperty,
}

// NewElement builds a generic element that must carry a dictRef. All of
// attrib is kept on the element.
func NewElement(tag string, attrib map[string]string) (*Node, error) {
	attrs := AttrsFromMap(attrib)
	if err := checkNames(tag, attrs); err != nil {
		return nil, err
	}
	if iss := Check(attrs, elementSpec); len(iss) > 0 {
		return nil, iss
	}
	return &Node{Kind: KindElement, Tag: tag, Attrs: attrs}, nil
}

// NewValueContainer builds a parameter or property wrapping one value. attrib
// must carry dictRef and units; both are checked before the value is built.
// The value variant is chosen by ClassifyShape. Only dictRef stays on the
// container.
func NewValueContainer(tag string, value any, attrib map[string]string) (*Node, error) {
	kind, ok := containerKinds[tag]
	if !ok {
		return nil, singleIssue("/", CodeInvalidTag, map[string]string{"tag": tag})
	}
	attrs := AttrsFromMap(attrib)
	if iss := Check(attrs, containerSpec); len(iss) > 0 {
		return nil, iss
	}
	dictRef, _ := attrs.Get(AttrDictRef)
	units, _ := attrs.Get(AttrUnits)
	v, err := NewValue(value, units)
	if err != nil {
		return nil, err
	}
	n := &Node{
		Kind:  kind,
		Tag:   tag,
		Attrs: Attrs{{Name: AttrDictRef, Value: dictRef}},
	}
	n.adopt(v.Node())
	return n, nil
}

// NewParameter builds a parameter element.
func NewParameter(value any, attrib map[string]string) (*Node, error) {
	return NewValueContainer(TagParameter, value, attrib)
}

// NewProperty builds a property element.
func NewProperty(value any, attrib map[string]string) (*Node, error) {
	return NewValueContainer(TagProperty, value, attrib)
}
