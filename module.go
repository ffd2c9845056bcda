package gocml

// NewModule builds a module element. attrib must carry a dictRef.
func NewModule(attrib map[string]string) (*Node, error) {
	n, err := NewElement(TagModule, attrib)
	if err != nil {
		return nil, err
	}
	n.Kind = KindModule
	return n, nil
}

// NewModuleWithSpec enforces reqs on attrib and builds the module only when
// no required attribute is missing. The returned Issues hold the warnings.
func NewModuleWithSpec(attrib map[string]string, reqs RequirementSpec, opts ...Option) (*Node, Issues, error) {
	attrs := AttrsFromMap(attrib)
	warnings, err := Enforce(attrs, reqs, opts...)
	if err != nil {
		return nil, nil, err
	}
	n, err := NewModule(attrib)
	if err != nil {
		return nil, nil, err
	}
	return n, warnings, nil
}
