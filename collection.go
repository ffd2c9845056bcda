package gocml

import "strconv"

// Descriptor is the input record for one parameter or property.
type Descriptor struct {
	Value  any               `json:"value" yaml:"value"`
	Attrib map[string]string `json:"attrib" yaml:"attrib"`
}

var collectionItems = map[string]struct {
	kind Kind
	item string
}{
	TagParameterList: {kind: KindParameterList, item: TagParameter},
	TagPropertyList:  {kind: KindPropertyList, item: TagProperty},
}

// NewCollection builds a parameterList or propertyList holding one container
// per descriptor, in order. No descriptors gives an empty list.
func NewCollection(tag string, descriptors []Descriptor) (*Node, error) {
	ci, ok := collectionItems[tag]
	if !ok {
		return nil, singleIssue("/", CodeInvalidTag, map[string]string{"tag": tag})
	}
	n := &Node{Kind: ci.kind, Tag: tag}
	if err := n.Populate(descriptors); err != nil {
		return nil, err
	}
	return n, nil
}

// NewParameterList builds a parameterList.
func NewParameterList(descriptors ...Descriptor) (*Node, error) {
	return NewCollection(TagParameterList, descriptors)
}

// NewPropertyList builds a propertyList.
func NewPropertyList(descriptors ...Descriptor) (*Node, error) {
	return NewCollection(TagPropertyList, descriptors)
}

// Populate appends one container per descriptor to a collection node. The
// containers are all built before any is attached, so a failing descriptor
// leaves n unchanged.
func (n *Node) Populate(descriptors []Descriptor) error {
	ci, ok := collectionItems[n.Tag]
	if !ok {
		return singleIssue("/", CodeInvalidTag, map[string]string{"tag": n.Tag})
	}
	items := make([]*Node, 0, len(descriptors))
	for i, d := range descriptors {
		item, err := NewValueContainer(ci.item, d.Value, d.Attrib)
		if err != nil {
			return prefixIssues(toIssues(err), strconv.Itoa(i))
		}
		items = append(items, item)
	}
	n.adopt(items...)
	return nil
}
