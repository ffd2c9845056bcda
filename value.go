package gocml

import (
	"reflect"
	"strconv"
	"strings"
)

// ValueKind selects the variant held by a Value.
type ValueKind uint8

const (
	ValueScalar ValueKind = iota
	ValueArray
	ValueMatrix
)

// Shape is the result of inspecting a native value before building a Value.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeArray
	ShapeMatrix
)

// arrayDelimiter is the only delimiter arrays are written with.
const arrayDelimiter = " "

// Value is the leaf of a parameter or property: a single datum (scalar) or a
// homogeneous sequence (array). Matrix values are declared but cannot be
// built.
type Value struct {
	Kind      ValueKind
	DataType  SchemaType
	Units     string
	Length    int // Arrays only.
	Delimiter string
	Text      string
}

// ClassifyShape inspects v. Slices and arrays are ShapeArray unless their
// elements are themselves sequences, which makes them ShapeMatrix. Strings
// and everything else are ShapeScalar.
func ClassifyShape(v any) Shape {
	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return ShapeScalar
	}
	if isSequence(reflect.New(rv.Type().Elem()).Elem()) {
		return ShapeMatrix
	}
	if rv.Len() > 0 && isSequence(reflect.ValueOf(rv.Index(0).Interface())) {
		return ShapeMatrix
	}
	return ShapeArray
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// NewValue classifies the shape of v and builds the matching variant.
func NewValue(v any, units string) (Value, error) {
	switch ClassifyShape(v) {
	case ShapeArray:
		return NewArray(v, units)
	case ShapeMatrix:
		return NewMatrix(v, units)
	default:
		return NewScalar(v, units)
	}
}

// NewScalar builds a scalar value. units must be non-empty.
func NewScalar(v any, units string) (Value, error) {
	if units == "" {
		return Value{}, singleIssue(attrPath("/", AttrUnits), CodeRequired, map[string]string{"attribute": AttrUnits})
	}
	dt, err := Classify(v)
	if err != nil {
		return Value{}, err
	}
	text, err := FormatValue(v)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: ValueScalar, DataType: dt, Units: units, Text: text}, nil
}

// NewArray builds an array value from a slice or array. The sequence must be
// non-empty and every element must have the same Go type; dataType is taken
// from the first element and length is derived from the element count.
func NewArray(values any, units string) (Value, error) {
	if units == "" {
		return Value{}, singleIssue(attrPath("/", AttrUnits), CodeRequired, map[string]string{"attribute": AttrUnits})
	}
	rv := reflect.ValueOf(values)
	if !isSequence(rv) {
		return Value{}, singleIssue("/", CodeInvalidType, map[string]string{"type": typeName(values)})
	}
	n := rv.Len()
	if n == 0 {
		return Value{}, singleIssue("/", CodeEmptyArray, nil)
	}
	first := rv.Index(0).Interface()
	firstType := reflect.TypeOf(first)
	for i := 1; i < n; i++ {
		if reflect.TypeOf(rv.Index(i).Interface()) != firstType {
			return Value{}, singleIssue("/"+strconv.Itoa(i), CodeMixedTypes, nil)
		}
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		text, err := FormatValue(rv.Index(i).Interface())
		if err != nil {
			return Value{}, prefixIssues(toIssues(err), strconv.Itoa(i))
		}
		parts[i] = text
	}
	dt, err := Classify(first)
	if err != nil {
		return Value{}, err
	}
	return Value{
		Kind:      ValueArray,
		DataType:  dt,
		Units:     units,
		Length:    n,
		Delimiter: arrayDelimiter,
		Text:      strings.Join(parts, arrayDelimiter),
	}, nil
}

// NewMatrix always fails: matrix values have no encoding yet.
func NewMatrix(values any, units string) (Value, error) {
	return Value{}, singleIssue("/", CodeNotImplemented, map[string]string{"what": TagMatrix})
}

// Node renders the value as a scalar or array element.
func (v Value) Node() *Node {
	switch v.Kind {
	case ValueArray:
		return &Node{
			Kind: KindArray,
			Tag:  TagArray,
			Attrs: Attrs{
				{Name: AttrDataType, Value: string(v.DataType)},
				{Name: AttrDelimiter, Value: v.Delimiter},
				{Name: AttrLength, Value: strconv.Itoa(v.Length)},
				{Name: AttrUnits, Value: v.Units},
			},
			Text: v.Text,
		}
	case ValueMatrix:
		return &Node{Kind: KindMatrix, Tag: TagMatrix, Attrs: Attrs{{Name: AttrUnits, Value: v.Units}}, Text: v.Text}
	default:
		return &Node{
			Kind: KindScalar,
			Tag:  TagScalar,
			Attrs: Attrs{
				{Name: AttrDataType, Value: string(v.DataType)},
				{Name: AttrUnits, Value: v.Units},
			},
			Text: v.Text,
		}
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return singleIssue("/", CodeMalformedNode, nil)
}
