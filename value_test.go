package gocml_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/reoring/gocml"
)

func intRange(start, stop, step int) []int {
	var out []int
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out
}

func TestNewArray_Ints(t *testing.T) {
	v, err := gocml.NewArray([]int{1, 4, 7}, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := gocml.Value{
		Kind:      gocml.ValueArray,
		DataType:  gocml.TypeInt,
		Units:     "u",
		Length:    3,
		Delimiter: " ",
		Text:      "1 4 7",
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestNewArray_Doubles(t *testing.T) {
	v, err := gocml.NewArray([]float64{1.3, 5.6, 7.3, 1.5e6, 26782.}, "test:units")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.DataType != gocml.TypeDouble || v.Text != "1.3 5.6 7.3 1500000.0 26782.0" || v.Length != 5 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestNewArray_LengthMatchesCount(t *testing.T) {
	for _, n := range []int{1, 2, 33, 100} {
		vals := intRange(0, n, 1)
		v, err := gocml.NewArray(vals, "u")
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if v.Length != n || v.Delimiter != " " {
			t.Fatalf("n=%d: length=%d delimiter=%q", n, v.Length, v.Delimiter)
		}
		if got := len(strings.Split(v.Text, " ")); got != n {
			t.Fatalf("n=%d: text has %d items", n, got)
		}
		node := v.Node()
		if node.Attr(gocml.AttrLength) != strconv.Itoa(n) {
			t.Fatalf("n=%d: length attr %q", n, node.Attr(gocml.AttrLength))
		}
	}
}

func TestNewArray_Strings(t *testing.T) {
	v, err := gocml.NewArray([]any{"a", "bb", "CCC", "dddd"}, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.DataType != gocml.TypeString || v.Text != "a bb CCC dddd" || v.Length != 4 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestNewArray_MixedTypes(t *testing.T) {
	for _, in := range [][]any{
		{1, 2, 3, 4, "gtr"},
		{1, 2.0},
		{true, 1},
	} {
		_, err := gocml.NewArray(in, "u")
		if !errors.Is(err, gocml.ErrNotImplemented) {
			t.Fatalf("%v: expected ErrNotImplemented, got %v", in, err)
		}
		iss, _ := gocml.AsIssues(err)
		if iss[0].Code != gocml.CodeMixedTypes {
			t.Fatalf("%v: expected mixed_types, got %v", in, iss)
		}
	}
}

func TestNewArray_Empty(t *testing.T) {
	_, err := gocml.NewArray([]int{}, "u")
	if !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("expected structure error, got %v", err)
	}
	iss, _ := gocml.AsIssues(err)
	if iss[0].Code != gocml.CodeEmptyArray {
		t.Fatalf("expected empty_array, got %v", iss)
	}
}

func TestNewArray_UnsupportedElements(t *testing.T) {
	_, err := gocml.NewArray([]bool{true, false}, "u")
	if !errors.Is(err, gocml.ErrDataType) {
		t.Fatalf("expected ErrDataType, got %v", err)
	}
}

func TestUnitsRequired(t *testing.T) {
	if _, err := gocml.NewScalar(5, ""); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("scalar without units: expected structure error, got %v", err)
	}
	if _, err := gocml.NewArray([]int{1}, ""); !errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("array without units: expected structure error, got %v", err)
	}
}

func TestNewMatrix_NotImplemented(t *testing.T) {
	_, err := gocml.NewMatrix([][]float64{{1, 2}, {3, 4}}, "u")
	if !errors.Is(err, gocml.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if errors.Is(err, gocml.ErrStructure) {
		t.Fatalf("not implemented must be distinguishable from structure errors")
	}
}

func TestClassifyShape(t *testing.T) {
	cases := []struct {
		in   any
		want gocml.Shape
	}{
		{5, gocml.ShapeScalar},
		{"abc", gocml.ShapeScalar},
		{[]int{1, 2}, gocml.ShapeArray},
		{[3]float64{1, 2, 3}, gocml.ShapeArray},
		{[]any{"a"}, gocml.ShapeArray},
		{[][]int{{1}}, gocml.ShapeMatrix},
		{[]any{[]int{1}}, gocml.ShapeMatrix},
	}
	for _, tc := range cases {
		if got := gocml.ClassifyShape(tc.in); got != tc.want {
			t.Fatalf("ClassifyShape(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestValueNode(t *testing.T) {
	v, err := gocml.NewScalar(6.321, "test:units")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &gocml.Node{
		Kind: gocml.KindScalar,
		Tag:  "scalar",
		Attrs: gocml.Attrs{
			{Name: "dataType", Value: "xsd:double"},
			{Name: "units", Value: "test:units"},
		},
		Text: "6.321",
	}
	if diff := cmp.Diff(want, v.Node(), cmpopts.IgnoreUnexported(gocml.Node{})); diff != "" {
		t.Fatalf("scalar node mismatch (-want +got):\n%s", diff)
	}
}
