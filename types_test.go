package gocml_test

import (
	"errors"
	"math"
	"testing"

	"github.com/reoring/gocml"
)

func TestClassify_Supported(t *testing.T) {
	cases := []struct {
		in   any
		want gocml.SchemaType
	}{
		{5, gocml.TypeInt},
		{int64(-3), gocml.TypeInt},
		{uint8(7), gocml.TypeInt},
		{6.321, gocml.TypeDouble},
		{float32(1.5), gocml.TypeDouble},
		{1.0, gocml.TypeDouble},
		{"test text", gocml.TypeString},
		{"", gocml.TypeString},
	}
	for _, tc := range cases {
		got, err := gocml.Classify(tc.in)
		if err != nil {
			t.Fatalf("Classify(%#v): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Classify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, in := range []any{true, nil, []int{1}, map[string]int{}, struct{}{}, complex(1, 2)} {
		_, err := gocml.Classify(in)
		if !errors.Is(err, gocml.ErrDataType) {
			t.Fatalf("Classify(%#v): expected ErrDataType, got %v", in, err)
		}
		if !errors.Is(err, gocml.ErrStructure) {
			t.Fatalf("Classify(%#v): data type errors are structure errors, got %v", in, err)
		}
		iss, ok := gocml.AsIssues(err)
		if !ok || iss[0].Code != gocml.CodeInvalidType {
			t.Fatalf("expected invalid_type issue, got %v", err)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{5, "5"},
		{int64(-12), "-12"},
		{1.5e6, "1500000.0"},
		{26782.0, "26782.0"},
		{1.3, "1.3"},
		{6.321, "6.321"},
		{1e-7, "0.0000001"},
		{float32(0.1), "0.1"},
		{math.Inf(1), "INF"},
		{math.Inf(-1), "-INF"},
		{math.NaN(), "NaN"},
		{"a bb", "a bb"},
	}
	for _, tc := range cases {
		got, err := gocml.FormatValue(tc.in)
		if err != nil {
			t.Fatalf("FormatValue(%#v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
