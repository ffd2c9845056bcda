package jobfile

import (
	"strconv"
	"strings"
)

// number is satisfied by json.Number from both encoding/json and go-json.
type number interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// normalizeValue turns decoded numbers into int or float64 and widens
// integer sequences that contain doubles.
func normalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case number:
		return numberValue(t.String())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			ne, err := normalizeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return widen(out), nil
	default:
		return v, nil
	}
}

func numberValue(s string) (any, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return int(i), nil
		}
	}
	return strconv.ParseFloat(s, 64)
}

// widen converts every int of a numeric sequence to float64 when the
// sequence holds at least one float64. Sequences with other element types
// are returned unchanged.
func widen(seq []any) []any {
	hasFloat := false
	for _, e := range seq {
		switch e.(type) {
		case int:
		case float64:
			hasFloat = true
		default:
			return seq
		}
	}
	if !hasFloat {
		return seq
	}
	for i, e := range seq {
		if n, ok := e.(int); ok {
			seq[i] = float64(n)
		}
	}
	return seq
}
