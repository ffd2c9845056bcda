package gocml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SchemaType is the dataType literal written on scalar and array elements.
type SchemaType string

const (
	TypeInt    SchemaType = "xsd:int"
	TypeDouble SchemaType = "xsd:double"
	TypeString SchemaType = "xsd:str"
)

// Classify maps a native value to its schema type. Integer kinds map to
// TypeInt, float kinds to TypeDouble and strings to TypeString. Every other
// type fails with ErrDataType; integers are never reported as doubles.
func Classify(v any) (SchemaType, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInt, nil
	case float32, float64:
		return TypeDouble, nil
	case string:
		return TypeString, nil
	default:
		return "", singleIssue("/", CodeInvalidType, map[string]string{"type": typeName(v)})
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// FormatValue renders a classified value as element text. Floats use the
// shortest fixed-point form that round-trips and always carry a fractional
// part, so 1.5e6 renders as "1500000.0".
func FormatValue(v any) (string, error) {
	switch t := v.(type) {
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return formatDouble(float64(t), 32), nil
	case float64:
		return formatDouble(t, 64), nil
	case string:
		return t, nil
	default:
		return "", singleIssue("/", CodeInvalidType, map[string]string{"type": typeName(v)})
	}
}

// formatDouble uses the xsd:double lexical forms for non-finite values.
func formatDouble(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
