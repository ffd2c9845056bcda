package gocml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/gocml/i18n"
)

// Issue codes.
const (
	CodeRequired         = "required"
	CodeRecommended      = "recommended"
	CodeFixedValue       = "fixed_value"
	CodeInvalidTag       = "invalid_tag"
	CodeMalformedNode    = "malformed_node"
	CodeInvalidType      = "invalid_type"
	CodeMixedTypes       = "mixed_types"
	CodeEmptyArray       = "empty_array"
	CodeNotImplemented   = "not_implemented"
	CodeInvalidNamespace = "invalid_namespace"
)

// Error kinds. Use errors.Is against an error returned by this package.
var (
	// ErrStructure reports a missing required attribute, a wrong tag or a
	// malformed node.
	ErrStructure = errors.New("gocml: structure error")
	// ErrDataType reports a native value with no schema type. It is also an
	// ErrStructure.
	ErrDataType = fmt.Errorf("%w: unsupported data type", ErrStructure)
	// ErrNotImplemented reports matrix values and mixed-type arrays.
	ErrNotImplemented = errors.New("gocml: not implemented")
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Error Severity = iota
	Warn
)

func (s Severity) String() string {
	if s == Warn {
		return "warn"
	}
	return "error"
}

// Issue represents a single construction violation.
type Issue struct {
	Path      string // Element path, e.g. /parameterList/2/@units.
	Code      string // One of the codes listed above.
	Message   string
	Attribute string // Attribute concerned, when there is one.
	Severity  Severity
	// Params carries structured parameters (e.g., {"type":"bool"}) for i18n
	// and logging.
	Params map[string]string
}

// kind maps the issue code to one of the error kinds.
func (it Issue) kind() error {
	switch it.Code {
	case CodeInvalidType:
		return ErrDataType
	case CodeMixedTypes, CodeNotImplemented:
		return ErrNotImplemented
	default:
		return ErrStructure
	}
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /@dictRef: required attribute dictRef missing
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any error-severity issue belongs to the target kind.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Severity == Error && errors.Is(it.kind(), target) {
			return true
		}
	}
	return false
}

// Errors returns the error-severity issues, or nil.
func (iss Issues) Errors() Issues { return iss.filter(Error) }

// Warnings returns the warn-severity issues, or nil.
func (iss Issues) Warnings() Issues { return iss.filter(Warn) }

func (iss Issues) filter(sev Severity) Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == sev {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// newIssue builds an error-severity issue with a translated message.
func newIssue(path, code string, params map[string]string) Issue {
	return Issue{
		Path:      path,
		Code:      code,
		Message:   i18n.T(code, params),
		Attribute: params["attribute"],
		Params:    params,
	}
}

func singleIssue(path, code string, params map[string]string) Issues {
	return AppendIssues(nil, newIssue(path, code, params))
}

// attrPath renders the path of an attribute below an element path.
func attrPath(base, attr string) string {
	return strings.TrimSuffix(base, "/") + "/@" + attr
}

// prefixIssues rewrites issue paths so they are relative to seg.
func prefixIssues(iss Issues, seg string) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = "/" + seg
		} else {
			it.Path = "/" + seg + it.Path
		}
		out[i] = it
	}
	return out
}
