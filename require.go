package gocml

import (
	"log/slog"
	"sort"
)

// Status is the policy attached to an attribute in a RequirementSpec.
type Status uint8

const (
	Required Status = iota
	Recommended
)

func (s Status) String() string {
	if s == Recommended {
		return "recommended"
	}
	return "required"
}

// Requirement describes the policy for one attribute. Message replaces the
// default message when set. Value, when set, is the only accepted value.
type Requirement struct {
	Status  Status
	Message string
	Value   string
}

// RequirementSpec maps attribute names to their requirement.
type RequirementSpec map[string]Requirement

// Check returns every violation of reqs by attrs, in attribute name order.
// Missing required attributes and fixed-value mismatches have Error severity;
// missing recommended attributes have Warn severity. Attributes absent from
// reqs are not looked at.
func Check(attrs Attrs, reqs RequirementSpec) Issues {
	if len(reqs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(reqs))
	for k := range reqs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var iss Issues
	for _, k := range keys {
		req := reqs[k]
		got, ok := attrs.Get(k)
		switch {
		case !ok && req.Status == Required:
			iss = append(iss, requirementIssue(k, CodeRequired, Error, req.Message, nil))
		case !ok:
			iss = append(iss, requirementIssue(k, CodeRecommended, Warn, req.Message, nil))
		case req.Value != "" && got != req.Value:
			iss = append(iss, requirementIssue(k, CodeFixedValue, Error, req.Message, map[string]string{"want": req.Value, "got": got}))
		}
	}
	return iss
}

func requirementIssue(attr, code string, sev Severity, msg string, params map[string]string) Issue {
	if params == nil {
		params = map[string]string{}
	}
	params["attribute"] = attr
	it := newIssue(attrPath("/", attr), code, params)
	it.Severity = sev
	if msg != "" {
		it.Message = msg
	}
	return it
}

// Enforce checks attrs against reqs. Errors are returned as Issues; warnings
// are logged at WARN level and returned so the caller can keep them.
func Enforce(attrs Attrs, reqs RequirementSpec, opts ...Option) (Issues, error) {
	iss := Check(attrs, reqs)
	if errs := iss.Errors(); len(errs) > 0 {
		return nil, errs
	}
	warnings := iss.Warnings()
	if len(warnings) > 0 {
		o := buildOptions(opts)
		for _, w := range warnings {
			logWarning(o.logger, w)
		}
	}
	return warnings, nil
}

func logWarning(l *slog.Logger, it Issue) {
	l.Warn(it.Message, "code", it.Code, "attribute", it.Attribute, "path", it.Path)
}
