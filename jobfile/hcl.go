package jobfile

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/reoring/gocml"
)

// hclFile is the HCL layout of a job file:
//
//	jobs_list_title = "Jobs"
//	job_title       = "Geometry optimisation"
//
//	initialisation {
//	  title = "Input"
//	  value "cc:basis" {
//	    value = "6-31G"
//	    units = "si:none"
//	  }
//	}
type hclFile struct {
	JobsListTitle  string      `hcl:"jobs_list_title,optional"`
	JobTitle       string      `hcl:"job_title,optional"`
	Environment    *hclSection `hcl:"environment,block"`
	Initialisation *hclSection `hcl:"initialisation,block"`
	Finalisation   *hclSection `hcl:"finalisation,block"`
}

type hclSection struct {
	Title  string      `hcl:"title,optional"`
	Values []*hclValue `hcl:"value,block"`
}

type hclValue struct {
	DictRef string            `hcl:"dict_ref,label"`
	Value   cty.Value         `hcl:"value"`
	Units   string            `hcl:"units"`
	Type    string            `hcl:"type,optional"` // "int" or "double" forces the number type.
	Attrib  map[string]string `hcl:"attrib,optional"`
}

func parseHCL(data []byte, name string) (*File, error) {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}
	var raw hclFile
	if diags := gohcl.DecodeBody(hf.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	f := &File{JobsListTitle: raw.JobsListTitle, JobTitle: raw.JobTitle}
	var err error
	if raw.Environment != nil {
		env, err := raw.Environment.section()
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
		f.Environment = &env
	}
	if raw.Initialisation != nil {
		if f.Initialisation, err = raw.Initialisation.section(); err != nil {
			return nil, fmt.Errorf("initialisation: %w", err)
		}
	}
	if raw.Finalisation != nil {
		if f.Finalisation, err = raw.Finalisation.section(); err != nil {
			return nil, fmt.Errorf("finalisation: %w", err)
		}
	}
	return f, nil
}

func (s *hclSection) section() (Section, error) {
	out := Section{Title: s.Title}
	for _, hv := range s.Values {
		v, err := ctyToNative(hv.Value, hv.Type)
		if err != nil {
			return Section{}, fmt.Errorf("value %q: %w", hv.DictRef, err)
		}
		attrib := make(map[string]string, len(hv.Attrib)+2)
		for k, a := range hv.Attrib {
			attrib[k] = a
		}
		attrib[gocml.AttrDictRef] = hv.DictRef
		attrib[gocml.AttrUnits] = hv.Units
		out.Values = append(out.Values, gocml.Descriptor{Value: v, Attrib: attrib})
	}
	return out, nil
}

// ctyToNative converts a cty value to the Go value a descriptor expects.
// Numbers become int when whole and float64 otherwise, unless typ forces
// one of them. Lists and tuples become []any.
func ctyToNative(v cty.Value, typ string) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		return ctyNumber(v.AsBigFloat(), typ)
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			n, err := ctyToNative(ev, typ)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

func ctyNumber(bf *big.Float, typ string) (any, error) {
	switch typ {
	case "double":
		f, _ := bf.Float64()
		return f, nil
	case "int":
		if !bf.IsInt() {
			return nil, fmt.Errorf("%s is not an integer", bf.Text('g', -1))
		}
		i, acc := bf.Int64()
		if acc != big.Exact || int64(int(i)) != i {
			return nil, fmt.Errorf("%s overflows int", bf.Text('g', -1))
		}
		return int(i), nil
	case "":
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact && int64(int(i)) == i {
				return int(i), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	default:
		return nil, fmt.Errorf("unknown type %q", typ)
	}
}
