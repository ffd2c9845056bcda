// Package jobfile loads the description of a simple compchem job from JSON,
// YAML or HCL and builds the matching document.
//
// Numbers written without a fraction or exponent load as integers, all other
// numbers as doubles. Inside a sequence, integers are widened to doubles when
// any element is a double, so [1, 2.5] is a double array. HCL keeps no
// literal text for numbers: whole values load as integers unless the value
// block sets type = "double".
package jobfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/gocml"
	"github.com/reoring/gocml/conventions/compchem"
)

// Format selects the decoder.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// File is a job description.
type File struct {
	JobsListTitle  string   `json:"jobsListTitle" yaml:"jobsListTitle"`
	JobTitle       string   `json:"jobTitle" yaml:"jobTitle"`
	Environment    *Section `json:"environment,omitempty" yaml:"environment,omitempty"`
	Initialisation Section  `json:"initialisation" yaml:"initialisation"`
	Finalisation   Section  `json:"finalisation" yaml:"finalisation"`
}

// Section holds the title and values of one module.
type Section struct {
	Title  string             `json:"title" yaml:"title"`
	Values []gocml.Descriptor `json:"values" yaml:"values"`
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("jobfile: cannot infer format of %q", path)
	}
}

// Load reads and decodes path. FormatAuto picks the format from the
// extension.
func Load(path string, format Format) (*File, error) {
	if format == "" || format == FormatAuto {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jobfile: %w", err)
	}
	return Parse(data, path, format)
}

// Parse decodes data in the given format. name is used in diagnostics.
func Parse(data []byte, name string, format Format) (*File, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatJSON:
		f, err = parseJSON(data)
	case FormatYAML:
		f, err = parseYAML(data)
	case FormatHCL:
		f, err = parseHCL(data, name)
	default:
		return nil, fmt.Errorf("jobfile: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("jobfile: decode %s: %w", name, err)
	}
	if err := f.normalize(); err != nil {
		return nil, fmt.Errorf("jobfile: %s: %w", name, err)
	}
	return f, nil
}

func (f *File) sections() []*Section {
	s := []*Section{&f.Initialisation, &f.Finalisation}
	if f.Environment != nil {
		s = append(s, f.Environment)
	}
	return s
}

func (f *File) normalize() error {
	for _, s := range f.sections() {
		for i := range s.Values {
			v, err := normalizeValue(s.Values[i].Value)
			if err != nil {
				return fmt.Errorf("value %d: %w", i, err)
			}
			s.Values[i].Value = v
		}
	}
	return nil
}

// Build creates the compchem document described by f. opts are passed to the
// document and its modules.
func (f *File) Build(opts ...gocml.Option) (*compchem.Document, error) {
	copts := []compchem.Option{
		compchem.WithTitle(compchem.RoleJobsList, f.JobsListTitle),
		compchem.WithTitle(compchem.RoleJob, f.JobTitle),
		compchem.WithTitle(compchem.RoleInitialisation, f.Initialisation.Title),
		compchem.WithTitle(compchem.RoleFinalisation, f.Finalisation.Title),
		compchem.WithDocumentOptions(opts...),
	}
	if f.Environment != nil {
		copts = append(copts, compchem.WithEnvironment(), compchem.WithTitle(compchem.RoleEnvironment, f.Environment.Title))
	}
	doc, err := compchem.New(copts...)
	if err != nil {
		return nil, err
	}
	if f.Environment != nil && len(f.Environment.Values) > 0 {
		if err := doc.Environment().Populate(f.Environment.Values); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}
	if len(f.Initialisation.Values) > 0 {
		if err := doc.Initialisation().Populate(f.Initialisation.Values); err != nil {
			return nil, fmt.Errorf("initialisation: %w", err)
		}
	}
	if len(f.Finalisation.Values) > 0 {
		if err := doc.Finalisation().Populate(f.Finalisation.Values); err != nil {
			return nil, fmt.Errorf("finalisation: %w", err)
		}
	}
	return doc, nil
}
