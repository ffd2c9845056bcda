// Package compchem implements a simple form of the compchem CML convention: a
// jobsList holding one job, which holds an optional environment module, an
// initialisation module and a finalisation module.
package compchem

import (
	"io"

	"github.com/reoring/gocml"
	"github.com/reoring/gocml/convention"
)

// Namespace binding registered by compchem documents.
const (
	Prefix    = "compchem"
	Namespace = "http://xml-cml.org/convention/compchem"
)

// Option configures a Document.
type Option func(*config)

type config struct {
	environment bool
	titles      map[Role]string
	docOpts     []gocml.Option
}

// WithEnvironment adds the optional environment module.
func WithEnvironment() Option {
	return func(c *config) { c.environment = true }
}

// WithTitle sets the title of the module with the given role.
func WithTitle(role Role, title string) Option {
	return func(c *config) { c.titles[role] = title }
}

// WithDocumentOptions passes options to the underlying gocml.Document and to
// the role modules (e.g. gocml.WithLogger).
func WithDocumentOptions(opts ...gocml.Option) Option {
	return func(c *config) { c.docOpts = append(c.docOpts, opts...) }
}

// Document is a CML document following the simple compchem convention. The
// role modules exist from construction on and are wired into the tree by the
// first Write.
type Document struct {
	*gocml.Document

	jobsList       *Module
	job            *Module
	initialisation *Module
	finalisation   *Module
	environment    *Module

	wired bool
}

// New creates the document and its role modules.
func New(opts ...Option) (*Document, error) {
	c := config{titles: map[Role]string{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	docOpts := append([]gocml.Option{gocml.WithConvention(Convention())}, c.docOpts...)
	d := &Document{Document: gocml.New(docOpts...)}
	if err := d.RegisterNamespace(Prefix, Namespace); err != nil {
		return nil, err
	}

	var err error
	if d.jobsList, err = NewJobsList(c.titles[RoleJobsList], c.docOpts...); err != nil {
		return nil, err
	}
	if d.job, err = NewJob(c.titles[RoleJob], c.docOpts...); err != nil {
		return nil, err
	}
	if d.initialisation, err = NewInitialisation(c.titles[RoleInitialisation], nil, c.docOpts...); err != nil {
		return nil, err
	}
	if d.finalisation, err = NewFinalisation(c.titles[RoleFinalisation], nil, c.docOpts...); err != nil {
		return nil, err
	}
	if c.environment {
		if d.environment, err = NewEnvironment(c.titles[RoleEnvironment], nil, c.docOpts...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// JobsList returns the jobsList module.
func (d *Document) JobsList() *Module { return d.jobsList }

// Job returns the job module.
func (d *Document) Job() *Module { return d.job }

// Initialisation returns the initialisation module.
func (d *Document) Initialisation() *Module { return d.initialisation }

// Finalisation returns the finalisation module.
func (d *Document) Finalisation() *Module { return d.finalisation }

// Environment returns the environment module, or nil when the document was
// built without WithEnvironment.
func (d *Document) Environment() *Module { return d.environment }

// Warnings collects the construction warnings of all role modules.
func (d *Document) Warnings() gocml.Issues {
	var out gocml.Issues
	for _, m := range d.modules() {
		out = append(out, m.Warnings()...)
	}
	return out
}

func (d *Document) modules() []*Module {
	ms := []*Module{d.jobsList, d.job}
	if d.environment != nil {
		ms = append(ms, d.environment)
	}
	return append(ms, d.initialisation, d.finalisation)
}

// Write finalises the tree and serializes it to w, returning w. The job gets
// the environment (when present), the initialisation and the finalisation in
// that order, the jobsList gets the job and the document gets the jobsList.
// The wiring happens once: later calls serialize the same structure again.
// Modules can still be populated between writes.
func (d *Document) Write(w io.Writer) (io.Writer, error) {
	if !d.wired {
		if err := d.wire(); err != nil {
			return w, err
		}
		d.wired = true
	}
	return d.Serialize(w)
}

func (d *Document) wire() error {
	if d.environment != nil {
		if err := d.job.Append(d.environment.Node()); err != nil {
			return err
		}
	}
	if err := d.job.Append(d.initialisation.Node()); err != nil {
		return err
	}
	if err := d.job.Append(d.finalisation.Node()); err != nil {
		return err
	}
	if err := d.jobsList.Append(d.job.Node()); err != nil {
		return err
	}
	return d.Append(d.jobsList.Node())
}

// Convention returns the declarative shape of the simple compchem convention.
func Convention() *convention.Descriptor {
	module := func(role Role, required bool, children ...convention.Node) convention.Node {
		return convention.Node{
			Tag:      gocml.TagModule,
			Required: required,
			Attrib: map[string]convention.Attribute{
				gocml.AttrDictRef: {Required: true, Value: role.DictRef()},
				gocml.AttrTitle:   {Required: false},
			},
			Children: children,
		}
	}
	list := func(tag string) convention.Node { return convention.Node{Tag: tag} }
	return &convention.Descriptor{
		Name: "convention:compchem",
		Namespaces: map[string]string{
			"convention": gocml.NamespaceConvention,
			"xsd":        gocml.NamespaceXSD,
			Prefix:       Namespace,
		},
		Nodes: []convention.Node{
			module(RoleJobsList, true,
				module(RoleJob, true,
					module(RoleEnvironment, false, list(gocml.TagPropertyList)),
					module(RoleInitialisation, true, list(gocml.TagParameterList)),
					module(RoleFinalisation, true, list(gocml.TagPropertyList)),
				),
			),
		},
	}
}
