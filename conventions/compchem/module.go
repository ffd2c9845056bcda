package compchem

import (
	"fmt"
	"maps"

	"github.com/reoring/gocml"
)

// Role identifies a compchem module.
type Role string

const (
	RoleJobsList       Role = "jobsList"
	RoleJob            Role = "job"
	RoleInitialisation Role = "initialisation"
	RoleFinalisation   Role = "finalisation"
	RoleEnvironment    Role = "environment"
)

// DictRef returns the namespaced dictRef of the role.
func (r Role) DictRef() string { return Prefix + ":" + string(r) }

// collectionTags lists the roles that hold values and the list they use.
var collectionTags = map[Role]string{
	RoleInitialisation: gocml.TagParameterList,
	RoleFinalisation:   gocml.TagPropertyList,
	RoleEnvironment:    gocml.TagPropertyList,
}

const titleMessage = "a human readable title is recommended for compchem modules"

// RoleSpec is the requirement applied to modules of the given role: dictRef
// fixed to the role and a recommended title. The empty role only requires
// some dictRef.
func RoleSpec(r Role) gocml.RequirementSpec {
	reqs := gocml.RequirementSpec{
		gocml.AttrTitle: {Status: gocml.Recommended, Message: titleMessage},
	}
	if r == "" {
		reqs[gocml.AttrDictRef] = gocml.Requirement{
			Status:  gocml.Required,
			Message: "a compchem module must be defined by a dictRef attribute",
		}
		return reqs
	}
	reqs[gocml.AttrDictRef] = gocml.Requirement{
		Status:  gocml.Required,
		Message: fmt.Sprintf("a %s module must be defined by a %s dictRef", r, r.DictRef()),
		Value:   r.DictRef(),
	}
	return reqs
}

// Module is a compchem module element together with the warnings raised
// while it was built.
type Module struct {
	node     *gocml.Node
	role     Role
	warnings gocml.Issues
}

// NewModule builds a module for role. attrib is copied, dictRef is
// overwritten with the role's dictRef and title is added when non-empty.
// The role requirements are enforced before the element is built.
func NewModule(role Role, title string, attrib map[string]string, opts ...gocml.Option) (*Module, error) {
	a := make(map[string]string, len(attrib)+2)
	maps.Copy(a, attrib)
	if role != "" {
		a[gocml.AttrDictRef] = role.DictRef()
	}
	if title != "" {
		a[gocml.AttrTitle] = title
	}
	n, warnings, err := gocml.NewModuleWithSpec(a, RoleSpec(role), opts...)
	if err != nil {
		return nil, err
	}
	return &Module{node: n, role: role, warnings: warnings}, nil
}

// NewJobsList builds the jobsList module.
func NewJobsList(title string, opts ...gocml.Option) (*Module, error) {
	return NewModule(RoleJobsList, title, nil, opts...)
}

// NewJob builds a job module.
func NewJob(title string, opts ...gocml.Option) (*Module, error) {
	return NewModule(RoleJob, title, nil, opts...)
}

// NewInitialisation builds an initialisation module. Non-empty descriptors
// are added as its parameterList.
func NewInitialisation(title string, descriptors []gocml.Descriptor, opts ...gocml.Option) (*Module, error) {
	return newValueModule(RoleInitialisation, title, descriptors, opts)
}

// NewFinalisation builds a finalisation module. Non-empty descriptors are
// added as its propertyList.
func NewFinalisation(title string, descriptors []gocml.Descriptor, opts ...gocml.Option) (*Module, error) {
	return newValueModule(RoleFinalisation, title, descriptors, opts)
}

// NewEnvironment builds an environment module. Non-empty descriptors are
// added as its propertyList.
func NewEnvironment(title string, descriptors []gocml.Descriptor, opts ...gocml.Option) (*Module, error) {
	return newValueModule(RoleEnvironment, title, descriptors, opts)
}

func newValueModule(role Role, title string, descriptors []gocml.Descriptor, opts []gocml.Option) (*Module, error) {
	m, err := NewModule(role, title, nil, opts...)
	if err != nil {
		return nil, err
	}
	if len(descriptors) > 0 {
		if err := m.Populate(descriptors); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Node returns the module element.
func (m *Module) Node() *gocml.Node { return m.node }

// Role returns the module role.
func (m *Module) Role() Role { return m.role }

// Warnings returns the recommended-attribute warnings raised on construction.
func (m *Module) Warnings() gocml.Issues { return m.warnings }

// SetTitle sets the title attribute.
func (m *Module) SetTitle(title string) *Module {
	m.node.SetTitle(title)
	return m
}

// Append adds child to the module.
func (m *Module) Append(child *gocml.Node) error { return m.node.Append(child) }

// Populate builds one collection from descriptors and appends it to the
// module: a parameterList for initialisation, a propertyList for
// finalisation and environment. Each call appends a new collection; calling
// it twice leaves two lists in the module. Other roles fail with
// CodeInvalidTag.
func (m *Module) Populate(descriptors []gocml.Descriptor) error {
	tag, ok := collectionTags[m.role]
	if !ok {
		return gocml.Issues{{
			Path:    "/" + string(m.role),
			Code:    gocml.CodeInvalidTag,
			Message: fmt.Sprintf("%s modules hold no value list", m.role),
			Params:  map[string]string{"tag": string(m.role)},
		}}
	}
	list, err := gocml.NewCollection(tag, descriptors)
	if err != nil {
		return err
	}
	return m.node.Append(list)
}
