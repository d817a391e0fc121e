package project

import "github.com/stencil-cli/stencil/cli/placeholder"

// ProjectCtx is the shared state of one instantiation run, passed
// between the steps of the create chain.
type ProjectCtx struct {
	// TemplatePath is the resolved template source directory.
	TemplatePath string
	// ProjectPath is the destination root the project is created at.
	ProjectPath string
	// Vars is the placeholder dictionary of the run: seeded from
	// configuration, extended as unknown keys are resolved. Never
	// written back to persisted configuration.
	Vars map[string]string
	// Resolver performs placeholder substitution for the run.
	Resolver *placeholder.Resolver
}

// NewProjectCtx creates a ProjectCtx with an empty dictionary.
func NewProjectCtx() ProjectCtx {
	return ProjectCtx{
		Vars: map[string]string{},
	}
}
