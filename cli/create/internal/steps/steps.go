// Package steps provides a set of handlers for create command chain of
// responsibility.
package steps

import (
	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
)

// Step is an interface for single step in create chain.
type Step interface {
	Run(createCtx *create_ctx.CreateCtx, projectCtx *project.ProjectCtx) error
}
