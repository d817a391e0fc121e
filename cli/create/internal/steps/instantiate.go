package steps

import (
	"path/filepath"

	"github.com/apex/log"

	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/engine"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
	"github.com/stencil-cli/stencil/cli/placeholder"
)

// Instantiate represents the step copying the template tree into the
// destination with substitution and collision handling.
type Instantiate struct{}

// Run performs the instantiation walk. The placeholder pattern is
// validated before anything is copied.
func (Instantiate) Run(createCtx *create_ctx.CreateCtx,
	projectCtx *project.ProjectCtx,
) error {
	cliOpts := createCtx.CliOpts

	resolver, err := placeholder.NewResolver(cliOpts.PlaceholderRegexp,
		cliOpts.Encoding, createCtx.Prompter)
	if err != nil {
		return err
	}
	projectCtx.Resolver = resolver
	projectCtx.ProjectPath = filepath.Join(createCtx.DestinationDir, createCtx.ProjectName)

	log.Infof("Creating project in %s", projectCtx.ProjectPath)

	copier := engine.Engine{
		Substitute: cliOpts.UsePlaceholders,
		Resolver:   resolver,
		Prompter:   createCtx.Prompter,
		Force:      createCtx.ForceMode,
	}
	return copier.Instantiate(projectCtx.TemplatePath, projectCtx.ProjectPath,
		projectCtx.Vars)
}
