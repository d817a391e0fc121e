package steps

import (
	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
)

// SetSeedVariables represents a step seeding the run dictionary.
type SetSeedVariables struct{}

// Run copies the configured placeholder values and predefined variables
// into the run dictionary. The run dictionary is session-local: values
// resolved later are never written back to configuration.
func (SetSeedVariables) Run(createCtx *create_ctx.CreateCtx,
	projectCtx *project.ProjectCtx,
) error {
	projectCtx.Vars["project_name"] = createCtx.ProjectName
	for key, value := range createCtx.CliOpts.Placeholders {
		projectCtx.Vars[key] = value
	}
	return nil
}
