package context

import (
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/prompt"
)

// CreateCtx contains information for creating a project from a template.
// It is filled once per run, the configuration it carries is frozen for
// the whole run.
type CreateCtx struct {
	// TemplateName is the name of the template to instantiate.
	TemplateName string
	// ProjectName is the name of the project directory to create.
	ProjectName string
	// DestinationDir is the directory the project directory is created in.
	DestinationDir string
	// ForceMode overwrites colliding destination entries without prompting.
	ForceMode bool
	// SilentMode disables all interactive prompts.
	SilentMode bool
	// VarsFromCli are placeholder values passed as --var key=value.
	VarsFromCli []string
	// Prompter is used for all interactive decisions of the run.
	Prompter prompt.Prompter
	// ReposCacheDir is the directory remote template repositories are
	// cloned into.
	ReposCacheDir string
	// CliOpts is the resolved stencil configuration.
	CliOpts *config.CliOpts
}
