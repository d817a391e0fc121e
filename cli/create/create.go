package create

import (
	"fmt"
	"os"

	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/configure"
	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
	"github.com/stencil-cli/stencil/cli/create/internal/steps"
	"github.com/stencil-cli/stencil/cli/prompt"
	"github.com/stencil-cli/stencil/cli/util"
	"github.com/stencil-cli/stencil/cli/version"
)

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) >= 1 {
		createCtx.TemplateName = args[0]
	} else {
		return util.NewArgError("missing template name argument. " +
			"Try `stencil new --help` for more information")
	}

	if createCtx.DestinationDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		createCtx.DestinationDir = workingDir
	} else {
		var err error
		createCtx.DestinationDir, err = util.JoinAbspath(createCtx.DestinationDir)
		if err != nil {
			return err
		}
	}

	if createCtx.Prompter == nil {
		if createCtx.SilentMode || !prompt.IsInteractive() {
			createCtx.Prompter = prompt.NewNonInteractivePrompter()
		} else {
			createCtx.Prompter = prompt.NewConsolePrompter()
		}
	}
	if createCtx.ReposCacheDir == "" {
		createCtx.ReposCacheDir = configure.RepositoriesCacheDir()
	}

	createCtx.CliOpts = cliOpts
	return nil
}

// Run creates a project from a template. Entries written before a
// failure or an abort remain on disk.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.SetSeedVariables{},
		steps.FillVarsFromCli{},
		steps.FindTemplate{},
		steps.Instantiate{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	projectCtx := project.NewProjectCtx()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &projectCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}
	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name is missing")
	}
	if createCtx.CliOpts == nil {
		return fmt.Errorf("configuration is missing")
	}

	return nil
}
