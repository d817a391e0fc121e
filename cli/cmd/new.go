package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/create"
	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/repository"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

var (
	projectName        string
	dstPath            string
	forceMode          bool
	nonInteractiveMode bool
	varsFromCli        *[]string

	// errNoProjectName is returned if -n option was not provided.
	errNoProjectName = util.NewArgError(`project name is required: ` +
		`specify it with the --name option.`)
)

// NewNewCmd creates a project from a template.
func NewNewCmd() *cobra.Command {
	var newCmd = &cobra.Command{
		Use:   "new <TEMPLATE_NAME> [flags]",
		Short: "Create a project from a template",
		Run: func(cmd *cobra.Command, args []string) {
			err := internalNewModule(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		ValidArgsFunction: newValidArgsFunction,
		Long: `Create a project from a template.

A template is a directory under the templates root, or a configured git
repository fetched into the local cache on demand. With placeholders
enabled, tokens in file names and contents are replaced with values from
the configuration, --var options, or interactive prompts.`,
		Example: `
# Create a project billing from the my-service template.

    $ stencil new my-service --name billing

# Create it in /srv/projects, overwriting colliding files without prompts.

    $ stencil new my-service --name billing --dst /srv/projects -f

# Pre-define a placeholder value.

    $ stencil new my-service --name billing --var author=alice`,
	}

	newCmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	newCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		`Force rewrite colliding destination entries`)
	newCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		`Non-interactive mode`)
	varsFromCli = newCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	newCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created.")

	return newCmd
}

// newValidArgsFunction returns valid template names for `new` command.
func newValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	store, err := templates.NewStore(cliOpts.TemplatesDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := store.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	for _, url := range cliOpts.GitRepositories {
		names = append(names, repository.Name(url))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// internalNewModule is a default new module.
func internalNewModule(args []string) error {
	if len(projectName) == 0 {
		return errNoProjectName
	}

	createCtx := create_ctx.CreateCtx{
		ProjectName:    projectName,
		ForceMode:      forceMode,
		SilentMode:     nonInteractiveMode,
		VarsFromCli:    *varsFromCli,
		DestinationDir: dstPath,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
