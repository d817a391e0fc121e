package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/remove"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

var removeForceMode bool

// NewRemoveCmd deletes a local template.
func NewRemoveCmd() *cobra.Command {
	var removeCmd = &cobra.Command{
		Use:   "remove <TEMPLATE_NAME> [flags]",
		Short: "Remove a local template",
		Run: func(cmd *cobra.Command, args []string) {
			err := remove.Run(cliOpts, args[0], removeForceMode)
			util.HandleCmdErr(cmd, err)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		ValidArgsFunction: removeValidArgsFunction,
		Example: `
# Remove the my-service template and its whole subtree.

    $ stencil remove my-service`,
	}

	removeCmd.Flags().BoolVarP(&removeForceMode, "force", "f", false,
		"Remove without confirmation")

	return removeCmd
}

// removeValidArgsFunction returns local template names for `remove` command.
func removeValidArgsFunction(
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
	return names, cobra.ShellCompDirectiveNoFileComp
}
