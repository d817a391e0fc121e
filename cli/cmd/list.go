package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/list"
	"github.com/stencil-cli/stencil/cli/util"
)

// NewListCmd shows available templates.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "Show available templates",
		Run: func(cmd *cobra.Command, args []string) {
			err := list.ListTemplates(cliOpts, os.Stdout)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.NoArgs,
	}

	return listCmd
}
