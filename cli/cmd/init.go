package cmd

import (
	"github.com/spf13/cobra"

	cliinit "github.com/stencil-cli/stencil/cli/init"
	"github.com/stencil-cli/stencil/cli/util"
)

var initForceMode bool

// NewInitCmd creates an init command.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create a stencil configuration file with default values",
		Run: func(cmd *cobra.Command, args []string) {
			initCtx := cliinit.InitCtx{ForceMode: initForceMode}
			cliinit.FillCtx(&initCtx)
			err := cliinit.Run(&initCtx)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.NoArgs,
	}

	initCmd.Flags().BoolVarP(&initForceMode, "force", "f", false,
		"Overwrite existing configuration file")

	return initCmd
}
