package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/save"
	"github.com/stencil-cli/stencil/cli/util"
)

var (
	saveSourceDir string
	saveForceMode bool
)

// NewSaveCmd saves a project directory as a template.
func NewSaveCmd() *cobra.Command {
	var saveCmd = &cobra.Command{
		Use:   "save <TEMPLATE_NAME> [flags]",
		Short: "Save a project directory as a template",
		Run: func(cmd *cobra.Command, args []string) {
			err := internalSaveModule(args)
			util.HandleCmdErr(cmd, err)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		Example: `
# Save the current directory as the my-service template.

    $ stencil save my-service

# Save another directory, replacing the stored template if it exists.

    $ stencil save my-service --path /srv/projects/billing -f`,
	}

	saveCmd.Flags().StringVarP(&saveSourceDir, "path", "p", "",
		"Project directory to save (default: current directory)")
	saveCmd.Flags().BoolVarP(&saveForceMode, "force", "f", false,
		"Replace an existing template without confirmation")

	return saveCmd
}

// internalSaveModule is a default save module.
func internalSaveModule(args []string) error {
	saveCtx := save.SaveCtx{
		SourceDir: saveSourceDir,
		ForceMode: saveForceMode,
	}

	if err := save.FillCtx(&saveCtx, args); err != nil {
		return err
	}

	return save.Run(cliOpts, &saveCtx)
}
