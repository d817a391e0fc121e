package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/version"
)

var (
	showShort  bool
	needCommit bool
)

// NewVersionCmd creates a new version command.
func NewVersionCmd() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show stencil version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetVersion(showShort, needCommit))
		},
	}

	versionCmd.Flags().BoolVar(&showShort, "short", false, "Show version in short format")
	versionCmd.Flags().BoolVar(&needCommit, "commit", false, "Show commit")

	return versionCmd
}
