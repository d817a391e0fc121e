package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "Project scaffold manager",
		Long: "Utility for saving project directories as reusable templates " +
			"and creating new projects from them",
		Example: `$ stencil save my-service
  $ stencil new my-service --name billing
  $ stencil list`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewInitCmd(),
		NewNewCmd(),
		NewSaveCmd(),
		NewListCmd(),
		NewRemoveCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags and loads the stencil configuration.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure stencil: %s", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get stencil configuration: %s", err)
	}
}
