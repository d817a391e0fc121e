package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case shellBash:
				return cmd.Root().GenBashCompletionV2(os.Stdout, true)
			case shellZsh:
				return cmd.Root().GenZshCompletion(os.Stdout)
			case shellFish:
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			}
			return fmt.Errorf("unsupported shell type: %s", args[0])
		},
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(stencil completion bash)`,
	}

	return cmd
}
