// Package remove deletes a local template from the store.
package remove

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// Run removes the named template and its whole subtree after user
// confirmation.
func Run(cliOpts *config.CliOpts, templateName string, forceMode bool) error {
	store, err := templates.NewStore(cliOpts.TemplatesDir)
	if err != nil {
		return err
	}

	if !store.Exists(templateName) {
		return fmt.Errorf("%w: %q", templates.ErrNotFound, templateName)
	}

	if !forceMode {
		confirmed, err := util.AskConfirm(os.Stdin, fmt.Sprintf(
			"Remove template %q?", templateName))
		if err != nil {
			return err
		}
		if !confirmed {
			return util.ErrCmdAbort
		}
	}

	if err := store.Remove(templateName); err != nil {
		return err
	}
	log.Infof("Template %q removed", templateName)
	return nil
}
