// Package save stores a project directory as a named local template.
package save

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// SaveCtx contains information for saving a project as a template.
type SaveCtx struct {
	// TemplateName is the name the template is stored under.
	TemplateName string
	// SourceDir is the project directory to save.
	SourceDir string
	// ForceMode replaces an existing template without confirmation.
	ForceMode bool
}

// FillCtx fills save context.
func FillCtx(saveCtx *SaveCtx, args []string) error {
	if len(args) >= 1 {
		saveCtx.TemplateName = args[0]
	} else {
		return util.NewArgError("missing template name argument. " +
			"Try `stencil save --help` for more information")
	}

	if saveCtx.SourceDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		saveCtx.SourceDir = workingDir
	} else {
		var err error
		saveCtx.SourceDir, err = util.JoinAbspath(saveCtx.SourceDir)
		if err != nil {
			return err
		}
	}

	return nil
}

// Run saves the source directory as a template. An existing template of
// the same name is replaced only after user confirmation.
func Run(cliOpts *config.CliOpts, saveCtx *SaveCtx) error {
	if err := templates.CheckName(saveCtx.TemplateName); err != nil {
		return util.NewArgError(err.Error())
	}

	store, err := templates.NewStore(cliOpts.TemplatesDir)
	if err != nil {
		return err
	}

	if store.Exists(saveCtx.TemplateName) {
		if !saveCtx.ForceMode {
			confirmed, err := util.AskConfirm(os.Stdin, fmt.Sprintf(
				"Template %q already exists. Replace it?", saveCtx.TemplateName))
			if err != nil {
				return err
			}
			if !confirmed {
				return util.ErrCmdAbort
			}
		}
		if err := store.Remove(saveCtx.TemplateName); err != nil {
			return err
		}
	}

	if err := store.Save(saveCtx.TemplateName, saveCtx.SourceDir); err != nil {
		return err
	}

	log.Infof("Template %q saved to %s", saveCtx.TemplateName,
		store.Path(saveCtx.TemplateName))
	return nil
}
