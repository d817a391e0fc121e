// Package list shows the templates available for instantiation.
package list

import (
	"io"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/repository"
	"github.com/stencil-cli/stencil/cli/templates"
)

// ListTemplates prints a table of local templates and configured remote
// template repositories.
func ListTemplates(cliOpts *config.CliOpts, writer io.Writer) error {
	store, err := templates.NewStore(cliOpts.TemplatesDir)
	if err != nil {
		return err
	}
	names, err := store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 && len(cliOpts.GitRepositories) == 0 {
		log.Info("there are no templates to show")
		return nil
	}

	tableWriter := table.NewWriter()
	tableWriter.SetOutputMirror(writer)
	tableWriter.AppendHeader(table.Row{"Name", "Source"})
	for _, name := range names {
		tableWriter.AppendRow(table.Row{color.GreenString(name), store.Path(name)})
	}
	for _, url := range cliOpts.GitRepositories {
		entry := cliOpts.GitPrefix + " " + repository.Name(url)
		tableWriter.AppendRow(table.Row{color.YellowString(entry), url})
	}
	tableWriter.SetStyle(table.StyleLight)
	tableWriter.Render()

	return nil
}
