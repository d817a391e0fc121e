package steps

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
	"github.com/stencil-cli/stencil/cli/repository"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// FindTemplate represents a step resolving the template name to a
// source directory.
type FindTemplate struct{}

// Run looks the template up in the local store first, then among the
// configured git repositories. A matching repository is cloned or pulled
// into the local cache and the clone is used as the template source.
// A name carrying the git prefix label skips the local lookup.
func (FindTemplate) Run(createCtx *create_ctx.CreateCtx,
	projectCtx *project.ProjectCtx,
) error {
	cliOpts := createCtx.CliOpts
	name := createCtx.TemplateName

	remoteOnly := false
	if cliOpts.GitPrefix != "" && strings.HasPrefix(name, cliOpts.GitPrefix) {
		name = strings.TrimSpace(strings.TrimPrefix(name, cliOpts.GitPrefix))
		remoteOnly = true
	}
	if name == "" {
		return fmt.Errorf("template name is empty")
	}

	if !remoteOnly {
		templatePath := filepath.Join(cliOpts.TemplatesDir, name)
		if util.IsDir(templatePath) {
			log.Infof("Using template from %s", templatePath)
			projectCtx.TemplatePath = templatePath
			return nil
		}
	}

	for _, url := range cliOpts.GitRepositories {
		if repository.Name(url) != name {
			continue
		}
		localDir := filepath.Join(createCtx.ReposCacheDir, name)
		if err := repository.CloneOrUpdateWithSpinner(url, localDir); err != nil {
			return err
		}
		log.Infof("Using template from %s", url)
		projectCtx.TemplatePath = localDir
		return nil
	}

	return fmt.Errorf("%w: %q", templates.ErrNotFound, createCtx.TemplateName)
}
