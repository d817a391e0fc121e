package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
)

const formatError = `Wrong variable definition format: %s
Usage: --var "var-name=value"`

// FillVarsFromCli represents a step collecting variables passed with --var.
type FillVarsFromCli struct{}

// Run collects variables passed using command line args.
func (FillVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	projectCtx *project.ProjectCtx,
) error {
	for _, varDefinition := range createCtx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return fmt.Errorf(formatError, varDefinition)
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		projectCtx.Vars[varName] = value
	}
	return nil
}
