package steps

import (
	"fmt"
	"io"

	create_ctx "github.com/stencil-cli/stencil/cli/create/context"
	"github.com/stencil-cli/stencil/cli/create/internal/project"
	"github.com/stencil-cli/stencil/cli/util"
)

type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints where the project ended up.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	projectCtx *project.ProjectCtx,
) error {
	fmt.Fprintf(printFollowUpMsgStep.Writer, "Project %s is created in %s\n",
		createCtx.ProjectName, util.RelativeToCurrentWorkingDir(projectCtx.ProjectPath))
	return nil
}
