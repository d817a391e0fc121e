package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-cli/stencil/cli/config"
)

func TestFillCtx(t *testing.T) {
	saveCtx := SaveCtx{}
	require.NoError(t, FillCtx(&saveCtx, []string{"my-service"}))
	assert.Equal(t, "my-service", saveCtx.TemplateName)
	assert.NotEmpty(t, saveCtx.SourceDir)

	assert.Error(t, FillCtx(&SaveCtx{}, []string{}))

	// A relative source path is made absolute.
	relCtx := SaveCtx{SourceDir: "work"}
	require.NoError(t, FillCtx(&relCtx, []string{"my-service"}))
	workingDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workingDir, "work"), relCtx.SourceDir)
}

func TestRunSavesTemplate(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "main.go"),
		[]byte("package main\n"), 0o644))

	cliOpts := &config.CliOpts{TemplatesDir: t.TempDir()}
	saveCtx := SaveCtx{TemplateName: "my-service", SourceDir: srcDir}

	require.NoError(t, Run(cliOpts, &saveCtx))
	assert.FileExists(t,
		filepath.Join(cliOpts.TemplatesDir, "my-service", "main.go"))

	// Replacing with force needs no confirmation.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "extra.go"),
		[]byte("package main\n"), 0o644))
	saveCtx.ForceMode = true
	require.NoError(t, Run(cliOpts, &saveCtx))
	assert.FileExists(t,
		filepath.Join(cliOpts.TemplatesDir, "my-service", "extra.go"))
}

func TestRunRejectsEmptyName(t *testing.T) {
	cliOpts := &config.CliOpts{TemplatesDir: t.TempDir()}
	assert.Error(t, Run(cliOpts, &SaveCtx{TemplateName: "  ", SourceDir: t.TempDir()}))
}
