package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-cli/stencil/cli/placeholder"
	"github.com/stencil-cli/stencil/cli/prompt"
)

// fakePrompter feeds prompts from pre-scripted queues. An exhausted
// queue declines the prompt.
type fakePrompter struct {
	inputs       []string
	selections   []string
	InputLabels  []string
	SelectLabels []string
}

func (p *fakePrompter) Input(label, defaultValue string) (string, error) {
	p.InputLabels = append(p.InputLabels, label)
	if len(p.inputs) == 0 {
		return "", prompt.ErrCanceled
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func (p *fakePrompter) Select(label string, items []string) (string, error) {
	p.SelectLabels = append(p.SelectLabels, label)
	if len(p.selections) == 0 {
		return "", prompt.ErrCanceled
	}
	answer := p.selections[0]
	p.selections = p.selections[1:]
	return answer, nil
}

func (p *fakePrompter) Confirm(question string) (bool, error) {
	return false, prompt.ErrCanceled
}

func newTestEngine(t *testing.T, prompter prompt.Prompter, substitute bool) *Engine {
	t.Helper()
	resolver, err := placeholder.NewResolver(placeholder.DefaultPattern, "", prompter)
	require.NoError(t, err)
	return &Engine{
		Substitute: substitute,
		Resolver:   resolver,
		Prompter:   prompter,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func requireFileContent(t *testing.T, path, expected string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	if string(content) != expected {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(string(content)),
			FromFile: "expected",
			ToFile:   path,
			Context:  2,
		})
		t.Errorf("content mismatch for %s:\n%s", path, diff)
	}
}

// demoTemplate is README.md with a placeholder plus an empty src dir.
func demoTemplate(t *testing.T) string {
	t.Helper()
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "README.md"), "Hello #{name}")
	require.NoError(t, os.MkdirAll(filepath.Join(srcRoot, "src"), 0o755))
	return srcRoot
}

func TestInstantiateIntoEmptyDestination(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")

	prompter := &fakePrompter{inputs: []string{"World"}}
	vars := map[string]string{}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(srcRoot, dstRoot, vars))

	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "Hello World")
	assert.DirExists(t, filepath.Join(dstRoot, "src"))
	entries, err := os.ReadDir(filepath.Join(dstRoot, "src"))
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Equal(t, []string{"Value for #{name}"}, prompter.InputLabels)
	assert.Equal(t, "World", vars["name"])
}

func TestInstantiateMissingTemplate(t *testing.T) {
	dstRoot := t.TempDir()
	err := newTestEngine(t, &fakePrompter{}, false).Instantiate(
		filepath.Join(t.TempDir(), "gone"), dstRoot, map[string]string{})
	assert.ErrorContains(t, err, "does not exist")
}

func TestInstantiateSubstitutionDisabled(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")

	prompter := &fakePrompter{}
	require.NoError(t, newTestEngine(t, prompter, false).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "Hello #{name}")
	assert.Empty(t, prompter.InputLabels)
}

func TestInstantiateNameSubstitution(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "#{name}_src", "#{name}.go"), "package #{name}\n")
	dstRoot := filepath.Join(t.TempDir(), "destination")

	vars := map[string]string{"name": "demo"}
	prompter := &fakePrompter{}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(srcRoot, dstRoot, vars))

	requireFileContent(t, filepath.Join(dstRoot, "demo_src", "demo.go"), "package demo\n")
	// The key was seeded, nothing to ask about.
	assert.Empty(t, prompter.InputLabels)
}

func TestInstantiateOverwrite(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "README.md"), "old content")

	prompter := &fakePrompter{
		inputs:     []string{"World"},
		selections: []string{"Overwrite"},
	}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "Hello World")
	assert.Equal(t, []string{"File README.md already exists"}, prompter.SelectLabels)
}

func TestInstantiateSkip(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "README.md"), "old content")

	prompter := &fakePrompter{selections: []string{"Skip"}}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	// Skipped entry keeps its pre-existing content, the rest is processed.
	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "old content")
	assert.DirExists(t, filepath.Join(dstRoot, "src"))
}

func TestInstantiateAbort(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "a.txt"), "from template")
	writeFile(t, filepath.Join(srcRoot, "b.txt"), "from template")
	writeFile(t, filepath.Join(srcRoot, "c.txt"), "from template")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "b.txt"), "old content")

	prompter := &fakePrompter{selections: []string{"Abort"}}
	err := newTestEngine(t, prompter, false).Instantiate(srcRoot, dstRoot, map[string]string{})
	require.Error(t, err)

	// Entries written before the abort point remain, nothing after it
	// is touched.
	requireFileContent(t, filepath.Join(dstRoot, "a.txt"), "from template")
	requireFileContent(t, filepath.Join(dstRoot, "b.txt"), "old content")
	assert.NoFileExists(t, filepath.Join(dstRoot, "c.txt"))
}

func TestInstantiateDecliningCollisionPromptAborts(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "README.md"), "old content")

	// Empty selection queue: the prompt is declined.
	err := newTestEngine(t, &fakePrompter{}, false).Instantiate(
		srcRoot, dstRoot, map[string]string{})
	require.Error(t, err)
	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "old content")
}

func TestInstantiateRename(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "README.md"), "old content")

	// The rename prompt fires while the collision is resolved, before the
	// content placeholder prompt.
	prompter := &fakePrompter{
		inputs:     []string{"docs/README.md", "World"},
		selections: []string{"Rename"},
	}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	// Relative input is rooted at the destination root.
	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "old content")
	requireFileContent(t, filepath.Join(dstRoot, "docs", "README.md"), "Hello World")
	assert.Equal(t, []string{"New path for README.md", "Value for #{name}"},
		prompter.InputLabels)
}

func TestInstantiateRenameToSamePathAsksAgain(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "a.txt"), "from template")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "a.txt"), "old a")

	// Accepting the pre-filled current path as the new name is not an
	// overwrite: the collision still stands and the menu is shown again.
	prompter := &fakePrompter{
		inputs:     []string{"a.txt"},
		selections: []string{"Rename", "Skip"},
	}
	require.NoError(t, newTestEngine(t, prompter, false).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	requireFileContent(t, filepath.Join(dstRoot, "a.txt"), "old a")
	assert.Len(t, prompter.SelectLabels, 2)
}

func TestInstantiateRenameOntoExistingFileAsksAgain(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "a.txt"), "from template")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "a.txt"), "old a")
	writeFile(t, filepath.Join(dstRoot, "b.txt"), "old b")

	// Rename lands on another existing path: the engine re-checks and
	// prompts again instead of assuming success.
	prompter := &fakePrompter{
		inputs:     []string{"b.txt", "c.txt"},
		selections: []string{"Rename", "Rename"},
	}
	require.NoError(t, newTestEngine(t, prompter, false).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	requireFileContent(t, filepath.Join(dstRoot, "a.txt"), "old a")
	requireFileContent(t, filepath.Join(dstRoot, "b.txt"), "old b")
	requireFileContent(t, filepath.Join(dstRoot, "c.txt"), "from template")
	assert.Len(t, prompter.SelectLabels, 2)
}

func TestInstantiateKindMismatchForcesRename(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "README.md"), "from template")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	// A directory sits where the template wants a file.
	require.NoError(t, os.MkdirAll(filepath.Join(dstRoot, "README.md"), 0o755))

	// Empty input repeats the prompt, there is no skip for structural
	// collisions.
	prompter := &fakePrompter{inputs: []string{"", "README2.md"}}
	require.NoError(t, newTestEngine(t, prompter, false).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	assert.Len(t, prompter.InputLabels, 2)
	assert.DirExists(t, filepath.Join(dstRoot, "README.md"))
	requireFileContent(t, filepath.Join(dstRoot, "README2.md"), "from template")
}

func TestInstantiateForceMode(t *testing.T) {
	srcRoot := demoTemplate(t)
	dstRoot := filepath.Join(t.TempDir(), "destination")
	writeFile(t, filepath.Join(dstRoot, "README.md"), "old content")
	require.NoError(t, os.MkdirAll(filepath.Join(dstRoot, "src"), 0o755))

	copier := newTestEngine(t, &fakePrompter{inputs: []string{"World"}}, true)
	copier.Force = true
	require.NoError(t, copier.Instantiate(srcRoot, dstRoot, map[string]string{}))

	requireFileContent(t, filepath.Join(dstRoot, "README.md"), "Hello World")
}

func TestInstantiateSkipsGitDir(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "main.go"), "package main\n")
	writeFile(t, filepath.Join(srcRoot, ".git", "HEAD"), "ref: refs/heads/main\n")
	writeFile(t, filepath.Join(srcRoot, ".git", "objects", "aa", "bb"), "blob")
	writeFile(t, filepath.Join(srcRoot, "nested", ".git", "config"), "[core]\n")
	writeFile(t, filepath.Join(srcRoot, "nested", "kept.txt"), "kept")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	require.NoError(t, newTestEngine(t, &fakePrompter{}, false).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	assert.FileExists(t, filepath.Join(dstRoot, "main.go"))
	assert.FileExists(t, filepath.Join(dstRoot, "nested", "kept.txt"))
	assert.NoDirExists(t, filepath.Join(dstRoot, ".git"))
	assert.NoDirExists(t, filepath.Join(dstRoot, "nested", ".git"))
}

func TestInstantiateBinaryFileUntouched(t *testing.T) {
	srcRoot := t.TempDir()
	binary := []byte{0x89, 'P', 'N', 'G', 0xff, 0xfe, 0x00, '#', '{', 'x', '}'}
	require.NoError(t, os.WriteFile(filepath.Join(srcRoot, "logo.png"), binary, 0o644))

	dstRoot := filepath.Join(t.TempDir(), "destination")
	require.NoError(t, newTestEngine(t, &fakePrompter{}, true).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	content, err := os.ReadFile(filepath.Join(dstRoot, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, binary, content)
}

func TestInstantiateCachesKeyAcrossFiles(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "a.txt"), "#{author}")
	writeFile(t, filepath.Join(srcRoot, "b.txt"), "#{author}")
	writeFile(t, filepath.Join(srcRoot, "#{author}.txt"), "hi")

	dstRoot := filepath.Join(t.TempDir(), "destination")
	prompter := &fakePrompter{inputs: []string{"alice"}}
	require.NoError(t, newTestEngine(t, prompter, true).Instantiate(
		srcRoot, dstRoot, map[string]string{}))

	// One prompt serves file names and contents across the whole run.
	assert.Len(t, prompter.InputLabels, 1)
	requireFileContent(t, filepath.Join(dstRoot, "a.txt"), "alice")
	requireFileContent(t, filepath.Join(dstRoot, "b.txt"), "alice")
	assert.FileExists(t, filepath.Join(dstRoot, "alice.txt"))
}
