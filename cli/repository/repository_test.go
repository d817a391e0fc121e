package repository

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "scaffold", Name("https://example.com/org/scaffold.git"))
	assert.Equal(t, "scaffold", Name("https://example.com/org/scaffold"))
	assert.Equal(t, "scaffold", Name("git@example.com:org/scaffold.git "))
	assert.Equal(t, "scaffold", Name("https://example.com/org/scaffold/"))
}

// initSourceRepo creates a file:// cloneable repository with one commit.
func initSourceRepo(t *testing.T) string {
	t.Helper()
	srcDir := t.TempDir()

	repo, err := git.PlainInit(srcDir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "README.md"),
		[]byte("# scaffold\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com"},
	})
	require.NoError(t, err)

	return srcDir
}

func TestCloneOrUpdate(t *testing.T) {
	srcDir := initSourceRepo(t)
	cacheDir := filepath.Join(t.TempDir(), "scaffold")

	require.NoError(t, CloneOrUpdate(srcDir, cacheDir))
	assert.FileExists(t, filepath.Join(cacheDir, "README.md"))
	assert.DirExists(t, filepath.Join(cacheDir, ".git"))

	// Second call pulls; an already up to date clone is a success.
	require.NoError(t, CloneOrUpdate(srcDir, cacheDir))
}

func TestCloneOrUpdateBadRemote(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "missing")
	err := CloneOrUpdate(filepath.Join(t.TempDir(), "no-such-repo"), cacheDir)
	require.Error(t, err)

	// Failed clone must not leave a partial cache entry behind.
	assert.NoDirExists(t, cacheDir)
}
