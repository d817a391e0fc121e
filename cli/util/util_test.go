package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	dirPath := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, CreateDirectory(dirPath, 0o755))
	assert.DirExists(t, dirPath)

	// Existing directory is not an error.
	require.NoError(t, CreateDirectory(dirPath, 0o755))

	filePath := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte("text"), 0o644))
	assert.Error(t, CreateDirectory(filePath, 0o755))
}

func TestIsDirIsRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte("text"), 0o644))

	assert.True(t, IsDir(tmpDir))
	assert.False(t, IsDir(filePath))
	assert.True(t, IsRegularFile(filePath))
	assert.False(t, IsRegularFile(tmpDir))
	assert.False(t, IsRegularFile(filepath.Join(tmpDir, "missing")))
}

func TestParseYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "stencil.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`stencil:
  use_placeholders: true
  placeholders:
    author: alice
`), 0o644))

	raw, err := ParseYAML(cfgPath)
	require.NoError(t, err)
	require.Contains(t, raw, "stencil")

	_, err = ParseYAML(filepath.Join(tmpDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestAskConfirm(t *testing.T) {
	for input, expected := range map[string]bool{
		"y\n": true, "Yes\n": true, "n\n": false, "NO\n": false,
	} {
		res, err := AskConfirm(strings.NewReader(input), "Really?")
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	}

	// Garbage input is re-asked until EOF.
	_, err := AskConfirm(strings.NewReader("maybe\n"), "Really?")
	assert.Error(t, err)
}
