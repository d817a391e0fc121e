// Package templates implements the local template store: a root directory
// holding one subdirectory per saved template.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/copy"

	"github.com/stencil-cli/stencil/cli/util"
)

const defaultPermissions = os.FileMode(0o755)

// gitDirName is a version-control metadata directory, never copied
// into or out of a template.
const gitDirName = ".git"

// ErrNotFound is reported when a named template does not exist in the store.
var ErrNotFound = errors.New("template not found")

// Store gives access to templates under a single root directory.
// A template is identified by its directory basename, there is no
// metadata beyond filesystem presence.
type Store struct {
	root string
}

// NewStore creates the templates root directory if needed and returns
// a store over it.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("templates directory is not configured")
	}
	if err := util.CreateDirectory(root, defaultPermissions); err != nil {
		return nil, fmt.Errorf("failed to create templates directory: %s", err)
	}
	return &Store{root: root}, nil
}

// Root returns the templates root directory.
func (store *Store) Root() string {
	return store.root
}

// Path returns the directory the named template is stored in.
func (store *Store) Path(name string) string {
	return filepath.Join(store.root, name)
}

// Exists checks if the named template is present in the store.
func (store *Store) Exists(name string) bool {
	return util.IsDir(store.Path(name))
}

// List returns names of all stored templates in lexical order.
// Hidden directories are not templates.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory %s: %s", store.root, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CheckName validates a template name. An empty or whitespace-only name
// is treated as user cancellation of the save operation.
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("template name is empty")
	}
	if strings.ContainsAny(name, string(os.PathSeparator)+"/") {
		return fmt.Errorf("template name %q must not contain path separators", name)
	}
	return nil
}

// Save stores srcDir under the given template name as a full recursive
// copy. An embedded git repository object store is not part of a project
// scaffold, so .git subtrees are left out.
func (store *Store) Save(name, srcDir string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if !util.IsDir(srcDir) {
		return fmt.Errorf("source directory %s does not exist", srcDir)
	}

	opts := copy.Options{
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			return srcinfo.IsDir() && srcinfo.Name() == gitDirName, nil
		},
	}
	if err := copy.Copy(srcDir, store.Path(name), opts); err != nil {
		return fmt.Errorf("failed to save template %q: %s", name, err)
	}
	return nil
}

// Remove deletes the named template subtree from the store.
func (store *Store) Remove(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if !store.Exists(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := os.RemoveAll(store.Path(name)); err != nil {
		return fmt.Errorf("failed to remove template %q: %s", name, err)
	}
	return nil
}
