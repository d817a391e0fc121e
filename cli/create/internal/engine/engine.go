// Package engine implements the template instantiation walk: a pre-order
// copy of a template tree into a destination tree with placeholder
// substitution of names and contents and interactive collision handling.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/stencil-cli/stencil/cli/placeholder"
	"github.com/stencil-cli/stencil/cli/prompt"
	"github.com/stencil-cli/stencil/cli/util"
)

// gitDirName is a version-control metadata directory. It is skipped with
// its whole subtree: a template cloned from a remote must not leak the
// repository object store into created projects.
const gitDirName = ".git"

const defaultDirPermissions = os.FileMode(0o755)

// Status is a continuation signal returned by per-entry handling.
type Status int

const (
	// StatusContinue - entry is handled, the walk goes on.
	StatusContinue Status = iota
	// StatusSkip - this entry is not written, the walk goes on.
	StatusSkip
	// StatusAbort - the whole walk stops, nothing else is processed.
	StatusAbort
)

// Collision menu choices, in prompt order.
const (
	choiceOverwrite = "Overwrite"
	choiceRename    = "Rename"
	choiceSkip      = "Skip"
	choiceAbort     = "Abort"
)

// Engine copies a template tree into a destination tree. Configuration
// is frozen for the whole run.
type Engine struct {
	// Substitute enables the placeholder substitution pass for both
	// file names and file contents.
	Substitute bool
	// Resolver rewrites names and contents. Required if Substitute is set.
	Resolver *placeholder.Resolver
	// Prompter resolves collisions interactively.
	Prompter prompt.Prompter
	// Force answers every collision with overwrite, without prompting.
	Force bool

	// dstRoot of the current run, collision prompts show paths relative to it.
	dstRoot string
}

// Instantiate copies the template at srcRoot into dstRoot. vars is the
// placeholder dictionary for this run, extended in place as unknown keys
// are resolved. Entries written before an abort or a failure remain on
// disk, there is no rollback.
func (e *Engine) Instantiate(srcRoot, dstRoot string, vars map[string]string) error {
	if !util.IsDir(srcRoot) {
		return fmt.Errorf("template directory %s does not exist", srcRoot)
	}

	e.dstRoot = dstRoot
	status, err := e.walk(srcRoot, dstRoot, vars)
	if err != nil {
		return err
	}
	if status == StatusAbort {
		log.Warnf("Instantiation aborted, no project created")
		return util.ErrCmdAbort
	}
	return nil
}

// walk reconciles one source entry with the destination tree and descends
// into children for directories. Parent directories are always fully
// created before their children are visited.
func (e *Engine) walk(srcPath, dstPath string, vars map[string]string) (Status, error) {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return StatusAbort, fmt.Errorf("failed to read %s: %s", srcPath, err)
	}
	isDir := srcInfo.IsDir()

	if e.Substitute {
		if dstPath, err = e.resolvePath(dstPath, vars); err != nil {
			return StatusAbort, err
		}
	}

	dstPath, status, err := e.reconcile(dstPath, isDir)
	if err != nil || status == StatusAbort {
		return StatusAbort, err
	}

	if status != StatusSkip {
		if isDir {
			if err := util.CreateDirectory(dstPath, defaultDirPermissions); err != nil {
				return StatusAbort, fmt.Errorf("failed to create directory %s: %s",
					dstPath, err)
			}
		} else if err := e.copyFile(srcPath, dstPath, srcInfo.Mode().Perm(), vars); err != nil {
			return StatusAbort, err
		}
	}

	if !isDir {
		return StatusContinue, nil
	}

	entries, err := os.ReadDir(srcPath)
	if err != nil {
		return StatusAbort, fmt.Errorf("failed to read directory %s: %s", srcPath, err)
	}
	for _, entry := range entries {
		if entry.Name() == gitDirName {
			continue
		}
		status, err := e.walk(filepath.Join(srcPath, entry.Name()),
			filepath.Join(dstPath, entry.Name()), vars)
		if err != nil || status == StatusAbort {
			return StatusAbort, err
		}
	}
	return StatusContinue, nil
}

// resolvePath substitutes placeholders in the part of dstPath below the
// destination root. The destination root itself is never rewritten.
func (e *Engine) resolvePath(dstPath string, vars map[string]string) (string, error) {
	relPath, err := filepath.Rel(e.dstRoot, dstPath)
	if err != nil || relPath == "." {
		return dstPath, nil
	}
	resolved, err := e.Resolver.ResolveString(relPath, vars)
	if err != nil {
		return "", err
	}
	return filepath.Join(e.dstRoot, resolved), nil
}

// reconcile runs the collision state machine for one destination path.
// It returns the path the entry is to be written to, which differs from
// the input when the user chose to rename.
func (e *Engine) reconcile(dstPath string, isDir bool) (string, Status, error) {
	for {
		dstInfo, err := os.Lstat(dstPath)
		if os.IsNotExist(err) {
			return dstPath, StatusContinue, nil
		}
		if err != nil {
			return "", StatusAbort, fmt.Errorf("failed to check %s: %s", dstPath, err)
		}

		if isDir && dstInfo.IsDir() {
			// Directory already in place, descending into it is enough.
			return dstPath, StatusContinue, nil
		}

		if !isDir && dstInfo.Mode().IsRegular() {
			newPath, status, err := e.resolveFileCollision(dstPath)
			if err != nil || status != StatusContinue {
				return newPath, status, err
			}
			// Re-check the candidate: a rename may land on another
			// existing path, including the original one.
			dstPath = newPath
			continue
		}

		// Kind mismatch: a file where a directory is expected or the other
		// way around. Continuing under the conflicting name would corrupt
		// the tree, so the only ways out are a rename or force mode.
		if e.Force {
			if err := os.RemoveAll(dstPath); err != nil {
				return "", StatusAbort, fmt.Errorf("failed to remove %s: %s", dstPath, err)
			}
			return dstPath, StatusContinue, nil
		}
		newPath, err := e.promptRename(dstPath,
			fmt.Sprintf("%s exists and conflicts, enter another path", e.relToRoot(dstPath)))
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				return "", StatusAbort, nil
			}
			return "", StatusAbort, err
		}
		if newPath == "" {
			// Nothing entered, same prompt again.
			continue
		}
		dstPath = newPath
	}
}

// resolveFileCollision asks what to do with an existing plain file:
// overwrite it, rename the entry being written, skip the entry, or
// abort the whole run.
func (e *Engine) resolveFileCollision(dstPath string) (string, Status, error) {
	for {
		if e.Force {
			if err := os.Remove(dstPath); err != nil {
				return "", StatusAbort, fmt.Errorf("failed to remove %s: %s", dstPath, err)
			}
			return dstPath, StatusContinue, nil
		}

		choice, err := e.Prompter.Select(
			fmt.Sprintf("File %s already exists", e.relToRoot(dstPath)),
			[]string{choiceOverwrite, choiceRename, choiceSkip, choiceAbort})
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				return "", StatusAbort, nil
			}
			return "", StatusAbort, err
		}

		switch choice {
		case choiceOverwrite:
			if err := os.Remove(dstPath); err != nil {
				return "", StatusAbort, fmt.Errorf("failed to remove %s: %s", dstPath, err)
			}
			return dstPath, StatusContinue, nil
		case choiceSkip:
			log.Debugf("Skipping %s", dstPath)
			return dstPath, StatusSkip, nil
		case choiceAbort:
			return dstPath, StatusAbort, nil
		case choiceRename:
			newPath, err := e.promptRename(dstPath,
				fmt.Sprintf("New path for %s", e.relToRoot(dstPath)))
			if err != nil {
				if errors.Is(err, prompt.ErrCanceled) {
					return "", StatusAbort, nil
				}
				return "", StatusAbort, err
			}
			if newPath == "" {
				// Back to the choices menu.
				continue
			}
			return newPath, StatusContinue, nil
		}
	}
}

// promptRename asks for a new destination path. Relative input is rooted
// at the destination root. Empty result means nothing was entered.
func (e *Engine) promptRename(dstPath, label string) (string, error) {
	input, err := e.Prompter.Input(label, e.relToRoot(dstPath))
	if err != nil {
		return "", err
	}
	input = filepath.Clean(input)
	if input == "" || input == "." {
		return "", nil
	}
	if !filepath.IsAbs(input) {
		input = filepath.Join(e.dstRoot, input)
	}
	return input, nil
}

func (e *Engine) relToRoot(dstPath string) string {
	relPath, err := filepath.Rel(e.dstRoot, dstPath)
	if err != nil {
		return dstPath
	}
	return relPath
}

// copyFile writes one template file to dstPath, substituting placeholders
// in its content when enabled. The parent directory chain is ensured to
// exist: a renamed destination may point outside the already created tree.
func (e *Engine) copyFile(srcPath, dstPath string, perm os.FileMode,
	vars map[string]string,
) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %s", srcPath, err)
	}

	if e.Substitute {
		if content, err = e.Resolver.Resolve(content, vars); err != nil {
			return err
		}
	}

	if err := util.CreateDirectory(filepath.Dir(dstPath), defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %s", filepath.Dir(dstPath), err)
	}
	if err := os.WriteFile(dstPath, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %s", dstPath, err)
	}
	return nil
}
