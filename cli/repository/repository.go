// Package repository fetches remote template sources into a local cache.
package repository

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/avast/retry-go"
	"github.com/briandowns/spinner"
	git "github.com/go-git/go-git/v5"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	fetchAttempts = uint(3)
	fetchDelay    = time.Second
)

// Name returns the template name a repository URL is listed under:
// the last path element without the .git suffix.
func Name(url string) string {
	name := path.Base(strings.TrimRight(strings.TrimSpace(url), "/"))
	return strings.TrimSuffix(name, ".git")
}

// CloneOrUpdate makes localDir an up to date clone of the repository:
// clones it when localDir does not hold one yet, pulls otherwise.
// An already up to date clone is a success.
func CloneOrUpdate(url, localDir string) error {
	_, err := os.Stat(filepath.Join(localDir, git.GitDirName))
	update := err == nil

	fetch := func() error {
		if update {
			return pull(localDir)
		}
		return clone(url, localDir)
	}

	err = retry.Do(
		func() error {
			err := fetch()
			if err != nil && !update {
				// A partial clone must not be mistaken for a cache hit.
				os.RemoveAll(localDir)
			}
			return err
		},
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Debugf("Retrying to fetch %s: %s", url, err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to fetch repository %s: %s", url, err)
	}
	return nil
}

// CloneOrUpdateWithSpinner runs CloneOrUpdate showing a progress spinner
// when stdout is attached to a terminal.
func CloneOrUpdateWithSpinner(url, localDir string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return CloneOrUpdate(url, localDir)
	}

	indicator := spinner.New(spinnerPicture, spinnerUpdateTime)
	indicator.Prefix = fmt.Sprintf("Fetching %s ", url)
	indicator.Start()
	defer indicator.Stop()

	return CloneOrUpdate(url, localDir)
}

func clone(url, localDir string) error {
	_, err := git.PlainClone(localDir, false, &git.CloneOptions{
		URL: url,
	})
	return err
}

func pull(localDir string) error {
	repo, err := git.PlainOpen(localDir)
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = worktree.Pull(&git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}
