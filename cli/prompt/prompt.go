// Package prompt provides interactive terminal prompts used during
// template save and instantiation.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrCanceled is reported when user declines a prompt.
var ErrCanceled = errors.New("canceled by user")

// Prompter is an interface for interactive decisions required
// in the middle of an operation.
type Prompter interface {
	// Input asks the user for a text value. defaultValue pre-fills
	// the input and is returned on plain Enter.
	Input(label, defaultValue string) (string, error)
	// Select asks the user to pick one of items. Returns the selected item.
	Select(label string, items []string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}

// consolePrompter implements Prompter on top of terminal prompts.
type consolePrompter struct{}

// NewConsolePrompter creates a prompter reading answers from the terminal.
func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (consolePrompter) Input(label, defaultValue string) (string, error) {
	input := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
	}
	value, err := input.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) ||
			errors.Is(err, promptui.ErrEOF) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("failed to read user input: %s", err)
	}
	return value, nil
}

func (consolePrompter) Select(label string, items []string) (string, error) {
	selector := promptui.Select{
		Label:        label,
		Items:        items,
		HideSelected: true,
	}
	_, selected, err := selector.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("failed to read user selection: %s", err)
	}
	return selected, nil
}

func (consolePrompter) Confirm(question string) (bool, error) {
	answer, err := consolePrompter{}.Select(question, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return answer == "Yes", nil
}

// nonInteractivePrompter declines every prompt. It is used when
// stdin is not a terminal or --non-interactive is passed.
type nonInteractivePrompter struct{}

// NewNonInteractivePrompter creates a prompter that declines every prompt.
func NewNonInteractivePrompter() Prompter {
	return nonInteractivePrompter{}
}

func (nonInteractivePrompter) Input(label, defaultValue string) (string, error) {
	return "", ErrCanceled
}

func (nonInteractivePrompter) Select(label string, items []string) (string, error) {
	return "", ErrCanceled
}

func (nonInteractivePrompter) Confirm(question string) (bool, error) {
	return false, ErrCanceled
}
