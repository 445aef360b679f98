package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var errConfirmationRequired = errors.New("confirmation required: pass --yes when stdin is not a terminal")

type prompter interface {
	Interactive() bool
	Secret(title string) (string, error)
	Confirm(title string) (bool, error)
}

type terminalPrompter struct{}

var newPrompter = func() prompter { return terminalPrompter{} }

func (terminalPrompter) Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (terminalPrompter) Secret(title string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			EchoMode(huh.EchoModePassword).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt %s: %w", title, err)
	}

	return value, nil
}

func (terminalPrompter) Confirm(title string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt confirmation: %w", err)
	}

	return confirmed, nil
}

// secretFromFlagOrPrompt returns flagValue, prompting for it only when it is
// empty and stdin is a terminal.
func secretFromFlagOrPrompt(p prompter, flagValue, flagName, title string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !p.Interactive() {
		return "", fmt.Errorf("--%s is required when stdin is not a terminal", flagName)
	}

	return p.Secret(title)
}

// confirmed reports whether a destructive action may go ahead.
func confirmed(p prompter, prompt string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !p.Interactive() {
		return false, errConfirmationRequired
	}

	return p.Confirm(prompt)
}
