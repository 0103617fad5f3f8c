// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/huh"

// ConfirmOptions configures the Confirm prompt.
type ConfirmOptions struct {
	// Title is the question shown to the user.
	Title string
	// Description provides additional context below the title.
	Description string
	// Affirmative is the label for the affirmative option (default "Yes").
	Affirmative string
	// Negative is the label for the negative option (default "No").
	Negative string
	// Default is the pre-selected answer.
	Default bool
	// Config holds common TUI configuration.
	Config Config
}

// Confirm prompts the user to confirm an action (yes/no).
// Returns true for affirmative, false for negative, or ErrCancelled if
// the user aborts.
func Confirm(opts ConfirmOptions) (bool, error) {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}

	result := opts.Default
	confirm := huh.NewConfirm().
		Title(opts.Title).
		Description(opts.Description).
		Affirmative(affirmative).
		Negative(negative).
		Value(&result)

	if err := runField(confirm, opts.Config); err != nil {
		return false, err
	}

	return result, nil
}
