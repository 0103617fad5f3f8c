// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SelectIndexOptions configures the SelectIndex prompt.
type SelectIndexOptions struct {
	// Title is displayed above the numbered list.
	Title string
	// Prompt is the question asked after the list is printed.
	Prompt string
	// Options is the list of choices; must be non-empty.
	Options []string
	// Config holds common TUI configuration.
	Config Config
}

var (
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	optionStyle = lipgloss.NewStyle()
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
)

// SelectIndex prints the options as a numbered "[i] name" list and asks
// for a 1-based index. Non-integer and out-of-range input is rejected in
// place and re-prompted; the chosen element is returned.
// Returns ErrCancelled if the user aborts.
func SelectIndex(opts SelectIndexOptions) (string, error) {
	if len(opts.Options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	fmt.Fprintln(opts.Config.Output)
	if opts.Title != "" {
		fmt.Fprintln(opts.Config.Output, titleStyle.Render(opts.Title))
	}
	for i, opt := range opts.Options {
		fmt.Fprintf(opts.Config.Output, "%s %s\n",
			indexStyle.Render(fmt.Sprintf("[%d]", i+1)),
			optionStyle.Render(opt))
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Enter a number (1-%d)", len(opts.Options))
	}

	var raw string
	input := huh.NewInput().
		Title(prompt).
		Validate(ValidateIndex(len(opts.Options))).
		Value(&raw)

	if err := runField(input, opts.Config); err != nil {
		return "", err
	}

	// Validation already guaranteed a parseable, in-range value.
	idx, _ := strconv.Atoi(strings.TrimSpace(raw))
	return opts.Options[idx-1], nil
}

// ValidateIndex returns a validator accepting a 1-based integer index
// within [1, n].
func ValidateIndex(n int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid input, please enter a number")
		}
		if v < 1 || v > n {
			return fmt.Errorf("please enter a number between 1 and %d", n)
		}
		return nil
	}
}
