// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// InputOptions configures the Input prompt.
type InputOptions struct {
	// Title is the title/prompt displayed above the input.
	Title string
	// Description provides additional context below the title.
	Description string
	// Placeholder is the placeholder text shown when input is empty.
	Placeholder string
	// Default is substituted when the user submits an empty value.
	Default string
	// Validate rejects invalid values in place; it receives the value
	// after default substitution. May be nil.
	Validate func(string) error
	// Config holds common TUI configuration.
	Config Config
}

// Input prompts the user for a single line of text.
// An empty submission resolves to the configured default before
// validation runs. Returns ErrCancelled if the user aborts.
func Input(opts InputOptions) (string, error) {
	var raw string

	validate := func(s string) error {
		if opts.Validate == nil {
			return nil
		}
		return opts.Validate(applyDefault(s, opts.Default))
	}

	input := huh.NewInput().
		Title(opts.Title).
		Description(opts.Description).
		Placeholder(opts.Placeholder).
		Validate(validate).
		Value(&raw)

	if err := runField(input, opts.Config); err != nil {
		return "", err
	}

	return applyDefault(raw, opts.Default), nil
}

func applyDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// ValidateNonNegativeInt accepts an integer greater than or equal to zero.
func ValidateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid input, please enter a number")
	}
	if v < 0 {
		return fmt.Errorf("delay must be non-negative")
	}
	return nil
}
