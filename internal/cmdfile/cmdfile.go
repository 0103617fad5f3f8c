// SPDX-License-Identifier: MPL-2.0

// Package cmdfile loads the plain-text command list consumed by a run:
// one shell command per line, blank lines and '#' comments ignored.
package cmdfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// DefaultFileName is the command file used when the operator does not
// name one.
const DefaultFileName = "commands.txt"

var (
	// ErrNotFound is returned when the command file does not exist.
	ErrNotFound = errors.New("command file not found")
	// ErrNoCommands is returned when the file holds no usable lines.
	ErrNoCommands = errors.New("no commands in command file")
)

type (
	// Command is one verbatim shell command line. Its content is never
	// escaped or rewritten; it reaches the in-distro shell as-is.
	Command string

	// Diagnostic is a non-fatal per-line finding from Check.
	Diagnostic struct {
		// Line is the 1-based position in the loaded command list.
		Line int
		// Command is the offending command text.
		Command Command
		// Message describes the parser finding.
		Message string
	}
)

// Load reads a command file and returns the commands in file order.
// A line is kept when it is non-empty after trimming and its first
// non-space character is not '#'. Returns ErrNotFound for a missing
// file and ErrNoCommands when filtering leaves nothing.
func Load(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open command file %s: %w", path, err)
	}
	defer f.Close()

	var commands []Command
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, Command(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command file %s: %w", path, err)
	}

	if len(commands) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCommands, path)
	}
	return commands, nil
}

// Check parses each command with a POSIX-ish shell parser and reports
// lines that do not parse. Findings are advisory: commands are launched
// verbatim regardless, since the in-distro bash has the final say.
func Check(commands []Command) []Diagnostic {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))

	var diags []Diagnostic
	for i, c := range commands {
		_, err := parser.Parse(strings.NewReader(string(c)), "")
		if err == nil {
			continue
		}
		diags = append(diags, Diagnostic{
			Line:    i + 1,
			Command: c,
			Message: err.Error(),
		})
	}
	return diags
}

// Strings converts commands to plain strings for display.
func Strings(commands []Command) []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = string(c)
	}
	return out
}
