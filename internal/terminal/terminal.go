// SPDX-License-Identifier: MPL-2.0

// Package terminal opens terminal tabs through the Windows Terminal
// command-line tool. Launches are fire-and-forget: spawned sessions are
// never tracked, waited on, or reaped.
package terminal

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrTerminalNotFound is returned when the wt binary is not in PATH.
var ErrTerminalNotFound = errors.New("wt (Windows Terminal) command not found")

type (
	// TabRequest describes one tab to open.
	TabRequest struct {
		// Distro is the WSL distribution to run in.
		Distro string
		// User is the in-distro account to run as.
		User string
		// ScriptPath is the launch script path as seen from inside the
		// distribution (already translated to /mnt form).
		ScriptPath string
		// NewWindow opens a fresh top-level window instead of adding a
		// tab to the existing one. Only the first launch of a run sets
		// this.
		NewWindow bool
	}

	// Multiplexer opens terminal surfaces. Implemented by
	// WindowsTerminal; faked in launcher tests.
	Multiplexer interface {
		// OpenTab spawns a detached process that opens the requested
		// tab. It returns an error instead of panicking when the
		// multiplexer is missing or the OS refuses the spawn.
		OpenTab(req TabRequest) error
	}

	// WindowsTerminal is the wt-backed Multiplexer.
	WindowsTerminal struct {
		// wtPath overrides the wt binary location.
		wtPath string
	}

	// Option configures a WindowsTerminal.
	Option func(*WindowsTerminal)
)

// WithWTPath overrides the wt binary path (used by tests).
func WithWTPath(path string) Option {
	return func(t *WindowsTerminal) { t.wtPath = path }
}

// New creates a Windows Terminal multiplexer client.
func New(opts ...Option) *WindowsTerminal {
	t := &WindowsTerminal{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Available returns whether the wt tool can be found.
func (t *WindowsTerminal) Available() bool {
	_, err := t.binary()
	return err == nil
}

// Args builds the wt argument vector for a request. The first launch of
// a run targets window -1 (force a new window); later launches target
// window 0 (the most recently used one), so every tab of a run lands in
// the same window.
func (t *WindowsTerminal) Args(req TabRequest) []string {
	window := "0"
	if req.NewWindow {
		window = "-1"
	}
	// bash runs interactively (-i) so the user's startup files are
	// loaded before the launch script executes.
	return []string{
		"-w", window, "nt",
		"wsl", "-d", req.Distro, "-u", req.User,
		"bash", "-i", req.ScriptPath,
	}
}

// OpenTab spawns wt as a detached process and releases it immediately.
// Output is discarded; the session lives entirely in the new tab.
func (t *WindowsTerminal) OpenTab(req TabRequest) error {
	bin, err := t.binary()
	if err != nil {
		return ErrTerminalNotFound
	}

	cmd := exec.Command(bin, t.Args(req)...)
	cmd.SysProcAttr = detachedSysProcAttr()
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn terminal tab: %w", err)
	}

	// Never wait on the child; release the handle so it outlives us.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release terminal process: %w", err)
	}
	return nil
}

func (t *WindowsTerminal) binary() (string, error) {
	if t.wtPath != "" {
		return t.wtPath, nil
	}
	return exec.LookPath("wt")
}
