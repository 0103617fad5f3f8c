// SPDX-License-Identifier: MPL-2.0

// Package launcher drives a run: it turns an ordered command list into
// a sequence of fire-and-forget terminal tabs, pacing launches with a
// fixed delay and deferring to the operator on per-launch failures.
package launcher

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"wslrun-cli/internal/cmdfile"
	"wslrun-cli/internal/script"
	"wslrun-cli/internal/terminal"
)

type (
	// Plan is the immutable input of one run. Nothing in it is mutated
	// after selection: the run is a single pass over these values.
	Plan struct {
		// Distro is the selected WSL distribution.
		Distro string
		// User is the selected in-distro account.
		User string
		// Commands is the ordered command list; order is execution order.
		Commands []cmdfile.Command
		// Delay is the pause between consecutive launches.
		Delay time.Duration
	}

	// ContinueFunc asks the operator whether to keep going after a
	// launch failure. A false answer halts the remaining sequence; an
	// error (typically user cancellation) halts it too and is returned
	// from Run.
	ContinueFunc func(cmd cmdfile.Command, launchErr error) (bool, error)

	// Summary reports what a run did. Launched sessions are not
	// tracked beyond these counters; the launcher never observes their
	// lifecycle.
	Summary struct {
		// Launched is the number of tabs successfully requested.
		Launched int
		// Failed is the number of launch requests that errored.
		Failed int
		// Halted is true when the operator stopped the run early.
		Halted bool
	}

	// Launcher executes Plans against a terminal multiplexer.
	Launcher struct {
		mux     terminal.Multiplexer
		logger  *log.Logger
		sleep   func(time.Duration)
		confirm ContinueFunc
	}

	// Option configures a Launcher.
	Option func(*Launcher)
)

// WithLogger overrides the progress logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) { l.logger = logger }
}

// WithSleep overrides the pacing sleep (used by tests).
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Launcher) { l.sleep = sleep }
}

// New creates a Launcher. confirm decides whether a run continues after
// a launch failure; passing nil halts on the first failure.
func New(mux terminal.Multiplexer, confirm ContinueFunc, opts ...Option) *Launcher {
	l := &Launcher{
		mux:     mux,
		logger:  log.Default(),
		sleep:   time.Sleep,
		confirm: confirm,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run launches every command of the plan in order. After each
// successful launch except the last, it sleeps the configured delay, so
// a run of N commands pauses exactly N-1 times. A launch failure never
// terminates the run on its own: the operator is asked, and only a
// negative (or cancelled) answer halts the remaining sequence.
func (l *Launcher) Run(ctx context.Context, plan Plan) (Summary, error) {
	var summary Summary

	total := len(plan.Commands)
	for i, command := range plan.Commands {
		if err := ctx.Err(); err != nil {
			summary.Halted = true
			return summary, err
		}

		l.logger.Info(fmt.Sprintf("[%d/%d] launching", i+1, total), "command", string(command))

		err := l.launch(plan, command, i == 0)
		if err == nil {
			summary.Launched++
			if i < total-1 {
				l.logger.Debug("waiting before next launch", "delay", plan.Delay)
				l.sleep(plan.Delay)
			}
			continue
		}

		summary.Failed++
		l.logger.Error("failed to launch command", "command", string(command), "err", err)

		if l.confirm == nil {
			summary.Halted = true
			return summary, nil
		}
		keepGoing, confirmErr := l.confirm(command, err)
		if confirmErr != nil {
			summary.Halted = true
			return summary, confirmErr
		}
		if !keepGoing {
			summary.Halted = true
			return summary, nil
		}
	}

	return summary, nil
}

// launch materializes one command's script and requests a tab for it.
// The script survives a successful launch on purpose; it is removed
// only when the spawn fails.
func (l *Launcher) launch(plan Plan, command cmdfile.Command, first bool) error {
	hostPath, err := script.Materialize(command)
	if err != nil {
		return err
	}

	err = l.mux.OpenTab(terminal.TabRequest{
		Distro:     plan.Distro,
		User:       plan.User,
		ScriptPath: script.TranslatePath(hostPath),
		NewWindow:  first,
	})
	if err != nil {
		script.Remove(hostPath)
		return err
	}
	return nil
}
