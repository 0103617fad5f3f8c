// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"wslrun-cli/internal/cmdfile"
	"wslrun-cli/internal/distro"
	"wslrun-cli/internal/identity"
	"wslrun-cli/internal/issue"
	"wslrun-cli/internal/terminal"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. When the CLI layer receives a ServiceError, it renders the
// underlying error first, then the issue catalog guidance for its class.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
// All construction sites must use this instead of struct literals.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// fatalError wraps a setup failure in a ServiceError, classifying it
// into the issue catalog by its sentinel.
func fatalError(err error) error {
	if err == nil {
		return nil
	}
	return newServiceError(err, classifyIssue(err))
}

// classifyIssue maps sentinel errors from the discovery and loading
// layers to their issue catalog entries. Returns 0 for errors without
// catalog guidance.
func classifyIssue(err error) issue.Id {
	switch {
	case errors.Is(err, distro.ErrWSLNotFound):
		return issue.WSLNotFoundId
	case errors.Is(err, distro.ErrNoDistros):
		return issue.NoDistrosFoundId
	case errors.Is(err, identity.ErrTimeout):
		return issue.UserDetectTimeoutId
	case errors.Is(err, identity.ErrNoUsers):
		return issue.NoUsersFoundId
	case errors.Is(err, cmdfile.ErrNotFound):
		return issue.CommandFileNotFoundId
	case errors.Is(err, cmdfile.ErrNoCommands):
		return issue.NoCommandsFoundId
	case errors.Is(err, terminal.ErrTerminalNotFound):
		return issue.TerminalNotFoundId
	default:
		return 0
	}
}

// renderServiceError renders a ServiceError in the CLI layer: the error
// message first, then the optional issue catalog guidance.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, verbose bool) {
	if svcErr == nil {
		return
	}

	var actionable *issue.ActionableError
	if errors.As(svcErr.Err, &actionable) {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+actionable.Format(verbose))
	} else {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+svcErr.Err.Error())
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render("dark")
		if renderErr != nil {
			logger.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}
