// SPDX-License-Identifier: MPL-2.0

package identity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// awkFilter selects launchable account names from /etc/passwd inside
// the distribution. The dollar signs are escaped because wsl.exe
// re-joins arguments into a command line before bash sees them.
const awkFilter = `awk -F: '(\$3 >= 1000 || \$3 == 0) && \$1 != "nobody" {print \$1}' /etc/passwd`

// defaultTimeout bounds account discovery so a wedged WSL backend
// cannot hang the run indefinitely.
const defaultTimeout = 10 * time.Second

var (
	// ErrTimeout is returned when the in-distro discovery command does
	// not answer within the configured timeout.
	ErrTimeout = errors.New("user detection timed out")
	// ErrNoUsers is returned when discovery succeeds but yields no
	// launchable accounts.
	ErrNoUsers = errors.New("no launchable users found")
)

type (
	// Lister discovers launchable accounts inside a WSL distribution.
	Lister struct {
		wslPath string
		timeout time.Duration
		logger  *log.Logger
	}

	// Option configures a Lister.
	Option func(*Lister)
)

// WithWSLPath overrides the wsl binary path (used by tests).
func WithWSLPath(path string) Option {
	return func(l *Lister) { l.wslPath = path }
}

// WithTimeout overrides the discovery timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Lister) { l.timeout = d }
}

// WithLogger overrides the logger used for discovery warnings.
func WithLogger(logger *log.Logger) Option {
	return func(l *Lister) { l.logger = logger }
}

// NewLister creates an account lister with the default 10 s timeout.
func NewLister(opts ...Option) *Lister {
	l := &Lister{
		timeout: defaultTimeout,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the launchable account names of the given distribution,
// in /etc/passwd order. The filter runs inside the distribution via
// awk; when awk is unavailable the passwd file is read raw and filtered
// locally. Warnings on stderr are logged but do not discard whatever
// was parsed from stdout. Returns ErrTimeout when the distribution does
// not answer in time.
func (l *Lister) List(ctx context.Context, distroName string) ([]string, error) {
	out, stderr, err := l.runInDistro(ctx, distroName, awkFilter)
	if err != nil {
		return nil, err
	}

	if stderr != "" {
		// Partial output is kept on purpose: awk may have printed
		// accounts before complaining.
		l.logger.Warn("warning detecting users", "distro", distroName, "stderr", stderr)
	}

	users := splitLines(out)
	if len(users) > 0 {
		return users, nil
	}

	// awk produced nothing; try reading the passwd database directly
	// and filtering on this side.
	users, fallbackErr := l.listViaPasswd(ctx, distroName)
	if fallbackErr != nil {
		if stderr != "" {
			return nil, fmt.Errorf("%w (last error: %s)", ErrNoUsers, stderr)
		}
		return nil, ErrNoUsers
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// listViaPasswd reads /etc/passwd raw and applies the UID filter in Go.
func (l *Lister) listViaPasswd(ctx context.Context, distroName string) ([]string, error) {
	out, stderr, err := l.runInDistro(ctx, distroName, "cat /etc/passwd")
	if err != nil {
		return nil, err
	}
	if stderr != "" {
		l.logger.Warn("warning reading passwd database", "distro", distroName, "stderr", stderr)
	}
	return Filter(ParsePasswd(strings.NewReader(out))), nil
}

// runInDistro executes a shell command line inside the distribution,
// bounded by the discovery timeout. Stdout and stderr are returned
// separately; a non-zero exit with usable stdout is not an error here.
func (l *Lister) runInDistro(ctx context.Context, distroName, command string) (stdout, stderr string, err error) {
	bin := l.wslPath
	if bin == "" {
		bin, err = exec.LookPath("wsl")
		if err != nil {
			return "", "", fmt.Errorf("wsl command not found: %w", err)
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, "-d", distroName, "--", "bash", "-c", command)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return "", "", ErrTimeout
	}
	if runErr != nil && outBuf.Len() == 0 && errBuf.Len() == 0 {
		return "", "", fmt.Errorf("run command in %s: %w", distroName, runErr)
	}

	return outBuf.String(), strings.TrimSpace(errBuf.String()), nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
