// SPDX-License-Identifier: MPL-2.0

package distro

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Sentinel errors for the enumeration failure classes the CLI layer
// maps to issue catalog entries.
var (
	// ErrWSLNotFound is returned when the wsl binary is not in PATH.
	ErrWSLNotFound = errors.New("wsl command not found")
	// ErrNoDistros is returned when enumeration succeeds but yields nothing.
	ErrNoDistros = errors.New("no WSL distributions found")
)

type (
	// Name identifies a WSL distribution.
	Name string

	// Enumerator lists installed WSL distributions.
	Enumerator struct {
		// wslPath overrides the wsl binary location.
		wslPath string
	}

	// Option configures an Enumerator.
	Option func(*Enumerator)
)

// WithWSLPath overrides the wsl binary path (used by tests).
func WithWSLPath(path string) Option {
	return func(e *Enumerator) { e.wslPath = path }
}

// NewEnumerator creates a new distribution enumerator.
func NewEnumerator(opts ...Option) *Enumerator {
	e := &Enumerator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available returns whether the wsl tool can be found.
func (e *Enumerator) Available() bool {
	_, err := e.binary()
	return err == nil
}

// List returns the installed distributions in the order wsl reports them.
// Returns ErrWSLNotFound when the tool is missing and ErrNoDistros when
// the tool runs but reports no distributions.
func (e *Enumerator) List(ctx context.Context) ([]Name, error) {
	bin, err := e.binary()
	if err != nil {
		return nil, ErrWSLNotFound
	}

	out, err := exec.CommandContext(ctx, bin, "-l", "-q").Output()
	if err != nil {
		return nil, fmt.Errorf("wsl -l -q: %w", err)
	}

	names := ParseList(out)
	if len(names) == 0 {
		return nil, ErrNoDistros
	}
	return names, nil
}

func (e *Enumerator) binary() (string, error) {
	if e.wslPath != "" {
		return e.wslPath, nil
	}
	return exec.LookPath("wsl")
}

// ParseList extracts distribution names from raw `wsl -l -q` output.
// The tool emits UTF-16LE on most hosts; the output is decoded as such
// first, falling back to a NUL-stripped UTF-8 read when the decoded
// form yields nothing. Blank lines and leftover encoding noise are
// dropped, order is preserved.
func ParseList(raw []byte) []Name {
	if names := splitNames(decodeUTF16LE(raw)); len(names) > 0 {
		return names
	}
	// Fallback for hosts configured to emit UTF-8.
	return splitNames(string(bytes.ReplaceAll(raw, []byte{0}, nil)))
}

// decodeUTF16LE decodes raw bytes as UTF-16LE, tolerating a BOM.
// Returns "" when the input cannot be a UTF-16 stream (odd length).
func decodeUTF16LE(raw []byte) string {
	if len(raw)%2 != 0 {
		return ""
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func splitNames(s string) []Name {
	var names []Name
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\x00", ""))
		if line == "" {
			continue
		}
		names = append(names, Name(line))
	}
	return names
}

// Strings converts a slice of names to plain strings for display.
func Strings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
