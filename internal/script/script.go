// SPDX-License-Identifier: MPL-2.0

// Package script materializes the throw-away launch scripts that carry
// one command each into a terminal tab, and translates their host paths
// into the form visible inside a WSL distribution.
package script

import (
	"fmt"
	"os"
	"strings"

	"wslrun-cli/internal/cmdfile"
)

// trailer keeps the tab interactive after the command finishes instead
// of closing it.
const trailer = `
echo ""
echo "-------------------------------------------------------------------"
echo "Command completed. Press Ctrl+D to close or continue using the shell."
echo "-------------------------------------------------------------------"
exec bash
`

// Materialize writes a unique launch script to the host temp directory
// and returns its host path. The script changes to the user's home,
// runs the command verbatim, then drops into an interactive shell.
// Line endings are LF throughout; bash inside the distribution chokes
// on CRLF.
//
// Successful launches intentionally leave these files behind so
// operators can inspect what ran; callers remove them only when the
// launch itself fails.
func Materialize(command cmdfile.Command) (string, error) {
	f, err := os.CreateTemp("", "wslrun-*.sh")
	if err != nil {
		return "", fmt.Errorf("create launch script: %w", err)
	}

	content := fmt.Sprintf("#!/bin/bash\n# Launched via 'bash -i' so the user's startup files are loaded.\ncd ~\n\n%s\n%s", command, trailer)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write launch script: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close launch script: %w", err)
	}

	return f.Name(), nil
}

// TranslatePath converts a Windows host path to the path a WSL
// distribution sees under /mnt: `C:\Users\x\f.sh` becomes
// `/mnt/c/Users/x/f.sh`. Paths that are already POSIX-style are
// returned unchanged.
func TranslatePath(hostPath string) string {
	if strings.HasPrefix(hostPath, "/") {
		return hostPath
	}

	p := strings.ReplaceAll(hostPath, `\`, "/")
	p = strings.Replace(p, ":", "", 1)
	if p == "" {
		return p
	}
	return "/mnt/" + strings.ToLower(p[:1]) + p[1:]
}

// Remove deletes a launch script, ignoring already-gone files. Used on
// the launch failure path only.
func Remove(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
