// SPDX-License-Identifier: MPL-2.0

// Package distro enumerates installed WSL distributions via the wsl
// command-line tool.
package distro
