// SPDX-License-Identifier: MPL-2.0

// Package platform provides host platform checks.
package platform

import "runtime"

// IsWindows reports whether the host OS is Windows. WSL distributions
// and Windows Terminal tabs can only be driven from a Windows host,
// though the wsl and wt binaries may still resolve through interop
// when running inside a WSL distribution itself.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}
