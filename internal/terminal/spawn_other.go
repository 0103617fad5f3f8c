// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package terminal

import "syscall"

// detachedSysProcAttr starts the spawned process in its own session so
// it survives wslrun exiting. Non-Windows hosts only matter for tests.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
