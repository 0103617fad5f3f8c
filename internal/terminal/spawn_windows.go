// SPDX-License-Identifier: MPL-2.0

//go:build windows

package terminal

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedSysProcAttr detaches the spawned process from our console and
// process group so it survives wslrun exiting.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
