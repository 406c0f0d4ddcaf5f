//go:build windows

package platform

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// NewWindowsLauncher creates a launcher that delegates to explorer.exe
func NewWindowsLauncher(opts ...Option) *ExecLauncher {
	return newExecLauncher("windows", windowsPathCommand, windowsURLCommand, detachWindows, opts...)
}

// NewLauncher creates the Launcher for Windows
func NewLauncher(opts ...Option) Launcher {
	return NewWindowsLauncher(opts...)
}

// detachWindows starts explorer outside our console and Ctrl+C group
func detachWindows(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
