//go:build linux || darwin

package platform

import (
	"os/exec"
	"syscall"
)

// detachProcessGroup keeps terminal signals aimed at the app away from the launched program
func detachProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
