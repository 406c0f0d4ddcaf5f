//go:build linux

package platform

// NewLinuxLauncher creates a launcher that delegates to xdg-open
func NewLinuxLauncher(opts ...Option) *ExecLauncher {
	return newExecLauncher("linux", linuxCommand, linuxCommand, detachProcessGroup, opts...)
}

// NewLauncher creates the Launcher for Linux
func NewLauncher(opts ...Option) Launcher {
	return NewLinuxLauncher(opts...)
}
