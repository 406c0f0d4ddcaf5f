//go:build darwin

package platform

// NewDarwinLauncher creates a launcher that delegates to open(1)
func NewDarwinLauncher(opts ...Option) *ExecLauncher {
	return newExecLauncher("darwin", darwinCommand, darwinCommand, detachProcessGroup, opts...)
}

// NewLauncher creates the Launcher for macOS
func NewLauncher(opts ...Option) Launcher {
	return NewDarwinLauncher(opts...)
}
