//go:build !linux && !darwin && !windows

package platform

// NewLauncher returns a no-op launcher on platforms without a known open mechanism
func NewLauncher(opts ...Option) Launcher {
	return NewNoopLauncher()
}
