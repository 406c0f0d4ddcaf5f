package platform

import (
	"os/exec"
)

// ExitFunc receives the exit error of a launched program. It runs on the
// reaping goroutine, after the command that started the program has returned.
type ExitFunc func(program string, err error)

// StartFunc spawns cmd without waiting for it to finish
type StartFunc func(cmd *exec.Cmd, onExit ExitFunc) error

// LaunchError reports that the external program could not be started
type LaunchError struct {
	Program string
	Target  string
	Err     error
}

func (e *LaunchError) Error() string {
	return e.Err.Error()
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Option configures an ExecLauncher
type Option func(*ExecLauncher)

// WithStarter replaces the process spawn primitive (used by tests)
func WithStarter(start StartFunc) Option {
	return func(l *ExecLauncher) {
		l.start = start
	}
}

// WithExitHandler registers a callback for non-zero exits of launched programs
func WithExitHandler(onExit ExitFunc) Option {
	return func(l *ExecLauncher) {
		l.onExit = onExit
	}
}

// ExecLauncher implements Launcher by spawning a platform program
type ExecLauncher struct {
	name        string
	pathCommand func(string) Command
	urlCommand  func(string) Command
	prepare     func(*exec.Cmd)
	start       StartFunc
	onExit      ExitFunc
}

func newExecLauncher(name string, pathCommand, urlCommand func(string) Command, prepare func(*exec.Cmd), opts ...Option) *ExecLauncher {
	l := &ExecLauncher{
		name:        name,
		pathCommand: pathCommand,
		urlCommand:  urlCommand,
		prepare:     prepare,
		start:       StartDetached,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the platform variant
func (l *ExecLauncher) Name() string {
	return l.name
}

// OpenPath opens a file or directory in the system file browser
func (l *ExecLauncher) OpenPath(path string) error {
	return l.launch(l.pathCommand(path), path)
}

// OpenURL opens url in the default browser
func (l *ExecLauncher) OpenURL(url string) error {
	return l.launch(l.urlCommand(url), url)
}

func (l *ExecLauncher) launch(command Command, target string) error {
	cmd := exec.Command(command.Program, command.Args...)
	if l.prepare != nil {
		l.prepare(cmd)
	}

	if err := l.start(cmd, l.onExit); err != nil {
		return &LaunchError{Program: command.Program, Target: target, Err: err}
	}
	return nil
}

// StartDetached starts cmd and reaps it on a background goroutine.
// The launched program's own failure is only visible to onExit.
func StartDetached(cmd *exec.Cmd, onExit ExitFunc) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil && onExit != nil {
			onExit(cmd.Args[0], err)
		}
	}()
	return nil
}

// NoopLauncher is used where no open mechanism is known; every call succeeds
type NoopLauncher struct{}

// NewNoopLauncher creates a launcher that does nothing
func NewNoopLauncher() *NoopLauncher {
	return &NoopLauncher{}
}

func (n *NoopLauncher) OpenPath(path string) error { return nil }
func (n *NoopLauncher) OpenURL(url string) error   { return nil }
func (n *NoopLauncher) Name() string               { return "noop" }
