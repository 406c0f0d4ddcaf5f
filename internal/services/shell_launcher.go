package services

import (
	stderrors "errors"
	"strings"
	"time"

	"exportdesk/internal/infrastructure/errors"
	"exportdesk/internal/infrastructure/logging"
	"exportdesk/internal/platform"
)

// ShellLauncher opens paths and URLs through the platform launcher
type ShellLauncher struct {
	launcher platform.Launcher
	logger   logging.Logger
}

// NewShellLauncher wraps launcher; a nil launcher selects the one for the running OS
func NewShellLauncher(launcher platform.Launcher, logger logging.Logger) *ShellLauncher {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if launcher == nil {
		launcher = platform.NewLauncher(platform.WithExitHandler(ExitLogger(logger)))
	}
	return &ShellLauncher{
		launcher: launcher,
		logger:   logger,
	}
}

// ExitLogger returns a platform.ExitFunc that records launched programs exiting
// non-zero. explorer.exe does this routinely, so it is only debug.
func ExitLogger(logger logging.Logger) platform.ExitFunc {
	return func(program string, err error) {
		logger.Debug("Launched program exited with error", "program", program, "error", err)
	}
}

// Platform returns the launcher variant in use
func (s *ShellLauncher) Platform() string {
	return s.launcher.Name()
}

// OpenPath opens a file or directory in the system file browser
func (s *ShellLauncher) OpenPath(path string) error {
	return s.open("open_path", "path", path, s.launcher.OpenPath)
}

// OpenURL opens url in the default browser
func (s *ShellLauncher) OpenURL(url string) error {
	return s.open("open_url", "url", url, s.launcher.OpenURL)
}

func (s *ShellLauncher) open(command, field, target string, open func(string) error) error {
	start := time.Now()

	if strings.TrimSpace(target) == "" {
		err := errors.HandleValidationError(command, field, "must not be empty")
		logging.LogCommandError(s.logger, err, command, nil)
		return err
	}

	if err := open(target); err != nil {
		program := ""
		var launchErr *platform.LaunchError
		if stderrors.As(err, &launchErr) {
			program = launchErr.Program
		}

		cmdErr := errors.HandleSpawnError(command, target, program, err)
		logging.LogCommandError(s.logger, cmdErr, command, map[string]interface{}{
			"platform": s.launcher.Name(),
		})
		return cmdErr
	}

	logging.LogCommandOperation(s.logger, command, time.Since(start), map[string]interface{}{
		field:      target,
		"platform": s.launcher.Name(),
	})
	return nil
}
