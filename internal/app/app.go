package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"exportdesk/internal/bridge"
	"exportdesk/internal/config"
	"exportdesk/internal/infrastructure/logging"
	"exportdesk/internal/platform"
	"exportdesk/internal/services"
	"exportdesk/internal/types"
)

// App struct represents the main application. Its exported methods are
// bound to the frontend by Wails.
type App struct {
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc

	config   *config.Config
	logger   logging.Logger
	writer   *services.FileWriter
	fetcher  *services.HTTPFetcher
	launcher *services.ShellLauncher
	registry *bridge.Registry
}

// Option customizes an App during construction
type Option func(*options)

type options struct {
	logger   logging.Logger
	launcher platform.Launcher
}

// WithLogger replaces the logger built from the config
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLauncher replaces the platform launcher used by open_path and open_url
func WithLauncher(launcher platform.Launcher) Option {
	return func(o *options) {
		o.launcher = launcher
	}
}

// NewApp creates a new App application struct with dependency injection
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Initialize logger first (required by all other components)
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogger(cfg.Level())
	}

	a := &App{
		ctx:      context.Background(),
		config:   cfg.Clone(),
		logger:   logger,
		writer:   services.NewFileWriter(logger),
		fetcher:  services.NewHTTPFetcher(cfg.UserAgent, logger),
		launcher: services.NewShellLauncher(o.launcher, logger),
		registry: bridge.NewRegistry(logger),
	}

	a.registerCommands()
	return a, nil
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.mu.Unlock()

	a.logger.Info("Application started",
		"environment", a.config.Environment,
		"platform", a.launcher.Platform(),
		"commands", len(a.registry.Commands()))
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	// Add your action here
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination. In-flight fetches are cancelled.
func (a *App) Shutdown(ctx context.Context) {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()

	a.logger.Info("Application shutdown completed")
}

// commandContext returns the context commands run under
func (a *App) commandContext() context.Context {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ctx
}

// WriteStructured writes data as pretty-printed JSON to path. data arrives
// as the frontend's JSON text so large integers are not rounded.
func (a *App) WriteStructured(data json.RawMessage, path string) error {
	return a.writer.WriteStructured(data, path)
}

// WriteRaw writes text to path unchanged
func (a *App) WriteRaw(text string, path string) error {
	return a.writer.WriteRaw(text, path)
}

// Fetch GETs url and returns the response body
func (a *App) Fetch(url string) (string, error) {
	result, err := a.fetcher.Fetch(a.commandContext(), url)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

// FetchWithCookies GETs url with the given Cookie header and returns the response body
func (a *App) FetchWithCookies(url string, cookie string) (string, error) {
	result, err := a.fetcher.FetchWithCookies(a.commandContext(), url, cookie)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

// OpenPath opens path in the system file browser
func (a *App) OpenPath(path string) error {
	return a.launcher.OpenPath(path)
}

// OpenURL opens url in the default browser
func (a *App) OpenURL(url string) error {
	return a.launcher.OpenURL(url)
}

// Greet returns a greeting for the given name
func (a *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// Invoke runs a command by name with a JSON object of arguments
func (a *App) Invoke(command string, args json.RawMessage) (any, error) {
	return a.registry.Invoke(a.commandContext(), command, args)
}

// Commands lists the commands reachable through Invoke
func (a *App) Commands() []types.CommandInfo {
	return a.registry.Commands()
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}
