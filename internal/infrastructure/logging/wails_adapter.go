package logging

import (
	"strings"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLoggerAdapter routes Wails runtime output into our structured logger.
// Messages are trimmed of trailing newlines and blank ones are dropped, since
// the runtime emits both while starting the webview.
type WailsLoggerAdapter struct {
	logger Logger
}

var _ wailslogger.Logger = (*WailsLoggerAdapter)(nil)

// NewWailsLoggerAdapter creates a new Wails logger adapter using our structured logger
func NewWailsLoggerAdapter(logger Logger) *WailsLoggerAdapter {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &WailsLoggerAdapter{
		logger: logger,
	}
}

// WailsLogLevel maps our level onto the runtime's level so Wails does not
// format messages we would drop anyway
func WailsLogLevel(level Level) wailslogger.LogLevel {
	switch level {
	case LevelDebug:
		return wailslogger.DEBUG
	case LevelWarn:
		return wailslogger.WARNING
	case LevelError:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

// emit forwards one runtime message at level, tagged with its Wails level name
func (w *WailsLoggerAdapter) emit(level Level, wailsLevel, message string) {
	message = strings.TrimRight(message, "\r\n")
	if strings.TrimSpace(message) == "" {
		return
	}

	fields := []interface{}{"source", "wails", "wails_level", wailsLevel}
	switch level {
	case LevelDebug:
		w.logger.Debug(message, fields...)
	case LevelWarn:
		w.logger.Warn(message, fields...)
	case LevelError:
		w.logger.Error(message, fields...)
	default:
		w.logger.Info(message, fields...)
	}
}

// Print is the runtime's unlevelled output, kept at INFO
func (w *WailsLoggerAdapter) Print(message string) {
	w.emit(LevelInfo, "print", message)
}

// Trace has no level of its own here and goes to DEBUG
func (w *WailsLoggerAdapter) Trace(message string) {
	w.emit(LevelDebug, "trace", message)
}

func (w *WailsLoggerAdapter) Debug(message string) {
	w.emit(LevelDebug, "debug", message)
}

func (w *WailsLoggerAdapter) Info(message string) {
	w.emit(LevelInfo, "info", message)
}

func (w *WailsLoggerAdapter) Warning(message string) {
	w.emit(LevelWarn, "warning", message)
}

func (w *WailsLoggerAdapter) Error(message string) {
	w.emit(LevelError, "error", message)
}

// Fatal is logged as ERROR; the runtime must not exit the process from here
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.emit(LevelError, "fatal", message)
}
