package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger interface used by commands and services
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// Level is the minimum severity a DefaultLogger emits
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the token written into log entries
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel converts a config value (debug, info, warn, error) to a Level.
// Unrecognised values return LevelInfo and false.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug", "trace":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error", "fatal":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// DefaultLogger writes one JSON object per line through the standard log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger creates a logger that emits INFO and above
func NewDefaultLogger() Logger {
	return &DefaultLogger{level: LevelInfo}
}

// NewLogger creates a logger with the given minimum level
func NewLogger(level Level) Logger {
	return &DefaultLogger{level: level}
}

// Level returns the minimum level this logger emits
func (l *DefaultLogger) Level() Level {
	return l.level
}

// logEntry represents a structured log entry
type logEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
}

// fieldsToMap converts the variadic fields slice to a map
// Expected format: key1, value1, key2, value2, ...
func fieldsToMap(fields []interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
			break
		}

		key, ok := fields[i].(string)
		if !ok {
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
			result[fmt.Sprintf("field_%d_value", i/2)] = fields[i+1]
			continue
		}

		// errors marshal to {} otherwise
		if err, isErr := fields[i+1].(error); isErr && err != nil {
			result[key] = err.Error()
			continue
		}
		result[key] = fields[i+1]
	}

	return result
}

func (l *DefaultLogger) logStructured(level Level, msg string, fields []interface{}) {
	if level < l.level {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Fields:    fieldsToMap(fields),
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		fallbackFields := fmt.Sprintf("%v", fields)
		entry.Fields = map[string]interface{}{
			"original_fields": fallbackFields,
			"marshal_error":   err.Error(),
		}

		if jsonBytes, err = json.Marshal(entry); err != nil {
			log.Printf("[%s] %s %s", level, msg, fallbackFields)
			return
		}
	}

	log.Println(string(jsonBytes))
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.logStructured(LevelDebug, msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.logStructured(LevelInfo, msg, fields)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.logStructured(LevelWarn, msg, fields)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.logStructured(LevelError, msg, fields)
}

// CommandError is the subset of errors.CommandError the logger needs
// (declared here to avoid an import cycle)
type CommandError interface {
	Error() string
	GetOp() string
	GetCode() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogCommandError logs a failed command with its code and context
func LogCommandError(logger Logger, err error, command string, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{"command", command}

	if cmdErr, ok := err.(CommandError); ok {
		fields = append(fields,
			"error_code", cmdErr.GetCode(),
			"timestamp", cmdErr.GetTimestamp(),
		)
		for k, v := range cmdErr.GetContext() {
			fields = append(fields, k, v)
		}
		if d, ok := err.(interface{ Details() string }); ok {
			fields = append(fields, "details", d.Details())
		}
	} else {
		fields = append(fields, "error_type", fmt.Sprintf("%T", err))
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Error(fmt.Sprintf("Command failed: %s", err.Error()), fields...)
}

// LogCommandOperation logs a completed command with its duration
func LogCommandOperation(logger Logger, command string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"command", command,
		"duration_ms", duration.Milliseconds(),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Info(fmt.Sprintf("Command completed: %s", command), fields...)
}
