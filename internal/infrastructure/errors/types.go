package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents the step of a command that failed
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeDirectory
	ErrCodeWrite
	ErrCodeRequest
	ErrCodeHTTPStatus
	ErrCodeRead
	ErrCodeSpawn
	ErrCodeValidation
	ErrCodeUnknownCommand
	ErrCodePermission
	ErrCodeDiskSpace
	ErrCodeNotFound
	ErrCodeTimeout
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeDirectory:
		return "DIRECTORY"
	case ErrCodeWrite:
		return "WRITE"
	case ErrCodeRequest:
		return "REQUEST"
	case ErrCodeHTTPStatus:
		return "HTTP_STATUS"
	case ErrCodeRead:
		return "READ"
	case ErrCodeSpawn:
		return "SPAWN"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeUnknownCommand:
		return "UNKNOWN_COMMAND"
	case ErrCodePermission:
		return "PERMISSION"
	case ErrCodeDiskSpace:
		return "DISK_SPACE"
	case ErrCodeNotFound:
		return "NOT_FOUND"
	case ErrCodeTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// CommandError is the single error type returned across the frontend bridge.
// Error() is what the GUI shows, so it only carries Message and the underlying
// error; Op, Code and Context are for logs.
type CommandError struct {
	Op        string            // command name
	Err       error             // underlying error
	Code      ErrorCode         // failed step
	Message   string            // human readable prefix, e.g. "Failed to write file"
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *CommandError) Error() string {
	if e == nil {
		return "command error"
	}

	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "command error"
	}
}

// Details renders the error together with op, code and sorted context
// (used for log lines, never shown to the user)
func (e *CommandError) Details() string {
	if e == nil {
		return "command error"
	}

	parts := []string{}
	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}
	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	if len(parts) == 0 {
		return e.Error()
	}
	return fmt.Sprintf("%s [%s]", e.Error(), strings.Join(parts, " "))
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *CommandError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*CommandError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *CommandError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetOp returns the command name (for logging interface compatibility)
func (e *CommandError) GetOp() string {
	if e == nil {
		return ""
	}
	return e.Op
}

// GetContext returns the error context (for logging interface compatibility)
func (e *CommandError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *CommandError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been handed to another goroutine.
func (e *CommandError) WithContext(key, value string) *CommandError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewCommandError creates a new command error with the given parameters
func NewCommandError(op string, err error, code ErrorCode, message string) *CommandError {
	cmdErr := &CommandError{
		Op:        op,
		Err:       err,
		Code:      code,
		Message:   message,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
	if detail := ClassifyError(err); detail != ErrCodeUnknown && detail != code {
		cmdErr.Context["cause"] = detail.String()
	}
	return cmdErr
}

// NewCommandErrorWithContext creates a new command error with additional context
func NewCommandErrorWithContext(op string, err error, code ErrorCode, message string, context map[string]string) *CommandError {
	cmdErr := NewCommandError(op, err, code, message)
	for k, v := range context {
		cmdErr.Context[k] = v
	}
	return cmdErr
}

// Error classification functions

func hasCode(err error, code ErrorCode) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == code
	}
	return false
}

// IsDirectory checks if the error came from creating parent directories
func IsDirectory(err error) bool {
	return hasCode(err, ErrCodeDirectory)
}

// IsWrite checks if the error came from writing a file
func IsWrite(err error) bool {
	return hasCode(err, ErrCodeWrite)
}

// IsRequest checks if the error came from sending an HTTP request
func IsRequest(err error) bool {
	return hasCode(err, ErrCodeRequest)
}

// IsHTTPStatus checks if the error is a non-success HTTP status
func IsHTTPStatus(err error) bool {
	return hasCode(err, ErrCodeHTTPStatus)
}

// IsRead checks if the error came from reading a response body
func IsRead(err error) bool {
	return hasCode(err, ErrCodeRead)
}

// IsSpawn checks if the error came from starting an external process
func IsSpawn(err error) bool {
	return hasCode(err, ErrCodeSpawn)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsUnknownCommand checks if the error reports an unregistered command
func IsUnknownCommand(err error) bool {
	return hasCode(err, ErrCodeUnknownCommand)
}
