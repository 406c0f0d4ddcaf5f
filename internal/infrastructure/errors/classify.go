package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
)

// User-facing message prefixes. The frontend matches on these, keep them stable.
const (
	MsgCreateDirectory = "Failed to create directory"
	MsgWriteFile       = "Failed to write file"
	MsgRequestFailed   = "Request failed"
	MsgHTTPError       = "HTTP error"
	MsgReadResponse    = "Failed to read response"
	MsgOpenFailed      = "Failed to open"
)

// ClassifyError maps OS and network errors onto a detail code.
// Returns ErrCodeUnknown when nothing matches.
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		return ErrCodePermission
	case errors.Is(err, syscall.ENOSPC):
		return ErrCodeDiskSpace
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrCodeTimeout
	}

	// Fall back to string-based classification for wrapped or foreign errors
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "permission denied"):
		return ErrCodePermission
	case strings.Contains(errStr, "access is denied"):
		return ErrCodePermission
	case strings.Contains(errStr, "no space left"):
		return ErrCodeDiskSpace
	case strings.Contains(errStr, "disk full"):
		return ErrCodeDiskSpace
	case strings.Contains(errStr, "no such file or directory"):
		return ErrCodeNotFound
	case strings.Contains(errStr, "executable file not found"):
		return ErrCodeNotFound
	case strings.Contains(errStr, "timeout"):
		return ErrCodeTimeout
	default:
		return ErrCodeUnknown
	}
}

// HandleDirectoryError creates a standardized directory creation error
func HandleDirectoryError(op string, dir string, err error) error {
	return NewCommandErrorWithContext(op, err, ErrCodeDirectory, MsgCreateDirectory, map[string]string{
		"dir": dir,
	})
}

// HandleWriteError creates a standardized file write error
func HandleWriteError(op string, path string, err error) error {
	return NewCommandErrorWithContext(op, err, ErrCodeWrite, MsgWriteFile, map[string]string{
		"path": path,
	})
}

// HandleRequestError creates a standardized request-send error
func HandleRequestError(op string, url string, err error) error {
	return NewCommandErrorWithContext(op, err, ErrCodeRequest, MsgRequestFailed, map[string]string{
		"url": url,
	})
}

// HandleStatusError creates a standardized non-success HTTP status error.
// The reason phrase is the canonical one, or "Unknown" for unregistered codes.
func HandleStatusError(op string, url string, statusCode int) error {
	reason := http.StatusText(statusCode)
	if reason == "" {
		reason = "Unknown"
	}
	return NewCommandErrorWithContext(op,
		fmt.Errorf("%d %s", statusCode, reason),
		ErrCodeHTTPStatus,
		MsgHTTPError,
		map[string]string{
			"url":    url,
			"status": strconv.Itoa(statusCode),
		})
}

// HandleReadError creates a standardized response-read error
func HandleReadError(op string, url string, err error) error {
	return NewCommandErrorWithContext(op, err, ErrCodeRead, MsgReadResponse, map[string]string{
		"url": url,
	})
}

// HandleSpawnError creates a standardized external process spawn error
func HandleSpawnError(op string, target string, program string, err error) error {
	return NewCommandErrorWithContext(op, err, ErrCodeSpawn, fmt.Sprintf("%s %s", MsgOpenFailed, target), map[string]string{
		"target":  target,
		"program": program,
	})
}

// HandleValidationError creates a standardized validation error
func HandleValidationError(op string, field string, reason string) error {
	return NewCommandErrorWithContext(op,
		fmt.Errorf("%s %s", field, reason),
		ErrCodeValidation,
		"Invalid argument",
		map[string]string{
			"field":  field,
			"reason": reason,
		})
}

// HandleUnknownCommand creates a standardized error for an unregistered command name
func HandleUnknownCommand(name string) error {
	return NewCommandErrorWithContext("invoke",
		errors.New(name),
		ErrCodeUnknownCommand,
		"unknown command",
		map[string]string{
			"command": name,
		})
}
