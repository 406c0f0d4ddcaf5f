package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"exportdesk/internal/infrastructure/errors"
	"exportdesk/internal/infrastructure/logging"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FileWriter writes command payloads to disk, creating parent directories as needed
type FileWriter struct {
	logger logging.Logger
}

// NewFileWriter creates a new file writer
func NewFileWriter(logger logging.Logger) *FileWriter {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &FileWriter{logger: logger}
}

// WriteStructured serializes data as indented JSON and writes it to path.
// A json.RawMessage is reindented as is, so its numbers keep their exact text.
// Values that cannot be encoded are written using their %v representation.
func (w *FileWriter) WriteStructured(data any, path string) error {
	if raw, ok := data.(json.RawMessage); ok && len(bytes.TrimSpace(raw)) == 0 {
		err := errors.HandleValidationError("write_structured", "data", "must not be empty")
		logging.LogCommandError(w.logger, err, "write_structured", nil)
		return err
	}

	content, fallback := MarshalPretty(data)
	if fallback {
		w.logger.Warn("JSON encoding failed, writing default representation",
			"command", "write_structured",
			"path", path,
			"type", fmt.Sprintf("%T", data))
	}
	return w.write("write_structured", content, path)
}

// WriteRaw writes text to path verbatim
func (w *FileWriter) WriteRaw(text string, path string) error {
	return w.write("write_raw", []byte(text), path)
}

func (w *FileWriter) write(command string, content []byte, path string) error {
	start := time.Now()

	if strings.TrimSpace(path) == "" {
		err := errors.HandleValidationError(command, "path", "must not be empty")
		logging.LogCommandError(w.logger, err, command, nil)
		return err
	}

	w.logger.Debug("Writing file", "command", command, "path", path, "bytes", len(content))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		cmdErr := errors.HandleDirectoryError(command, dir, err)
		logging.LogCommandError(w.logger, cmdErr, command, nil)
		return cmdErr
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		cmdErr := errors.HandleWriteError(command, path, err)
		logging.LogCommandError(w.logger, cmdErr, command, nil)
		return cmdErr
	}

	logging.LogCommandOperation(w.logger, command, time.Since(start), map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

// MarshalPretty encodes data as two-space indented JSON without HTML escaping
// or a trailing newline. On failure it returns fmt's %v rendering and true.
func MarshalPretty(data any) ([]byte, bool) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(data); err != nil {
		return []byte(fmt.Sprintf("%v", data)), true
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), false
}
