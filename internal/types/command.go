package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredError reports a missing or empty command argument
type requiredError struct {
	field string
}

func (e *requiredError) Error() string {
	return fmt.Sprintf("%s is required", e.field)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &requiredError{field: field}
	}
	return nil
}

// StructuredFile is the argument shape of write_structured.
// Data keeps the caller's JSON text so numbers are written back exactly.
type StructuredFile struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

// Validate requires path and data. An explicit null data is allowed.
func (f StructuredFile) Validate() error {
	if err := requireText("path", f.Path); err != nil {
		return err
	}
	if len(f.Data) == 0 {
		return &requiredError{field: "data"}
	}
	return nil
}

// RawFile is the argument shape of write_raw. JSON is a pointer so a missing
// key is distinguishable from an empty text.
type RawFile struct {
	Path string  `json:"path"`
	JSON *string `json:"json"`
}

// Validate requires path and json
func (f RawFile) Validate() error {
	if err := requireText("path", f.Path); err != nil {
		return err
	}
	if f.JSON == nil {
		return &requiredError{field: "json"}
	}
	return nil
}

// FetchRequest is the argument shape of fetch
type FetchRequest struct {
	URL string `json:"url"`
}

func (r FetchRequest) Validate() error {
	return requireText("url", r.URL)
}

// CookieFetchRequest is the argument shape of fetch_with_cookies.
// An empty cookie sends no Cookie header.
type CookieFetchRequest struct {
	URL    string  `json:"url"`
	Cookie *string `json:"cookie"`
}

func (r CookieFetchRequest) Validate() error {
	if err := requireText("url", r.URL); err != nil {
		return err
	}
	if r.Cookie == nil {
		return &requiredError{field: "cookie"}
	}
	return nil
}

// FetchResult holds one response. Only Body crosses the bridge;
// the status is kept for logging.
type FetchResult struct {
	Body       string `json:"body"`
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
}

// OpenPathRequest is the argument shape of open_path
type OpenPathRequest struct {
	Path string `json:"path"`
}

func (r OpenPathRequest) Validate() error {
	return requireText("path", r.Path)
}

// OpenURLRequest is the argument shape of open_url
type OpenURLRequest struct {
	URL string `json:"url"`
}

func (r OpenURLRequest) Validate() error {
	return requireText("url", r.URL)
}

// GreetRequest is the argument shape of greet
type GreetRequest struct {
	Name *string `json:"name"`
}

func (r GreetRequest) Validate() error {
	if r.Name == nil {
		return &requiredError{field: "name"}
	}
	return nil
}

// CommandInfo describes a registered command
type CommandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
}
