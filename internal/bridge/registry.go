package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"exportdesk/internal/infrastructure/errors"
	"exportdesk/internal/infrastructure/logging"
	"exportdesk/internal/types"
)

// Handler runs one command. args holds the JSON object sent by the frontend.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// argumentError marks a failure to decode a command's arguments
type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

// Validator is implemented by argument types with required fields
type Validator interface {
	Validate() error
}

// Typed adapts fn into a Handler that decodes args into T first.
// Unknown keys are rejected and T is validated when it implements Validator.
// Numbers are decoded as json.Number so integers keep their exact text.
func Typed[T any](fn func(ctx context.Context, args T) (any, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args T
		if err := decodeArgs(raw, &args); err != nil {
			return nil, &argumentError{err: err}
		}
		if v, ok := any(args).(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, &argumentError{err: err}
			}
		}
		return fn(ctx, args)
	}
}

func decodeArgs(raw json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after arguments")
	}
	return nil
}

type command struct {
	info    types.CommandInfo
	handler Handler
}

// Registry is the name to handler dispatch table behind App.Invoke
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*command
	aliases  map[string]string
	logger   logging.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Registry{
		commands: make(map[string]*command),
		aliases:  make(map[string]string),
		logger:   logger,
	}
}

// Register adds a command under name and any aliases.
// Every name and alias must be unique across the registry.
func (r *Registry) Register(name, description string, handler Handler, aliases ...string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if handler == nil {
		return fmt.Errorf("command %s: handler must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(aliases)+1)
	for _, n := range append([]string{name}, aliases...) {
		if seen[n] || r.taken(n) {
			return fmt.Errorf("command %s: name %q already registered", name, n)
		}
		seen[n] = true
	}

	r.commands[name] = &command{
		info: types.CommandInfo{
			Name:        name,
			Aliases:     append([]string(nil), aliases...),
			Description: description,
		},
		handler: handler,
	}
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
	return nil
}

// MustRegister is Register for static tables; it panics on a duplicate
func (r *Registry) MustRegister(name, description string, handler Handler, aliases ...string) {
	if err := r.Register(name, description, handler, aliases...); err != nil {
		panic(err)
	}
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.commands[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// Resolve returns the canonical name for name or one of its aliases
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.commands[name]; ok {
		return name, true
	}
	canonical, ok := r.aliases[name]
	return canonical, ok
}

// Invoke runs the command registered under name (or an alias of it)
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	canonical, ok := r.Resolve(name)
	if !ok {
		err := errors.HandleUnknownCommand(name)
		logging.LogCommandError(r.logger, err, name, nil)
		return nil, err
	}

	r.mu.RLock()
	cmd := r.commands[canonical]
	r.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	r.logger.Debug("Invoking command", "command", canonical, "requested_as", name)

	result, err := cmd.handler(ctx, args)
	if err != nil {
		var argErr *argumentError
		if stderrors.As(err, &argErr) {
			cmdErr := errors.NewCommandError(canonical, argErr.err, errors.ErrCodeValidation,
				fmt.Sprintf("invalid arguments for %s", canonical)).
				WithContext("requested_as", name)
			logging.LogCommandError(r.logger, cmdErr, canonical, nil)
			return nil, cmdErr
		}
		return nil, err
	}

	r.logger.Debug("Command returned", "command", canonical, "duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

// Commands lists the registered commands sorted by name
func (r *Registry) Commands() []types.CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]types.CommandInfo, 0, len(r.commands))
	for _, cmd := range r.commands {
		info := cmd.info
		info.Aliases = append([]string(nil), cmd.info.Aliases...)
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}
