package app

import (
	"context"

	"exportdesk/internal/bridge"
	"exportdesk/internal/types"
)

// registerCommands builds the dispatch table. Aliases are the names older
// frontends call.
func (a *App) registerCommands() {
	commands := []struct {
		name        string
		description string
		handler     bridge.Handler
		aliases     []string
	}{
		{
			name:        "write_structured",
			description: "Write a JSON value to a file as pretty-printed JSON",
			handler: bridge.Typed(func(ctx context.Context, args types.StructuredFile) (any, error) {
				return nil, a.writer.WriteStructured(args.Data, args.Path)
			}),
			aliases: []string{"generate_import_file"},
		},
		{
			name:        "write_raw",
			description: "Write text to a file unchanged",
			handler: bridge.Typed(func(ctx context.Context, args types.RawFile) (any, error) {
				return nil, a.writer.WriteRaw(*args.JSON, args.Path)
			}),
			aliases: []string{"generate_import_file_raw"},
		},
		{
			name:        "fetch",
			description: "GET a URL and return the response body",
			handler: bridge.Typed(func(ctx context.Context, args types.FetchRequest) (any, error) {
				result, err := a.fetcher.Fetch(ctx, args.URL)
				if err != nil {
					return nil, err
				}
				return result.Body, nil
			}),
			aliases: []string{"fetch_api"},
		},
		{
			name:        "fetch_with_cookies",
			description: "GET a URL with a Cookie header and return the response body",
			handler: bridge.Typed(func(ctx context.Context, args types.CookieFetchRequest) (any, error) {
				result, err := a.fetcher.FetchWithCookies(ctx, args.URL, *args.Cookie)
				if err != nil {
					return nil, err
				}
				return result.Body, nil
			}),
			aliases: []string{"fetch_api_with_cookies"},
		},
		{
			name:        "open_path",
			description: "Open a file or directory in the system file browser",
			handler: bridge.Typed(func(ctx context.Context, args types.OpenPathRequest) (any, error) {
				return nil, a.launcher.OpenPath(args.Path)
			}),
			aliases: []string{"open_folder"},
		},
		{
			name:        "open_url",
			description: "Open a URL in the default browser",
			handler: bridge.Typed(func(ctx context.Context, args types.OpenURLRequest) (any, error) {
				return nil, a.launcher.OpenURL(args.URL)
			}),
		},
		{
			name:        "greet",
			description: "Return a greeting for name",
			handler: bridge.Typed(func(ctx context.Context, args types.GreetRequest) (any, error) {
				return a.Greet(*args.Name), nil
			}),
		},
	}

	for _, cmd := range commands {
		a.registry.MustRegister(cmd.name, cmd.description, cmd.handler, cmd.aliases...)
	}
}
