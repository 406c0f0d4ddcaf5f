package main

import (
	"embed"
	"log"
	"os"

	"exportdesk/internal/app"
	"exportdesk/internal/config"
	"exportdesk/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "ENVIRONMENT"))
	if err != nil {
		log.Fatal(err)
	}

	// Create an instance of the app structure
	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:             cfg.WindowTitle,
		Width:             cfg.WindowWidth,
		Height:            cfg.WindowHeight,
		MinWidth:          640,
		MinHeight:         480,
		DisableResize:     false,
		Fullscreen:        false,
		Frameless:         false,
		StartHidden:       false,
		HideWindowOnClose: false,
		BackgroundColour:  &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             nil,
		Logger:           logging.NewWailsLoggerAdapter(application.GetLogger()),
		LogLevel:         logging.WailsLogLevel(cfg.Level()),
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
		},
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.IsDevelopment(),
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			WebviewUserDataPath:  "",
			ZoomFactor:           1.0,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar: mac.TitleBarDefault(),
			About: &mac.AboutInfo{
				Title:   cfg.WindowTitle,
				Message: "Writes import files, fetches APIs and opens folders and links.",
			},
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
