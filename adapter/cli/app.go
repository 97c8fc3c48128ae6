package cli

import (
	"log/slog"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

// App holds the CLI application dependencies.
type App struct {
	Client *bagelpay.Client
	Logger *slog.Logger
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
