// Package blog serves a personal blog: branded pages built from package site,
// with the ReactToid comment widget embedded on every post.
//
// The host is an Echo application rendering templ components from package
// views. It keeps no state of its own; comments live entirely in the widget.
package blog

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// App wires the configuration, middleware and routes of the blog host.
type App struct {
	Config Config
	Echo   *echo.Echo
	Logger zerolog.Logger

	customRoutes []func(*App)
	setupOnce    sync.Once
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns the fully configured HTTP handler. Middleware and routes
// are registered on first call.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
	return a.Echo
}

// Start serves on Config.Addr until Shutdown is called.
func (a *App) Start() error {
	a.Handler()
	a.Logger.Info().Str("addr", a.Config.Addr).Msg("listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
