package blog

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/reactporiyaalar/blog/views"
)

// Config holds the runtime settings for the blog host.
// Site branding lives in package site and is fixed at build time.
type Config struct {
	Addr      string `env:"ADDR" envDefault:":3000"`
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`

	Reactoid ReactoidConfig `envPrefix:"PUBLIC_REACTOID_APP_"`
}

// ReactoidConfig holds the comment widget credentials. They are public by
// nature and forwarded to the browser without validation.
type ReactoidConfig struct {
	ClientID      string `env:"CLIENT_ID"`
	ClientSecret  string `env:"CLIENT_SECRET"`
	ProjectID     string `env:"PROJECT_ID"`
	StylesheetURL string `env:"STYLESHEET" envDefault:"https://esm.sh/@reacttoid/react/dist/reactoid.css"`
}

func (r ReactoidConfig) view() views.Reactoid {
	return views.Reactoid{
		ClientID:      r.ClientID,
		ClientSecret:  r.ClientSecret,
		ProjectID:     r.ProjectID,
		StylesheetURL: r.StylesheetURL,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("blog: parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
