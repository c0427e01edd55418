package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reactporiyaalar/blog"
	"github.com/reactporiyaalar/blog/site"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	logger := log.With().Str("component", "blog").Logger()

	// site resolves SITE from .env on its own during package init.
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg, err := blog.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	app := blog.New(cfg, blog.WithLogger(logger))
	logger.Info().Str("version", version).Str("site", site.URL).Msg("starting")

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := app.Shutdown(ctx)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("could not stop server gracefully")
			os.Exit(1)
		}
	}
}
