package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", os.Getenv("DHM_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	log := newLogger(cfg.Log)

	srv, err := NewGRPCServer(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Stringer("address", srv.Addr()).Bool("tls", cfg.TLS.Enabled).Msg("server listening")
	if err := srv.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("server terminated")
		os.Exit(1)
	}
	log.Info().Msg("server shut down")
}

func newLogger(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Format == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
