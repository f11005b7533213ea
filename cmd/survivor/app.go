package main

import (
	"log/slog"
	"os"

	"github.com/zombierpg/survivor-api/internal/config"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	redisclient "github.com/zombierpg/survivor-api/internal/redis"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
)

// app bundles the wired dependencies the commands share.
type app struct {
	states gamestate.Repository
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.LogLevel)

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	states, err := gamestate.NewRedis(&gamestate.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	return &app{states: states}, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}
