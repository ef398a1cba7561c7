package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/config"
	"github.com/joho/godotenv"
)

var (
	confPath = flag.String("config", "./config.toml", "Config path")
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", slog.Any("err", err))
	}
	flag.Parse()

	if err := config.Load(*confPath); err != nil && !os.IsNotExist(err) {
		slog.Error("Could not load config", slog.Any("err", err))
		os.Exit(1)
	}
	// save the config for formatting
	if err := config.Save(*confPath); err != nil {
		slog.Error("Could not save config", slog.Any("err", err))
		os.Exit(1)
	}

	if err := os.MkdirAll(config.Common.LogDir, 0755); err != nil {
		slog.Error("Could not create log dir", slog.Any("err", err))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(blogicum.GetFileSlogHandler(config.Common.Debug, config.Common.LogDir, os.Stdout)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := serve(ctx); err != nil {
		slog.Error("Server error", slog.Any("err", err))
		os.Exit(1)
	}
}
