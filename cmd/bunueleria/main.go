package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"bunueleria-system/internal/app"
	"bunueleria-system/internal/config"
	"bunueleria-system/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// .env is optional; config.yaml plus the environment is enough
	_ = godotenv.Load()

	log := logger.New("bunueleria")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config_failed", err, nil)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("fatal", err, nil)
		os.Exit(1)
	}
	log.Info("service_stopped", nil)
}
