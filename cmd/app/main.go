// @title FitQuest API
// @version 1.0
// @description Fitness tracking backend with RPG character progression.
// @BasePath /
package main

import (
	"log"
	"log/slog"

	"github.com/fitquest/FitQuest_Go/internal/bootstrap"
	"github.com/fitquest/FitQuest_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info("Configuration loaded",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"seed_data", cfg.SeedData)

	if err := bootstrap.Run(cfg); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}
