package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lumforge/shadowcast/internal/app"
	"github.com/lumforge/shadowcast/internal/config"
	"github.com/lumforge/shadowcast/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Fatal("main loop failed", zap.Error(err))
	}
}
