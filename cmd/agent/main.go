package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avolkhin/herdsync/internal/agent"
	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("herdsync-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// Standalone runs have no host reachability feed; assume online so the
	// drain loop works against the configured remote.
	connectivity := make(chan bool, 1)
	connectivity <- true

	app, err := agent.NewApp(cfg, connectivity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent error")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("agent shutdown error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
