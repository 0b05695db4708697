package main

import (
	"fmt"
	"net/http"
	"os"

	handler "github.com/avolkhin/herdsync/internal/handler/http"
	"github.com/avolkhin/herdsync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("herdsync-devserver")

	addr := os.Getenv("HERDSYNC_DEV_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	h := handler.NewHandler(log)

	log.Info().Str("addr", addr).Msg("devserver listening")
	if err := http.ListenAndServe(addr, h.Init()); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
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
