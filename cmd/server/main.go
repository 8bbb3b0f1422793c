package main

import (
	"fmt"
	"os"

	"github.com/dircast/dircast/internal/config"
	handler "github.com/dircast/dircast/internal/handler/http"
	"github.com/dircast/dircast/internal/logger"
	"github.com/dircast/dircast/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dircast-server")

	// exits with a diagnostic if the final root directory does not exist
	cfg := config.GetConfig(os.Args[1:], log)
	defer func() {
		if err := cfg.Close(); err != nil {
			log.Error().Err(err).Msg("error releasing config")
		}
	}()

	log.Debug().Any("config", cfg).Msg("resolved configs")

	handlers := handler.NewHandler(cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg, server.Options{}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
