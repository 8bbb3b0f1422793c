package main

import (
	"fmt"
	"os"

	"github.com/dircast/dircast/internal/config"
	"github.com/dircast/dircast/internal/logger"
	"github.com/dircast/dircast/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// stdout belongs to the terminal UI, so logs go to a file
	log := logger.NewFileLogger("dircast-settings")

	// the editor starts from the same resolved config the server would use
	cfg := config.GetConfig(os.Args[1:], log)
	defer func() {
		if err := cfg.Close(); err != nil {
			log.Error().Err(err).Msg("error releasing config")
		}
	}()

	if err := tui.Run(cfg, config.DefaultFilePath, log); err != nil {
		log.Fatal().Err(err).Msg("error running settings editor")
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
