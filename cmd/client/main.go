package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sketch-keeper/internal/adapter"
	"github.com/MKhiriev/go-sketch-keeper/internal/client"
	"github.com/MKhiriev/go-sketch-keeper/internal/config"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/store"
	"github.com/MKhiriev/go-sketch-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sketch-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	mirror := client.NewMirrorStore(serverAdapter, localStorage.DrawingRepository, log)

	ctx := context.Background()
	if err = mirror.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("starting with an empty mirror")
	}

	ui := tui.New(mirror, cfg.Client.BaseURL, log)
	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
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
