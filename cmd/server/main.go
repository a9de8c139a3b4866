// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package main

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/config"
	myHTTP "github.com/spacenote/spacenote/internal/handler/http"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/server"
	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("spacenote-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)
	if err := services.WarmCaches(ctx); err != nil {
		log.Fatal().Err(err).Msg("error warming caches")
	}

	handler := myHTTP.NewHandler(services, log)
	pool := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handler, pool, cfg.Server, log)
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
