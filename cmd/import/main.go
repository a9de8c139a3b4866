// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package main

import (
	"context"
	"flag"
	"time"

	"github.com/spacenote/spacenote/internal/importer"
	"github.com/spacenote/spacenote/internal/logger"
)

func main() {
	var (
		address  string
		token    string
		filePath string
		timeout  time.Duration
	)

	flag.StringVar(&address, "a", "localhost:8080", "server address")
	flag.StringVar(&token, "t", "", "admin API token")
	flag.StringVar(&filePath, "f", "", "path to the snapshot file (.json, .yaml, or .yml)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("spacenote-import")

	if token == "" || filePath == "" {
		log.Fatal().Msg("both -t (admin token) and -f (snapshot file) are required")
	}

	snapshot, err := importer.ParseSnapshot(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing snapshot file")
	}

	imp, err := importer.NewImporter(address, token, timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating importer")
	}

	if err := imp.Run(context.Background(), snapshot); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Msg("import finished")
}
