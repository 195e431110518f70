// Package main is the entry point for the container-optimizer service.
package main

import (
	"github.com/guttosm/container-optimizer/config"
	"github.com/guttosm/container-optimizer/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
