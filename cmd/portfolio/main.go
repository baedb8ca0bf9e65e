package main

import (
	"github.com/portfolio-dev/portfolio/db"
	"github.com/portfolio-dev/portfolio/internal/auth"
	"github.com/portfolio-dev/portfolio/internal/config"
	"github.com/portfolio-dev/portfolio/internal/router"
	"github.com/portfolio-dev/portfolio/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := auth.Init(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize JWT")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	r := router.NewRouter(cfg, store.NewStores(gdb))

	log.Info().Str("port", cfg.Port).Msg("Portfolio API listening")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
