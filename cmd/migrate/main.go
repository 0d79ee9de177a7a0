// Runs the embedded goose migrations against DATABASE_URL.
// Uso: go run ./cmd/migrate -cmd up|down|status|version
package main

import (
	"context"
	"flag"

	"gestionpos/internal/config"
	"gestionpos/internal/infra"

	"github.com/rs/zerolog/log"
)

func main() {
	command := flag.String("cmd", "up", "goose command: up, down, status, version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := infra.Migrate(context.Background(), db, *command, flag.Args()...); err != nil {
		log.Fatal().Err(err).Str("cmd", *command).Msg("migration failed")
	}
	log.Info().Str("cmd", *command).Msg("migration done")
}
