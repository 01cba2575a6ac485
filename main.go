package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/billtrail/backend/internal/config"
	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/router"
	"github.com/billtrail/backend/internal/store"
	"github.com/billtrail/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := store.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer s.Close()

	if cfg.SeedDemoData {
		seeded, err := s.Bills().Seed(context.Background(), store.DemoBills(types.DateOf(time.Now())))
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Bool("seeded", seeded).Msg("Demo data")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	co := v1.Controller{
		Store:   s,
		Source:  cfg.Source(),
		Now:     time.Now,
		Version: router.Version(),
	}
	router.AttachRoutes(cfg, co, r.Group(cfg.APIURL.Path))

	log.Info().Str("address", cfg.Address()).Msg("Backend startup complete")
	if err := r.Run(cfg.Address()); err != nil {
		log.Error().Msg(err.Error())
	}
}
