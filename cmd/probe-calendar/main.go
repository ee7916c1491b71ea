package main

import (
	"context"
	"os"

	"github.com/dvcrn/planning-oauth/internal/app"
	"github.com/dvcrn/planning-oauth/internal/config"
	"github.com/dvcrn/planning-oauth/internal/logger"
	"github.com/dvcrn/planning-oauth/internal/probe"
)

func main() {
	log := logger.New()

	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			log.Warn().Err(err).Msg("⚠️  Ignoring .env file")
		}
	}

	cfg := config.FromEnv()
	if err := cfg.ValidateProbe(); err != nil {
		log.Fatal().Err(err).Msg("Invalid probe configuration")
	}

	app.RunProbe(context.Background(), cfg, log, "Direct calendar path diagnostics", probe.CalendarCandidates(cfg.ProbeDate))
}
