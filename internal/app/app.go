package app

import (
	"context"

	"github.com/dvcrn/planning-oauth/internal/auth"
	"github.com/dvcrn/planning-oauth/internal/config"
	"github.com/dvcrn/planning-oauth/internal/credentials"
	"github.com/dvcrn/planning-oauth/internal/probe"
	"github.com/rs/zerolog"
)

// NewTokenExchanger wires the code exchange flow from configuration
func NewTokenExchanger(cfg *config.Config, logger *zerolog.Logger) *auth.TokenExchanger {
	creds := auth.ClientCredentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
	}
	// nil client: the exchange relies on the default transport
	client := auth.NewClient(cfg.TokenURL, nil)
	store := credentials.NewFSRefreshTokenStore(cfg.RefreshTokenPath)
	return auth.NewTokenExchanger(creds, client, store, logger)
}

// NewProber creates a prober with the default probe HTTP client
func NewProber(logger zerolog.Logger) *probe.Prober {
	return probe.New(logger, probe.NewHTTPClient())
}

// RunProbe logs a banner and runs candidates against the configured base URL
func RunProbe(ctx context.Context, cfg *config.Config, logger zerolog.Logger, title string, candidates []probe.Candidate) []probe.Result {
	logger.Info().
		Str("base_url", cfg.BaseURL).
		Str("date", cfg.ProbeDate).
		Int("candidates", len(candidates)).
		Msg("🔍 " + title)
	return NewProber(logger).Run(ctx, cfg.BaseURL, candidates)
}
