package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dvcrn/planning-oauth/internal/app"
	"github.com/dvcrn/planning-oauth/internal/config"
	"github.com/dvcrn/planning-oauth/internal/logger"
)

const usage = "usage: exchange-code [authorization-code]"

func main() {
	log := logger.New()

	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			log.Warn().Err(err).Msg("⚠️  Ignoring .env file")
		}
	}

	cfg := config.FromEnv()
	if err := cfg.ValidateExchange(); err != nil {
		log.Fatal().Err(err).Msg("Client credentials are not configured")
	}

	log.Info().Msg("🔄 Exchanging OAuth2 authorization code for a refresh token")

	code, err := readCode(os.Args[1:], os.Stdin, os.Stderr)
	if err != nil {
		log.Error().Err(err).Msg(usage)
		return
	}

	exchanger := app.NewTokenExchanger(cfg, &log)
	// Failures are reported by Run; the exit status stays 0
	exchanger.Run(context.Background(), code)
}

// readCode takes the code from the single positional argument, or prompts
// for it on in when there is none
func readCode(args []string, in io.Reader, prompt io.Writer) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", fmt.Errorf("expected at most one argument, got %d", len(args))
	}

	fmt.Fprint(prompt, "📋 Enter your OAuth2 authorization code: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read authorization code: %w", err)
	}
	return strings.TrimSpace(line), nil
}
