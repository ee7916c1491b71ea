package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2/google"
)

const (
	EnvClientID         = "GOOGLE_CLIENT_ID"
	EnvClientSecret     = "GOOGLE_CLIENT_SECRET"
	EnvRedirectURI      = "GOOGLE_REDIRECT_URI"
	EnvTokenURL         = "GOOGLE_TOKEN_URL"
	EnvRefreshToken     = "GOOGLE_REFRESH_TOKEN"
	EnvRefreshTokenPath = "REFRESH_TOKEN_PATH"
	EnvBaseURL          = "PLANNING_BASE_URL"
	EnvProbeDate        = "PROBE_DATE"

	// DefaultBaseURL is where the booking app listens in local development
	DefaultBaseURL = "http://localhost:3000"
	// ProbeDateLayout is the date format the booking procedures expect
	ProbeDateLayout = "2006-01-02"
)

// Config holds everything the tools read from the environment
type Config struct {
	ClientID         string
	ClientSecret     string
	RedirectURI      string
	TokenURL         string
	RefreshTokenPath string
	BaseURL          string
	ProbeDate        string
}

// LoadDotEnv loads a .env file from dir into the process environment.
// A missing file is not an error. Variables already set win over the file.
func LoadDotEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// FromEnv builds a Config from environment variables, applying defaults
func FromEnv() *Config {
	cfg := &Config{
		ClientID:         lookup(EnvClientID),
		ClientSecret:     lookup(EnvClientSecret),
		RedirectURI:      lookup(EnvRedirectURI),
		TokenURL:         lookup(EnvTokenURL),
		RefreshTokenPath: lookup(EnvRefreshTokenPath),
		BaseURL:          lookup(EnvBaseURL),
		ProbeDate:        lookup(EnvProbeDate),
	}

	if cfg.TokenURL == "" {
		cfg.TokenURL = google.Endpoint.TokenURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.ProbeDate == "" {
		cfg.ProbeDate = time.Now().Format(ProbeDateLayout)
	}

	return cfg
}

// ValidateExchange checks the settings the code exchange cannot run without
func (c *Config) ValidateExchange() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if c.RedirectURI == "" {
		missing = append(missing, EnvRedirectURI)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateProbe checks the probe settings
func (c *Config) ValidateProbe() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%s must be an http(s) URL, got %q", EnvBaseURL, c.BaseURL)
	}
	if _, err := time.Parse(ProbeDateLayout, c.ProbeDate); err != nil {
		return fmt.Errorf("%s must use the %s layout: %w", EnvProbeDate, ProbeDateLayout, err)
	}
	return nil
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
