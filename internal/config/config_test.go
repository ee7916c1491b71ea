package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvClientID, EnvClientSecret, EnvRedirectURI, EnvTokenURL,
		EnvRefreshTokenPath, EnvBaseURL, EnvProbeDate,
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "https://oauth2.googleapis.com/token", cfg.TokenURL)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Now().Format(ProbeDateLayout), cfg.ProbeDate)
	assert.Empty(t, cfg.RefreshTokenPath)
}

func TestFromEnvReadsVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvClientID, "client-123.apps.googleusercontent.com")
	t.Setenv(EnvClientSecret, " secret ")
	t.Setenv(EnvRedirectURI, "https://planning.example.com/api/oauth/callback")
	t.Setenv(EnvTokenURL, "http://127.0.0.1:9999/token")
	t.Setenv(EnvBaseURL, "https://planning.example.com/")
	t.Setenv(EnvProbeDate, "2025-12-08")

	cfg := FromEnv()

	assert.Equal(t, "client-123.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "https://planning.example.com/api/oauth/callback", cfg.RedirectURI)
	assert.Equal(t, "http://127.0.0.1:9999/token", cfg.TokenURL)
	assert.Equal(t, "https://planning.example.com", cfg.BaseURL)
	assert.Equal(t, "2025-12-08", cfg.ProbeDate)
}

func TestValidateExchange(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		cfg := &Config{ClientID: "id", ClientSecret: "secret", RedirectURI: "https://x/cb"}
		assert.NoError(t, cfg.ValidateExchange())
	})

	t.Run("reports every missing variable", func(t *testing.T) {
		cfg := &Config{ClientID: "id"}
		err := cfg.ValidateExchange()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvClientSecret)
		assert.Contains(t, err.Error(), EnvRedirectURI)
		assert.NotContains(t, err.Error(), EnvClientID)
	})
}

func TestValidateProbe(t *testing.T) {
	assert.NoError(t, (&Config{BaseURL: "https://planning.example.com", ProbeDate: "2025-12-08"}).ValidateProbe())
	assert.Error(t, (&Config{BaseURL: "planning.example.com", ProbeDate: "2025-12-08"}).ValidateProbe())
	assert.Error(t, (&Config{BaseURL: "http://localhost:3000", ProbeDate: "08/12/2025"}).ValidateProbe())
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(t.TempDir()))
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearEnv(t)
		// godotenv only fills unset variables, so the cleared ones must be unset
		os.Unsetenv(EnvClientID)
		os.Unsetenv(EnvBaseURL)
		t.Setenv(EnvRedirectURI, "https://from-env/cb")

		dir := t.TempDir()
		content := "GOOGLE_CLIENT_ID=from-file\nGOOGLE_REDIRECT_URI=https://from-file/cb\nPLANNING_BASE_URL=https://file.example.com\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0600))

		require.NoError(t, LoadDotEnv(dir))
		t.Cleanup(func() {
			os.Unsetenv(EnvClientID)
			os.Unsetenv(EnvBaseURL)
		})

		cfg := FromEnv()
		assert.Equal(t, "from-file", cfg.ClientID)
		assert.Equal(t, "https://from-env/cb", cfg.RedirectURI)
		assert.Equal(t, "https://file.example.com", cfg.BaseURL)
	})
}
