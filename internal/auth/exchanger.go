package auth

import (
	"context"
	"errors"

	"github.com/dvcrn/planning-oauth/internal/credentials"
	"github.com/rs/zerolog"
)

// accessTokenPreviewLen is how much of the access token gets logged
const accessTokenPreviewLen = 20

// CodeExchanger is the network half of the flow
type CodeExchanger interface {
	Exchange(ctx context.Context, req ExchangeRequest) (*TokenResponse, error)
}

// Result is the outcome of one Run. Err is nil on success.
type Result struct {
	Token             *TokenResponse
	Err               error
	RefreshTokenSaved bool
	RefreshTokenPath  string
}

func (r Result) OK() bool {
	return r.Err == nil
}

// TokenExchanger drives one authorization-code exchange end to end: it
// validates the code, exchanges it, persists any refresh token and reports
type TokenExchanger struct {
	creds     ClientCredentials
	exchanger CodeExchanger
	store     credentials.RefreshTokenStore
	logger    *zerolog.Logger
}

// NewTokenExchanger wires the flow; logger may be nil
func NewTokenExchanger(creds ClientCredentials, exchanger CodeExchanger, store credentials.RefreshTokenStore, logger *zerolog.Logger) *TokenExchanger {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &TokenExchanger{
		creds:     creds,
		exchanger: exchanger,
		store:     store,
		logger:    logger,
	}
}

// Run performs the exchange. Failures are logged and returned in the
// Result, never panicked or retried; a failed exchange needs a new code.
func (t *TokenExchanger) Run(ctx context.Context, code string) Result {
	req, err := NewExchangeRequest(code, t.creds)
	if err != nil {
		t.logger.Error().Err(err).Msg("❌ No authorization code supplied")
		return Result{Err: err}
	}

	t.logger.Info().
		Str("code_prefix", truncate(req.Code(), accessTokenPreviewLen)).
		Str("redirect_uri", req.RedirectURI()).
		Msg("⏳ Exchanging authorization code")

	token, err := t.exchanger.Exchange(ctx, req)
	if err != nil {
		t.logFailure(err)
		return Result{Err: err}
	}

	result := Result{Token: token}

	if token.HasRefreshToken() {
		if err := t.store.Save(token.RefreshToken); err != nil {
			t.logger.Error().Err(err).Str("path", t.store.Location()).Msg("❌ Failed to save refresh token")
			result.Err = err
			return result
		}
		result.RefreshTokenSaved = true
		result.RefreshTokenPath = t.store.Location()
		t.logger.Info().
			Str("refresh_token", token.RefreshToken).
			Str("path", result.RefreshTokenPath).
			Msg("🔑 Refresh token saved")
	} else {
		// Google only issues a refresh token on the first consent for a client
		t.logger.Warn().Msg("⚠️  Provider returned no refresh token; one was probably issued earlier for this client")
	}

	t.logger.Info().
		Str("access_token", token.AccessTokenPrefix(accessTokenPreviewLen)).
		Int("expires_in", token.ExpiresIn).
		Str("token_type", token.TokenType).
		Str("scope", token.Scope).
		Msg("✅ Token exchange succeeded")

	if result.RefreshTokenSaved {
		t.logger.Info().Msg("🚀 Next step: set GOOGLE_REFRESH_TOKEN to the saved value in the deployment environment and redeploy")
	}

	return result
}

func (t *TokenExchanger) logFailure(err error) {
	var tErr *TransportError
	var pErr *ProtocolError
	switch {
	case errors.As(err, &tErr):
		t.logger.Error().Err(tErr.Err).Msg("❌ Could not reach the token endpoint")
	case errors.As(err, &pErr):
		t.logger.Error().
			Int("status", pErr.StatusCode).
			Str("error", pErr.Code).
			Str("description", pErr.Message()).
			Msg("❌ Token endpoint rejected the exchange")
	default:
		t.logger.Error().Err(err).Msg("❌ Token exchange failed")
	}
	t.logger.Info().Msg("Authorization codes are single-use; obtain a new one and run again")
}
