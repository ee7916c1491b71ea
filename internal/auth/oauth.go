package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultTokenURL is Google's OAuth2 token endpoint
var DefaultTokenURL = google.Endpoint.TokenURL

// Client performs authorization-code exchanges against one token endpoint
type Client struct {
	tokenURL   string
	httpClient *http.Client
}

// NewClient creates a token endpoint client. A nil httpClient means the
// default transport, with no timeout beyond what it applies itself.
func NewClient(tokenURL string, httpClient *http.Client) *Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &Client{tokenURL: tokenURL, httpClient: httpClient}
}

// TokenURL returns the endpoint the client posts to
func (c *Client) TokenURL() string {
	return c.tokenURL
}

// Exchange posts a single form-encoded authorization_code grant and parses
// the response. It never retries: codes are single-use.
func (c *Client) Exchange(ctx context.Context, req ExchangeRequest) (*TokenResponse, error) {
	if req.Code() == "" {
		return nil, ErrMissingCode
	}

	conf := &oauth2.Config{
		ClientID:     req.ClientID(),
		ClientSecret: req.ClientSecret(),
		RedirectURL:  req.RedirectURI(),
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	tok, err := conf.Exchange(ctx, req.Code())
	if err != nil {
		return nil, classifyExchangeError(err)
	}

	return tokenResponseFrom(tok), nil
}

func classifyExchangeError(err error) error {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		pErr := &ProtocolError{
			Code:        rErr.ErrorCode,
			Description: rErr.ErrorDescription,
			Body:        string(rErr.Body),
		}
		if rErr.Response != nil {
			pErr.StatusCode = rErr.Response.StatusCode
		}
		return pErr
	}

	var uErr *url.Error
	if errors.As(err, &uErr) {
		return &TransportError{Op: "token exchange", Err: err}
	}

	// Anything else came back as 2xx but could not be used
	return &ProtocolError{Description: err.Error()}
}

func tokenResponseFrom(tok *oauth2.Token) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresIn:    extraInt(tok.Extra("expires_in")),
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		resp.Scope = scope
	}
	return resp
}

// extraInt reads a numeric raw field whatever the response encoding was
func extraInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}
