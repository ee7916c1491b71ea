package auth

import "strings"

// GrantTypeAuthorizationCode is the only grant this package performs
const GrantTypeAuthorizationCode = "authorization_code"

// ClientCredentials identifies the OAuth client registered with the provider
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// ExchangeRequest is one authorization-code grant. Build it with
// NewExchangeRequest; it is not modified afterwards.
type ExchangeRequest struct {
	clientID     string
	clientSecret string
	code         string
	redirectURI  string
}

// NewExchangeRequest returns ErrMissingCode when code is blank
func NewExchangeRequest(code string, creds ClientCredentials) (ExchangeRequest, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ExchangeRequest{}, ErrMissingCode
	}
	return ExchangeRequest{
		clientID:     creds.ClientID,
		clientSecret: creds.ClientSecret,
		code:         code,
		redirectURI:  creds.RedirectURI,
	}, nil
}

func (r ExchangeRequest) ClientID() string { return r.clientID }
func (r ExchangeRequest) ClientSecret() string { return r.clientSecret }
func (r ExchangeRequest) Code() string { return r.code }
func (r ExchangeRequest) RedirectURI() string { return r.redirectURI }
func (r ExchangeRequest) GrantType() string { return GrantTypeAuthorizationCode }

// TokenResponse represents the provider's token response (RFC 6749 section 5.1).
// RefreshToken and Scope are optional; providers omit the refresh token when
// one was already issued for this client and user.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
}

// HasRefreshToken reports whether the provider issued a refresh token
func (t *TokenResponse) HasRefreshToken() bool {
	return t != nil && t.RefreshToken != ""
}

// AccessTokenPrefix returns the first n characters of the access token,
// enough to recognise it without printing the whole credential
func (t *TokenResponse) AccessTokenPrefix(n int) string {
	if t == nil {
		return ""
	}
	if len(t.AccessToken) <= n {
		return t.AccessToken
	}
	return t.AccessToken[:n] + "..."
}
