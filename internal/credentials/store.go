package credentials

// RefreshTokenStore persists the refresh token issued by a code exchange
type RefreshTokenStore interface {
	Save(refreshToken string) error
	Load() (string, error)
	Location() string
}
