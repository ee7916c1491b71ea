package credentials

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyRefreshToken is returned when asked to persist an empty token
var ErrEmptyRefreshToken = errors.New("refresh token is empty")

// FSRefreshTokenStore keeps the raw refresh token in a single file
type FSRefreshTokenStore struct {
	Path string
}

func NewFSRefreshTokenStore(path string) *FSRefreshTokenStore {
	if path == "" {
		path = DefaultRefreshTokenPath()
	}
	return &FSRefreshTokenStore{Path: path}
}

// Save writes the token verbatim, replacing any previous content
func (f *FSRefreshTokenStore) Save(refreshToken string) error {
	if refreshToken == "" {
		return ErrEmptyRefreshToken
	}
	if err := EnsureParentDir(f.Path); err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, []byte(refreshToken), 0600); err != nil {
		return fmt.Errorf("failed to write refresh token file: %w", err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(f.Path, 0600); err != nil {
		return fmt.Errorf("failed to restrict refresh token file: %w", err)
	}
	return nil
}

func (f *FSRefreshTokenStore) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token file: %w", err)
	}
	return string(b), nil
}

func (f *FSRefreshTokenStore) Location() string {
	return f.Path
}
