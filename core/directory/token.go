package directory

import (
	"context"
	"errors"
)

// ErrNoToken is returned when no access token is available.
var ErrNoToken = errors.New("no access token available")

// TokenSource supplies bearer tokens for API calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token taken from configuration.
type StaticToken string

// Token returns the token, or ErrNoToken when it is empty.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}
