package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garrettladley/lyra/internal/storage"
)

var ErrNoToken = errors.New("no auth token stored")

// TokenStore keeps the dashboard bearer token under storage.KeyAuthToken.
type TokenStore struct {
	store storage.Store
}

func NewTokenStore(store storage.Store) *TokenStore {
	return &TokenStore{store: store}
}

// Load returns ErrNoToken when nothing, or only whitespace, is stored.
func (t *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := t.store.Get(ctx, storage.KeyAuthToken)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (t *TokenStore) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrNoToken
	}
	if err := t.store.Set(ctx, storage.KeyAuthToken, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (t *TokenStore) Clear(ctx context.Context) error {
	if err := t.store.Delete(ctx, storage.KeyAuthToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (t *TokenStore) HasToken(ctx context.Context) bool {
	_, err := t.Load(ctx)
	return err == nil
}
