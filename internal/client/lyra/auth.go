package lyra

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

var ErrEmptyToken = errors.New("login response carried no access token")

type authService struct {
	client *Client
}

// Login exchanges credentials through the OAuth2 password form at /auth/login.
func (s *authService) Login(ctx context.Context, username string, password string) (*oauth2.Token, error) {
	const route = "/auth/login"

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	var resp loginResponse
	if err := s.client.do(ctx, request{method: http.MethodPost, path: route, form: form}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return &oauth2.Token{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}
