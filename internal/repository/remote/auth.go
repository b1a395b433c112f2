package remote

import (
	"context"
	"fmt"
	"net/http"

	"alcyxob/training-client/internal/repository"
)

// authGateway implements repository.AuthGateway.
type authGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) repository.AuthGateway {
	return &authGateway{client: client}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn calls the public sign-in endpoint. The token is returned, not stored.
func (g *authGateway) SignIn(ctx context.Context, email, password string) (*repository.SignInResult, error) {
	env, err := g.client.callPublic(ctx, http.MethodPost, g.client.publicPath("sign-in-app"), signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var result struct {
		User userDTO `json:"user"`
	}
	if err := decodeResult(env, &result); err != nil {
		return nil, err
	}
	if env.Token == "" {
		return nil, fmt.Errorf("%w: sign-in answered without a token", repository.ErrNetwork)
	}
	return &repository.SignInResult{Token: env.Token, User: result.User.toDomain()}, nil
}

func (g *authGateway) ChangePassword(ctx context.Context, password string) error {
	_, err := g.client.call(ctx, http.MethodPost, g.client.path("reset-password"), map[string]string{"password": password})
	return err
}
