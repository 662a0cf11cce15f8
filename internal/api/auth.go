package api

import (
	"context"
	"net/http"

	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

// Login authenticates an admin user and returns the access token.
func (c *Client) Login(ctx context.Context, username string, password string) (string, error) {
	return c.postCredentials(ctx, "/api/login", model.LoginRequest{Username: username, Password: password})
}

// CustomerLogin authenticates a customer and returns the access token.
func (c *Client) CustomerLogin(ctx context.Context, username string, password string) (string, error) {
	return c.postCredentials(ctx, "/api/customer-login", model.LoginRequest{Username: username, Password: password})
}

// Register creates a customer account and returns the access token the
// upstream issues on successful registration.
func (c *Client) Register(ctx context.Context, username string, password string, email string) (string, error) {
	return c.postCredentials(ctx, "/api/register", model.RegisterRequest{Username: username, Password: password, Email: email})
}

func (c *Client) postCredentials(ctx context.Context, path string, body any) (string, error) {
	var out model.LoginResponse
	if err := c.do(ctx, http.MethodPost, path, nil, "", body, &out); err != nil {
		return "", err
	}

	if out.AccessToken == "" {
		return "", apierror.New("UPSTREAM_ERROR", "login response missing access token", "", http.StatusBadGateway)
	}

	return out.AccessToken, nil
}
