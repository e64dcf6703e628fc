package rest

import (
	"context"
	"net/http"

	"github.com/Taosaywong/storemart/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the token pair plus user profile returned on login.
type LoginResult struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    domain.User `json:"user"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var resp LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/user/login/", loginRequest{Username: username, Password: password}, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshToken exchanges the refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var resp refreshResponse
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", refreshRequest{Refresh: refresh}, &resp, false); err != nil {
		return "", err
	}
	return resp.Access, nil
}
