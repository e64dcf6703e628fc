package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Taosaywong/storemart/internal/domain"
)

// AccountRequest is the create/update payload for a user record. Zero-valued
// fields are omitted so a partial update only touches what was set.
type AccountRequest struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	BranchID  int64  `json:"branch,omitempty"`
	RoleID    int64  `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	Password  string `json:"password,omitempty"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Users lists every user record. Admin scope is enforced server-side.
func (c *Client) Users(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/api/users/", nil, &accounts, true); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) User(ctx context.Context, userID int64) (*domain.Account, error) {
	var account domain.Account
	path := fmt.Sprintf("/api/users/%d/", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &account, true); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateUser(ctx context.Context, req *AccountRequest) error {
	return c.do(ctx, http.MethodPost, "/api/users/", req, nil, true)
}

// UpdateUser applies a partial update to one user record.
func (c *Client) UpdateUser(ctx context.Context, userID int64, req *AccountRequest) error {
	path := fmt.Sprintf("/api/users/%d/", userID)
	return c.do(ctx, http.MethodPatch, path, req, nil, true)
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/users/%d/", userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// Roles lists the roles a user can be assigned, for the add/edit forms.
func (c *Client) Roles(ctx context.Context) ([]domain.UserRole, error) {
	var roles []domain.UserRole
	if err := c.do(ctx, http.MethodGet, "/api/roles/", nil, &roles, true); err != nil {
		return nil, err
	}
	return roles, nil
}

// Register creates a customer account through the public sign-up endpoint.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	req := registerRequest{Username: username, Password: password, Email: email}
	return c.do(ctx, http.MethodPost, "/api/register/", req, nil, false)
}
