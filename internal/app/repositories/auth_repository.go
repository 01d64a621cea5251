package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// AuthRepository talks to the backend authentication endpoint
type AuthRepository struct {
	client *Client
	path   string
}

// NewAuthRepository creates an auth repository posting to path
func NewAuthRepository(client *Client, path string) *AuthRepository {
	return &AuthRepository{
		client: client,
		path:   path,
	}
}

// Login exchanges credentials for a bearer token and the user's identity
func (r *AuthRepository) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Username: username, Password: password}

	var resp dto.LoginResponse
	if err := r.client.do(ctx, http.MethodPost, r.path, req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrUnexpectedResponse, "login: backend returned no token")
	}
	if resp.User.Username == "" {
		resp.User.Username = username
	}
	return &resp, nil
}
