package gateway

import (
	"context"
	"net/http"

	"github.com/dkravchenko/hiredesk/internal/client/models"
)

// AuthAPI covers the authentication operations.
type AuthAPI interface {
	AdminLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	CandidateLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Logout(ctx context.Context) error
}

func (c *Client) AdminLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/admin/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CandidateLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/candidate/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
