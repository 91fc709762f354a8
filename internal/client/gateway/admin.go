package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dkravchenko/hiredesk/internal/client/models"
)

// AdminAPI covers the admin-only candidate management operations.
type AdminAPI interface {
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
}

func (c *Client) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	var res []models.Candidate
	if err := c.do(ctx, http.MethodGet, "/admin/candidates", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	var res models.Candidate
	if err := c.do(ctx, http.MethodPost, "/admin/candidates", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/candidates/"+url.PathEscape(id), nil, nil)
}
