package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/dkravchenko/hiredesk/internal/client/models"
)

// CandidateAPI covers the candidate's own-profile operations.
type CandidateAPI interface {
	Profile(ctx context.Context) (*models.Candidate, error)
	UploadProfilePicture(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error)
	UploadResume(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error)
}

func (c *Client) Profile(ctx context.Context) (*models.Candidate, error) {
	var res models.Candidate
	if err := c.do(ctx, http.MethodGet, "/candidate/profile", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UploadProfilePicture(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	var res models.UploadResult
	if err := c.upload(ctx, "/candidate/profile/picture", "profilePicture", filename, r, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UploadResume(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	var res models.UploadResult
	if err := c.upload(ctx, "/candidate/profile/resume", "resume", filename, r, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
