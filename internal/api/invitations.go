package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// ListInvitations returns one page of invitations.
func (c *Client) ListInvitations(ctx context.Context, page, perPage int) ([]domain.Invitation, error) {
	var out pagedEnvelope[[]domain.Invitation]
	path := fmt.Sprintf("/invitations?page=%d&per_page=%d", page, perPage)
	if err := c.send(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type createInvitationRequest struct {
	AssessmentID   int   `json:"assessment_id"`
	IntervieweeIDs []int `json:"interviewee_ids"`
}

// CreateInvitations invites a set of interviewees to an assessment.
func (c *Client) CreateInvitations(ctx context.Context, assessmentID int, intervieweeIDs []int) error {
	req := createInvitationRequest{AssessmentID: assessmentID, IntervieweeIDs: intervieweeIDs}
	return c.send(ctx, http.MethodPost, "/invitations", req, nil)
}

// AcceptInvitation accepts an invitation on behalf of the logged-in
// interviewee and returns the updated record.
func (c *Client) AcceptInvitation(ctx context.Context, id int) (*domain.Invitation, error) {
	var out domain.Invitation
	path := fmt.Sprintf("/interviewee/invitations/%d/accept", id)
	if err := c.send(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
