package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// ListFeedback returns the feedback attached to a submission. Feedback is
// re-fetched per view and never held in a slice.
func (c *Client) ListFeedback(ctx context.Context, submissionID int) ([]domain.Feedback, error) {
	var out dataEnvelope[[]domain.Feedback]
	path := fmt.Sprintf("/feedback/%d", submissionID)
	if err := c.send(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type feedbackRequest struct {
	Text  string   `json:"text"`
	Score *float64 `json:"score,omitempty"`
}

// GiveFeedback attaches recruiter feedback to a submission.
func (c *Client) GiveFeedback(ctx context.Context, submissionID int, text string, score *float64) error {
	path := fmt.Sprintf("/feedback/%d", submissionID)
	return c.send(ctx, http.MethodPost, path, feedbackRequest{Text: text, Score: score}, nil)
}
