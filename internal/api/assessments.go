package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// AssessmentInput carries the writable assessment fields.
type AssessmentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeLimit   int    `json:"time_limit"`
	IsPublished bool   `json:"is_published"`
}

// ListAssessments returns the recruiter's assessments.
func (c *Client) ListAssessments(ctx context.Context) ([]domain.Assessment, error) {
	var out dataEnvelope[[]domain.Assessment]
	if err := c.send(ctx, http.MethodGet, "/assessments", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetAssessment returns one assessment by id.
func (c *Client) GetAssessment(ctx context.Context, id int) (*domain.Assessment, error) {
	var out domain.Assessment
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/assessments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAssessment creates an assessment and returns the server's record.
func (c *Client) CreateAssessment(ctx context.Context, in AssessmentInput) (*domain.Assessment, error) {
	var out domain.Assessment
	if err := c.send(ctx, http.MethodPost, "/assessments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAssessment replaces an assessment's writable fields.
func (c *Client) UpdateAssessment(ctx context.Context, id int, in AssessmentInput) (*domain.Assessment, error) {
	var out domain.Assessment
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/assessments/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssessment removes an assessment by id.
func (c *Client) DeleteAssessment(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/assessments/%d", id), nil, nil)
}

type intervieweeAssessments struct {
	Assessments []domain.Assessment `json:"assessments"`
}

// ListIntervieweeAssessments returns the assessments visible to the
// logged-in interviewee. Note the different envelope field.
func (c *Client) ListIntervieweeAssessments(ctx context.Context) ([]domain.Assessment, error) {
	var out intervieweeAssessments
	if err := c.send(ctx, http.MethodGet, "/interviewee/assessments", nil, &out); err != nil {
		return nil, err
	}
	return out.Assessments, nil
}

type submitRequest struct {
	Answers []domain.Answer `json:"answers"`
}

// SubmitAssessment submits an interviewee's answers for grading.
func (c *Client) SubmitAssessment(ctx context.Context, assessmentID int, answers []domain.Answer) (*domain.SubmissionResult, error) {
	var out domain.SubmissionResult
	path := fmt.Sprintf("/interviewee/assessments/%d/submit", assessmentID)
	if err := c.send(ctx, http.MethodPost, path, submitRequest{Answers: answers}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
