package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// QuestionInput carries the writable question fields. Choices only
// matters for multiple-choice questions.
type QuestionInput struct {
	Type          domain.QuestionType `json:"type"`
	Text          string              `json:"text"`
	Choices       []string            `json:"choices,omitempty"`
	CorrectAnswer string              `json:"correct_answer,omitempty"`
}

// ListQuestions returns an assessment's questions.
func (c *Client) ListQuestions(ctx context.Context, assessmentID int) ([]domain.Question, error) {
	var out []domain.Question
	path := fmt.Sprintf("/assessments/%d/questions", assessmentID)
	if err := c.send(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddQuestion appends a question to an assessment.
func (c *Client) AddQuestion(ctx context.Context, assessmentID int, in QuestionInput) (*domain.Question, error) {
	var out domain.Question
	path := fmt.Sprintf("/assessments/%d/questions", assessmentID)
	if err := c.send(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
