package api

import (
	"context"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

type statisticsResponse struct {
	Monthly []domain.MonthlyPerformance `json:"monthly"`
}

// PerformanceStatistics returns the monthly trial/real score series.
func (c *Client) PerformanceStatistics(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	var out statisticsResponse
	if err := c.send(ctx, http.MethodGet, "/performance/statistics", nil, &out); err != nil {
		return nil, err
	}
	return out.Monthly, nil
}

// IntervieweeComposition returns the interviewee gender split.
func (c *Client) IntervieweeComposition(ctx context.Context) (*domain.Composition, error) {
	var out domain.Composition
	if err := c.send(ctx, http.MethodGet, "/interviewee/composition", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IntervieweeStatus returns per-interviewee qualification rows.
func (c *Client) IntervieweeStatus(ctx context.Context) ([]domain.StatusRow, error) {
	var out []domain.StatusRow
	if err := c.send(ctx, http.MethodGet, "/interviewee/status", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
