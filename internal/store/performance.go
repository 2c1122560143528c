package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// PerformanceState is purely display-derived: every fetch replaces its
// snapshot wholesale, nothing is ever merged. Only the monthly series
// tracks a lifecycle; the composition and status fetches just swap data.
type PerformanceState struct {
	Monthly     []domain.MonthlyPerformance
	Composition domain.Composition
	StatusRows  []domain.StatusRow
	Status      Status
	Err         string
}

// FetchStatistics replaces the monthly trial/real series.
func (s *Store) FetchStatistics(ctx context.Context) error {
	n := s.begin(opPerformanceStatistics, func(st *State) {
		st.Performance.Status = StatusLoading
	})

	monthly, err := s.api.PerformanceStatistics(ctx)
	if err != nil {
		s.settle(opPerformanceStatistics, n, func(st *State) {
			st.Performance.Status = StatusFailed
			st.Performance.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opPerformanceStatistics, n, func(st *State) {
		st.Performance.Status = StatusSucceeded
		st.Performance.Monthly = monthly
	})
	return nil
}

// FetchComposition replaces the interviewee gender split.
func (s *Store) FetchComposition(ctx context.Context) error {
	n := s.begin(opPerformanceComposite, nil)

	comp, err := s.api.IntervieweeComposition(ctx)
	if err != nil {
		s.settle(opPerformanceComposite, n, func(st *State) {
			st.Performance.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opPerformanceComposite, n, func(st *State) {
		st.Performance.Composition = *comp
	})
	return nil
}

// FetchStatusRows replaces the per-interviewee qualification rows.
func (s *Store) FetchStatusRows(ctx context.Context) error {
	n := s.begin(opPerformanceStatus, nil)

	rows, err := s.api.IntervieweeStatus(ctx)
	if err != nil {
		s.settle(opPerformanceStatus, n, func(st *State) {
			st.Performance.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opPerformanceStatus, n, func(st *State) {
		st.Performance.StatusRows = rows
	})
	return nil
}
