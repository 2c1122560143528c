package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// AssessmentState tracks three independent fetch lifecycles: the
// recruiter list, the single-assessment detail, and the interviewee list.
type AssessmentState struct {
	Assessments            []domain.Assessment
	IntervieweeAssessments []domain.Assessment
	Current                *domain.Assessment

	ListStatus        Status
	DetailStatus      Status
	IntervieweeStatus Status
	Err               string
}

// FetchAssessments replaces the recruiter's assessment list.
func (s *Store) FetchAssessments(ctx context.Context) error {
	n := s.begin(opAssessmentList, func(st *State) {
		st.Assessment.ListStatus = StatusLoading
		st.Assessment.Err = ""
	})

	list, err := s.api.ListAssessments(ctx)
	if err != nil {
		s.settle(opAssessmentList, n, func(st *State) {
			st.Assessment.ListStatus = StatusFailed
			st.Assessment.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAssessmentList, n, func(st *State) {
		st.Assessment.ListStatus = StatusSucceeded
		st.Assessment.Assessments = list
		st.Assessment.Err = ""
	})
	return nil
}

// FetchIntervieweeAssessments replaces the interviewee-visible list.
func (s *Store) FetchIntervieweeAssessments(ctx context.Context) error {
	n := s.begin(opAssessmentInterviewee, func(st *State) {
		st.Assessment.IntervieweeStatus = StatusLoading
		st.Assessment.Err = ""
	})

	list, err := s.api.ListIntervieweeAssessments(ctx)
	if err != nil {
		s.settle(opAssessmentInterviewee, n, func(st *State) {
			st.Assessment.IntervieweeStatus = StatusFailed
			st.Assessment.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAssessmentInterviewee, n, func(st *State) {
		st.Assessment.IntervieweeStatus = StatusSucceeded
		st.Assessment.IntervieweeAssessments = list
		st.Assessment.Err = ""
	})
	return nil
}

// FetchAssessmentDetail loads one assessment into Current. The previous
// detail is dropped as soon as a new fetch starts.
func (s *Store) FetchAssessmentDetail(ctx context.Context, id int) error {
	n := s.begin(opAssessmentDetail, func(st *State) {
		st.Assessment.DetailStatus = StatusLoading
		st.Assessment.Err = ""
		st.Assessment.Current = nil
	})

	a, err := s.api.GetAssessment(ctx, id)
	if err != nil {
		s.settle(opAssessmentDetail, n, func(st *State) {
			st.Assessment.DetailStatus = StatusFailed
			st.Assessment.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opAssessmentDetail, n, func(st *State) {
		st.Assessment.DetailStatus = StatusSucceeded
		st.Assessment.Current = a
		st.Assessment.Err = ""
	})
	return nil
}

// CreateAssessment appends the server's new record to the list. Failures
// are surfaced to the caller only; the list is never touched.
func (s *Store) CreateAssessment(ctx context.Context, in api.AssessmentInput) (*domain.Assessment, error) {
	a, err := s.api.CreateAssessment(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mutate(func(st *State) {
		st.Assessment.Assessments = append(st.Assessment.Assessments, *a)
	})
	return a, nil
}

// UpdateAssessment replaces the matching record in place, preserving
// order and every other record.
func (s *Store) UpdateAssessment(ctx context.Context, id int, in api.AssessmentInput) (*domain.Assessment, error) {
	a, err := s.api.UpdateAssessment(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.mutate(func(st *State) {
		for i := range st.Assessment.Assessments {
			if st.Assessment.Assessments[i].ID == a.ID {
				st.Assessment.Assessments[i] = *a
				break
			}
		}
	})
	return a, nil
}

// DeleteAssessment removes exactly the matching record. Questions and
// invitations belonging to it are not cascaded client-side.
func (s *Store) DeleteAssessment(ctx context.Context, id int) error {
	if err := s.api.DeleteAssessment(ctx, id); err != nil {
		return err
	}
	s.mutate(func(st *State) {
		kept := st.Assessment.Assessments[:0]
		for _, a := range st.Assessment.Assessments {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		st.Assessment.Assessments = kept
	})
	return nil
}
