package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// QuestionState holds the questions of whichever assessment was loaded
// last. Questions have no lifecycle independent of their assessment.
type QuestionState struct {
	Questions []domain.Question
	Status    Status
	Err       string
}

// FetchQuestions replaces the question list with one assessment's.
func (s *Store) FetchQuestions(ctx context.Context, assessmentID int) error {
	n := s.begin(opQuestionList, func(st *State) {
		st.Question.Status = StatusLoading
		st.Question.Err = ""
	})

	qs, err := s.api.ListQuestions(ctx, assessmentID)
	if err != nil {
		s.settle(opQuestionList, n, func(st *State) {
			st.Question.Status = StatusFailed
			st.Question.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opQuestionList, n, func(st *State) {
		st.Question.Status = StatusSucceeded
		st.Question.Questions = qs
		st.Question.Err = ""
	})
	return nil
}

// AddQuestion appends the created question. Failure leaves the list
// untouched and is surfaced to the caller.
func (s *Store) AddQuestion(ctx context.Context, assessmentID int, in api.QuestionInput) (*domain.Question, error) {
	q, err := s.api.AddQuestion(ctx, assessmentID, in)
	if err != nil {
		return nil, err
	}
	s.mutate(func(st *State) {
		st.Question.Questions = append(st.Question.Questions, *q)
	})
	return q, nil
}
