// Package store holds all server-derived client state: six independent
// slices composed into one tree, mutated only by reducers serialized
// under the store mutex. Operations are blocking; callers that want them
// asynchronous run them in goroutines (the TUI wraps them in tea.Cmd).
package store

import (
	"context"
	"sync"
	"time"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/session"
)

// API is the surface of the HTTP client the store dispatches against.
type API interface {
	Login(ctx context.Context, username, password string) (*api.LoginResult, error)
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserProfile, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)

	ListAssessments(ctx context.Context) ([]domain.Assessment, error)
	ListIntervieweeAssessments(ctx context.Context) ([]domain.Assessment, error)
	GetAssessment(ctx context.Context, id int) (*domain.Assessment, error)
	CreateAssessment(ctx context.Context, in api.AssessmentInput) (*domain.Assessment, error)
	UpdateAssessment(ctx context.Context, id int, in api.AssessmentInput) (*domain.Assessment, error)
	DeleteAssessment(ctx context.Context, id int) error

	ListQuestions(ctx context.Context, assessmentID int) ([]domain.Question, error)
	AddQuestion(ctx context.Context, assessmentID int, in api.QuestionInput) (*domain.Question, error)

	ListInvitations(ctx context.Context, page, perPage int) ([]domain.Invitation, error)
	CreateInvitations(ctx context.Context, assessmentID int, intervieweeIDs []int) error
	AcceptInvitation(ctx context.Context, id int) (*domain.Invitation, error)

	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error

	PerformanceStatistics(ctx context.Context) ([]domain.MonthlyPerformance, error)
	IntervieweeComposition(ctx context.Context) (*domain.Composition, error)
	IntervieweeStatus(ctx context.Context) ([]domain.StatusRow, error)
}

// State is the whole client-side state tree. Every field is a cache of
// server state, never a source of truth.
type State struct {
	Auth         AuthState
	Assessment   AssessmentState
	Question     QuestionState
	Invitation   InvitationState
	Notification NotificationState
	Performance  PerformanceState
}

// opKey identifies one (slice, operation) pair for sequence fencing.
type opKey string

// Store owns the state tree. Construct once at process start; reset only
// in tests by constructing a fresh one.
type Store struct {
	api     API
	session session.Store

	mu    sync.Mutex
	state State
	seq   map[opKey]uint64

	subs    map[int]chan struct{}
	nextSub int
}

// New builds a store and hydrates the auth slice from any persisted
// credential, so the UI can branch on role before the first request.
func New(api API, sess session.Store) *Store {
	s := &Store{
		api:     api,
		session: sess,
		seq:     make(map[opKey]uint64),
		subs:    make(map[int]chan struct{}),
	}
	s.state = State{
		Auth:         AuthState{Status: StatusIdle, PasswordResetStatus: StatusIdle},
		Assessment:   AssessmentState{ListStatus: StatusIdle, DetailStatus: StatusIdle, IntervieweeStatus: StatusIdle},
		Question:     QuestionState{Status: StatusIdle},
		Invitation:   InvitationState{Status: StatusIdle},
		Notification: NotificationState{Status: StatusIdle},
		Performance:  PerformanceState{Status: StatusIdle},
	}
	if tok := sess.Token(); tok != "" && !session.Expired(tok, time.Now()) {
		s.state.Auth.Authenticated = true
		s.state.Auth.Token = tok
		if c, err := session.ParseClaims(tok); err == nil {
			s.state.Auth.Role = c.Role
		}
	}
	return s
}

// Snapshot returns a deep copy of the current state tree.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a change-signal channel and an unsubscribe func.
// Signals are coalesced: a slow reader sees at least one signal per
// burst of transitions, not one per transition.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// begin records a new dispatch for key, applies the pending transition,
// and returns the dispatch's sequence number.
func (s *Store) begin(key opKey, apply func(*State)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[key]++
	if apply != nil {
		apply(&s.state)
		s.notifyLocked()
	}
	return s.seq[key]
}

// settle applies the completion transition only if n is still the latest
// dispatch for key. A stale result, success or failure, is discarded
// silently: the later dispatch owns the slice now.
func (s *Store) settle(key opKey, n uint64, apply func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[key] != n {
		return false
	}
	apply(&s.state)
	s.notifyLocked()
	return true
}

// mutate runs an unfenced reducer. Used by create/update/delete effects,
// where every completed round-trip's result is wanted regardless of
// dispatch order.
func (s *Store) mutate(apply func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.state)
	s.notifyLocked()
}

func (s *State) clone() State {
	out := *s
	out.Assessment.Assessments = append([]domain.Assessment(nil), s.Assessment.Assessments...)
	out.Assessment.IntervieweeAssessments = append([]domain.Assessment(nil), s.Assessment.IntervieweeAssessments...)
	if s.Assessment.Current != nil {
		cur := *s.Assessment.Current
		out.Assessment.Current = &cur
	}
	out.Question.Questions = append([]domain.Question(nil), s.Question.Questions...)
	out.Invitation.Invitations = append([]domain.Invitation(nil), s.Invitation.Invitations...)
	out.Notification.Notifications = append([]domain.Notification(nil), s.Notification.Notifications...)
	out.Performance.Monthly = append([]domain.MonthlyPerformance(nil), s.Performance.Monthly...)
	out.Performance.StatusRows = append([]domain.StatusRow(nil), s.Performance.StatusRows...)
	if s.Auth.User != nil {
		u := *s.Auth.User
		out.Auth.User = &u
	}
	return out
}
