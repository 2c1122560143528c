package cli

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/session"
	"github.com/smartrecruiter/smartrec/internal/store"
	"github.com/smartrecruiter/smartrec/internal/teatest"
)

// stubAPI serves canned data to the store during TUI tests. Mutating
// calls record their arguments so tests can assert dispatch happened.
type stubAPI struct {
	loginResult *api.LoginResult
	loginErr    error

	assessments  []domain.Assessment
	intervieweed []domain.Assessment
	questions    []domain.Question
	invitations  []domain.Invitation
	notes        []domain.Notification
	monthly      []domain.MonthlyPerformance
	composition  domain.Composition
	statusRows   []domain.StatusRow

	acceptedIDs []int
	readIDs     []int
}

func (s *stubAPI) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAPI) Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserProfile, error) {
	return &domain.UserProfile{}, nil
}

func (s *stubAPI) Logout(ctx context.Context) error { return nil }

func (s *stubAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	return "ok", nil
}

func (s *stubAPI) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	return "ok", nil
}

func (s *stubAPI) ListAssessments(ctx context.Context) ([]domain.Assessment, error) {
	return s.assessments, nil
}

func (s *stubAPI) ListIntervieweeAssessments(ctx context.Context) ([]domain.Assessment, error) {
	return s.intervieweed, nil
}

func (s *stubAPI) GetAssessment(ctx context.Context, id int) (*domain.Assessment, error) {
	for _, a := range append(s.assessments, s.intervieweed...) {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, &api.Error{Message: "Assessment not found"}
}

func (s *stubAPI) CreateAssessment(ctx context.Context, in api.AssessmentInput) (*domain.Assessment, error) {
	return &domain.Assessment{ID: 99, Title: in.Title}, nil
}

func (s *stubAPI) UpdateAssessment(ctx context.Context, id int, in api.AssessmentInput) (*domain.Assessment, error) {
	return &domain.Assessment{ID: id, Title: in.Title}, nil
}

func (s *stubAPI) DeleteAssessment(ctx context.Context, id int) error { return nil }

func (s *stubAPI) ListQuestions(ctx context.Context, assessmentID int) ([]domain.Question, error) {
	return s.questions, nil
}

func (s *stubAPI) AddQuestion(ctx context.Context, assessmentID int, in api.QuestionInput) (*domain.Question, error) {
	return &domain.Question{ID: 1, Text: in.Text}, nil
}

func (s *stubAPI) ListInvitations(ctx context.Context, page, perPage int) ([]domain.Invitation, error) {
	return s.invitations, nil
}

func (s *stubAPI) CreateInvitations(ctx context.Context, assessmentID int, intervieweeIDs []int) error {
	return nil
}

func (s *stubAPI) AcceptInvitation(ctx context.Context, id int) (*domain.Invitation, error) {
	s.acceptedIDs = append(s.acceptedIDs, id)
	for _, inv := range s.invitations {
		if inv.ID == id {
			inv.Status = domain.InvitationAccepted
			return &inv, nil
		}
	}
	return nil, &api.Error{Message: "Invitation not found"}
}

func (s *stubAPI) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notes, nil
}

func (s *stubAPI) MarkNotificationRead(ctx context.Context, id int) error {
	s.readIDs = append(s.readIDs, id)
	return nil
}

func (s *stubAPI) PerformanceStatistics(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	return s.monthly, nil
}

func (s *stubAPI) IntervieweeComposition(ctx context.Context) (*domain.Composition, error) {
	c := s.composition
	return &c, nil
}

func (s *stubAPI) IntervieweeStatus(ctx context.Context) ([]domain.StatusRow, error) {
	return s.statusRows, nil
}

func signedToken(t *testing.T, role domain.Role) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "7",
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

// newTestApp returns an App with a hydrated session for the given role.
func newTestApp(t *testing.T, stub *stubAPI, role domain.Role) *App {
	t.Helper()
	sess := session.NewMemStore(signedToken(t, role))
	return &App{
		Store:   store.New(stub, sess),
		Session: sess,
	}
}

func newTestDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app))
	d.Start()
	d.Resize(100, 40)
	return d
}

func TestTUI_DashboardRecruiterMenu(t *testing.T) {
	stub := &stubAPI{notes: []domain.Notification{
		{ID: 1, Message: "New submission", IsRead: false},
		{ID: 2, Message: "Old news", IsRead: true},
	}}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleRecruiter))

	view := d.View()
	assert.Contains(t, view, "smartrec")
	assert.Contains(t, view, "recruiter")
	assert.Contains(t, view, "Assessments")
	assert.Contains(t, view, "Performance")
	assert.Contains(t, view, "1 unread")
	assert.NotContains(t, view, "Invitations")
}

func TestTUI_DashboardIntervieweeMenu(t *testing.T) {
	stub := &stubAPI{}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleInterviewee))

	view := d.View()
	assert.Contains(t, view, "interviewee")
	assert.Contains(t, view, "Invitations")
	assert.NotContains(t, view, "Performance")
}

func TestTUI_LoginFlow(t *testing.T) {
	stub := &stubAPI{loginResult: &api.LoginResult{
		Token: signedToken(t, domain.RoleRecruiter),
		Role:  domain.RoleRecruiter,
	}}
	sess := session.NewMemStore("")
	app := &App{Store: store.New(stub, sess), Session: sess}
	d := newTestDriver(t, app)

	assert.Contains(t, d.View(), "Sign in")

	d.Type("ada")
	d.Enter()
	d.Type("secret")
	d.Enter()

	view := d.View()
	assert.Contains(t, view, "Smart Recruiter")
	assert.Contains(t, view, "recruiter")
	assert.Equal(t, stub.loginResult.Token, sess.Token())
}

func TestTUI_LoginFailureStaysOnForm(t *testing.T) {
	stub := &stubAPI{loginErr: &api.Error{Message: "Invalid credentials"}}
	sess := session.NewMemStore("")
	app := &App{Store: store.New(stub, sess), Session: sess}
	d := newTestDriver(t, app)

	d.Type("ada")
	d.Enter()
	d.Type("wrong")
	d.Enter()

	view := d.View()
	assert.Contains(t, view, "Invalid credentials")
	assert.Contains(t, view, "Sign in")
	assert.Empty(t, sess.Token())
}

func TestTUI_AssessmentBrowsing(t *testing.T) {
	stub := &stubAPI{
		assessments: []domain.Assessment{
			{ID: 1, Title: "Go Basics", TimeLimit: 30, IsPublished: true},
			{ID: 2, Title: "Systems Design", TimeLimit: 60},
		},
		questions: []domain.Question{
			{ID: 10, Type: domain.QuestionMultipleChoice, Text: "Pick one", Choices: []string{"x", "y"}},
		},
	}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleRecruiter))

	d.Press('a')
	view := d.View()
	assert.Contains(t, view, "Go Basics")
	assert.Contains(t, view, "Systems Design")
	assert.Contains(t, view, "published")

	d.Down()
	d.Enter()
	view = d.View()
	assert.Contains(t, view, "Systems Design")
	assert.Contains(t, view, "Pick one")
	assert.Contains(t, view, "x)")

	d.Esc()
	d.Esc()
	assert.Contains(t, d.View(), "Smart Recruiter")
}

func TestTUI_InvitationAccept(t *testing.T) {
	stub := &stubAPI{invitations: []domain.Invitation{
		{ID: 5, AssessmentID: 1, Status: domain.InvitationPending},
	}}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleInterviewee))

	d.Press('i')
	assert.Contains(t, d.View(), "pending")

	d.Enter()
	assert.Equal(t, []int{5}, stub.acceptedIDs)
	assert.Contains(t, d.View(), "accepted")
}

func TestTUI_NotificationMarkRead(t *testing.T) {
	stub := &stubAPI{notes: []domain.Notification{
		{ID: 3, Message: "You were invited", IsRead: false},
	}}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleInterviewee))

	d.Press('n')
	assert.Contains(t, d.View(), "unread")

	d.Enter()
	assert.Equal(t, []int{3}, stub.readIDs)
	assert.NotContains(t, d.View(), "unread")
}

func TestTUI_PerformanceDashboard(t *testing.T) {
	stub := &stubAPI{
		monthly:     []domain.MonthlyPerformance{{Month: "3", Trial: 40, Real: 70}},
		composition: domain.Composition{Male: 4, Female: 6},
		statusRows:  []domain.StatusRow{{ID: 1, Name: "Ada", AverageScore: 88, Status: "Qualified"}},
	}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleRecruiter))

	d.Press('p')
	view := d.View()
	assert.Contains(t, view, "Monthly performance")
	assert.Contains(t, view, "Mar")
	assert.Contains(t, view, "(total 10)")
	assert.Contains(t, view, "Ada")
	assert.Contains(t, view, "Qualified")
}

func TestTUI_LogoutReturnsToLogin(t *testing.T) {
	stub := &stubAPI{}
	app := newTestApp(t, stub, domain.RoleRecruiter)
	d := newTestDriver(t, app)

	d.Press('x')
	assert.Contains(t, d.View(), "Sign in")
	assert.False(t, app.Store.Snapshot().Auth.Authenticated)
}

func TestTUI_QuitKey(t *testing.T) {
	stub := &stubAPI{}
	d := newTestDriver(t, newTestApp(t, stub, domain.RoleRecruiter))

	d.Press('q')
	assert.True(t, d.Quitting)
}
