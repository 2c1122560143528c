package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/session"
)

// serve returns a client wired to a one-handler test server.
func serve(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, session.NewMemStore("tok"), zerolog.Nop())
}

func TestListAssessments_DataEnvelope(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assessments", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":1,"title":"Go Basics","time_limit":60,"is_published":true}]}`))
	})

	list, err := c.ListAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Basics", list[0].Title)
	assert.Equal(t, 60, list[0].TimeLimit)
	assert.True(t, list[0].IsPublished)
}

func TestListIntervieweeAssessments_AssessmentsEnvelope(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interviewee/assessments", r.URL.Path)
		w.Write([]byte(`{"assessments":[{"id":7,"title":"Trial Run"}]}`))
	})

	list, err := c.ListIntervieweeAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 7, list[0].ID)
}

func TestGetAssessment_BarePayload(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assessments/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"title":"Backend Screen","time_limit":45}`))
	})

	a, err := c.GetAssessment(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Backend Screen", a.Title)
}

func TestListInvitations_PagedEnvelope(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invitations", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{"data":[{"id":5,"assessment_id":1,"status":"pending"}],"page":2,"per_page":10,"total":11}`))
	})

	list, err := c.ListInvitations(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.InvitationPending, list[0].Status)
}

func TestCreateInvitations_Body(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 4, body["assessment_id"])
		assert.Len(t, body["interviewee_ids"], 2)
		w.Write([]byte(`{"message":"Invitations sent"}`))
	})

	require.NoError(t, c.CreateInvitations(context.Background(), 4, []int{8, 9}))
}

func TestAcceptInvitation_PutPath(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/interviewee/invitations/5/accept", r.URL.Path)
		w.Write([]byte(`{"id":5,"assessment_id":1,"status":"accepted"}`))
	})

	inv, err := c.AcceptInvitation(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationAccepted, inv.Status)
}

func TestMarkNotificationRead_PatchBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/notifications/12", r.URL.Path)
		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body["is_read"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.MarkNotificationRead(context.Background(), 12))
}

func TestPerformanceStatistics_MonthlyEnvelope(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/performance/statistics", r.URL.Path)
		w.Write([]byte(`{"monthly":[{"month":"3","trial":120,"real":90.5}]}`))
	})

	monthly, err := c.PerformanceStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, 90.5, monthly[0].Real)
}

func TestListFeedback_DataEnvelope(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback/42", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":1,"submission_id":42,"text":"Solid work","score":87.5}]}`))
	})

	fb, err := c.ListFeedback(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, fb, 1)
	assert.Equal(t, "Solid work", fb[0].Text)
	require.NotNil(t, fb[0].Score)
	assert.Equal(t, 87.5, *fb[0].Score)
}

func TestSubmitAssessment_AnswersBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interviewee/assessments/6/submit", r.URL.Path)
		var body struct {
			Answers []domain.Answer `json:"answers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Answers, 1)
		assert.Equal(t, "Paris", body.Answers[0].AnswerText)
		w.Write([]byte(`{"message":"Assessment submitted successfully.","submission_id":99,"status":"submitted"}`))
	})

	res, err := c.SubmitAssessment(context.Background(), 6, []domain.Answer{{QuestionID: 1, AnswerText: "Paris"}})
	require.NoError(t, err)
	assert.Equal(t, 99, res.SubmissionID)
	assert.Equal(t, domain.SubmissionSubmitted, res.Status)
}
