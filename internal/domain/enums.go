package domain

import "fmt"

// Role is the closed set of account roles the server issues. Every
// role-dependent branch in the client switches exhaustively over it.
type Role string

const (
	RoleRecruiter   Role = "recruiter"
	RoleInterviewee Role = "interviewee"
)

// ParseRole validates a server-provided role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRecruiter, RoleInterviewee:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleInterviewee
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionOpenEnded      QuestionType = "open_ended"
)

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationCompleted InvitationStatus = "completed"
	InvitationExpired   InvitationStatus = "expired"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type SubmissionStatus string

const (
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionGraded     SubmissionStatus = "graded"
)
