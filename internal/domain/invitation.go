package domain

// Invitation mirrors the server's invitation resource. Status transitions
// happen server-side; the client only reflects them.
type Invitation struct {
	ID            int              `json:"id"`
	AssessmentID  int              `json:"assessment_id"`
	IntervieweeID int              `json:"interviewee_id"`
	Status        InvitationStatus `json:"status"`
	Message       string           `json:"message,omitempty"`
	ExpiryDate    string           `json:"expiry_date,omitempty"`
	CreatedAt     string           `json:"created_at,omitempty"`
}

type Notification struct {
	ID        int              `json:"id"`
	UserID    int              `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// Feedback is recruiter commentary on a submission, fetched per view and
// never cached in a slice.
type Feedback struct {
	ID           int      `json:"id"`
	SubmissionID int      `json:"submission_id"`
	QuestionID   *int     `json:"question_id,omitempty"`
	RecruiterID  int      `json:"recruiter_id"`
	Text         string   `json:"text"`
	Score        *float64 `json:"score,omitempty"`
}
