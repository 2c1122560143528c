package domain

// Assessment mirrors the server's assessment resource. Field names follow
// the wire format; the client never derives or recomputes any of them.
type Assessment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RecruiterID int    `json:"recruiter_id"`
	TimeLimit   int    `json:"time_limit"` // minutes
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Question belongs to an assessment and has no lifecycle of its own.
// Choices is only meaningful for multiple-choice questions.
type Question struct {
	ID            int          `json:"id"`
	AssessmentID  int          `json:"assessment_id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Choices       []string     `json:"choices,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
}

// Answer is one response within a submission payload.
type Answer struct {
	QuestionID int    `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

// SubmissionResult is what the server returns for a completed submission.
type SubmissionResult struct {
	Message      string           `json:"message"`
	SubmissionID int              `json:"submission_id"`
	Status       SubmissionStatus `json:"status"`
	Score        *float64         `json:"score,omitempty"`
}
