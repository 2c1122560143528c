package store

// Status is the lifecycle of one tracked operation within a slice.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Operation keys for sequence fencing. One key per (slice, operation)
// pair that tracks a lifecycle; unfenced mutations have no key.
const (
	opAuthLogin     opKey = "auth/login"
	opAuthSignup    opKey = "auth/signup"
	opAuthLogout    opKey = "auth/logout"
	opPasswordReset opKey = "auth/passwordReset"

	opAssessmentList        opKey = "assessment/list"
	opAssessmentDetail      opKey = "assessment/detail"
	opAssessmentInterviewee opKey = "assessment/interviewee"

	opQuestionList     opKey = "question/list"
	opInvitationList   opKey = "invitation/list"
	opNotificationList opKey = "notification/list"

	opPerformanceStatistics opKey = "performance/statistics"
	opPerformanceComposite  opKey = "performance/composition"
	opPerformanceStatus     opKey = "performance/status"
)
