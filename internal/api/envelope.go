package api

// The server is not consistent about where it puts the payload. Some
// endpoints wrap it, others return it bare. That inconsistency is part
// of the server contract and is recorded here once instead of being
// guessed at per call site:
//
//	POST /login                                   top level {token, role}
//	POST /signup, /logout, /forgot-password,
//	     /reset-password/:token                   top level
//	GET  /assessments                             under "data"
//	GET|POST|PUT /assessments/:id                 top level
//	GET  /interviewee/assessments                 under "assessments"
//	GET|POST /assessments/:id/questions           top level
//	GET  /invitations                             under "data" (+ paging meta)
//	POST /invitations                             top level
//	PUT  /interviewee/invitations/:id/accept      top level
//	GET  /notifications, PATCH /notifications/:id top level
//	GET  /feedback/:submissionId                  under "data"
//	POST /feedback/:submissionId                  top level
//	GET  /performance/statistics                  under "monthly"
//	GET  /interviewee/composition                 top level
//	GET  /interviewee/status                      top level
//	POST /interviewee/assessments/:id/submit      top level

// dataEnvelope is the generic "data" wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// pagedEnvelope adds the pagination metadata the invitations listing
// carries alongside its "data" wrapper.
type pagedEnvelope[T any] struct {
	Data    T   `json:"data"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// messageResponse is the bare {message} acknowledgement several write
// endpoints return.
type messageResponse struct {
	Message string `json:"message"`
}
