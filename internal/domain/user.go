package domain

// UserProfile mirrors the server's user serialization. AverageScore is
// server-computed and only present for interviewees.
type UserProfile struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Role         Role     `json:"role"`
	Gender       string   `json:"gender"`
	CompanyName  string   `json:"company_name,omitempty"`
	Consent      bool     `json:"consent,omitempty"`
	AverageScore *float64 `json:"average_score,omitempty"`
}

// SignupRequest carries the fields the signup form collects. CompanyName
// is required for recruiters, Consent for interviewees; the server
// enforces both.
type SignupRequest struct {
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	Gender      string `json:"gender"`
	CompanyName string `json:"company_name,omitempty"`
	Consent     *bool  `json:"consent,omitempty"`
}
