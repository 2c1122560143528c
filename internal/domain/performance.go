package domain

// MonthlyPerformance is one point in the recruiter's monthly chart:
// summed trial-assessment and real-assessment scores for a month.
type MonthlyPerformance struct {
	Month string  `json:"month"`
	Trial float64 `json:"trial"`
	Real  float64 `json:"real"`
}

// Composition is the interviewee gender split.
type Composition struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// StatusRow is one interviewee's qualification line: the server marks
// anyone averaging 50 or better as qualified.
type StatusRow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
	Status       string  `json:"status"`
}
