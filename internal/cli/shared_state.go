package cli

// SharedState is passed by pointer to every view so they all see the
// same terminal geometry and app handles.
type SharedState struct {
	App    *App
	Width  int
	Height int
}

// ContentHeight is the rows left for a view after the header (2 lines)
// and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 0 {
		return 0
	}
	return h
}
