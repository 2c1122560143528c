package api

import "errors"

// fallbackMessage is used whenever the server does not supply one,
// including transport failures where no response arrived at all.
const fallbackMessage = "An unexpected error occurred."

// Error is the single shape every failed request collapses into. The
// transport-vs-application distinction does not survive past this
// package; callers only ever see a message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// ErrorMessage extracts the normalized message from any error returned
// by this package. Non-API errors fall back to the generic message.
func ErrorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallbackMessage
}
