package models

// APIResponse is the envelope carried by every HTTP response.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ValidationError reports a missing or malformed input field. It is raised
// before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid field " + e.Field + ": " + e.Reason
}
