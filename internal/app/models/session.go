package models

// Session is the JSON blob stored in Redis under the session id. It is the
// only process-wide mutable identity state; everything else reads it through
// the session service.
type Session struct {
	SessionID      string `json:"session_id"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	PractitionerID string `json:"practitioner_id,omitempty"`
}

func (s *Session) IsPatient() bool {
	return s.Role == "patient"
}

func (s *Session) IsPractitioner() bool {
	return s.Role == "practitioner"
}
