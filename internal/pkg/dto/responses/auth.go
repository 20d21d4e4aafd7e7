package responses

type Register struct {
	UserID         string `json:"user_id"`
	ProfileID      string `json:"profile_id"`
	PractitionerID string `json:"practitioner_id,omitempty"`
}

type Login struct {
	Token string `json:"token"`
}

// Session is the observation surface: the identity plus its role profile.
type Session struct {
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Profile *Profile `json:"profile"`
}
