package responses

type Practitioner struct {
	ID                string   `json:"id"`
	ProfileID         string   `json:"profile_id"`
	FullName          string   `json:"full_name"`
	Specialty         string   `json:"specialty"`
	Credentials       string   `json:"credentials,omitempty"`
	ConsultationTypes []string `json:"consultation_types"`
	Bio               string   `json:"bio,omitempty"`
}

// PractitionerDetail adds the review summary the profile page renders.
type PractitionerDetail struct {
	Practitioner
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	Reviews       []Review `json:"reviews"`
}
