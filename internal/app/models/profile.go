package models

// Profile shares its identifier with the user that owns it, one profile per
// identity. Role is set at sign-up and has no edit path.
type Profile struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	FullName  string `json:"full_name" bson:"fullName"`
	Role      string `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}

func (p *Profile) IsPatient() bool {
	return p.Role == "patient"
}

func (p *Profile) IsPractitioner() bool {
	return p.Role == "practitioner"
}
