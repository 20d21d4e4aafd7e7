package models

type Practitioner struct {
	ID                string   `json:"id" bson:"_id,omitempty"`
	ProfileID         string   `json:"profile_id" bson:"profileId"`
	Specialty         string   `json:"specialty" bson:"specialty"`
	Credentials       string   `json:"credentials,omitempty" bson:"credentials,omitempty"`
	ConsultationTypes []string `json:"consultation_types" bson:"consultationTypes"`
	Bio               string   `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfileImageKey   string   `json:"-" bson:"profileImageKey,omitempty"`
	IDImageKey        string   `json:"-" bson:"idImageKey,omitempty"`
	TimeModel         `bson:",inline"`
}

// SupportsConsultationType checks set membership in the practitioner's
// offered delivery modes.
func (p *Practitioner) SupportsConsultationType(consultationType string) bool {
	for _, each := range p.ConsultationTypes {
		if each == consultationType {
			return true
		}
	}
	return false
}
