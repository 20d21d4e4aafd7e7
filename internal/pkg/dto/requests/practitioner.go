package requests

// PractitionerFilters narrows the practitioner collection. Rating and Date
// are accepted in the filter shape but are not applied anywhere; the product
// never defined their semantics and they must not be invented here.
type PractitionerFilters struct {
	Specialty        string `json:"specialty,omitempty"`
	ConsultationType string `json:"consultation_type,omitempty" validate:"omitempty,consultation_type"`
	Rating           string `json:"rating,omitempty"`
	Date             string `json:"date,omitempty"`
}

func (f *PractitionerFilters) IsEmpty() bool {
	return f == nil || (f.Specialty == "" && f.ConsultationType == "")
}
