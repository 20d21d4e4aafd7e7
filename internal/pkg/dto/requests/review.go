package requests

type CreateReview struct {
	PractitionerID string `json:"practitioner_id" validate:"required"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment        string `json:"comment" validate:"required"`
}
