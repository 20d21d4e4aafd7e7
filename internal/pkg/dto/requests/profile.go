package requests

// UpdateProfile only carries the display name; role is immutable after
// sign-up.
type UpdateProfile struct {
	FullName string `json:"full_name" validate:"required"`
}
