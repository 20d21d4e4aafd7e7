package models

// User is the credential record backing an identity. The profile carries the
// role and display data; the user only authenticates.
type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	TimeModel `bson:",inline"`
}
