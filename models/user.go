package models

// UserExistsMessage is returned when registration finds the email already stored.
const UserExistsMessage = "user already exists, no need to insert again"

// UserRegistration is the part of the POST /users body the server inspects.
type UserRegistration struct {
	Email string `json:"email" validate:"required"`
}
