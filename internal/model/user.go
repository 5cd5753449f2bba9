package model

// User is the signed-in identity carried by the session token.
// Accounts live with the external identity provider, not in our database.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

func (u *User) HasEmail() bool {
	return u != nil && u.Email != ""
}
