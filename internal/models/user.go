package models

import "time"

// User as persisted in the users collection. PasswordHash never leaves
// the repository layer in responses; handlers work with RedactedUser.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"passwordHash"`
	Cart         []LineItem `json:"cart"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// RedactedUser is the projection returned to clients.
type RedactedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Redacted() RedactedUser {
	return RedactedUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
