package entity

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the slice of a User that gets joined into review responses.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
