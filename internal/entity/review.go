package entity

import "time"

type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	BookID    string    `json:"book"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User is the reviewing user's summary, joined on read paths.
	User UserSummary `json:"user"`
}
