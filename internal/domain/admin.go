package domain

import "time"

// Admin represents a back-office account that can sign in to the console.
// The password hash never serializes into API responses.
type Admin struct {
	ID           int64     `json:"id,string"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
