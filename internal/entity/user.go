package entity

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the acting identity for one request. It is built by the
// auth middleware from the bearer token and passed explicitly; an
// unauthenticated request carries the zero Principal.
type Principal struct {
	UserID        int64
	IsStaff       bool
	Authenticated bool
}
