package entity

import "time"

// UserBookRelation holds one user's like/rate state for one book.
// At most one row exists per (user, book) pair.
type UserBookRelation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	Like      bool      `json:"like"`
	Rate      *int      `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
