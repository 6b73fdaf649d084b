package entity

import "time"

type Book struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"` // numeric(12,2), kept in its text form ("25.00")
	AuthorName string    `json:"author_name"`
	OwnerID    *int64    `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BookReader is a user reduced to display identity for list payloads.
type BookReader struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ListBookView is the shape of one element of GET /book.
type ListBookView struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Price          string       `json:"price"`
	AuthorName     string       `json:"author_name"`
	AnnotatedLikes int          `json:"annotated_likes"`
	Rating         *float64     `json:"rating"`
	OwnerName      string       `json:"owner_name"`
	Readers        []BookReader `json:"readers"`
}

// DetailBookView is the shape of GET /book/{id} and of mutation responses.
// Unlike the list view it exposes the owner as a numeric id (null when the
// book is unowned) and carries no readers.
type DetailBookView struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	AuthorName     string   `json:"author_name"`
	Owner          *int64   `json:"owner"`
	AnnotatedLikes int      `json:"annotated_likes"`
	Rating         *float64 `json:"rating"`
}
