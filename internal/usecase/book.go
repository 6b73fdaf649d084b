package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

// ListParams narrows and orders the book list query.
type ListParams struct {
	// Search matches name OR author_name, case-insensitive substring.
	Search string
	// Ordering is a whitelisted field name, optionally prefixed with
	// '-' for descending: price, author_name, rating. Anything else is
	// ignored and the list comes back in id order.
	Ordering string
}

// BookInput carries the mutable fields for create and full update.
type BookInput struct {
	Name       string
	Price      string
	AuthorName string
}

// BookRepository is the contract for book rows and their query-time
// aggregates. List and GetDetail fold likes_count and average rating in
// via a single grouped join; they never issue per-book queries.
type BookRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.ListBookView, error)
	GetDetail(ctx context.Context, id int64) (entity.DetailBookView, error)
	// Get returns the bare row, used for permission checks before mutation.
	Get(ctx context.Context, id int64) (entity.Book, error)
	Create(ctx context.Context, in BookInput, ownerID int64) (entity.DetailBookView, error)
	Update(ctx context.Context, id int64, in BookInput) (entity.DetailBookView, error)
	Delete(ctx context.Context, id int64) error
}
