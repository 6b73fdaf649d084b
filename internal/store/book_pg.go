package store

// Repository implementation (Postgres)

import (
	"context"
	"database/sql"
	"errors"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// List returns the filtered, ordered book list with likes_count and
// average rating folded in by a single grouped join. Readers come from
// one batched follow-up query keyed by the returned book ids, never
// per row.
func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.ListBookView, error) {
	query := `
	SELECT b.id, b.name, b.price::text, b.author_name,
	       COALESCE(u.username, '') AS owner_name,
	       COUNT(*) FILTER (WHERE rel."like") AS annotated_likes,
	       ROUND(AVG(rel.rate)::numeric, 1)::float8 AS rating
	FROM books b
	LEFT JOIN user_book_relations rel ON rel.book_id = b.id
	LEFT JOIN users u ON u.id = b.owner_id
	WHERE ($1 = '' OR b.name ILIKE '%' || $1 || '%' OR b.author_name ILIKE '%' || $1 || '%')
	GROUP BY b.id, u.username
	ORDER BY ` + orderClause(p.Ordering)

	rows, err := r.db.Query(ctx, query, p.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entity.ListBookView{}
	var ids []int64
	for rows.Next() {
		var b entity.ListBookView
		var rating sql.NullFloat64
		if err := rows.Scan(&b.ID, &b.Name, &b.Price, &b.AuthorName, &b.OwnerName, &b.AnnotatedLikes, &rating); err != nil {
			return nil, err
		}
		if rating.Valid {
			b.Rating = &rating.Float64
		}
		b.Readers = []entity.BookReader{}
		books = append(books, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}

	readers, err := r.readersByBook(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if rs, ok := readers[books[i].ID]; ok {
			books[i].Readers = rs
		}
	}
	return books, nil
}

// readersByBook fetches every relation holder for the given books in
// one query, in relation creation order.
func (r *BookPG) readersByBook(ctx context.Context, bookIDs []int64) (map[int64][]entity.BookReader, error) {
	query := `
	SELECT rel.book_id, u.first_name, u.last_name
	FROM user_book_relations rel
	JOIN users u ON u.id = rel.user_id
	WHERE rel.book_id = ANY($1)
	ORDER BY rel.id
	`
	rows, err := r.db.Query(ctx, query, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readers := make(map[int64][]entity.BookReader)
	for rows.Next() {
		var bookID int64
		var reader entity.BookReader
		if err := rows.Scan(&bookID, &reader.FirstName, &reader.LastName); err != nil {
			return nil, err
		}
		readers[bookID] = append(readers[bookID], reader)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readers, nil
}

func (r *BookPG) GetDetail(ctx context.Context, id int64) (entity.DetailBookView, error) {
	query := `
	SELECT b.id, b.name, b.price::text, b.author_name, b.owner_id,
	       COUNT(*) FILTER (WHERE rel."like") AS annotated_likes,
	       ROUND(AVG(rel.rate)::numeric, 1)::float8 AS rating
	FROM books b
	LEFT JOIN user_book_relations rel ON rel.book_id = b.id
	WHERE b.id = $1
	GROUP BY b.id
	`
	var v entity.DetailBookView
	var rating sql.NullFloat64
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Price, &v.AuthorName, &v.Owner, &v.AnnotatedLikes, &rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DetailBookView{}, usecase.ErrNotFound
		}
		return entity.DetailBookView{}, err
	}
	if rating.Valid {
		v.Rating = &rating.Float64
	}
	return v, nil
}

func (r *BookPG) Get(ctx context.Context, id int64) (entity.Book, error) {
	query := `
	SELECT id, name, price::text, author_name, owner_id, created_at, updated_at
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Price, &b.AuthorName, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Create(ctx context.Context, in usecase.BookInput, ownerID int64) (entity.DetailBookView, error) {
	query := `
	INSERT INTO books (name, price, author_name, owner_id)
	VALUES ($1, $2::numeric(12,2), $3, $4)
	RETURNING id, name, price::text, author_name, owner_id
	`
	var v entity.DetailBookView
	err := r.db.QueryRow(ctx, query, in.Name, in.Price, in.AuthorName, ownerID).
		Scan(&v.ID, &v.Name, &v.Price, &v.AuthorName, &v.Owner)
	if err != nil {
		return entity.DetailBookView{}, err
	}
	// a fresh book has no relations yet
	v.AnnotatedLikes = 0
	v.Rating = nil
	return v, nil
}

// Update replaces the mutable fields; owner_id is never touched.
func (r *BookPG) Update(ctx context.Context, id int64, in usecase.BookInput) (entity.DetailBookView, error) {
	query := `
	UPDATE books
	SET name = $2, price = $3::numeric(12,2), author_name = $4, updated_at = NOW()
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, in.Name, in.Price, in.AuthorName)
	if err != nil {
		return entity.DetailBookView{}, err
	}
	if tag.RowsAffected() == 0 {
		return entity.DetailBookView{}, usecase.ErrNotFound
	}
	return r.GetDetail(ctx, id)
}

// Delete removes the book; relations cascade at the schema level.
func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
