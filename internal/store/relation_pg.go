package store

import (
	"context"
	"errors"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RelationPG struct {
	db *pgxpool.Pool
}

func NewRelationPG(db *pgxpool.Pool) *RelationPG {
	return &RelationPG{db: db}
}

// Upsert creates the (user, book) relation on first interaction and
// applies only the provided fields on later ones: nil patch fields
// keep the stored value, so liking never resets a rating and rating
// never resets a like. Races on first write collapse into one row via
// the unique (user_id, book_id) constraint.
func (repo *RelationPG) Upsert(ctx context.Context, userID, bookID int64, patch usecase.RelationPatch) (entity.UserBookRelation, error) {
	var exists bool
	findBookSQL := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	if err := repo.db.QueryRow(ctx, findBookSQL, bookID).Scan(&exists); err != nil {
		return entity.UserBookRelation{}, err
	}
	if !exists {
		return entity.UserBookRelation{}, usecase.ErrNotFound
	}

	upsertSQL := `
	INSERT INTO user_book_relations (user_id, book_id, "like", rate, created_at, updated_at)
	VALUES ($1, $2, COALESCE($3, FALSE), $4, NOW(), NOW())
	ON CONFLICT (user_id, book_id)
	DO UPDATE SET
		"like" = COALESCE($3, user_book_relations."like"),
		rate = COALESCE($4, user_book_relations.rate),
		updated_at = NOW()
	RETURNING id, user_id, book_id, "like", rate, created_at, updated_at
	`
	var rel entity.UserBookRelation
	err := repo.db.QueryRow(ctx, upsertSQL, userID, bookID, patch.Like, patch.Rate).
		Scan(&rel.ID, &rel.UserID, &rel.BookID, &rel.Like, &rel.Rate, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		// the book can vanish between the existence check and the insert
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entity.UserBookRelation{}, usecase.ErrNotFound
		}
		return entity.UserBookRelation{}, err
	}
	return rel, nil
}
