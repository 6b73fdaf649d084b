package usecase

import (
	"bookcatalog/internal/entity"
	"context"
)

// RelationPatch is a partial update: nil fields are left untouched on
// the stored row. Patching like never clobbers rate and vice versa.
type RelationPatch struct {
	Like *bool
	Rate *int
}

// IsEmpty reports whether the patch changes nothing.
func (p RelationPatch) IsEmpty() bool {
	return p.Like == nil && p.Rate == nil
}

// RelationRepository upserts per-(user, book) like/rate state. The row
// is created lazily on first interaction with defaults (like=false,
// rate=null); the unique (user_id, book_id) constraint serializes
// concurrent first writes.
type RelationRepository interface {
	Upsert(ctx context.Context, userID, bookID int64, patch RelationPatch) (entity.UserBookRelation, error)
}
