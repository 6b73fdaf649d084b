package usecase

import "bookcatalog/internal/entity"

// CanMutateBook reports whether p may update or delete b: the book's
// owner or any staff user. Unowned (legacy) books are staff-only.
// Reads are not gated; relation writes need no check because the
// relation's user is always the requester, never taken from input.
func CanMutateBook(p entity.Principal, b entity.Book) bool {
	if !p.Authenticated {
		return false
	}
	if p.IsStaff {
		return true
	}
	return b.OwnerID != nil && *b.OwnerID == p.UserID
}
